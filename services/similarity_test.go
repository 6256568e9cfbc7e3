package services

import (
	"testing"

	"youtube-trending/models"
)

func TestRecommendSimilar_Scores(t *testing.T) {
	base := tagged("base", "10", "music|pop")
	sameCat := tagged("rock", "10", "music|rock")
	otherCat := tagged("jazz", "20", "pop|jazz")

	if got := SimilarityScore(base, sameCat); got != 4 {
		t.Errorf("same category score = %d, want 4", got)
	}
	if got := SimilarityScore(base, otherCat); got != 1 {
		t.Errorf("other category score = %d, want 1", got)
	}

	got := RecommendSimilar([]*models.Record{base, otherCat, sameCat}, base)
	if !equalStrings(ids(got), []string{"rock", "jazz"}) {
		t.Errorf("recommendations = %v, want [rock jazz]", ids(got))
	}
}

func TestRecommendSimilar_ExcludesAllRecordsOfBaseVideo(t *testing.T) {
	base := tagged("base", "10", "music")
	otherDay := tagged("base", "10", "music")
	otherDay.TrendingDate = "17.15.11"
	candidate := tagged("cand", "99", "none")

	got := RecommendSimilar([]*models.Record{base, otherDay, candidate}, base)
	for _, r := range got {
		if r.VideoID == base.VideoID {
			t.Fatalf("result includes base video_id: %v", ids(got))
		}
	}
	if len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}

func TestRecommendSimilar_TopFiveStable(t *testing.T) {
	base := tagged("base", "10", "a|b")
	data := []*models.Record{
		base,
		tagged("c1", "10", "x"),
		tagged("c2", "20", "a"),
		tagged("c3", "10", "a|b"),
		tagged("c4", "10", "y"),
		tagged("c5", "10", "z"),
		tagged("c6", "10", "w"),
		tagged("c7", "20", "q"),
	}
	got := RecommendSimilar(data, base)
	want := []string{"c3", "c1", "c4", "c5", "c6"}
	if !equalStrings(ids(got), want) {
		t.Errorf("got %v, want %v", ids(got), want)
	}
}

func TestRecommendSimilar_NilBase(t *testing.T) {
	got := RecommendSimilar([]*models.Record{tagged("a", "1", "x")}, nil)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", got)
	}
}

func TestRecommendSimilar_SentinelsParticipate(t *testing.T) {
	base := tagged("base", "10", "")
	candidate := tagged("cand", "20", "")
	if got := SimilarityScore(base, candidate); got != 1 {
		t.Errorf("empty-tag overlap score = %d, want 1", got)
	}
}

func TestTagKeywords(t *testing.T) {
	data := []*models.Record{
		tagged("a", "1", " Music |POP|nan"),
		tagged("b", "1", "music|[none]||pop"),
		tagged("c", "1", "[NONE]"),
		tagged("d", "1", ""),
	}
	got := TagKeywords(data)
	if len(got) != 2 {
		t.Fatalf("keywords = %v, want 2 entries", got)
	}
	if got["music"] != 2 || got["pop"] != 2 {
		t.Errorf("keywords = %v", got)
	}
	for _, s := range []string{"", "nan", "[none]"} {
		if _, ok := got[s]; ok {
			t.Errorf("sentinel %q should be dropped", s)
		}
	}
}

func TestRecommendSimilar_RanksBySimilarityScore(t *testing.T) {
	base := tagged("base", "10", "music|pop|live")
	data := []*models.Record{
		base,
		tagged("tags-only", "20", "music|pop|live"),
		tagged("category-only", "10", "news"),
		tagged("both", "10", "pop"),
		tagged("empty-tags", "30", ""),
		tagged("nothing", "30", "news"),
	}

	got := RecommendSimilar(data, base)
	want := []string{"both", "tags-only", "category-only", "empty-tags", "nothing"}
	if !equalStrings(ids(got), want) {
		t.Fatalf("got %v, want %v", ids(got), want)
	}
	for i := 1; i < len(got); i++ {
		if SimilarityScore(base, got[i-1]) < SimilarityScore(base, got[i]) {
			t.Errorf("position %d (%s) outranks a higher score", i-1, got[i-1].VideoID)
		}
	}
}
