package services

import (
	"testing"

	"youtube-trending/models"
	"youtube-trending/utils"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"12345", 12345, true},
		{" 42 ", 42, true},
		{"", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
		{"-3", 0, false},
		{"99999999999999999999", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseCount(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("parseCount(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDataCleaner_Clean(t *testing.T) {
	raw := []*models.RawRecord{
		{VideoID: "a", Title: "First", Views: "100", Likes: "10", Dislikes: "x", CommentCount: "", Tags: "one|two"},
		nil,
		{VideoID: "b", Title: "Second", Views: "-1", Likes: "7", Dislikes: "2", CommentCount: "3", Description: "desc"},
	}

	got := NewDataCleaner(utils.NewNopLogger()).Clean(raw)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	a, b := got[0], got[1]
	if a.VideoID != "a" || a.Views != 100 || a.Likes != 10 || a.Dislikes != 0 || a.CommentCount != 0 {
		t.Errorf("first record = %+v", a)
	}
	if a.Tags != "one|two" {
		t.Errorf("tags should pass through, got %q", a.Tags)
	}
	if b.Views != 0 || b.Likes != 7 || b.Dislikes != 2 || b.CommentCount != 3 || b.Description != "desc" {
		t.Errorf("second record = %+v", b)
	}
}

func TestDataCleaner_Empty(t *testing.T) {
	got := NewDataCleaner(utils.NewNopLogger()).Clean(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty slice, got %v", got)
	}
}
