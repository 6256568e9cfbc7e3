package shell

import (
	"fmt"
	"sort"
	"strings"

	"youtube-trending/models"
)

func (s *Session) say(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Session) sayf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

// ask prints prompt and returns the next trimmed input line. Once input is
// exhausted it returns "" and marks the session finished.
func (s *Session) ask(prompt string) string {
	fmt.Fprint(s.out, prompt)
	if s.eof || !s.in.Scan() {
		s.eof = true
		fmt.Fprintln(s.out)
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

// printCounts lists a count map with keys in ascending order
func (s *Session) printCounts(counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		s.sayf("  %s: %d", k, counts[k])
	}
}

func (s *Session) printEngagement(summary map[string]models.CategoryEngagement) {
	keys := make([]string, 0, len(summary))
	for k := range summary {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		e := summary[k]
		s.sayf("  %s: avg_likes=%d avg_dislikes=%d avg_comments=%d", k, e.AvgLikes, e.AvgDislikes, e.AvgComments)
	}
}

func (s *Session) printVideo(r *models.Record, ok bool) {
	if !ok {
		s.say("Video not found.")
		return
	}
	s.sayf("  video_id               : %s", r.VideoID)
	s.sayf("  title                  : %s", r.Title)
	s.sayf("  channel_title          : %s", r.ChannelTitle)
	s.sayf("  category_id            : %s", r.CategoryID)
	s.sayf("  publish_time           : %s", r.PublishTime)
	s.sayf("  trending_date          : %s", r.TrendingDate)
	s.sayf("  tags                   : %s", r.Tags)
	s.sayf("  views                  : %d", r.Views)
	s.sayf("  likes                  : %d", r.Likes)
	s.sayf("  dislikes               : %d", r.Dislikes)
	s.sayf("  comment_count          : %d", r.CommentCount)
	s.sayf("  thumbnail_link         : %s", r.ThumbnailLink)
	s.sayf("  comments_disabled      : %s", r.CommentsDisabled)
	s.sayf("  ratings_disabled       : %s", r.RatingsDisabled)
	s.sayf("  video_error_or_removed : %s", r.VideoErrorOrRemoved)
	s.sayf("  description            : %s", r.Description)
}
