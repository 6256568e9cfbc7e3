package models

// CategoryEngagement holds floor-averaged engagement counters for one category
type CategoryEngagement struct {
	AvgLikes    int64 `json:"avg_likes"`
	AvgDislikes int64 `json:"avg_dislikes"`
	AvgComments int64 `json:"avg_comments"`
}

// TagCount pairs a tag keyword with its frequency
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// InsightReport holds the dataset overview printed by the shell
type InsightReport struct {
	TotalVideos     int
	TotalChannels   int
	UniqueVideos    int
	Categories      map[string]int
	TopTen          []*Record
	Engagement      map[string]CategoryEngagement
	LongestTrending string
	LongestDays     int
	OddRatioCount   int
	AnomalyCount    int
	TopTags         []TagCount
	MostViewed      *Record
}
