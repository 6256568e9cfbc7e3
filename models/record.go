package models

// RawRecord is one CSV row exactly as read from the trending dataset
type RawRecord struct {
	VideoID             string
	TrendingDate        string
	Title               string
	ChannelTitle        string
	CategoryID          string
	PublishTime         string
	Tags                string
	Views               string
	Likes               string
	Dislikes            string
	CommentCount        string
	ThumbnailLink       string
	CommentsDisabled    string
	RatingsDisabled     string
	VideoErrorOrRemoved string
	Description         string
}

// Record is one video-per-trending-day observation with numeric counters
// normalized. Records are shared read-only once built.
type Record struct {
	VideoID             string `json:"video_id" db:"video_id"`
	TrendingDate        string `json:"trending_date" db:"trending_date"`
	Title               string `json:"title" db:"title"`
	ChannelTitle        string `json:"channel_title" db:"channel_title"`
	CategoryID          string `json:"category_id" db:"category_id"`
	PublishTime         string `json:"publish_time" db:"publish_time"`
	Tags                string `json:"tags" db:"tags"`
	Views               int64  `json:"views" db:"views"`
	Likes               int64  `json:"likes" db:"likes"`
	Dislikes            int64  `json:"dislikes" db:"dislikes"`
	CommentCount        int64  `json:"comment_count" db:"comment_count"`
	ThumbnailLink       string `json:"thumbnail_link" db:"thumbnail_link"`
	CommentsDisabled    string `json:"comments_disabled" db:"comments_disabled"`
	RatingsDisabled     string `json:"ratings_disabled" db:"ratings_disabled"`
	VideoErrorOrRemoved string `json:"video_error_or_removed" db:"video_error_or_removed"`
	Description         string `json:"description" db:"description"`
}

// CSVHeader is the fixed export column order
var CSVHeader = []string{
	"video_id", "title", "channel_title", "category_id",
	"publish_time", "trending_date", "tags",
	"views", "likes", "dislikes", "comment_count",
	"thumbnail_link", "comments_disabled",
	"ratings_disabled", "video_error_or_removed",
	"description",
}
