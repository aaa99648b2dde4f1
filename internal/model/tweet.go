package model

import "time"

type Tweet struct {
	ID           int64     `json:"id"`
	TweetID      string    `json:"tweet_id"`
	UserID       int64     `json:"user_id"`
	Text         string    `json:"text"`
	Likes        int64     `json:"likes"`
	Retweets     int64     `json:"retweets"`
	Views        int64     `json:"views"`
	Replies      int64     `json:"replies"`
	Bookmarks    int64     `json:"bookmarks"`
	Link         string    `json:"link"`
	ProfileImage *string   `json:"profile_image"`
	CreatedAt    time.Time `json:"created_at"`
	ReceivedAt   time.Time `json:"received_at"`
	SentByUser   string    `json:"sent_by_user"`
}
