package dto

// UserRequest is the candidate owner embedded in every submitted tweet.
// Followers defaults to 0 and AdditionalInfo to null when omitted.
type UserRequest struct {
	Username       string  `json:"username" binding:"required"`
	Followers      int64   `json:"followers" binding:"gte=0"`
	AdditionalInfo *string `json:"additional_info"`
}

// TweetRequest is one element of the POST /tweets body. All counters default
// to 0 and ProfileImage to null when omitted. Text must be present but may be
// empty.
type TweetRequest struct {
	TweetID      string      `json:"tweet_id" binding:"required"`
	Text         *string     `json:"text" binding:"required"`
	Likes        int64       `json:"likes" binding:"gte=0"`
	Retweets     int64       `json:"retweets" binding:"gte=0"`
	Views        int64       `json:"views" binding:"gte=0"`
	Replies      int64       `json:"replies" binding:"gte=0"`
	Bookmarks    int64       `json:"bookmarks" binding:"gte=0"`
	Link         string      `json:"link" binding:"required"`
	ProfileImage *string     `json:"profile_image"`
	CreatedAt    *Timestamp  `json:"created_at" binding:"required"`
	SentByUser   string      `json:"sent_by_user" binding:"required"`
	User         UserRequest `json:"user"`
}
