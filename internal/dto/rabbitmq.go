package dto

import "time"

type MQTweetsStoredMsg struct {
	Stored     int       `json:"stored"`
	TweetIDs   []string  `json:"tweet_ids"`
	ReceivedAt time.Time `json:"received_at"`
}
