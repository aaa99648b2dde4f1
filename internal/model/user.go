package model

type User struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	Followers      int64   `json:"followers"`
	AdditionalInfo *string `json:"additional_info"`
}
