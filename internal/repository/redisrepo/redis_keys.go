package redisrepo

import "fmt"

const (
	USER_KEY = "user:%s" // <username>
)

func UserKey(username string) string {
	return fmt.Sprintf(USER_KEY, username)
}
