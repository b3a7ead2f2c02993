package models

import "time"

const (
	NotificationTopicComment = "posts.comment"
	NotificationTopicFollow  = "accounts.follow"
	NotificationTopicNewPost = "posts.new"
)

type Notification struct {
	BaseModel

	Topic string `json:"topic"`
	Title string `json:"title"`
	Body  string `json:"body"`

	ReadAt *time.Time `json:"read_at"`

	AccountID uint    `json:"account_id"`
	Account   Account `json:"account"`
}
