package model

import "time"

// ActivityEvent is an audit record of a write against a post or comment.
// Events are published to RabbitMQ at mutation time and persisted by a
// background worker, never on the request path.
type ActivityEvent struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	Action       string    `gorm:"size:32;not null;index" json:"action"`
	ResourceType string    `gorm:"size:16;not null" json:"resource_type"`
	ResourceID   uint      `gorm:"not null" json:"resource_id"`
	CreatedAt    time.Time `json:"created_at"`
}

const (
	ActionPostCreated    = "post.created"
	ActionPostUpdated    = "post.updated"
	ActionPostDeleted    = "post.deleted"
	ActionCommentCreated = "comment.created"
	ActionCommentUpdated = "comment.updated"
	ActionCommentDeleted = "comment.deleted"
)
