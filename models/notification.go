package models

import "time"

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
)

// Notification is a durable scheduled email. Rows survive restarts, so a
// deferred message is never silently dropped the way an in-process timer
// would drop it.
type Notification struct {
	ID        uint               `gorm:"primaryKey;column:id" json:"id"`
	RequestID uint               `gorm:"index;column:request_id" json:"request_id"`
	Recipient string             `gorm:"size:50;not null;column:recipient" json:"recipient"`
	Subject   string             `gorm:"not null;column:subject" json:"subject"`
	Body      string             `gorm:"type:text;column:body" json:"body"`
	DueAt     time.Time          `gorm:"index;not null;column:due_at" json:"due_at"`
	Status    NotificationStatus `gorm:"default:'pending';type:varchar(20);index;column:status" json:"status"`
	SentAt    *time.Time         `gorm:"column:sent_at" json:"sent_at"`
	CreatedAt time.Time          `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
