package models

import "time"

// Message is a single chat line inside an interview. Rows are append-only:
// nothing in the API updates or deletes them.
type Message struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	InterviewID string    `gorm:"column:interview_id;type:varchar(36);index;not null" json:"interview_id"`
	Sender      string    `gorm:"column:sender;type:varchar(64)" json:"sender"`
	Text        string    `gorm:"column:text;type:text" json:"text"`
	CreatedAt   time.Time `gorm:"column:created_at;index" json:"created_at"`
}

func (Message) TableName() string { return "messages" }
