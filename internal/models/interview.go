package models

import "time"

type Interview struct {
	ID            string     `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	CandidateName string     `gorm:"column:candidate_name;type:text;not null" json:"candidate_name"`
	Role          string     `gorm:"column:role;type:text;not null" json:"role"`
	Level         *string    `gorm:"column:level;type:text" json:"level"`
	Format        *string    `gorm:"column:format;type:text" json:"format"`
	Language      *string    `gorm:"column:language;type:text" json:"language"`
	Notes         *string    `gorm:"column:notes;type:text" json:"notes"`
	Status        *string    `gorm:"column:status;type:text" json:"status"`
	CandidateCode string     `gorm:"column:candidate_code;type:varchar(6);uniqueIndex" json:"candidate_code"`
	CreatedAt     time.Time  `gorm:"column:created_at;index" json:"created_at"`
	FinishedAt    *time.Time `gorm:"column:finished_at" json:"finished_at"`
}

func (Interview) TableName() string { return "interviews" }
