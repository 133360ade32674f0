package model

import (
	"time"

	"github.com/google/uuid"
)

type Interview struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	IntervieweeName string    `gorm:"type:varchar(255)" json:"interviewee_name"`
	Role            string    `gorm:"type:varchar(100)" json:"role"`
	Technologies    []string  `gorm:"serializer:json;type:jsonb" json:"technologies"`
	InterviewID     string    `gorm:"type:varchar(20);uniqueIndex" json:"interview_id"` // public code, e.g. "INT-1A2B3C4D"
	InterviewTime   time.Time `json:"interview_time"`
	Status          string    `gorm:"type:varchar(50);default:scheduled" json:"status"` // scheduled, completed, cancelled
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (i *Interview) TableName() string {
	return "interviews"
}
