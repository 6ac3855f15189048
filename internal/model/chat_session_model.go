package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatSession struct {
	Id                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Channel           string     `gorm:"type:varchar(20);not null;uniqueIndex:uq_chat_session_channel_user"`
	ExternalUserId    string     `gorm:"type:varchar(128);not null;uniqueIndex:uq_chat_session_channel_user"`
	State             string     `gorm:"type:varchar(20);not null;default:'new'"`
	CurrentQuestionId *uint
	AssessmentId      *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time  `gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

func (s *ChatSession) BeforeCreate(tx *gorm.DB) error {
	if s.Id == uuid.Nil {
		s.Id = uuid.New()
	}
	return nil
}
