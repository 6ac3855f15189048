package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSessionState string

const (
	ChatSessionStateNew        ChatSessionState = "new"
	ChatSessionStateInProgress ChatSessionState = "in_progress"
	ChatSessionStateCompleted  ChatSessionState = "completed"
	ChatSessionStateCancelled  ChatSessionState = "cancelled"
)

const ChatChannelTelegram = "telegram"
const ChatChannelWeb = "web"

type ChatSession struct {
	Id                uuid.UUID
	Channel           string
	ExternalUserId    string
	State             ChatSessionState
	CurrentQuestionId *uint
	AssessmentId      *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (s *ChatSession) IsInProgress() bool {
	return s.State == ChatSessionStateInProgress
}
