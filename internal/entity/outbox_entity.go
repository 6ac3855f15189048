package entity

import (
	"time"

	"github.com/google/uuid"
)

const EventTypeAssessmentSubmitted = "assessment_submitted"

type OutboxEvent struct {
	Id          uuid.UUID
	EventType   string
	Payload     map[string]interface{}
	Processed   bool
	ProcessedAt *time.Time
	CreatedAt   time.Time
}
