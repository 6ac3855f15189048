package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OutboxEvent struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	EventType   string         `gorm:"type:varchar(100);not null"`
	Payload     datatypes.JSON `gorm:"not null"`
	Processed   bool           `gorm:"not null;default:false;index:idx_outbox_pending,priority:1"`
	ProcessedAt *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_outbox_pending,priority:2"`
}

func (OutboxEvent) TableName() string {
	return "outbox_events"
}

func (e *OutboxEvent) BeforeCreate(tx *gorm.DB) error {
	if e.Id == uuid.Nil {
		e.Id = uuid.New()
	}
	return nil
}
