package model

import "time"

type Question struct {
	Id           uint              `gorm:"primaryKey;autoIncrement"`
	Text         string            `gorm:"type:text;not null"`
	Domain       string            `gorm:"type:varchar(20);not null;index"`
	Category     string            `gorm:"type:varchar(100);not null;index"`
	IsActive     bool              `gorm:"not null;index"`
	DisplayOrder int               `gorm:"not null;default:0;index"`
	Options      []*QuestionOption `gorm:"foreignKey:QuestionId;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time         `gorm:"autoCreateTime"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime"`
}

func (Question) TableName() string {
	return "questions"
}

type QuestionOption struct {
	Id         uint   `gorm:"primaryKey;autoIncrement"`
	QuestionId uint   `gorm:"not null;uniqueIndex:uq_option_question_label"`
	Label      string `gorm:"type:varchar(10);not null;uniqueIndex:uq_option_question_label"`
	Text       string `gorm:"type:text;not null"`
	Score      int    `gorm:"not null"`
}

func (QuestionOption) TableName() string {
	return "question_options"
}
