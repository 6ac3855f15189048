package specification

import "gorm.io/gorm"

type ByChannelUser struct {
	Channel        string
	ExternalUserID string
}

func (s ByChannelUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("channel = ? AND external_user_id = ?", s.Channel, s.ExternalUserID)
}
