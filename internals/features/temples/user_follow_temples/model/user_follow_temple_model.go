package model

import (
	"time"

	"github.com/google/uuid"
)

type UserFollowTempleModel struct {
	FollowUserID    uuid.UUID `gorm:"type:uuid;not null;primaryKey" json:"follow_user_id"`
	FollowTempleID  uuid.UUID `gorm:"type:uuid;not null;primaryKey" json:"follow_temple_id"`
	FollowCreatedAt time.Time `gorm:"autoCreateTime" json:"follow_created_at"`
}

func (UserFollowTempleModel) TableName() string {
	return "user_follow_temple"
}
