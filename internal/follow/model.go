package follow

import (
	"time"
)

// Follow : arête orientée follower -> followed.
// L'index composite unique interdit les doublons d'arête.
type Follow struct {
	ID         string `gorm:"primaryKey"`
	CreatedAt  time.Time
	FollowerID string `gorm:"type:uuid;index;uniqueIndex:idx_follow_pair"`
	FollowedID string `gorm:"type:uuid;index;uniqueIndex:idx_follow_pair"`
}

func (Follow) TableName() string {
	return "follows"
}
