package internal

import (
	"time"
)

// Link maps a short code to its target URL. Code and TargetURL are
// immutable after creation; only the click fields ever change.
type Link struct {
	ID            int64      `gorm:"primaryKey;autoIncrement" json:"-"`
	Code          string     `gorm:"type:varchar(8);uniqueIndex;not null" json:"code"`
	TargetURL     string     `gorm:"type:text;not null" json:"targetUrl"`
	CreatedAt     time.Time  `json:"createdAt"`
	TotalClicks   int64      `gorm:"not null;default:0" json:"totalClicks"`
	LastClickedAt *time.Time `json:"lastClickedAt"`
}

func (Link) TableName() string {
	return "links"
}
