package model

import "time"

// One shop per owning user, enforced by the unique index on owner_id.
type Shop struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"type:varchar(255);not null" json:"name"`
	Image   string `gorm:"not null" json:"image"`
	OwnerID int64  `gorm:"not null;uniqueIndex" json:"owner"`
	City    string `gorm:"type:varchar(255);not null;index" json:"city"`
	State   string `gorm:"type:varchar(255);not null;index" json:"state"`
	Address string `gorm:"type:varchar(255);not null" json:"address"`

	Latitude  float64 `gorm:"not null;default:0" json:"latitude"`
	Longitude float64 `gorm:"not null;default:0" json:"longitude"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
