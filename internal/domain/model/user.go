package model

import "time"

type Role string

const (
	RoleUser        Role = "user"
	RoleOwner       Role = "owner"
	RoleDeliveryBoy Role = "deliveryBoy"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleUser, RoleOwner, RoleDeliveryBoy:
		return true
	}
	return false
}

type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName     string `gorm:"type:varchar(255);not null" json:"fullName"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Mobile       string `gorm:"type:varchar(30)" json:"mobile"`
	Role         Role   `gorm:"type:varchar(20);not null;default:user" json:"role"`

	// password-reset state, only touched by the OTP flow
	ResetOTP     string     `gorm:"type:varchar(10)" json:"-"`
	OTPExpiresAt *time.Time `json:"-"`
	OTPVerified  bool       `gorm:"not null;default:false" json:"-"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
