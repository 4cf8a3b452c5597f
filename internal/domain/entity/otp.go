package entity

import "time"

// OtpChannel is the delivery channel for a verification code
type OtpChannel string

const (
	OtpChannelSMS   OtpChannel = "sms"
	OtpChannelEmail OtpChannel = "email"
)

// Otp holds the single current verification code for a phone or email.
// Issuing overwrites any prior code for the same identifier; successful
// verification deletes the row (single-use).
type Otp struct {
	ID         int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Identifier string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"identifier"`
	Channel    OtpChannel `gorm:"type:otp_channel;not null" json:"channel"`
	Code       string     `gorm:"type:varchar(10);not null" json:"-"`
	ExpiresAt  time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Otp) TableName() string {
	return "otps"
}

// IsExpired reports whether the code has passed its expiry at the given time
func (o *Otp) IsExpired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}
