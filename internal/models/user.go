package models

import "time"

type User struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name          string `gorm:"size:100;not null" json:"name"`
	Email         string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	EmailVerified bool   `gorm:"default:false" json:"email_verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Session struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	Token  string `gorm:"size:100;uniqueIndex;not null" json:"-"`

	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`

	IPAddress string `gorm:"size:45" json:"ip_address"`
	UserAgent string `gorm:"size:255" json:"user_agent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Account ties a user to a sign-in method: provider_id is "credential"
// for email+password (password_hash set) or an external identity
// provider id with the provider-side account id.
type Account struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UserID     string `gorm:"type:uuid;not null;index" json:"user_id"`
	ProviderID string `gorm:"size:50;not null" json:"provider_id"`
	AccountID  string `gorm:"size:100" json:"account_id"`

	PasswordHash string `gorm:"size:255" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

type Verification struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Identifier string `gorm:"size:100;not null;index" json:"identifier"`
	Value      string `gorm:"size:255;not null" json:"value"`

	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
