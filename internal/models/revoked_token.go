// internal/models/revoked_token.go
package models

import "time"

// RevokedToken records a logged-out session's jti. Rows are only needed
// until the token's own expiry passes.
type RevokedToken struct {
	JTI       string    `gorm:"primaryKey" json:"jti"`
	ExpiresAt time.Time `gorm:"index;not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
