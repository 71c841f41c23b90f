// internal/models/company.go
package models

import "time"

// Company is an employer. Rows are created lazily the first time an employee
// references an unseen name; the tax id is overwritten on every reference.
type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	TaxID     string    `json:"tax_id"`
	CreatedAt time.Time `json:"created_at"`
}
