// internal/models/employee.go
package models

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Employee is keyed by the national id; all of an employee's punches hang off
// it and are deleted with it.
type Employee struct {
	NationalID     string `gorm:"primaryKey" json:"national_id"`
	Code           string `gorm:"not null" json:"code"`
	Name           string `gorm:"not null" json:"name"`
	CredentialHash string `gorm:"not null" json:"-"`
	Role           Role   `gorm:"type:varchar(20);not null" json:"role"`
	CompanyID      *uint  `gorm:"index" json:"company_id"`
	TypeCode       string `json:"type_code"`
	Type           string `json:"type"`
	Site           string `json:"site"`
}
