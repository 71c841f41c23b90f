// internal/models/punch.go
package models

// Punch is one clock event. The deviation is always recomputed from
// (recorded time, expected time, tolerance) and never set independently,
// correction included.
type Punch struct {
	ID           string  `gorm:"primaryKey" json:"id"` // national id + "-" + RFC3339 timestamp
	EmployeeID   string  `gorm:"index;not null" json:"employee_id"`
	EmployeeName string  `gorm:"not null" json:"employee_name"`
	Date         string  `gorm:"not null" json:"date"` // 2006-01-02
	Time         string  `gorm:"not null" json:"time"` // 15:04:05
	Event        string  `gorm:"not null" json:"event"`
	DeviationMin int     `gorm:"not null" json:"deviation_min"`
	Annotation   *string `json:"annotation,omitempty"`
}
