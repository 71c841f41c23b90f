// internal/service/service.go
package service

import (
	"time"

	"ponto_backend/internal/config"
	"ponto_backend/internal/schedule"

	"gorm.io/gorm"
)

// Severity classifies an operation outcome for the caller. Expected business
// conditions (duplicates, exhausted days, nothing-to-update) come back as
// warnings; only validation failures, missing rows and store failures are
// errors.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Service holds the core time-clock operations. Each operation runs against
// one connection/transaction and never spans two for a single logical action.
type Service struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Resolver schedule.Resolver

	// Now is the clock used to stamp punches. Tests pin it.
	Now func() time.Time
}

func New(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		DB:       db,
		Cfg:      cfg,
		Resolver: schedule.Resolver{Default: cfg.Schedule},
		Now:      time.Now,
	}
}

func (s *Service) now() time.Time {
	return s.Now().In(s.Cfg.Location)
}
