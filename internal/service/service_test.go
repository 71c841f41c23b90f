package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"ponto_backend/internal/config"
	"ponto_backend/internal/models"
	"ponto_backend/internal/schedule"
	"ponto_backend/internal/storage"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(db))

	cfg := &config.Config{
		Location: time.UTC,
		Schedule: []schedule.Entry{
			{Event: schedule.EventEntry, At: schedule.TimeOfDay{Hour: 8}},
			{Event: schedule.EventExit, At: schedule.TimeOfDay{Hour: 18}},
		},
		ToleranceMinutes: 10,
	}
	return New(db, cfg)
}

func pinClock(svc *Service, at time.Time) {
	svc.Now = func() time.Time { return at }
}

func seedEmployee(t *testing.T, svc *Service, nationalID, name, site string) {
	t.Helper()
	emp := models.Employee{
		NationalID:     nationalID,
		Code:           "C-" + nationalID,
		Name:           name,
		CredentialHash: "x",
		Role:           models.RoleEmployee,
		Site:           site,
	}
	require.NoError(t, svc.DB.Create(&emp).Error)
}

func punchesFor(t *testing.T, svc *Service, nationalID string) []models.Punch {
	t.Helper()
	var rows []models.Punch
	require.NoError(t, svc.DB.Where("employee_id = ?", nationalID).Order("id").Find(&rows).Error)
	return rows
}
