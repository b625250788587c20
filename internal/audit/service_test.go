package audit_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"banka-backend/internal/audit"
	"banka-backend/internal/database"
	"banka-backend/internal/models"
	"banka-backend/internal/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	return server.New("http://localhost:8080")
}

func TestWriteLog(t *testing.T) {
	setupApp(t)

	err := audit.WriteLog(audit.LogOptions{
		EntityType:  "musteri",
		EntityID:    7,
		Action:      models.AuditActionUpdate,
		Description: "Müşteri güncellendi: Ali Veli",
		Before:      map[string]any{"krediNotu": 650},
		After:       map[string]any{"krediNotu": 700},
	})
	require.NoError(t, err)

	var entry models.AuditLog
	require.NoError(t, database.DB.First(&entry).Error)
	assert.Equal(t, "musteri", entry.EntityType)
	assert.Equal(t, uint(7), entry.EntityID)
	assert.Equal(t, models.AuditActionUpdate, entry.Action)
	assert.JSONEq(t, `{"krediNotu":650}`, entry.BeforeData)
	assert.JSONEq(t, `{"krediNotu":700}`, entry.AfterData)
}

func TestWriteLogNilStates(t *testing.T) {
	setupApp(t)

	err := audit.WriteLog(audit.LogOptions{
		EntityType: "odeme",
		EntityID:   3,
		Action:     models.AuditActionCreate,
	})
	require.NoError(t, err)

	var entry models.AuditLog
	require.NoError(t, database.DB.First(&entry).Error)
	assert.Equal(t, "null", entry.BeforeData)
	assert.Equal(t, "null", entry.AfterData)
}

func TestListLogsHandler(t *testing.T) {
	app := setupApp(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, audit.WriteLog(audit.LogOptions{
			EntityType: "odeme",
			EntityID:   uint(i + 1),
			Action:     models.AuditActionDelete,
		}))
	}

	req := httptest.NewRequest(http.MethodGet, "/api/audit-logs?limit=2", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var logs []audit.LogResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&logs))
	require.Len(t, logs, 2)
	// en yeni kayıt önce gelir
	assert.Equal(t, uint(3), logs[0].EntityID)
	assert.Equal(t, uint(2), logs[1].EntityID)
}

func TestListLogsHandlerBadLimit(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/audit-logs?limit=0", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
