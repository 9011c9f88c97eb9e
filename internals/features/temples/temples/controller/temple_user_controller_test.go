package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPublicApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockGorm(t)
	ctrl := NewTempleController(db)

	app := fiber.New()
	app.Get("/api/public/temples", ctrl.GetAllTemples)
	app.Get("/api/public/temples/:slug", ctrl.GetTempleBySlug)
	app.Get("/api/public/temples/:id/overview", ctrl.GetTempleOverview)
	return app, mock
}

func getPublic(t *testing.T, app *fiber.App, target string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil), 5000)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func templeRows(templeID uuid.UUID, name string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"temple_id", "temple_name", "temple_slug", "temple_location",
		"temple_description", "temple_created_at", "temple_updated_at", "temple_deleted_at",
	}).AddRow(templeID.String(), name, "pura", "Bali", nil, time.Now(), time.Now(), nil)
}

func TestGetTempleBySlug_NotFound(t *testing.T) {
	app, mock := setupPublicApp(t)

	mock.ExpectQuery(`SELECT \* FROM "temples"`).
		WillReturnRows(sqlmock.NewRows([]string{"temple_id"}))

	status, body := getPublic(t, app, "/api/public/temples/tidak-ada")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
}

func TestGetTempleOverview_DuaReadParalel(t *testing.T) {
	app, mock := setupPublicApp(t)
	templeID := uuid.New()

	// dua query jalan di goroutine terpisah, urutannya bebas
	mock.MatchExpectationsInOrder(false)
	mock.ExpectQuery(`SELECT \* FROM "temples"`).
		WillReturnRows(templeRows(templeID, "Pura Besakih"))
	mock.ExpectQuery(`SELECT \* FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"event_id", "event_title", "event_slug", "event_description",
			"event_location", "event_temple_id", "event_starts_at",
			"event_created_at", "event_updated_at", "event_deleted_at",
		}).AddRow(uuid.NewString(), "Odalan", "odalan", "", "", templeID.String(),
			time.Now().Add(48*time.Hour), time.Now(), time.Now(), nil))

	status, body := getPublic(t, app, "/api/public/temples/"+templeID.String()+"/overview")
	require.Equal(t, fiber.StatusOK, status)

	data := body["data"].(map[string]interface{})
	temple := data["temple"].(map[string]interface{})
	events := data["events"].([]interface{})
	assert.Equal(t, "Pura Besakih", temple["temple_name"])
	require.Len(t, events, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTempleOverview_PuraTidakAda(t *testing.T) {
	app, mock := setupPublicApp(t)
	templeID := uuid.New()

	mock.MatchExpectationsInOrder(false)
	mock.ExpectQuery(`SELECT \* FROM "temples"`).
		WillReturnRows(sqlmock.NewRows([]string{"temple_id"}))
	mock.ExpectQuery(`SELECT \* FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"event_id"}))

	status, body := getPublic(t, app, "/api/public/temples/"+templeID.String()+"/overview")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
}
