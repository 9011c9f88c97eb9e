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
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func setupEventApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockGorm(t)
	ctrl := NewEventController(db)

	app := fiber.New()
	app.Get("/api/events", ctrl.GetEventsByTemple)
	app.Get("/api/events/:id", ctrl.GetEventByID)
	return app, mock
}

func getJSON(t *testing.T, app *fiber.App, target string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil), 5000)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func eventRows(templeID uuid.UUID, titles ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"event_id", "event_title", "event_slug", "event_description",
		"event_location", "event_temple_id", "event_starts_at",
		"event_created_at", "event_updated_at", "event_deleted_at",
	})
	for _, title := range titles {
		rows.AddRow(uuid.NewString(), title, title, "", "", templeID.String(),
			nil, time.Now(), time.Now(), nil)
	}
	return rows
}

func TestGetEventsByTemple_TempleIDWajib(t *testing.T) {
	app, _ := setupEventApp(t)

	status, body := getJSON(t, app, "/api/events")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])

	status, _ = getJSON(t, app, "/api/events?temple_id=bukan-uuid")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestGetEventsByTemple_TerfilterPerPura(t *testing.T) {
	app, mock := setupEventApp(t)
	templeID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT \* FROM "events" WHERE event_temple_id`).
		WillReturnRows(eventRows(templeID, "Odalan", "Melasti"))

	status, body := getJSON(t, app, "/api/events?temple_id="+templeID.String())
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	events := data["events"].([]interface{})
	require.Len(t, events, 2)
	for _, ev := range events {
		m := ev.(map[string]interface{})
		assert.Equal(t, templeID.String(), m["event_temple_id"])
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEventsByTemple_KosongTetap200(t *testing.T) {
	app, mock := setupEventApp(t)
	templeID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "events" WHERE event_temple_id`).
		WillReturnRows(eventRows(templeID))

	status, body := getJSON(t, app, "/api/events?temple_id="+templeID.String())
	assert.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Len(t, data["events"], 0)
}

func TestGetEventByID_PuraBedaJadiNotFound(t *testing.T) {
	app, mock := setupEventApp(t)
	eventID := uuid.New()
	owner := uuid.New()
	other := uuid.New()

	// event milik pura "owner", diminta atas nama pura "other" → 404
	mock.ExpectQuery(`SELECT \* FROM "events"`).
		WillReturnRows(eventRows(owner, "Odalan"))

	status, body := getJSON(t, app,
		"/api/events/"+eventID.String()+"?temple_id="+other.String())
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
}

func TestGetEventByID_Sukses(t *testing.T) {
	app, mock := setupEventApp(t)
	eventID := uuid.New()
	templeID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "events"`).
		WillReturnRows(eventRows(templeID, "Odalan"))

	status, body := getJSON(t, app,
		"/api/events/"+eventID.String()+"?temple_id="+templeID.String())
	assert.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Odalan", data["event_title"])
}
