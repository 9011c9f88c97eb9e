package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

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

func setupMembersApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockGorm(t)
	ctrl := NewFollowTempleController(db)

	app := fiber.New()
	app.Get("/api/temples/members", ctrl.GetMembersByTemple)
	return app, mock
}

func getMembers(t *testing.T, app *fiber.App, target string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil), 5000)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestGetMembersByTemple_TempleIDWajib(t *testing.T) {
	app, _ := setupMembersApp(t)

	status, body := getMembers(t, app, "/api/temples/members")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])

	status, _ = getMembers(t, app, "/api/temples/members?temple_id=abc")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestGetMembersByTemple_Sukses(t *testing.T) {
	app, mock := setupMembersApp(t)
	templeID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "user_follow_temple" JOIN users`).
		WillReturnRows(sqlmock.NewRows([]string{"follow_user_id", "user_name", "member_since"}).
			AddRow(uuid.NewString(), "made", "2026-01-05").
			AddRow(uuid.NewString(), "ketut", "2026-02-11"))

	status, body := getMembers(t, app, "/api/temples/members?temple_id="+templeID.String())
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	members := data["members"].([]interface{})
	require.Len(t, members, 2)
	first := members[0].(map[string]interface{})
	assert.Equal(t, "made", first["user_name"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMembersByTemple_KosongTetap200(t *testing.T) {
	app, mock := setupMembersApp(t)
	templeID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "user_follow_temple" JOIN users`).
		WillReturnRows(sqlmock.NewRows([]string{"follow_user_id", "user_name", "member_since"}))

	status, body := getMembers(t, app, "/api/temples/members?temple_id="+templeID.String())
	assert.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Len(t, data["members"], 0)
}
