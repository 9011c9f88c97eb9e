package controller

import (
	"bytes"
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

// setupTempleApp meniru AuthMiddleware dengan mengisi Locals("user_id")
// kalau loggedIn, lalu mount rute create/update apa adanya.
func setupTempleApp(t *testing.T, loggedIn bool, userID uuid.UUID) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockGorm(t)
	ctrl := NewTempleController(db)

	app := fiber.New()
	inject := func(c *fiber.Ctx) error {
		if loggedIn {
			c.Locals("user_id", userID.String())
		}
		return c.Next()
	}
	app.Post("/api/temples/create", inject, ctrl.CreateTemple)
	app.Post("/api/temples/update", inject, ctrl.UpdateTemple)
	return app, mock
}

func postJSON(t *testing.T, app *fiber.App, target string, body any) (int, map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(respBody, &parsed))
	return resp.StatusCode, parsed
}

func superAdminRows(userID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"grant_user_id", "grant_is_admin", "grant_is_super_admin",
		"grant_temple_id", "grant_created_at", "grant_updated_at",
	}).AddRow(userID.String(), true, true, nil, time.Now(), time.Now())
}

func TestCreateTemple_TanpaLogin(t *testing.T) {
	app, _ := setupTempleApp(t, false, uuid.Nil)

	status, body := postJSON(t, app, "/api/temples/create", fiber.Map{
		"temple_name":     "Pura Besakih",
		"temple_location": "Karangasem",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}

func TestCreateTemple_BukanSuperAdmin(t *testing.T) {
	userID := uuid.New()
	app, mock := setupTempleApp(t, true, userID)

	// grant ada tapi bukan super admin → 403
	mock.ExpectQuery(`SELECT \* FROM "temple_admin_grants"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"grant_user_id", "grant_is_admin", "grant_is_super_admin",
			"grant_temple_id", "grant_created_at", "grant_updated_at",
		}).AddRow(userID.String(), true, false, nil, time.Now(), time.Now()))

	status, body := postJSON(t, app, "/api/temples/create", fiber.Map{
		"temple_name":     "Pura Besakih",
		"temple_location": "Karangasem",
	})
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, false, body["success"])
}

func TestCreateTemple_ValidasiSetelahOtorisasi(t *testing.T) {
	userID := uuid.New()
	app, mock := setupTempleApp(t, true, userID)

	mock.ExpectQuery(`SELECT \* FROM "temple_admin_grants"`).
		WillReturnRows(superAdminRows(userID))

	// body kosong: otorisasi lolos dulu, baru validasi → 400
	status, body := postJSON(t, app, "/api/temples/create", fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])

	fieldErrors, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fieldErrors, "temple_name")
	assert.Contains(t, fieldErrors, "temple_location")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTemple_Sukses(t *testing.T) {
	userID := uuid.New()
	templeID := uuid.New()
	app, mock := setupTempleApp(t, true, userID)

	mock.ExpectQuery(`SELECT \* FROM "temple_admin_grants"`).
		WillReturnRows(superAdminRows(userID))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "temples"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "temples"`).
		WillReturnRows(sqlmock.NewRows([]string{"temple_id"}).AddRow(templeID.String()))
	mock.ExpectCommit()

	status, body := postJSON(t, app, "/api/temples/create", fiber.Map{
		"temple_name":     "Pura Besakih",
		"temple_location": "Karangasem",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, templeID.String(), data["temple_id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTemple_MergeSebagian(t *testing.T) {
	userID := uuid.New()
	templeID := uuid.New()
	app, mock := setupTempleApp(t, true, userID)

	mock.ExpectQuery(`SELECT \* FROM "temple_admin_grants"`).
		WillReturnRows(superAdminRows(userID))
	mock.ExpectBegin()
	// hanya temple_name + temple_updated_at yang di-SET
	mock.ExpectExec(`UPDATE "temples" SET`).
		WithArgs("Pura Besakih Agung", sqlmock.AnyArg(), templeID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	status, body := postJSON(t, app, "/api/temples/update", fiber.Map{
		"temple_id":   templeID.String(),
		"temple_name": "Pura Besakih Agung",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTemple_DeskripsiNullEksplisit(t *testing.T) {
	userID := uuid.New()
	templeID := uuid.New()
	app, mock := setupTempleApp(t, true, userID)

	mock.ExpectQuery(`SELECT \* FROM "temple_admin_grants"`).
		WillReturnRows(superAdminRows(userID))
	mock.ExpectBegin()
	// "temple_description": null harus sampai ke DB sebagai NULL, bukan di-skip
	mock.ExpectExec(`UPDATE "temples" SET`).
		WithArgs(nil, sqlmock.AnyArg(), templeID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	status, body := postJSON(t, app, "/api/temples/update", fiber.Map{
		"temple_id":          templeID.String(),
		"temple_description": nil,
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTemple_UpsertIDBaru(t *testing.T) {
	userID := uuid.New()
	templeID := uuid.New()
	app, mock := setupTempleApp(t, true, userID)

	mock.ExpectQuery(`SELECT \* FROM "temple_admin_grants"`).
		WillReturnRows(superAdminRows(userID))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "temples" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0)) // id belum ada
	mock.ExpectCommit()

	// fallback: insert baris baru (tanpa temple_created_at) dengan slug dari nama
	mock.ExpectQuery(`SELECT count\(\*\) FROM "temples"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "temples"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	status, body := postJSON(t, app, "/api/temples/update", fiber.Map{
		"temple_id":   templeID.String(),
		"temple_name": "Pura Baru",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTemple_TempleIDWajib(t *testing.T) {
	userID := uuid.New()
	app, mock := setupTempleApp(t, true, userID)

	mock.ExpectQuery(`SELECT \* FROM "temple_admin_grants"`).
		WillReturnRows(superAdminRows(userID))

	status, body := postJSON(t, app, "/api/temples/update", fiber.Map{
		"temple_name": "Tanpa ID",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
}
