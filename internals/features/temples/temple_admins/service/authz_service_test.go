package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"templeku_backend/internals/features/temples/temple_admins/model"
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

func grantRows(userID uuid.UUID, isAdmin, isSuper bool, templeID *uuid.UUID) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"grant_user_id", "grant_is_admin", "grant_is_super_admin",
		"grant_temple_id", "grant_created_at", "grant_updated_at",
	})
	var tid interface{}
	if templeID != nil {
		tid = templeID.String()
	}
	return rows.AddRow(userID.String(), isAdmin, isSuper, tid, time.Now(), time.Now())
}

func TestGrantAllowsTemple(t *testing.T) {
	templeA := uuid.New()
	templeB := uuid.New()

	t.Run("nil grant ditolak", func(t *testing.T) {
		assert.False(t, GrantAllowsTemple(nil, templeA))
	})

	t.Run("super admin lolos ke semua pura", func(t *testing.T) {
		g := &model.AdminGrantModel{GrantIsSuperAdmin: true}
		assert.True(t, GrantAllowsTemple(g, templeA))
		assert.True(t, GrantAllowsTemple(g, templeB))
	})

	t.Run("admin ter-scope hanya lolos di puranya", func(t *testing.T) {
		g := &model.AdminGrantModel{GrantIsAdmin: true, GrantTempleID: &templeA}
		assert.True(t, GrantAllowsTemple(g, templeA))
		assert.False(t, GrantAllowsTemple(g, templeB))
	})

	t.Run("admin tanpa scope pura ditolak", func(t *testing.T) {
		g := &model.AdminGrantModel{GrantIsAdmin: true}
		assert.False(t, GrantAllowsTemple(g, templeA))
	})

	t.Run("flag admin false ditolak walau scope cocok", func(t *testing.T) {
		g := &model.AdminGrantModel{GrantTempleID: &templeA}
		assert.False(t, GrantAllowsTemple(g, templeA))
	})
}

func TestIsSuperAdmin_RecordAbsen(t *testing.T) {
	db, mock := newMockGorm(t)
	userID := uuid.New()

	// record tidak ada == bukan super admin, bukan error
	mock.ExpectQuery(`SELECT \* FROM "temple_admin_grants"`).
		WillReturnRows(sqlmock.NewRows([]string{"grant_user_id"}))

	ok, err := IsSuperAdmin(db, userID)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsSuperAdmin_GrantSuper(t *testing.T) {
	db, mock := newMockGorm(t)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "temple_admin_grants"`).
		WillReturnRows(grantRows(userID, true, true, nil))

	ok, err := IsSuperAdmin(db, userID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCanManageTemple_ScopedAdmin(t *testing.T) {
	db, mock := newMockGorm(t)
	userID := uuid.New()
	templeID := uuid.New()
	otherID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "temple_admin_grants"`).
		WillReturnRows(grantRows(userID, true, false, &templeID))

	ok, err := CanManageTemple(db, userID, templeID)
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectQuery(`SELECT \* FROM "temple_admin_grants"`).
		WillReturnRows(grantRows(userID, true, false, &templeID))

	ok, err = CanManageTemple(db, userID, otherID)
	require.NoError(t, err)
	assert.False(t, ok)
}
