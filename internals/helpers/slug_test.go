package helper

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Pura Besakih", "pura-besakih"},
		{"  Pura   Ulun Danu  ", "pura-ulun-danu"},
		{"Odalan & Piodalan!", "odalan-piodalan"},
		{"UPPER case MIX", "upper-case-mix"},
		{"---", ""},
		{"", ""},
		{"angka 123", "angka-123"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateSlug(tc.in), "input %q", tc.in)
	}
}

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

func TestEnsureUniqueSlug_NoCollision(t *testing.T) {
	db, mock := newMockGorm(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "temples"`).
		WithArgs("pura-besakih").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	got, err := EnsureUniqueSlug(db, "pura-besakih", "temples", "temple_slug")
	require.NoError(t, err)
	assert.Equal(t, "pura-besakih", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureUniqueSlug_AppendsCounter(t *testing.T) {
	db, mock := newMockGorm(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "temples"`).
		WithArgs("pura-besakih").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "temples"`).
		WithArgs("pura-besakih-2").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	got, err := EnsureUniqueSlug(db, "pura-besakih", "temples", "temple_slug")
	require.NoError(t, err)
	assert.Equal(t, "pura-besakih-2", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
