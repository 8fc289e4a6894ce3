// Package testutil builds throwaway stores for package tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"mis/internal/database"
	"mis/internal/model"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB returns a migrated in-memory SQLite store private to the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// SeedUser inserts a principal with password "secret".
func SeedUser(t *testing.T, db *gorm.DB, u model.User) model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	u.Password = string(hash)
	if u.Email == "" {
		u.Email = u.Username + "@mis.local"
	}
	if u.Level == "" {
		u.Level = model.LevelUser
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

// Count returns the number of rows in a table.
func Count(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}
