package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/taskhub/backend/internal/infrastructure/persistence/models"
)

// setupTestDB creates an in-memory SQLite database with all tables
// migrated. SQLite is close enough to Postgres for the repository
// tests here; array-typed columns round-trip through their
// driver.Valuer implementations.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.UserModel{},
		&models.ProjectModel{},
		&models.MemberModel{},
		&models.TaskModel{},
		&models.CommentModel{},
		&models.ActivityModel{},
	)
	require.NoError(t, err)

	return db
}
