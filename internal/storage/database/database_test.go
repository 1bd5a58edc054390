package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/VitaminP8/postql/models"
)

func TestOpenAndMigrate(t *testing.T) {
	t.Run("In-memory sqlite", func(t *testing.T) {
		db, err := Open(DialectSQLite, ":memory:", zap.NewNop())
		require.NoError(t, err)
		defer Close(db)

		require.NoError(t, Migrate(db))
		assert.True(t, db.HasTable(&models.Post{}))
		assert.True(t, db.HasTable("Posts"))
	})

	t.Run("File backed sqlite keeps data", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "database.db")

		db, err := Open(DialectSQLite, path, nil)
		require.NoError(t, err)
		require.NoError(t, Migrate(db))
		require.NoError(t, db.Create(&models.Post{Post: "p", Content: "c"}).Error)
		require.NoError(t, Close(db))

		db, err = Open(DialectSQLite, path, nil)
		require.NoError(t, err)
		defer Close(db)
		// повторная миграция ничего не ломает
		require.NoError(t, Migrate(db))

		var count int
		require.NoError(t, db.Model(&models.Post{}).Count(&count).Error)
		assert.Equal(t, 1, count)
	})

	t.Run("Unknown dialect", func(t *testing.T) {
		_, err := Open("nosuchdb", "whatever", nil)
		assert.Error(t, err)
	})
}

func TestCloseWithNilDB(t *testing.T) {
	assert.NoError(t, Close(nil))
}
