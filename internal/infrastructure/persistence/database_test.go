package persistence

import (
	"path/filepath"
	"testing"

	"github.com/erp/ledgercore/internal/infrastructure/config"
	"github.com/erp/ledgercore/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newFileDatabase(t *testing.T) *Database {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Driver: "sqlite",
		DBName: filepath.Join(t.TempDir(), "ledger.db"),
	}
	db, err := NewDatabase(cfg, zap.NewNop(), WithLogLevel(gormlogger.Silent))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestNewDatabase_SQLite(t *testing.T) {
	db := newFileDatabase(t)

	require.NoError(t, db.Ping())

	stats, err := db.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MaxOpenConnections)
}

func TestNewDatabase_UnsupportedDriver(t *testing.T) {
	_, err := NewDatabase(&config.DatabaseConfig{Driver: "mysql"}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported database driver "mysql"`)
}

func TestNewDatabase_TranslatesDuplicateKey(t *testing.T) {
	db := newFileDatabase(t)
	require.NoError(t, db.DB.AutoMigrate(&models.LedgerSequenceModel{}))

	row := models.LedgerSequenceModel{CompanyID: uuid.New(), Name: "journal_entry", LastValue: 1}
	require.NoError(t, db.DB.Create(&row).Error)

	dup := row
	err := db.DB.Create(&dup).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestDatabase_Close(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver: "sqlite",
		DBName: filepath.Join(t.TempDir(), "ledger.db"),
	}
	db, err := NewDatabase(cfg, zap.NewNop(), WithLogLevel(gormlogger.Silent))
	require.NoError(t, err)

	require.NoError(t, db.Close())
	assert.Error(t, db.Ping())
}
