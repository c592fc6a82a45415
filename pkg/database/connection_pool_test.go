package database

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestConnect_SQLiteUsesSingleConnection(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, DSN: ":memory:", MaxOpenConns: 25}, nil)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

	// The same in-memory database is visible across statements.
	require.NoError(t, db.Exec("CREATE TABLE t (id INTEGER)").Error)
	require.NoError(t, db.Exec("INSERT INTO t (id) VALUES (1)").Error)

	var count int64
	require.NoError(t, db.Table("t").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestConnect_DefaultDriverIsSQLite(t *testing.T) {
	db, err := Connect(Config{DSN: ":memory:"}, hclog.NewNullLogger())
	require.NoError(t, err)
	assert.Equal(t, "sqlite", db.Dialector.Name())
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := Connect(Config{Driver: "oracle", DSN: "x"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestGormLogger(t *testing.T) {
	var buf bytes.Buffer
	log := hclog.New(&hclog.LoggerOptions{Output: &buf, Level: hclog.Trace})

	l := NewGormLogger(log)
	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)
	assert.Empty(t, buf.String(), "queries are not logged at the default level")

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 2", 0 }, errors.New("boom"))
	assert.Contains(t, buf.String(), "database query failed")

	buf.Reset()
	l.LogMode(logger.Info).Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 3", 1 }, nil)
	assert.Contains(t, buf.String(), "SELECT 3")

	buf.Reset()
	l.LogMode(logger.Silent).Error(context.Background(), "hidden %s", "x")
	assert.Empty(t, buf.String())
}
