package telemetry_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/erp/ledgercore/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type probeRow struct {
	ID   uint
	Name string
}

func TestInstrumentDB_RecordsQueries(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&probeRow{}))

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	inst, err := telemetry.InstrumentDB(db, telemetry.DBConfig{MetricsEnabled: true},
		provider.Meter("db"), zap.NewNop())
	require.NoError(t, err)
	defer inst.Stop()

	require.NoError(t, db.Create(&probeRow{Name: "a"}).Error)
	var rows []probeRow
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)

	sums := collectSums(t, reader)
	assert.GreaterOrEqual(t, sums["db_query_total"], int64(2))
}

func TestInstrumentDB_Disabled(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	inst, err := telemetry.InstrumentDB(db, telemetry.DBConfig{}, nil, nil)
	require.NoError(t, err)
	inst.Stop()
	inst.Stop()
}

func TestDetectOperation(t *testing.T) {
	tests := map[string]string{
		"SELECT * FROM journal_entries":        "SELECT",
		"  insert into journal_lines values":   "INSERT",
		"UPDATE ledger_sequences SET":          "UPDATE",
		"delete from payroll_entries":          "DELETE",
		"WITH x AS (SELECT 1) SELECT * FROM x": "OTHER",
	}
	for sql, want := range tests {
		assert.Equal(t, want, telemetry.DetectOperation(sql), sql)
	}
}
