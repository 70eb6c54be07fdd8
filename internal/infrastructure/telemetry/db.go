package telemetry

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBConfig controls database instrumentation.
type DBConfig struct {
	TraceEnabled      bool
	MetricsEnabled    bool
	LogFullSQL        bool
	SlowQueryThresh   time.Duration
	PoolStatsInterval time.Duration
}

// DBInstrumentation holds the query metrics registered on a gorm.DB.
type DBInstrumentation struct {
	config DBConfig
	logger *zap.Logger

	queryTotal     *Counter
	queryDuration  *Histogram
	slowQueryTotal *Counter
	poolConns      *Gauge

	sqlDB    *sql.DB
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

type dbStartKey struct{}

// InstrumentDB registers otelgorm tracing and query metrics on db.
func InstrumentDB(db *gorm.DB, cfg DBConfig, meter metric.Meter, logger *zap.Logger) (*DBInstrumentation, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.SlowQueryThresh == 0 {
		cfg.SlowQueryThresh = 200 * time.Millisecond
	}
	if cfg.PoolStatsInterval == 0 {
		cfg.PoolStatsInterval = 15 * time.Second
	}
	inst := &DBInstrumentation{config: cfg, logger: logger, stopCh: make(chan struct{})}

	if cfg.TraceEnabled {
		opts := []otelgorm.Option{otelgorm.WithDBName("postgresql")}
		if !cfg.LogFullSQL {
			opts = append(opts, otelgorm.WithoutQueryVariables())
		}
		if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
			return nil, err
		}
	}

	if cfg.MetricsEnabled && meter != nil {
		var err error
		if inst.queryTotal, err = NewCounter(meter, "db_query_total",
			"Database queries by operation", "{query}"); err != nil {
			return nil, err
		}
		if inst.queryDuration, err = NewHistogram(meter, HistogramOpts{
			Name:        "db_query_duration_seconds",
			Description: "Database query latency",
			Unit:        "s",
			Boundaries:  DBDurationBuckets,
		}); err != nil {
			return nil, err
		}
		if inst.slowQueryTotal, err = NewCounter(meter, "db_slow_query_total",
			"Queries slower than the configured threshold", "{query}"); err != nil {
			return nil, err
		}
		if inst.poolConns, err = NewGauge(meter, "db_pool_connections",
			"Connections in the pool by state", "{connection}"); err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		inst.sqlDB = sqlDB
	}

	if cfg.TraceEnabled || inst.queryTotal != nil {
		if err := inst.registerCallbacks(db); err != nil {
			return nil, err
		}
	}

	logger.Info("Database instrumentation registered",
		zap.Bool("tracing", cfg.TraceEnabled),
		zap.Bool("metrics", inst.queryTotal != nil),
		zap.Duration("slow_query_threshold", cfg.SlowQueryThresh),
	)
	return inst, nil
}

func (i *DBInstrumentation) registerCallbacks(db *gorm.DB) error {
	cb := db.Callback()
	before := func(tx *gorm.DB) {
		if tx.Statement.Context == nil {
			tx.Statement.Context = context.Background()
		}
		tx.Statement.Context = context.WithValue(tx.Statement.Context, dbStartKey{}, time.Now())
	}
	after := func(verb string) func(*gorm.DB) {
		return func(tx *gorm.DB) { i.observe(tx, verb) }
	}

	errs := []error{
		cb.Create().Before("gorm:create").Register("ledger_db:before_create", before),
		cb.Query().Before("gorm:query").Register("ledger_db:before_query", before),
		cb.Update().Before("gorm:update").Register("ledger_db:before_update", before),
		cb.Delete().Before("gorm:delete").Register("ledger_db:before_delete", before),
		cb.Row().Before("gorm:row").Register("ledger_db:before_row", before),
		cb.Raw().Before("gorm:raw").Register("ledger_db:before_raw", before),
		cb.Create().After("gorm:create").Register("ledger_db:after_create", after("INSERT")),
		cb.Query().After("gorm:query").Register("ledger_db:after_query", after("SELECT")),
		cb.Update().After("gorm:update").Register("ledger_db:after_update", after("UPDATE")),
		cb.Delete().After("gorm:delete").Register("ledger_db:after_delete", after("DELETE")),
		cb.Row().After("gorm:row").Register("ledger_db:after_row", after("")),
		cb.Raw().After("gorm:raw").Register("ledger_db:after_raw", after("")),
	}
	return errors.Join(errs...)
}

// observe records metrics for a finished statement and annotates the
// current span with row counts, errors and slow-query markers.
func (i *DBInstrumentation) observe(tx *gorm.DB, verb string) {
	ctx := tx.Statement.Context
	if ctx == nil {
		return
	}
	if verb == "" {
		verb = DetectOperation(tx.Statement.SQL.String())
	}

	var elapsed time.Duration
	if start, ok := ctx.Value(dbStartKey{}).(time.Time); ok {
		elapsed = time.Since(start)
	}
	slow := elapsed > i.config.SlowQueryThresh

	if i.queryTotal != nil {
		i.queryTotal.Inc(ctx, AttrDBOperation.String(verb))
		i.queryDuration.RecordDuration(ctx, elapsed, AttrDBOperation.String(verb))
		if slow {
			table := tx.Statement.Table
			if table == "" {
				table = "unknown"
			}
			i.slowQueryTotal.Inc(ctx, AttrDBTable.String(table))
		}
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(attribute.Int64("db.rows_affected", tx.Statement.RowsAffected))
	if tx.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", tx.Statement.Table))
	}
	if tx.Error != nil && !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		RecordError(span, tx.Error)
	}
	if slow {
		span.SetAttributes(attribute.Bool("db.slow_query", true))
		span.AddEvent("slow_query", trace.WithAttributes(
			attribute.Int64("duration_ms", elapsed.Milliseconds()),
			attribute.Int64("threshold_ms", i.config.SlowQueryThresh.Milliseconds()),
		))
	}
}

// StartPoolStatsCollection periodically records connection pool usage until Stop.
func (i *DBInstrumentation) StartPoolStatsCollection(ctx context.Context) {
	if i.sqlDB == nil || i.poolConns == nil {
		return
	}
	i.wg.Add(1)
	go func() {
		defer i.wg.Done()
		ticker := time.NewTicker(i.config.PoolStatsInterval)
		defer ticker.Stop()
		for {
			stats := i.sqlDB.Stats()
			i.poolConns.Record(ctx, int64(stats.Idle), AttrDBState.String("idle"))
			i.poolConns.Record(ctx, int64(stats.InUse), AttrDBState.String("in_use"))
			i.poolConns.Record(ctx, int64(stats.OpenConnections), AttrDBState.String("open"))
			select {
			case <-ticker.C:
			case <-i.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop ends pool stats collection. Safe to call more than once.
func (i *DBInstrumentation) Stop() {
	if i == nil {
		return
	}
	i.stopOnce.Do(func() {
		close(i.stopCh)
		i.wg.Wait()
	})
}

// DetectOperation returns the SQL verb of a raw statement.
func DetectOperation(sql string) string {
	sql = strings.ToUpper(strings.TrimSpace(sql))
	for _, verb := range []string{"SELECT", "INSERT", "UPDATE", "DELETE"} {
		if strings.HasPrefix(sql, verb) {
			return verb
		}
	}
	return "OTHER"
}
