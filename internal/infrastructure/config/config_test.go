package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values when env vars not set", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "ledgercore", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "ledger", cfg.Database.DBName)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.True(t, cfg.Idempotency.Enabled)
		assert.Equal(t, "redis", cfg.Idempotency.Backend)
		assert.Equal(t, 24*time.Hour, cfg.Idempotency.TTL)
		assert.Equal(t, "JMD", cfg.Ledger.Currency)
		assert.Equal(t, 10*time.Second, cfg.HTTP.RequestTimeout)
		assert.Empty(t, cfg.HTTP.CORSAllowOrigins)
		assert.True(t, cfg.HTTP.SwaggerEnabled)
	})

	t.Run("loads values from environment variables with LEDGER prefix", func(t *testing.T) {
		t.Setenv("LEDGER_APP_NAME", "test-app")
		t.Setenv("LEDGER_APP_PORT", "9000")
		t.Setenv("LEDGER_DATABASE_HOST", "testdb.local")
		t.Setenv("LEDGER_DATABASE_PORT", "5433")
		t.Setenv("LEDGER_DATABASE_MAX_OPEN_CONNS", "50")
		t.Setenv("LEDGER_DATABASE_MAX_IDLE_CONNS", "10")
		t.Setenv("LEDGER_IDEMPOTENCY_ENABLED", "false")
		t.Setenv("LEDGER_IDEMPOTENCY_BACKEND", "memory")
		t.Setenv("LEDGER_IDEMPOTENCY_TTL", "1h")
		t.Setenv("LEDGER_LEDGER_CURRENCY", "USD")
		t.Setenv("LEDGER_HTTP_REQUEST_TIMEOUT", "3s")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, 50, cfg.Database.MaxOpenConns)
		assert.Equal(t, 10, cfg.Database.MaxIdleConns)
		assert.False(t, cfg.Idempotency.Enabled)
		assert.Equal(t, "memory", cfg.Idempotency.Backend)
		assert.Equal(t, time.Hour, cfg.Idempotency.TTL)
		assert.Equal(t, "USD", cfg.Ledger.Currency)
		assert.Equal(t, 3*time.Second, cfg.HTTP.RequestTimeout)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		t.Setenv("LEDGER_DATABASE_MAX_OPEN_CONNS", "10")
		t.Setenv("LEDGER_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("rejects unknown database driver", func(t *testing.T) {
		t.Setenv("LEDGER_DATABASE_DRIVER", "mysql")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.driver")
	})

	t.Run("rejects unknown idempotency backend", func(t *testing.T) {
		t.Setenv("LEDGER_IDEMPOTENCY_BACKEND", "memcached")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "idempotency.backend")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	setValidProductionBase := func(t *testing.T) {
		t.Setenv("LEDGER_APP_ENV", "production")
		t.Setenv("LEDGER_DATABASE_PASSWORD", "secure-password")
		t.Setenv("LEDGER_DATABASE_SSLMODE", "require")
	}

	t.Run("passes validation with valid production config", func(t *testing.T) {
		setValidProductionBase(t)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
		assert.False(t, cfg.HTTP.SwaggerEnabled, "docs are off in production by default")
	})

	t.Run("serves docs in production when enabled explicitly", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("LEDGER_HTTP_SWAGGER_ENABLED", "true")

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.HTTP.SwaggerEnabled)
	})

	t.Run("requires database.password in production", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("LEDGER_DATABASE_PASSWORD", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password is required in production")
	})

	t.Run("requires SSL enabled in production", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("LEDGER_DATABASE_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.sslmode cannot be 'disable' in production")
	})

	t.Run("rejects in-memory idempotency in production", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("LEDGER_IDEMPOTENCY_BACKEND", "memory")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "idempotency.backend=memory")
	})

	t.Run("rejects full SQL logging in production", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("LEDGER_TELEMETRY_DB_LOG_FULL_SQL", "true")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db_log_full_sql")
	})
}

func TestPayrollConfig_RateTable(t *testing.T) {
	t.Run("empty config keeps built-in rates", func(t *testing.T) {
		rt, err := PayrollConfig{}.RateTable()
		require.NoError(t, err)
		assert.Equal(t, "0.03", rt.NISEmployeeRate.String())
		assert.Equal(t, "1500096", rt.IncomeTaxBrackets[0].UpTo.String())
		assert.Equal(t, "0.3", rt.IncomeTaxBrackets[2].Rate.String())
	})

	t.Run("applies overrides", func(t *testing.T) {
		rt, err := PayrollConfig{
			NISAnnualCeiling:   "6000000",
			TaxFreeThreshold:   "1700088",
			IncomeTaxUpperRate: "0.35",
			HEARTEmployerRate:  "0.025",
		}.RateTable()
		require.NoError(t, err)
		assert.Equal(t, "6000000", rt.NISAnnualCeiling.String())
		assert.Equal(t, "1700088", rt.IncomeTaxBrackets[0].UpTo.String())
		assert.Equal(t, "0.35", rt.IncomeTaxBrackets[2].Rate.String())
		assert.Equal(t, "0.025", rt.HEARTEmployerRate.String())
	})

	t.Run("rejects unparseable values", func(t *testing.T) {
		_, err := PayrollConfig{NHTEmployeeRate: "two percent"}.RateTable()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "payroll.nht_employee_rate")
	})

	t.Run("rejects a threshold above the band limit", func(t *testing.T) {
		_, err := PayrollConfig{TaxFreeThreshold: "7000000"}.RateTable()
		require.Error(t, err)
	})

	t.Run("env overrides reach the rate table", func(t *testing.T) {
		t.Setenv("LEDGER_PAYROLL_NIS_EMPLOYEE_RATE", "0.035")

		cfg, err := Load()
		require.NoError(t, err)
		rt, err := cfg.Payroll.RateTable()
		require.NoError(t, err)
		assert.Equal(t, "0.035", rt.NISEmployeeRate.String())
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("generates valid postgres DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Driver:   "postgres",
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost:5432")
		assert.Contains(t, dsn, "testuser")
		assert.Contains(t, dsn, "/testdb")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in password", func(t *testing.T) {
		cfg := DatabaseConfig{Host: "localhost", Port: 5432, User: "user", Password: "pass@word#123", DBName: "db", SSLMode: "disable"}
		assert.Contains(t, cfg.DSN(), "pass%40word%23123")
	})

	t.Run("sqlite uses the database name as path", func(t *testing.T) {
		cfg := DatabaseConfig{Driver: "sqlite", DBName: "ledger.db"}
		assert.Equal(t, "ledger.db", cfg.DSN())
	})
}
