package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("COMMUNITY_MIN_USERS", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 3, cfg.Insights.MinUsersPerGroup)
	assert.Equal(t, "$", cfg.Insights.DefaultCurrencySymbol)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/insights.db")
	t.Setenv("COMMUNITY_MIN_USERS", "5")
	t.Setenv("INSIGHTS_QUERY_TIMEOUT", "2s")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	assert.True(t, cfg.IsTesting())
	assert.Equal(t, "/tmp/insights.db", cfg.Database.DSN())
	assert.Equal(t, 5, cfg.Insights.MinUsersPerGroup)
	assert.Equal(t, 2*time.Second, cfg.Insights.QueryTimeout)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
}

func TestLoad_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("COMMUNITY_MIN_USERS", "many")
	t.Setenv("INSIGHTS_QUERY_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 3, cfg.Insights.MinUsersPerGroup)
	assert.Equal(t, 10*time.Second, cfg.Insights.QueryTimeout)
}

func TestValidate_CollectsErrors(t *testing.T) {
	cfg := Load()
	cfg.Database.Driver = "mysql"
	cfg.Insights.MinUsersPerGroup = 0
	cfg.Insights.DefaultCurrencySymbol = " "

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported DB_DRIVER")
	assert.Contains(t, err.Error(), "COMMUNITY_MIN_USERS")
	assert.Contains(t, err.Error(), "DEFAULT_CURRENCY_SYMBOL")
}

func TestDatabaseConfig_PostgresDSN(t *testing.T) {
	db := DatabaseConfig{Driver: DriverPostgres, Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", db.DSN())
	assert.Equal(t, "postgres://u:p@db:5432/n?sslmode=disable", db.URL())
}

func TestLoadJWTKeys_GeneratesOutsideProduction(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_PUBLIC_KEY", "")
	t.Setenv("JWT_PRIVATE_KEY", "")

	cfg := Load()
	require.NoError(t, cfg.LoadJWTKeys())

	assert.NotNil(t, cfg.JWT.PrivateKey)
	assert.NotNil(t, cfg.JWT.PublicKey)
}

func TestLoadJWTKeys_RequiredInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_PUBLIC_KEY", "")

	cfg := Load()

	assert.Error(t, cfg.LoadJWTKeys())
}
