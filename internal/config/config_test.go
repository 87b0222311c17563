package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Egor213/NewsReport/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV_PATH", filepath.Join(dir, "missing.env"))
	t.Setenv("APP_CONFIG_PATH", filepath.Join(dir, "missing.yaml"))
	return dir
}

func TestNew_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, config.ModeReport, cfg.App.Mode)
	assert.Equal(t, "news", cfg.PG.Name)
	assert.Equal(t, "postgres:///news", cfg.PG.DSN())
	assert.Equal(t, 3, cfg.Report.ArticlesLimit)
	assert.Equal(t, 1.0, cfg.Report.ErrorThreshold)
	assert.Equal(t, "200 OK", cfg.Report.OkStatus)
	assert.Equal(t, "404 NOT FOUND", cfg.Report.ErrorStatus)
	assert.False(t, cfg.Kafka.Enabled())
	assert.False(t, cfg.Fixture.Enabled())
}

func TestNew_Fixture(t *testing.T) {
	isolate(t)
	t.Setenv("FIXTURE_PATH", "testdata/news.yaml")

	cfg, err := config.New()
	require.NoError(t, err)
	assert.True(t, cfg.Fixture.Enabled())
	assert.Equal(t, "testdata/news.yaml", cfg.Fixture.Path)
}

func TestNew_FromYAMLAndEnv(t *testing.T) {
	dir := isolate(t)

	yamlPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
app:
  mode: serve
postgres:
  name: news_test
report:
  articles_limit: 5
kafka:
  topic: reports
`), 0o600))
	t.Setenv("APP_CONFIG_PATH", yamlPath)
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, config.ModeServe, cfg.App.Mode)
	assert.Equal(t, "news_test", cfg.PG.Name)
	assert.Equal(t, 5, cfg.Report.ArticlesLimit)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "reports", cfg.Kafka.Topic)
	assert.True(t, cfg.Kafka.Enabled())
}

func TestNew_EnvFile(t *testing.T) {
	dir := isolate(t)

	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("REPORT_ERROR_THRESHOLD=2.5\n"), 0o600))
	t.Setenv("ENV_PATH", envPath)
	t.Cleanup(func() { os.Unsetenv("REPORT_ERROR_THRESHOLD") })

	cfg, err := config.New()
	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.Report.ErrorThreshold)
}

func TestNew_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown mode", "APP_MODE", "daemon"},
		{"zero limit", "REPORT_ARTICLES_LIMIT", "0"},
		{"threshold above 100", "REPORT_ERROR_THRESHOLD", "120"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tc.key, tc.val)

			_, err := config.New()
			assert.Error(t, err)
		})
	}
}

func TestPG_URLs(t *testing.T) {
	pg := config.PG{Name: "news"}
	assert.Equal(t, "postgres:///news?sslmode=disable", pg.MigrateURL())

	pg = config.PG{URL: "postgres://u:p@db:5432/news?sslmode=require"}
	assert.Equal(t, pg.URL, pg.DSN())
	assert.Equal(t, "postgres://u:p@db:5432/news?sslmode=require", pg.MigrateURL())
}
