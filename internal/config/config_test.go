package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db.local"
port = 5432
user = "agenda"
password = "x"
dbname = "agendamento"

[auth]
admin_token = "tok"

[posto]
url = "http://posto.local"
planilha_id = "plan-1"
equipe = "783"

[posto.year_suffixes]
2025 = "A"
2026 = "B"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "host=db.local port=5432 user=agenda password=x dbname=agendamento sslmode=disable",
		cfg.Database.DSN())
	assert.Equal(t, "tok", cfg.Auth.AdminToken)

	// Defaults preenchidos
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "agendamento-service", cfg.Metrics.ServiceName)
	assert.Equal(t, "America/Sao_Paulo", cfg.Agenda.Timezone)
	assert.Equal(t, 10, cfg.Posto.Timeout)

	assert.True(t, cfg.Posto.Enabled())
	assert.Equal(t, "A", cfg.Posto.YearSuffixes["2025"])
	assert.Equal(t, "B", cfg.Posto.YearSuffixes["2026"])
}

func TestLoadSemBanco(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadArquivoInexistente(t *testing.T) {
	_, err := Load("nao-existe.toml")
	assert.Error(t, err)
}

func TestPostoEnabled(t *testing.T) {
	p := PostoConfig{}
	assert.False(t, p.Enabled())

	p.URL = "http://posto.local"
	assert.False(t, p.Enabled())

	p.PlanilhaID = "plan-1"
	assert.True(t, p.Enabled())
}
