package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config configuração completa do serviço (config.toml)
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Agenda   AgendaConfig   `toml:"agenda"`
	Posto    PostoConfig    `toml:"posto"`
}

// ServerConfig configuração do servidor HTTP
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig configuração do Postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN monta a string de conexão do Postgres
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig configuração de logs
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig configuração de métricas prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig token usado pela rota de gestão dos agendamentos
type AuthConfig struct {
	AdminToken string `toml:"admin_token"`
}

// AgendaConfig configuração da agenda local
type AgendaConfig struct {
	// Fuso usado para formatar data/hora dos agendamentos (ex: America/Sao_Paulo)
	Timezone string `toml:"timezone"`
}

// PostoConfig integração com a planilha geral do posto de saúde.
// URL vazia desabilita o registro no posto (o agendamento principal
// continua funcionando normalmente).
type PostoConfig struct {
	URL        string `toml:"url"`
	Timeout    int    `toml:"timeout"`
	PlanilhaID string `toml:"planilha_id"`
	// Identificador da equipe nas abas do posto (ex: "783")
	Equipe string `toml:"equipe"`
	// Sufixo de ano no nome das abas, ex: 2025 = "A", 2026 = "B"
	YearSuffixes map[string]string `toml:"year_suffixes"`
}

// Enabled indica se a integração com o posto está configurada
func (p *PostoConfig) Enabled() bool {
	return p.URL != "" && p.PlanilhaID != ""
}

// Load carrega e valida a configuração a partir de um arquivo TOML
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "agendamento-service"
	}
	if cfg.Agenda.Timezone == "" {
		cfg.Agenda.Timezone = "America/Sao_Paulo"
	}
	if cfg.Posto.Timeout == 0 {
		cfg.Posto.Timeout = 10
	}

	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		return nil, fmt.Errorf("config: database host and dbname are required")
	}

	return &cfg, nil
}
