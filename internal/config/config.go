package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Backend selects which ledger implementation the app talks to.
const (
	BackendSheets   = "sheets"
	BackendPostgres = "postgres"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Budgie"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Budget struct {
		// MonthlyLimit is the total monthly budget in EUR. The default is
		// the historical fallback budget.
		MonthlyLimit float64 `envconfig:"MONTHLY_LIMIT" default:"1000"`
	}

	Ledger struct {
		Backend string `envconfig:"LEDGER_BACKEND" default:"sheets"`
	}

	Sheets struct {
		CredentialsFile string `envconfig:"SHEETS_CREDENTIALS_FILE" default:".credentials/service-account.json"`
		SpreadsheetID   string `envconfig:"SHEETS_SPREADSHEET_ID"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"budgie"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		// Secret signs API bearer tokens. Empty disables auth (local use).
		Secret string `envconfig:"AUTH_SECRET"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
