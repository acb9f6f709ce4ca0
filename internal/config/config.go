package config

import (
	"time"
)

type (
	Config struct {
		App                App        `mapstructure:"app" json:"app"`
		Postgres           Postgres   `mapstructure:"postgres" json:"postgres"`
		Sepa               SepaConfig `mapstructure:"sepa" json:"sepa"`
		SecretKey          string     `mapstructure:"secret_key" json:"secret_key"`
		NewRelicLicenseKey string     `mapstructure:"new_relic_license_key" json:"new_relic_license_key"`
	}

	App struct {
		Env             string        `mapstructure:"env" json:"env"`
		HTTPPort        int           `mapstructure:"http_port" json:"http_port"`
		HTTPTimeout     time.Duration `mapstructure:"http_timeout" json:"http_timeout"`
		GracefulTimeout time.Duration `mapstructure:"graceful_timeout" json:"graceful_timeout"`
		Name            string        `mapstructure:"name" json:"name"`
		LogLevel        string        `mapstructure:"log_level" json:"log_level"`
	}

	Postgres struct {
		Write Database `mapstructure:"write" json:"write"`
		Read  Database `mapstructure:"read" json:"read"`
	}

	Database struct {
		DbHost            string `mapstructure:"db_host" json:"db_host"`
		DbPort            string `mapstructure:"db_port" json:"db_port"`
		DbUser            string `mapstructure:"db_user" json:"db_user"`
		DbPass            string `mapstructure:"db_pass" json:"db_pass"`
		DbName            string `mapstructure:"db_name" json:"db_name"`
		DbSchema          string `mapstructure:"db_schema" json:"db_schema"`
		MaxOpenConnection int    `mapstructure:"max_open_connections" json:"maxOpenConnections"`
		MaxIdleConnection int    `mapstructure:"max_idle_connections" json:"maxIdleConnections"`
		ConnMaxLifetime   int    `mapstructure:"conn_max_lifetime" json:"connMaxLifetime"`
	}

	// SepaConfig carries the export defaults that vary per installation, not
	// per request.
	SepaConfig struct {
		// DefaultCountryCode is used for supplier parties whose stored
		// address has no country.
		DefaultCountryCode string `mapstructure:"default_country_code" json:"default_country_code"`
	}
)
