// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
func NewConfig() (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")

	v.SetDefault("store.project_capacity", 100)
	v.SetDefault("store.user_capacity", 100)

	v.SetDefault("seed.admin_name", "Admin")
	v.SetDefault("seed.admin_email", "admin@example.com")
	v.SetDefault("seed.user_name", "Regular User")
	v.SetDefault("seed.user_email", "user@example.com")

	v.SetDefault("usecase.op_timeout", 3*time.Second)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"store.project_capacity",
		"store.user_capacity",
		"seed.admin_name",
		"seed.admin_email",
		"seed.user_name",
		"seed.user_email",
		"usecase.op_timeout",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
