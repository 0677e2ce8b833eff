package config

import (
	"errors"
	"time"
)

// Config holds application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Store   StoreConfig   `mapstructure:"store"`
	Seed    SeedConfig    `mapstructure:"seed"`
	Usecase UsecaseConfig `mapstructure:"usecase"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Store.ProjectCapacity <= 0 || c.Store.UserCapacity <= 0 {
		return errors.New("store capacities must be positive")
	}
	if c.Seed.AdminEmail == "" || c.Seed.UserEmail == "" {
		return errors.New("seed emails are required")
	}
	if c.Usecase.OpTimeout <= 0 {
		return errors.New("usecase.op_timeout must be positive")
	}
	return nil
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// StoreConfig fixes entity store capacities at construction.
type StoreConfig struct {
	ProjectCapacity int `mapstructure:"project_capacity"`
	UserCapacity    int `mapstructure:"user_capacity"`
}

// SeedConfig describes the default accounts created at bootstrap.
type SeedConfig struct {
	AdminName  string `mapstructure:"admin_name"`
	AdminEmail string `mapstructure:"admin_email"`
	UserName   string `mapstructure:"user_name"`
	UserEmail  string `mapstructure:"user_email"`
}

// UsecaseConfig contains service layer settings.
type UsecaseConfig struct {
	OpTimeout time.Duration `mapstructure:"op_timeout"`
}
