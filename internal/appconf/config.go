package appconf

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"busquery.onebusaway.org/internal/schedule"
)

// Config holds every setting of the query server. It is read from an
// optional YAML file and then overridden by command-line flags.
type Config struct {
	Port      int            `yaml:"port" validate:"min=1,max=65535"`
	Env       Environment    `yaml:"env"`
	ApiKeys   []string       `yaml:"apiKeys" validate:"dive,required"`
	RateLimit int            `yaml:"rateLimit" validate:"gte=0"`
	Schedule  ScheduleConfig `yaml:"schedule"`
	Logging   LoggingConfig  `yaml:"logging"`
}

type ScheduleConfig struct {
	Path  string `yaml:"path"`
	Sheet string `yaml:"sheet" validate:"max=31"`
	Table string `yaml:"table" validate:"omitempty,max=64"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"omitempty,oneof=json text"`
}

// Source converts the schedule section into the loader's configuration.
func (sc ScheduleConfig) Source() schedule.Config {
	return schedule.Config{
		Path:      sc.Path,
		Sheet:     sc.Sheet,
		TableName: sc.Table,
	}
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Port:      4000,
		Env:       Development,
		ApiKeys:   []string{"test"},
		RateLimit: 100,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadConfig reads a YAML file on top of Default and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the struct tags on Config and its sections.
func (c Config) Validate() error {
	return validator.New().Struct(c)
}

// ParseAPIKeys splits a comma separated flag value, dropping blanks.
func ParseAPIKeys(s string) []string {
	var keys []string
	for _, key := range strings.Split(s, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
