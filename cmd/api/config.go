package main

import (
	"flag"
	"fmt"
	"io"

	"busquery.onebusaway.org/internal/appconf"
)

// parseConfig reads an optional YAML file named by -config and then applies
// every flag that was set explicitly on top of it.
func parseConfig(args []string, output io.Writer) (appconf.Config, error) {
	fs := flag.NewFlagSet("api", flag.ContinueOnError)
	fs.SetOutput(output)

	defaults := appconf.Default()
	var (
		configPath  string
		port        int
		env         string
		apiKeysFlag string
		rateLimit   int
		schedule    string
		sheet       string
		table       string
		logLevel    string
		logFormat   string
	)
	fs.StringVar(&configPath, "config", "", "Path to a YAML config file")
	fs.IntVar(&port, "port", defaults.Port, "API server port")
	fs.StringVar(&env, "env", defaults.Env.String(), "Environment (development|test|production)")
	fs.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	fs.IntVar(&rateLimit, "rate-limit", defaults.RateLimit, "Requests per second per API key (0 disables limiting)")
	fs.StringVar(&schedule, "schedule", "", "Schedule file (.xlsx, .csv, .db or GTFS .zip); empty uses the built-in sample")
	fs.StringVar(&sheet, "sheet", "", "Worksheet to read from an xlsx schedule")
	fs.StringVar(&table, "table", "", "Table to read from a sqlite schedule")
	fs.StringVar(&logLevel, "log-level", defaults.Logging.Level, "Log level (debug|info|warn|error)")
	fs.StringVar(&logFormat, "log-format", defaults.Logging.Format, "Log format (json|text)")

	if err := fs.Parse(args); err != nil {
		return appconf.Config{}, err
	}

	cfg := defaults
	if configPath != "" {
		loaded, err := appconf.LoadConfig(configPath)
		if err != nil {
			return appconf.Config{}, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = port
		case "env":
			cfg.Env = appconf.EnvFlagToEnvironment(env)
		case "api-keys":
			cfg.ApiKeys = appconf.ParseAPIKeys(apiKeysFlag)
		case "rate-limit":
			cfg.RateLimit = rateLimit
		case "schedule":
			cfg.Schedule.Path = schedule
		case "sheet":
			cfg.Schedule.Sheet = sheet
		case "table":
			cfg.Schedule.Table = table
		case "log-level":
			cfg.Logging.Level = logLevel
		case "log-format":
			cfg.Logging.Format = logFormat
		}
	})
	if err := cfg.Validate(); err != nil {
		return appconf.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
