package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"busquery.onebusaway.org/internal/logging"
)

// StatusKind reports which data a loaded table came from.
type StatusKind string

const (
	StatusLoaded   StatusKind = "loaded"
	StatusFallback StatusKind = "fallback"
)

// Status describes the outcome of a load. It is surfaced once to the user and
// has no effect on how queries are answered.
type Status struct {
	Kind     StatusKind
	Source   string
	Format   string
	Rows     int
	Services int
	Size     int64
	Cause    string
	LoadedAt time.Time
}

// String renders the one-line status message.
func (s Status) String() string {
	if s.Kind == StatusLoaded {
		msg := fmt.Sprintf("Loaded %s schedule rows for %s services from %s",
			humanize.Comma(int64(s.Rows)), humanize.Comma(int64(s.Services)), filepath.Base(s.Source))
		if s.Size > 0 {
			msg += fmt.Sprintf(" (%s)", humanize.Bytes(uint64(s.Size)))
		}
		return msg + "."
	}
	return fmt.Sprintf("Using built-in sample data (%d rows, %d services): %s.", s.Rows, s.Services, s.Cause)
}

// ErrUnsupportedFormat is returned for file extensions no reader handles.
var ErrUnsupportedFormat = errors.New("unsupported schedule format")

// Load reads the configured source. It never fails: any problem with the
// source yields the sample table and a fallback status naming the cause.
func Load(ctx context.Context, config Config, logger *slog.Logger) (*Table, Status) {
	start := time.Now()

	table, status, err := loadSource(ctx, config, logger)
	if err != nil {
		logging.LogError(logger, "failed to load schedule, using sample data", err,
			slog.String("source", config.Path),
			slog.String("component", "schedule_loader"))
		table = SampleTable()
		status = Status{
			Kind:   StatusFallback,
			Source: config.Path,
			Cause:  err.Error(),
		}
	}

	status.Rows = table.Len()
	status.Services = len(table.ServiceKeys())
	status.LoadedAt = time.Now()

	logging.LogOperation(logger, "schedule_loaded",
		slog.String("status", string(status.Kind)),
		slog.String("source", status.Source),
		slog.Int("rows", status.Rows),
		slog.Int("services", status.Services),
		slog.Duration("duration", time.Since(start)),
		slog.String("component", "schedule_loader"))

	return table, status
}

func loadSource(ctx context.Context, config Config, logger *slog.Logger) (*Table, Status, error) {
	if strings.TrimSpace(config.Path) == "" {
		return nil, Status{}, errors.New("no schedule file configured")
	}

	info, err := os.Stat(config.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, Status{}, fmt.Errorf("file %q was not found", config.Path)
		}
		return nil, Status{}, fmt.Errorf("cannot access %q: %w", config.Path, err)
	}
	if info.IsDir() {
		return nil, Status{}, fmt.Errorf("%q is a directory", config.Path)
	}

	format := detectFormat(config.Path)
	var table *Table
	switch format {
	case "xlsx":
		table, err = readXLSX(config.Path, config.Sheet, logger)
	case "csv":
		table, err = readCSV(config.Path, logger)
	case "sqlite":
		table, err = readSQLite(ctx, config.Path, config.tableName(), logger)
	case "gtfs":
		table, err = readGTFS(config.Path)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(config.Path))
	}
	if err != nil {
		return nil, Status{}, fmt.Errorf("%s: %w", filepath.Base(config.Path), err)
	}
	if table.Len() == 0 {
		return nil, Status{}, fmt.Errorf("%s contains no schedule rows", filepath.Base(config.Path))
	}

	return table, Status{
		Kind:   StatusLoaded,
		Source: config.Path,
		Format: format,
		Size:   info.Size(),
	}, nil
}

func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return "xlsx"
	case ".csv":
		return "csv"
	case ".db", ".sqlite", ".sqlite3":
		return "sqlite"
	case ".zip":
		return "gtfs"
	default:
		return ""
	}
}
