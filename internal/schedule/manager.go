package schedule

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// Manager is the immutable handle produced by a load: the table plus the
// status that describes where it came from.
type Manager struct {
	config Config
	table  *Table
	status Status
}

// InitManager loads the configured source once and wraps the result.
func InitManager(ctx context.Context, config Config, logger *slog.Logger) *Manager {
	table, status := Load(ctx, config, logger)
	return &Manager{
		config: config,
		table:  table,
		status: status,
	}
}

// NewManagerForTable wraps an already built table, for callers that assemble
// rows themselves.
func NewManagerForTable(table *Table, status Status) *Manager {
	status.Rows = table.Len()
	status.Services = len(table.ServiceKeys())
	if status.LoadedAt.IsZero() {
		status.LoadedAt = time.Now()
	}
	return &Manager{table: table, status: status}
}

func (manager *Manager) Table() *Table {
	return manager.table
}

func (manager *Manager) Status() Status {
	return manager.status
}

func (manager *Manager) Config() Config {
	return manager.config
}

// FindService returns the summary for a canonical service key.
func (manager *Manager) FindService(key string) (ServiceSummary, bool) {
	for _, summary := range manager.table.Services() {
		if summary.Key == ServiceKey(key) {
			return summary, true
		}
	}
	return ServiceSummary{}, false
}

func (manager *Manager) PrintStatistics(w io.Writer) {
	_, _ = fmt.Fprintln(w, manager.status.String())
	_, _ = fmt.Fprintf(w, "Source: %s (Format: %s)\n", manager.status.Source, manager.status.Format)
	_, _ = fmt.Fprintf(w, "Loaded At: %s\n", manager.status.LoadedAt)
	_, _ = fmt.Fprintln(w, "Rows Count: ", manager.table.Len())
	_, _ = fmt.Fprintln(w, "Services Count: ", len(manager.table.ServiceKeys()))
}

// Loader memoizes InitManager: the first call to Load reads the source, every
// later call returns the same Manager.
type Loader struct {
	config  Config
	logger  *slog.Logger
	once    sync.Once
	manager *Manager
}

func NewLoader(config Config, logger *slog.Logger) *Loader {
	return &Loader{config: config, logger: logger}
}

func (loader *Loader) Load(ctx context.Context) *Manager {
	loader.once.Do(func() {
		loader.manager = InitManager(ctx, loader.config, loader.logger)
	})
	return loader.manager
}
