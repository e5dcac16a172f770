package schedule

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"

	"busquery.onebusaway.org/internal/logging"
)

func readCSV(path string, logger *slog.Logger) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening csv: %w", err)
	}
	defer logging.SafeCloseWithLogging(file, logger, "close_csv")

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rec, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading csv: %w", err)
	}
	if len(rec) == 0 {
		return nil, fmt.Errorf("csv %s is empty", path)
	}

	return buildTable(rec[0], rec[1:])
}
