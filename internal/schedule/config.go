package schedule

// Config selects the schedule source.
type Config struct {
	// Path is the spreadsheet, csv, sqlite database or GTFS zip to read.
	Path string
	// Sheet is the worksheet to read from an xlsx workbook. Empty means the first sheet.
	Sheet string
	// TableName is the sqlite table holding the schedule rows.
	TableName string
}

// DefaultTableName is used when Config.TableName is empty.
const DefaultTableName = "schedule"

func (config Config) tableName() string {
	if config.TableName == "" {
		return DefaultTableName
	}
	return config.TableName
}
