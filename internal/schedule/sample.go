package schedule

// sampleRecords is the built-in dataset used whenever the configured source
// cannot be read. Ten rows over three services.
var sampleRecords = [][]string{
	{"10", "1", "2024", DayTypeWeekday, "AM", "05:30", "23:45", "0.65", "0.92", "0.31", "0.96"},
	{"10", "1", "2024", DayTypeWeekday, "PM", "05:30", "23:45", "0.72", "0.98", "0.40", "0.94"},
	{"10", "1", "2024", DayTypeSaturday, "AM", "06:00", "23:30", "0.40", "0.70", "0.15", "0.97"},
	{"10", "1", "2024", DayTypeSunday, "AM", "06:15", "23:00", "0.35", "0.61", "0.12", "0.98"},
	{"190", "1", "2024", DayTypeWeekday, "AM", "05:45", "00:15", "0.81", "1.00", "0.45", "0.91"},
	{"190", "1", "2024", DayTypeWeekday, "EA", "05:45", "00:15", "0.58", "0.85", "0.22", "0.93"},
	{"190", "2", "2024", DayTypeSaturday, "PM", "06:05", "00:10", "0.55", "0.83", "0.20", "0.95"},
	{"190", "2", "2024", DayTypeSunday, "PM", "06:20", "23:55", "0.48", "0.77", "0.18", "0.96"},
	{"966", "1", "2024", DayTypeWeekday, "AM", "06:10", "22:30", "0.70", "0.95", "0.33", "0.89"},
	{"966", "1", "2024", DayTypeWeekday, "PO", "06:10", "22:30", "0.44", "0.69", "0.21", "0.92"},
}

// SampleTable returns the fallback dataset.
func SampleTable() *Table {
	table, err := buildTable(Columns, sampleRecords)
	if err != nil {
		// the sample is a compile-time constant; a failure here is a programming error
		panic("schedule: invalid sample data: " + err.Error())
	}
	return table
}
