package models

import "time"

// StatusEntry reports where the schedule data came from.
type StatusEntry struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Source   string `json:"source"`
	Format   string `json:"format"`
	Rows     int    `json:"rows"`
	Services int    `json:"services"`
	Size     int64  `json:"size"`
	Cause    string `json:"cause,omitempty"`
	LoadedAt int64  `json:"loadedAt"`
}

func NewStatusEntry(status, message, source, format string, rows, services int, size int64, cause string, loadedAt time.Time) StatusEntry {
	var loadedAtMillis int64
	if !loadedAt.IsZero() {
		loadedAtMillis = loadedAt.UnixNano() / int64(time.Millisecond)
	}
	return StatusEntry{
		Status:   status,
		Message:  message,
		Source:   source,
		Format:   format,
		Rows:     rows,
		Services: services,
		Size:     size,
		Cause:    cause,
		LoadedAt: loadedAtMillis,
	}
}
