package models

// ServiceReference identifies a service and how many rows describe it.
type ServiceReference struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	RowCount int    `json:"rowCount"`
}

func NewServiceReference(id, name string, rowCount int) ServiceReference {
	return ServiceReference{
		ID:       id,
		Name:     name,
		RowCount: rowCount,
	}
}

// ServiceEntry is the coverage of one service: which months, day types and
// periods have rows.
type ServiceEntry struct {
	ServiceReference
	Months   []string `json:"months"`
	DayTypes []string `json:"dayTypes"`
	Periods  []string `json:"periods"`
}

func NewServiceEntry(reference ServiceReference, months, dayTypes, periods []string) ServiceEntry {
	return ServiceEntry{
		ServiceReference: reference,
		Months:           nonNil(months),
		DayTypes:         nonNil(dayTypes),
		Periods:          nonNil(periods),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
