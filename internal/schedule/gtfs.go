package schedule

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/jamespfennell/gtfs"
)

// noon splits a service day into the AM and PM halves used for GTFS-derived rows.
const noon = 12 * time.Hour

func readGTFS(path string) (*Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading local GTFS file: %w", err)
	}

	staticData, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("error parsing GTFS data: %w", err)
	}

	rows := rowsFromStatic(staticData)
	if len(rows) == 0 {
		return nil, fmt.Errorf("GTFS feed %s has no scheduled trips", path)
	}
	return NewTable(rows), nil
}

type gtfsBucket struct {
	service string
	month   int
	year    int
	dayType string
	period  string
}

type gtfsSpan struct {
	first time.Duration
	last  time.Duration
}

// rowsFromStatic derives one row per route, calendar start month, day type and
// AM/PM half-day. First Bus and Last Bus are the earliest and latest trip
// departures from their first stop. The feed carries no loading data, so those
// cells stay blank.
func rowsFromStatic(staticData *gtfs.Static) []Row {
	spans := map[gtfsBucket]*gtfsSpan{}
	var order []gtfsBucket

	for i := range staticData.Trips {
		trip := &staticData.Trips[i]
		if trip.Route == nil || trip.Service == nil || len(trip.StopTimes) == 0 {
			continue
		}
		departure, ok := firstDeparture(trip.StopTimes)
		if !ok {
			continue
		}

		service := trip.Route.ShortName
		if service == "" {
			service = trip.Route.Id
		}
		period := "AM"
		if departure >= noon {
			period = "PM"
		}

		for _, dayType := range serviceDayTypes(trip.Service) {
			key := gtfsBucket{
				service: service,
				month:   int(trip.Service.StartDate.Month()),
				year:    trip.Service.StartDate.Year(),
				dayType: dayType,
				period:  period,
			}
			span, exists := spans[key]
			if !exists {
				spans[key] = &gtfsSpan{first: departure, last: departure}
				order = append(order, key)
				continue
			}
			if departure < span.first {
				span.first = departure
			}
			if departure > span.last {
				span.last = departure
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a.service != b.service {
			return a.service < b.service
		}
		if a.year != b.year {
			return a.year < b.year
		}
		if a.month != b.month {
			return a.month < b.month
		}
		if a.dayType != b.dayType {
			return dayTypeRank(a.dayType) < dayTypeRank(b.dayType)
		}
		return a.period < b.period
	})

	rows := make([]Row, 0, len(order))
	for _, key := range order {
		span := spans[key]
		rows = append(rows, Row{
			Service: key.service,
			Month:   key.month,
			Year:    key.year,
			DayType: key.dayType,
			Period:  key.period,
			Cells: map[string]string{
				ColFirstBus: formatClock(span.first),
				ColLastBus:  formatClock(span.last),
			},
		})
	}
	return rows
}

func firstDeparture(stopTimes []gtfs.ScheduledStopTime) (time.Duration, bool) {
	found := false
	var earliest time.Duration
	for _, st := range stopTimes {
		t := st.DepartureTime
		if t == 0 {
			t = st.ArrivalTime
		}
		if !found || t < earliest {
			earliest = t
			found = true
		}
	}
	return earliest, found
}

func serviceDayTypes(service *gtfs.Service) []string {
	var out []string
	if service.Monday || service.Tuesday || service.Wednesday || service.Thursday || service.Friday {
		out = append(out, DayTypeWeekday)
	}
	if service.Saturday {
		out = append(out, DayTypeSaturday)
	}
	if service.Sunday {
		out = append(out, DayTypeSunday)
	}
	return out
}

func dayTypeRank(dayType string) int {
	switch dayType {
	case DayTypeWeekday:
		return 0
	case DayTypeSaturday:
		return 1
	default:
		return 2
	}
}

// formatClock renders a GTFS time of day as HH:MM. Times past midnight wrap,
// so 24:15 is shown as 00:15.
func formatClock(d time.Duration) string {
	minutes := int(d/time.Minute) % (24 * 60)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
