package schedule

import (
	"testing"
	"time"

	"github.com/jamespfennell/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(h, m int) time.Duration {
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
}

func scheduledTrip(id string, route *gtfs.Route, service *gtfs.Service, departures ...time.Duration) gtfs.ScheduledTrip {
	trip := gtfs.ScheduledTrip{ID: id, Route: route, Service: service}
	for _, d := range departures {
		trip.StopTimes = append(trip.StopTimes, gtfs.ScheduledStopTime{
			ArrivalTime:   d,
			DepartureTime: d,
		})
	}
	return trip
}

func TestRowsFromStatic(t *testing.T) {
	route10 := &gtfs.Route{Id: "r10", ShortName: "10"}
	unnamed := &gtfs.Route{Id: "shuttle"}

	weekdays := &gtfs.Service{
		Id:     "wk",
		Monday: true, Tuesday: true, Wednesday: true, Thursday: true, Friday: true,
		StartDate: time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
	}
	weekend := &gtfs.Service{
		Id:       "we",
		Saturday: true, Sunday: true,
		StartDate: time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
	}

	static := &gtfs.Static{
		Trips: []gtfs.ScheduledTrip{
			scheduledTrip("t1", route10, weekdays, clock(5, 30), clock(5, 50)),
			scheduledTrip("t2", route10, weekdays, clock(9, 10), clock(9, 40)),
			scheduledTrip("t3", route10, weekdays, clock(23, 50), clock(24, 20)),
			scheduledTrip("t4", route10, weekend, clock(6, 15)),
			scheduledTrip("t5", unnamed, weekdays, clock(13, 0)),
			scheduledTrip("no-stops", route10, weekdays),
			{ID: "no-service", Route: route10},
		},
	}

	rows := rowsFromStatic(static)
	require.Len(t, rows, 5)

	byKey := map[string]Row{}
	for _, row := range rows {
		byKey[row.Service+"|"+row.DayType+"|"+row.Period] = row
	}

	am := byKey["10|Weekday|AM"]
	assert.Equal(t, 3, am.Month)
	assert.Equal(t, 2024, am.Year)
	assert.Equal(t, "05:30", am.Value(ColFirstBus))
	assert.Equal(t, "09:10", am.Value(ColLastBus))
	assert.Empty(t, am.Value(ColAverageLoading))

	pm := byKey["10|Weekday|PM"]
	assert.Equal(t, "23:50", pm.Value(ColFirstBus))

	assert.Equal(t, "06:15", byKey["10|Saturday|AM"].Value(ColFirstBus))
	assert.Equal(t, "06:15", byKey["10|Sunday/PH|AM"].Value(ColFirstBus))
	assert.Equal(t, "13:00", byKey["shuttle|Weekday|PM"].Value(ColFirstBus))

	// rows are ordered by service, then day type rank, then period
	assert.Equal(t, "10", rows[0].Service)
	assert.Equal(t, DayTypeWeekday, rows[0].DayType)
	assert.Equal(t, "AM", rows[0].Period)
	assert.Equal(t, DayTypeSaturday, rows[2].DayType)
	assert.Equal(t, "shuttle", rows[4].Service)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", formatClock(0))
	assert.Equal(t, "05:30", formatClock(clock(5, 30)))
	assert.Equal(t, "23:59", formatClock(clock(23, 59)))
	assert.Equal(t, "00:15", formatClock(clock(24, 15)))
}

func TestFirstDepartureUsesArrivalWhenDepartureMissing(t *testing.T) {
	d, ok := firstDeparture([]gtfs.ScheduledStopTime{
		{ArrivalTime: clock(7, 0)},
		{ArrivalTime: clock(8, 0), DepartureTime: clock(8, 5)},
	})
	require.True(t, ok)
	assert.Equal(t, clock(7, 0), d)

	_, ok = firstDeparture(nil)
	assert.False(t, ok)
}
