package query

import (
	"regexp"
	"time"

	"busquery.onebusaway.org/internal/schedule"
)

var monthNames = map[string]int{
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 3, "mar": 3,
	"april": 4, "apr": 4,
	"may": 5,
	"june": 6, "jun": 6,
	"july": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sept": 9, "sep": 9,
	"october": 10, "oct": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,
}

// MonthName returns the English name of month m (1-12), or "" when out of range.
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return time.Month(m).String()
}

type dayTypeKeyword struct {
	keyword  string
	dayTypes []string
}

// dayTypeKeywords maps what users type to the canonical day types it covers.
// Sorted longest first by init so "public holiday" is preferred over "ph".
var dayTypeKeywords = []dayTypeKeyword{
	{"public holiday", []string{schedule.DayTypeSunday}},
	{"weekdays", []string{schedule.DayTypeWeekday}},
	{"weekends", []string{schedule.DayTypeSaturday, schedule.DayTypeSunday}},
	{"saturday", []string{schedule.DayTypeSaturday}},
	{"weekday", []string{schedule.DayTypeWeekday}},
	{"weekend", []string{schedule.DayTypeSaturday, schedule.DayTypeSunday}},
	{"holiday", []string{schedule.DayTypeSunday}},
	{"sunday", []string{schedule.DayTypeSunday}},
	{"sat", []string{schedule.DayTypeSaturday}},
	{"sun", []string{schedule.DayTypeSunday}},
	{"ph", []string{schedule.DayTypeSunday}},
}

func init() {
	sortDayTypeKeywords(dayTypeKeywords)
}

func sortDayTypeKeywords(keywords []dayTypeKeyword) {
	// insertion sort keeps equal-length keywords in declaration order
	for i := 1; i < len(keywords); i++ {
		for j := i; j > 0 && len(keywords[j].keyword) > len(keywords[j-1].keyword); j-- {
			keywords[j], keywords[j-1] = keywords[j-1], keywords[j]
		}
	}
}

// ExpandDayType returns the canonical day types for a user keyword.
func ExpandDayType(keyword string) []string {
	for _, kw := range dayTypeKeywords {
		if kw.keyword == keyword {
			return kw.dayTypes
		}
	}
	return nil
}

// Period codes.
const (
	PeriodAM         = "AM"
	PeriodPM         = "PM"
	PeriodExtendedAM = "EA"
	PeriodExtendedPM = "EP"
	PeriodAMOffPeak  = "AO"
	PeriodPMOffPeak  = "PO"
	PeriodFullAM     = "FA"
	PeriodFullPM     = "FP"
)

var periodDisplayNames = map[string]string{
	PeriodAM:         "AM Peak",
	PeriodPM:         "PM Peak",
	PeriodExtendedAM: "Extended AM Peak",
	PeriodExtendedPM: "Extended PM Peak",
	PeriodAMOffPeak:  "AM Off-Peak",
	PeriodPMOffPeak:  "PM Off-Peak",
	PeriodFullAM:     "Full AM",
	PeriodFullPM:     "Full PM",
}

// PeriodDisplayName returns the human name of a period code, or the code itself.
func PeriodDisplayName(code string) string {
	if name, ok := periodDisplayNames[code]; ok {
		return name
	}
	return code
}

type periodPattern struct {
	pattern *regexp.Regexp
	code    string
}

const (
	amWords = `(?:am|morning)`
	pmWords = `(?:pm|evening)`
)

func either(qualifier, half string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + qualifier + `\b.*\b` + half + `\b|\b` + half + `\b.*\b` + qualifier + `\b`)
}

// periodPatterns is checked in order and the first match wins, so the
// qualified forms must stay ahead of bare am/pm.
var periodPatterns = []periodPattern{
	{either(`(?:extended|ext)`, amWords), PeriodExtendedAM},
	{either(`(?:extended|ext)`, pmWords), PeriodExtendedPM},
	{either(`off ?peak`, amWords), PeriodAMOffPeak},
	{either(`off ?peak`, pmWords), PeriodPMOffPeak},
	{either(`full`, amWords), PeriodFullAM},
	{either(`full`, pmWords), PeriodFullPM},
	{regexp.MustCompile(`\b` + amWords + `\b`), PeriodAM},
	{regexp.MustCompile(`\b` + pmWords + `\b`), PeriodPM},
}
