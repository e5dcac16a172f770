package query

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"busquery.onebusaway.org/internal/logging"
	"busquery.onebusaway.org/internal/schedule"
)

func newTestEngine(t *testing.T, table *schedule.Table) *Engine {
	t.Helper()
	return NewEngine(table, logging.NewStructuredLogger(&bytes.Buffer{}, slog.LevelInfo))
}

func TestAskMissingServiceIdentifier(t *testing.T) {
	engine := newTestEngine(t, schedule.SampleTable())

	for _, q := range []string{
		"tell me about loading",
		"first bus please",
		"what is the average loading on weekends",
		"",
	} {
		t.Run(q, func(t *testing.T) {
			answer := engine.Ask(q)
			assert.Equal(t, MissingServiceMessage, answer.Text)
			assert.Equal(t, string(MissingServiceIdentifier), answer.Outcome)
			assert.Empty(t, answer.Results)
		})
	}
}

func TestAskMissingMetric(t *testing.T) {
	engine := newTestEngine(t, schedule.SampleTable())

	for _, q := range []string{
		"svc 10",
		"what about service 190 in january",
		"tell me everything about 966 on weekends",
	} {
		t.Run(q, func(t *testing.T) {
			answer := engine.Ask(q)
			assert.Equal(t, MissingMetricMessage, answer.Text)
			assert.Equal(t, string(MissingMetric), answer.Outcome)
		})
	}
}

func TestAskFirstBusScenario(t *testing.T) {
	table := schedule.NewTable([]schedule.Row{
		row("10", 1, 2024, "Weekday", "AM", map[string]string{schedule.ColFirstBus: "05:30"}),
	})
	engine := newTestEngine(t, table)

	answer := engine.Ask("first bus for svc 10 weekday")
	assert.Equal(t, OutcomeAnswered, answer.Outcome)
	assert.Equal(t, "10", answer.Service)
	require.Len(t, answer.Results, 1)
	assert.Contains(t, answer.Results[0].Line, "05:30")
	assert.Contains(t, answer.Results[0].Line, "(Weekday)")
	assert.NotContains(t, answer.Text, "January")
	assert.NotContains(t, answer.Text, "2024")
	assert.Equal(t, "**Results for Service 10:**\n- First Bus: 05:30 (Weekday)", answer.Text)
}

func TestAskAverageLoadingScenario(t *testing.T) {
	table := schedule.NewTable([]schedule.Row{
		row("10", 1, 2024, "Weekday", "AM", map[string]string{schedule.ColAverageLoading: "0.65"}),
		row("10", 1, 2024, "Saturday", "AM", map[string]string{schedule.ColAverageLoading: "0.40"}),
	})
	engine := newTestEngine(t, table)

	answer := engine.Ask("avg load svc 10 weekday")
	require.Len(t, answer.Results, 1)
	assert.Contains(t, answer.Text, "65.0%")
	assert.NotContains(t, answer.Text, "40.0%")
}

func TestAskServiceNotFoundScenario(t *testing.T) {
	engine := newTestEngine(t, schedule.SampleTable())

	answer := engine.Ask("reliability svc 999")
	assert.Equal(t, OutcomeAnswered, answer.Outcome)
	assert.Equal(t, "999", answer.Service)
	assert.Contains(t, answer.Text, "Service **999** not found")
	assert.True(t, strings.HasPrefix(answer.Text, "**Results for Service 999:**"))
}

func TestAskWeekendProducesOneLinePerDayType(t *testing.T) {
	engine := newTestEngine(t, schedule.SampleTable())

	answer := engine.Ask("avg load svc 10 weekend")
	lines := answer.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Saturday")
	assert.Contains(t, lines[1], "Sunday/PH")
	assert.Equal(t, 3, strings.Count(answer.Text, "\n")+1)
}

func TestAskIsIdempotent(t *testing.T) {
	engine := newTestEngine(t, schedule.SampleTable())

	for _, q := range []string{
		"max loading svc 190 february weekend pm",
		"last bus 966 weekday",
		"reliability svc 999",
		"tell me about loading",
	} {
		first := engine.Ask(q)
		second := engine.Ask(q)
		assert.Equal(t, first.Text, second.Text, q)
	}
}

func TestAskExtendedPeriod(t *testing.T) {
	engine := newTestEngine(t, schedule.SampleTable())

	answer := engine.Ask("avg loading for svc 190 extended am")
	assert.Equal(t, PeriodExtendedAM, answer.Filters.Period)
	require.Len(t, answer.Results, 1)
	assert.Equal(t, "Average Loading: 58.0% (Extended AM Peak)", answer.Results[0].Line)
}

func TestAskLogsQuery(t *testing.T) {
	var buf bytes.Buffer
	engine := NewEngine(schedule.SampleTable(), logging.NewStructuredLogger(&buf, slog.LevelInfo))

	engine.Ask("first bus svc 10")

	output := buf.String()
	assert.Contains(t, output, `"msg":"query_answered"`)
	assert.Contains(t, output, `"service":"10"`)
	assert.Contains(t, output, `"metric":"First Bus"`)
	assert.Contains(t, output, `"outcome":"answered"`)
}

func TestConverse(t *testing.T) {
	engine := newTestEngine(t, schedule.SampleTable())

	var transcript Transcript
	transcript, first := engine.Converse(transcript, "first bus svc 10 weekday")
	require.Len(t, transcript, 1)
	assert.Equal(t, first.Text, transcript[0].Answer)

	previous := transcript
	transcript, _ = engine.Converse(transcript, "tell me about loading")
	require.Len(t, transcript, 2)
	require.Len(t, previous, 1, "the caller's transcript must not change")
	assert.Equal(t, MissingServiceMessage, transcript[1].Answer)

	// earlier exchanges never influence later answers
	_, again := engine.Converse(transcript, "first bus svc 10 weekday")
	assert.Equal(t, first.Text, again.Text)
}

func TestAskPeakPeriodDoesNotChangeMetric(t *testing.T) {
	engine := newTestEngine(t, schedule.SampleTable())

	first := engine.Ask("am peak loading svc 10")
	second := engine.Ask("loading in the am peak for svc 10")

	require.Len(t, first.Results, 1)
	assert.Equal(t, "Average Loading: 46.7% (AM Peak)", first.Results[0].Line)
	assert.Equal(t, first.Text, second.Text)
}
