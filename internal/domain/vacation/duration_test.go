package vacation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestResolveEndDate(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		code     string
		expected string
	}{
		{
			name:     "one week counts start day as day one",
			start:    "2024-01-01",
			code:     DurationOneWeek,
			expected: "2024-01-07",
		},
		{
			name:     "two weeks",
			start:    "2024-01-01",
			code:     DurationTwoWeeks,
			expected: "2024-01-14",
		},
		{
			name:     "one month is thirty days not a calendar month",
			start:    "2024-01-01",
			code:     DurationOneMonth,
			expected: "2024-01-30",
		},
		{
			name:     "two months",
			start:    "2024-01-01",
			code:     DurationTwoMonths,
			expected: "2024-02-29",
		},
		{
			name:     "three months",
			start:    "2024-01-01",
			code:     DurationThreeMonths,
			expected: "2024-03-30",
		},
		{
			name:     "six months",
			start:    "2024-01-01",
			code:     DurationSixMonths,
			expected: "2024-06-28",
		},
		{
			name:     "one year is 360 days",
			start:    "2024-01-01",
			code:     DurationOneYear,
			expected: "2024-12-25",
		},
		{
			name:     "month boundary crossing",
			start:    "2024-03-28",
			code:     DurationOneWeek,
			expected: "2024-04-03",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, ok := ResolveEndDate(date(tt.start), tt.code)
			require.True(t, ok)
			assert.Equal(t, tt.expected, end.Format("2006-01-02"))
		})
	}
}

func TestResolveEndDateUnknownCode(t *testing.T) {
	_, ok := ResolveEndDate(date("2024-01-01"), "4months")
	assert.False(t, ok)
}

func TestInferDurationCode(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected string
	}{
		{
			name:     "exact week span",
			start:    "2024-01-01",
			end:      "2024-01-07",
			expected: DurationOneWeek,
		},
		{
			name:     "single day rounds up to a week",
			start:    "2024-01-01",
			end:      "2024-01-01",
			expected: DurationOneWeek,
		},
		{
			name:     "eight days rounds up to two weeks",
			start:    "2024-01-01",
			end:      "2024-01-08",
			expected: DurationTwoWeeks,
		},
		{
			name:     "sixty day span infers two months",
			start:    "2024-01-01",
			end:      "2024-02-29",
			expected: DurationTwoMonths,
		},
		{
			name:     "reversed dates are normalized",
			start:    "2024-01-07",
			end:      "2024-01-01",
			expected: DurationOneWeek,
		},
		{
			name:     "spans beyond six months fall to a year",
			start:    "2024-01-01",
			end:      "2024-09-15",
			expected: DurationOneYear,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := InferDurationCode(date(tt.start), date(tt.end))
			assert.Equal(t, tt.expected, code)
		})
	}
}

func TestInferenceIsLossy(t *testing.T) {
	// A 10 day span infers two weeks; resolving the inferred code does
	// not reproduce the original end date.
	start := date("2024-01-01")
	end := date("2024-01-10")

	code := InferDurationCode(start, end)
	require.Equal(t, DurationTwoWeeks, code)

	resolved, ok := ResolveEndDate(start, code)
	require.True(t, ok)
	assert.NotEqual(t, end, resolved)
	assert.Equal(t, "2024-01-14", resolved.Format("2006-01-02"))
}

func TestCurrentStatus(t *testing.T) {
	v := Vacation{
		Status:    StatusScheduled,
		StartDate: date("2024-06-10"),
		EndDate:   date("2024-06-16"),
	}

	assert.Equal(t, StatusScheduled, v.CurrentStatus(date("2024-06-09")))
	assert.Equal(t, StatusOngoing, v.CurrentStatus(date("2024-06-10")))
	assert.Equal(t, StatusOngoing, v.CurrentStatus(date("2024-06-16")))
	assert.Equal(t, StatusCompleted, v.CurrentStatus(date("2024-06-17")))

	v.Status = StatusCancelled
	assert.Equal(t, StatusCancelled, v.CurrentStatus(date("2024-06-12")))
}
