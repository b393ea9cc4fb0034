package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      TimeOfDay
		expectedError error
	}{
		{
			name:     "Midnight",
			input:    "00:00",
			expected: 0,
		},
		{
			name:     "Morning",
			input:    "08:30",
			expected: 8*60 + 30,
		},
		{
			name:     "LastMinuteOfDay",
			input:    "23:59",
			expected: 23*60 + 59,
		},
		{
			name:          "HourOutOfRange",
			input:         "24:00",
			expectedError: ErrInvalidTimeOfDay,
		},
		{
			name:          "MinuteOutOfRange",
			input:         "12:60",
			expectedError: ErrInvalidTimeOfDay,
		},
		{
			name:          "MissingLeadingZero",
			input:         "8:30",
			expectedError: ErrInvalidTimeOfDay,
		},
		{
			name:          "WrongSeparator",
			input:         "08.30",
			expectedError: ErrInvalidTimeOfDay,
		},
		{
			name:          "TrailingGarbage",
			input:         "08:30:00",
			expectedError: ErrInvalidTimeOfDay,
		},
		{
			name:          "Empty",
			input:         "",
			expectedError: ErrInvalidTimeOfDay,
		},
		{
			name:          "NotATime",
			input:         "ab:cd",
			expectedError: ErrInvalidTimeOfDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestParseWindow(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		w, err := ParseWindow("09:00", "17:00")
		require.NoError(t, err)
		assert.Equal(t, Window{Start: 9 * 60, Stop: 17 * 60}, w)
	})
	t.Run("InvalidStart", func(t *testing.T) {
		_, err := ParseWindow("9am", "17:00")
		assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
	})
	t.Run("InvalidStop", func(t *testing.T) {
		_, err := ParseWindow("09:00", "25:00")
		assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
	})
}

func clock(hour, minute int) time.Time {
	return time.Date(2025, time.March, 14, hour, minute, 30, 0, time.UTC)
}

func TestWindowContains(t *testing.T) {
	day := Window{Start: 9 * 60, Stop: 17 * 60}
	overnight := Window{Start: 22 * 60, Stop: 6 * 60}
	degenerate := Window{Start: 12 * 60, Stop: 12 * 60}

	tests := []struct {
		name     string
		window   Window
		now      time.Time
		expected bool
	}{
		{
			name:     "DayWindowInside",
			window:   day,
			now:      clock(12, 0),
			expected: true,
		},
		{
			name:     "DayWindowBefore",
			window:   day,
			now:      clock(8, 59),
			expected: false,
		},
		{
			name:     "DayWindowAfter",
			window:   day,
			now:      clock(17, 1),
			expected: false,
		},
		{
			name:     "DayWindowStartBoundaryExcluded",
			window:   day,
			now:      clock(9, 0),
			expected: false,
		},
		{
			name:     "DayWindowStopBoundaryExcluded",
			window:   day,
			now:      clock(17, 0),
			expected: false,
		},
		{
			name:     "OvernightBeforeMidnight",
			window:   overnight,
			now:      clock(23, 30),
			expected: true,
		},
		{
			name:     "OvernightAfterMidnight",
			window:   overnight,
			now:      clock(2, 0),
			expected: true,
		},
		{
			name:     "OvernightDaytimeGap",
			window:   overnight,
			now:      clock(12, 0),
			expected: false,
		},
		{
			name:     "OvernightStartBoundaryExcluded",
			window:   overnight,
			now:      clock(22, 0),
			expected: false,
		},
		{
			name:     "OvernightStopBoundaryExcluded",
			window:   overnight,
			now:      clock(6, 0),
			expected: false,
		},
		{
			name:     "DegenerateWindowCoversAllButBoundary",
			window:   degenerate,
			now:      clock(12, 1),
			expected: true,
		},
		{
			name:     "DegenerateWindowBoundaryExcluded",
			window:   degenerate,
			now:      clock(12, 0),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.window.Contains(tt.now))
		})
	}
}
