package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds int64
		want    string
	}{
		{seconds: 0, want: "0s"},
		{seconds: 45, want: "45s"},
		{seconds: 59, want: "59s"},
		{seconds: 60, want: "1m"},
		{seconds: 720, want: "12m"},
		{seconds: 3599, want: "59m"},
		{seconds: 3600, want: "1h 0m"},
		{seconds: 7440, want: "2h 4m"},
		{seconds: 90061, want: "25h 1m"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatDuration(tc.seconds), "seconds=%d", tc.seconds)
	}
}
