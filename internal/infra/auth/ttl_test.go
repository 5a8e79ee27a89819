package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTTL(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{in: "30d", want: 30 * 24 * time.Hour},
		{in: "12h", want: 12 * time.Hour},
		{in: "30m", want: 30 * time.Minute},
		{in: "45s", want: 45 * time.Second},
		{in: "1s", want: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTTL(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTTL_Malformed(t *testing.T) {
	malformed := []string{
		"",     // empty
		"s",    // no magnitude
		"10",   // no unit
		"1x",   // unknown unit
		"1.5h", // non-integer magnitude
		"h1",   // unit in the wrong place
		"-5m",  // negative magnitude
		"0s",   // zero ttl
		"1dd",  // double unit
	}

	for _, in := range malformed {
		t.Run(in, func(t *testing.T) {
			_, err := ParseTTL(in)
			assert.Error(t, err)
		})
	}
}
