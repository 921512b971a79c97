package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"plain integer", "500", "500", true},
		{"decimal", "12.50", "12.5", true},
		{"dollar sign", "$500", "500", true},
		{"thousands separator", "1,250.50", "1250.5", true},
		{"symbol and separator", "$1,250.50", "1250.5", true},
		{"euro sign", "€20", "20", true},
		{"usd suffix", "500 USD", "500", true},
		{"surrounding spaces", "  500  ", "500", true},
		{"not a number", "abc", "", false},
		{"negative", "-5", "", false},
		{"zero", "0", "", false},
		{"empty", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAmount(tc.input)
			if !tc.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}
