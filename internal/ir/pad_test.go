package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePad(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    rune
		wantErr bool
	}{
		{"ascii", "*", '*', false},
		{"space", " ", ' ', false},
		{"multibyte", "·", '·', false},
		{"combining sequence", "e\u0301", '\u00e9', false},
		{"empty", "", 0, true},
		{"two chars", "ab", 0, true},
		{"two combining", "e\u0301e\u0301", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePad(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsCode(err, ErrCodeInvalidPad))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "\u00e9, ", NormalizeText("e\u0301, "))
	assert.Equal(t, "\n", NormalizeText("\n"))
}
