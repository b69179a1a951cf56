package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHints(t *testing.T) {
	tests := []struct {
		in   float64
		want int32
	}{
		{0, 0},
		{0.7000000000000001, 70},
		{1, 100},
		{1.5, 100},
		{-0.2, 0},
	}
	for _, tt := range tests {
		h := Hints(tt.in)
		assert.Equal(t, tt.want, h["value"].Value(), "Hints(%v)", tt.in)
		assert.Equal(t, "xmon-brightness", h["x-canonical-private-synchronous"].Value())
	}
}
