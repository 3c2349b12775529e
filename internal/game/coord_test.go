package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoord(t *testing.T) {
	tests := []struct {
		label string
		want  Coord
	}{
		{"a1", Coord{0, 0}},
		{"a3", Coord{0, 2}},
		{"b2", Coord{1, 1}},
		{"c1", Coord{2, 0}},
		{"c3", Coord{2, 2}},
		{"B2", Coord{1, 1}},
		{"  c2\n", Coord{2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseCoord(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCoordRejectsMalformedLabels(t *testing.T) {
	for _, label := range []string{"", "a", "a0", "a4", "d1", "1a", "a12", "aa", "11", "ä1", "x"} {
		t.Run(label, func(t *testing.T) {
			_, err := ParseCoord(label)
			assert.ErrorIs(t, err, ErrInvalidCell)
		})
	}
}

func TestCoordString(t *testing.T) {
	for _, c := range AllCoords() {
		parsed, err := ParseCoord(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	assert.Equal(t, "(3,-1)", Coord{Row: 3, Col: -1}.String())
}

func TestAllCoordsOrder(t *testing.T) {
	var labels []string
	for _, c := range AllCoords() {
		labels = append(labels, c.String())
	}
	assert.Equal(t, []string{"a1", "a2", "a3", "b1", "b2", "b3", "c1", "c2", "c3"}, labels)
}
