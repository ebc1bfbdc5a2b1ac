package rebar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rcerrors "github.com/alexiusacademia/gorcc/internal/errors"
)

func TestDefaultLookup(t *testing.T) {
	tests := []struct {
		designation string
		diameter    float64
		area        float64
	}{
		{"#3", 0.9525, 0.71},
		{"#5", 1.5875, 2.0},
		{"#8", 2.865, 5.1},
		{"#9", 3.226, 6.45},
		{" #4 ", 1.27, 1.27},
	}

	for _, tt := range tests {
		t.Run(tt.designation, func(t *testing.T) {
			d, a, err := Default.Lookup(tt.designation)
			require.NoError(t, err)
			assert.Equal(t, tt.diameter, d)
			assert.Equal(t, tt.area, a)
		})
	}
}

func TestUnknownSize(t *testing.T) {
	_, _, err := Default.Lookup("#12")
	require.Error(t, err)
	assert.True(t, rcerrors.Is(err, rcerrors.ErrCodeUnknownRebarSize))
	assert.Equal(t, "designation", rcerrors.GetField(err))
}

func TestSizesOrdered(t *testing.T) {
	sizes := Default.Sizes()
	require.Len(t, sizes, 7)

	got := make([]string, len(sizes))
	for i, s := range sizes {
		got[i] = s.Designation
	}
	assert.Equal(t, []string{"#3", "#4", "#5", "#6", "#7", "#8", "#9"}, got)
}

func TestNewCatalog(t *testing.T) {
	c := NewCatalog(
		Size{"#10", 3.226, 8.19},
		Size{"#4", 1.27, 1.29},
		Size{"#4", 1.27, 1.27},
	)

	s, err := c.Size("#4")
	require.NoError(t, err)
	assert.Equal(t, 1.27, s.Area, "later duplicates win")

	sizes := c.Sizes()
	require.Len(t, sizes, 2)
	assert.Equal(t, "#4", sizes[0].Designation)
	assert.Equal(t, "#10", sizes[1].Designation)
}
