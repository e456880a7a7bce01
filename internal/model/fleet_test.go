package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardFleetTotals(t *testing.T) {
	f := StandardFleet()
	assert.Equal(t, 35, f.TotalCells())
	assert.Equal(t, 15, f.ShipCount())
	assert.NoError(t, f.Validate(DefaultBoardSize))
}

func TestLargestFirstDoesNotMutate(t *testing.T) {
	f := StandardFleet()
	sorted := f.LargestFirst()

	assert.Equal(t, 5, sorted[0].Length)
	assert.Equal(t, 1, sorted[len(sorted)-1].Length)
	assert.Equal(t, 1, f[0].Length)
}

func TestClassForLength(t *testing.T) {
	c, ok := StandardFleet().ClassForLength(5)
	assert.True(t, ok)
	assert.Equal(t, "carrier", c.Name)

	_, ok = StandardFleet().ClassForLength(6)
	assert.False(t, ok)
}

func TestFleetValidate(t *testing.T) {
	tests := []struct {
		name    string
		fleet   Fleet
		size    int
		wantErr error
	}{
		{"empty", Fleet{}, 10, ErrInvalidFleet},
		{"zero counts", Fleet{{Length: 2, Count: 0}}, 10, ErrInvalidFleet},
		{"length too long", Fleet{{Length: 6, Count: 1}}, 10, ErrInvalidFleet},
		{"length exceeds board", Fleet{{Length: 4, Count: 1}}, 3, ErrInvalidFleet},
		{"negative count", Fleet{{Length: 2, Count: -1}, {Length: 1, Count: 1}}, 10, ErrInvalidFleet},
		{"duplicate length", Fleet{{Length: 2, Count: 1}, {Length: 2, Count: 1}}, 10, ErrInvalidFleet},
		{"too dense", Fleet{{Length: 1, Count: 5}}, 3, ErrFleetTooDense},
		{"tight but allowed", Fleet{{Length: 1, Count: 4}}, 3, nil},
		{"single ship", Fleet{{Length: 2, Count: 1}}, 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fleet.Validate(tt.size)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
