package dummy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/yusuke-okano/baseml/pkg/errors"
)

func TestRepeat(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		n     int
	}{
		{name: "empty result for zero records", value: 2.5, n: 0},
		{name: "single record", value: -1.5, n: 1},
		{name: "small batch", value: 3.0, n: 7},
		{name: "above parallel threshold", value: 0.25, n: parallelThreshold + 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repeat(tt.value, tt.n)

			if len(got) != tt.n {
				t.Fatalf("len(repeat()) = %d, want %d", len(got), tt.n)
			}
			for i, v := range got {
				if v != tt.value {
					t.Fatalf("repeat()[%d] = %v, want %v", i, v, tt.value)
				}
			}
		})
	}
}

func TestNumRecords(t *testing.T) {
	n, err := numRecords("test", mat.NewDense(3, 2, nil))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// A column vector is the one-dimensional batch form.
	n, err = numRecords("test", mat.NewVecDense(5, nil))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = numRecords("test", nil)
	require.Error(t, err)
	var invalidErr *errors.InvalidInputError
	assert.True(t, errors.As(err, &invalidErr))
}

func TestBroadcastShape(t *testing.T) {
	out := broadcast(1.25, 4)

	rows, cols := out.Dims()
	assert.Equal(t, 4, rows)
	assert.Equal(t, 1, cols)
	for i := 0; i < rows; i++ {
		assert.Equal(t, 1.25, out.At(i, 0))
	}
}

func TestFitColumnValidation(t *testing.T) {
	y := mat.NewDense(4, 1, []float64{1, 2, 3, 4})

	// Matching rows.
	targets, err := fitColumn("Regressor", mat.NewDense(4, 2, nil), y)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, targets)

	// X is optional.
	targets, err = fitColumn("Regressor", nil, y)
	require.NoError(t, err)
	assert.Len(t, targets, 4)

	// Row mismatch between X and y.
	_, err = fitColumn("Regressor", mat.NewDense(3, 2, nil), y)
	require.Error(t, err)
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))

	// y must be a single column.
	_, err = fitColumn("Regressor", nil, mat.NewDense(4, 2, nil))
	require.Error(t, err)
	assert.True(t, errors.As(err, &dimErr))

	// Nil y cannot report a record count.
	_, err = fitColumn("Regressor", nil, nil)
	require.Error(t, err)
	var invalidErr *errors.InvalidInputError
	assert.True(t, errors.As(err, &invalidErr))
}
