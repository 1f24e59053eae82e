package dummy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/yusuke-okano/baseml/pkg/errors"
)

// TestOrdinalPredictsMedianOddLength: the median of [1,2,3,4,100] is 3, and
// the outlier does not pull it the way it pulls the mean.
func TestOrdinalPredictsMedianOddLength(t *testing.T) {
	ord, err := NewOrdinal([]float64{1, 2, 3, 4, 100})
	require.NoError(t, err)

	pred, err := ord.Predict(mat.NewDense(2, 3, nil))
	require.NoError(t, err)

	rows, cols := pred.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 1, cols)
	assert.Equal(t, 3.0, pred.At(0, 0))
	assert.Equal(t, 3.0, pred.At(1, 0))
}

// TestOrdinalPredictsMedianEvenLength: midpoint rule, (2+4)/2 = 3.0 for
// [1,2,4,4].
func TestOrdinalPredictsMedianEvenLength(t *testing.T) {
	ord, err := NewOrdinal([]float64{1, 2, 4, 4})
	require.NoError(t, err)

	pred, err := ord.Predict(mat.NewDense(1, 1, []float64{99}))
	require.NoError(t, err)

	rows, _ := pred.Dims()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 3.0, pred.At(0, 0))
	assert.Equal(t, 3.0, ord.Statistic())
}

func TestOrdinalIgnoresFeatureValues(t *testing.T) {
	ord, err := NewOrdinal([]float64{7, 8, 9})
	require.NoError(t, err)

	a := mat.NewDense(5, 2, []float64{1, 1, 2, 2, 3, 3, 4, 4, 5, 5})
	b := mat.NewVecDense(5, []float64{-4, 0, 4, 8, 12})

	predA, err := ord.Predict(a)
	require.NoError(t, err)
	predB, err := ord.Predict(b)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		assert.Equal(t, predA.At(i, 0), predB.At(i, 0))
		assert.Equal(t, 8.0, predA.At(i, 0))
	}
}

func TestOrdinalEmptyTargets(t *testing.T) {
	_, err := NewOrdinal([]float64{})
	require.Error(t, err)

	var emptyErr *errors.EmptyTargetError
	assert.True(t, errors.As(err, &emptyErr))
	assert.Equal(t, "Ordinal", emptyErr.Estimator)
}

func TestOrdinalFitAndScore(t *testing.T) {
	X := mat.NewDense(5, 1, nil)
	y := mat.NewDense(5, 1, []float64{1, 2, 3, 4, 100})

	var ord Ordinal
	require.NoError(t, ord.Fit(X, y))
	assert.Equal(t, 3.0, ord.Statistic())

	// A constant median prediction on skewed targets scores below zero:
	// worse than the mean baseline, which defines R² = 0.
	score, err := ord.Score(X, y)
	require.NoError(t, err)
	assert.Less(t, score, 0.0)
}

func TestOrdinalNotFitted(t *testing.T) {
	var ord Ordinal

	_, err := ord.Predict(mat.NewDense(1, 1, nil))
	require.Error(t, err)

	var notFittedErr *errors.NotFittedError
	assert.True(t, errors.As(err, &notFittedErr))
}

func TestOrdinalInvalidBatch(t *testing.T) {
	ord, err := NewOrdinal([]float64{1, 2})
	require.NoError(t, err)

	_, err = ord.Predict(nil)
	require.Error(t, err)

	var invalidErr *errors.InvalidInputError
	assert.True(t, errors.As(err, &invalidErr))
}

func TestOrdinalGetParams(t *testing.T) {
	ord, err := NewOrdinal([]float64{1, 2, 4, 4})
	require.NoError(t, err)

	params := ord.GetParams()
	assert.Equal(t, "median", params["strategy"])
	assert.Equal(t, 4, params["n_targets"])
}
