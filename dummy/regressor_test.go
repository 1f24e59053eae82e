package dummy

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/yusuke-okano/baseml/pkg/errors"
	"github.com/yusuke-okano/baseml/pkg/log"
)

// TestRegressorPredictsMean checks the mean of [1,2,3,4] broadcast over a
// three-record batch.
func TestRegressorPredictsMean(t *testing.T) {
	reg, err := NewRegressor([]float64{1, 2, 3, 4})
	require.NoError(t, err)

	X := mat.NewDense(3, 2, []float64{
		10, 20,
		30, 40,
		50, 60,
	})

	pred, err := reg.Predict(X)
	require.NoError(t, err)

	rows, cols := pred.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 1, cols)
	for i := 0; i < rows; i++ {
		assert.InDelta(t, 2.5, pred.At(i, 0), 1e-12)
	}
	assert.InDelta(t, 2.5, reg.Statistic(), 1e-12)
}

// TestRegressorIgnoresFeatureValues verifies that only the batch's record
// count affects the output.
func TestRegressorIgnoresFeatureValues(t *testing.T) {
	reg, err := NewRegressor([]float64{5, 10, 15})
	require.NoError(t, err)

	a := mat.NewDense(4, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
		10, 11, 12,
	})
	b := mat.NewDense(4, 1, []float64{-1e9, 0, 1e9, 42})

	predA, err := reg.Predict(a)
	require.NoError(t, err)
	predB, err := reg.Predict(b)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		assert.Equal(t, predA.At(i, 0), predB.At(i, 0))
	}
}

func TestRegressorBatchSizes(t *testing.T) {
	reg, err := NewRegressor([]float64{2, 4})
	require.NoError(t, err)

	for _, n := range []int{1, 2, 17, parallelThreshold + 1} {
		X := mat.NewDense(n, 1, nil)
		pred, err := reg.Predict(X)
		require.NoError(t, err)

		rows, _ := pred.Dims()
		assert.Equal(t, n, rows)
		assert.Equal(t, 3.0, pred.At(n-1, 0))
	}
}

func TestRegressorEmptyTargets(t *testing.T) {
	_, err := NewRegressor(nil)
	require.Error(t, err)

	var emptyErr *errors.EmptyTargetError
	assert.True(t, errors.As(err, &emptyErr))
	assert.Equal(t, "Regressor", emptyErr.Estimator)
}

func TestRegressorInvalidBatch(t *testing.T) {
	reg, err := NewRegressor([]float64{1})
	require.NoError(t, err)

	_, err = reg.Predict(nil)
	require.Error(t, err)

	var invalidErr *errors.InvalidInputError
	assert.True(t, errors.As(err, &invalidErr))
}

func TestRegressorNotFitted(t *testing.T) {
	var reg Regressor

	_, err := reg.Predict(mat.NewDense(2, 1, nil))
	require.Error(t, err)

	var notFittedErr *errors.NotFittedError
	assert.True(t, errors.As(err, &notFittedErr))

	_, err = reg.Score(mat.NewDense(2, 1, nil), mat.NewDense(2, 1, nil))
	require.Error(t, err)
	assert.True(t, errors.As(err, &notFittedErr))
}

func TestRegressorFit(t *testing.T) {
	X := mat.NewDense(4, 2, nil)
	y := mat.NewDense(4, 1, []float64{1, 2, 3, 4})

	var reg Regressor
	err := reg.Fit(X, y)
	require.NoError(t, err)
	assert.True(t, reg.IsFitted())
	assert.InDelta(t, 2.5, reg.Statistic(), 1e-12)

	// Row mismatch between X and y.
	err = reg.Fit(mat.NewDense(3, 2, nil), y)
	require.Error(t, err)
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))
}

// TestRegressorResetRequiresRefit: after Reset the estimator refuses to
// predict until it is fitted again.
func TestRegressorResetRequiresRefit(t *testing.T) {
	reg, err := NewRegressor([]float64{1, 2, 3, 4})
	require.NoError(t, err)

	reg.Reset()
	assert.False(t, reg.IsFitted())

	_, err = reg.Predict(mat.NewDense(2, 1, nil))
	require.Error(t, err)
	var notFittedErr *errors.NotFittedError
	assert.True(t, errors.As(err, &notFittedErr))

	err = reg.Fit(nil, mat.NewDense(2, 1, []float64{10, 20}))
	require.NoError(t, err)

	pred, err := reg.Predict(mat.NewDense(2, 1, nil))
	require.NoError(t, err)
	assert.InDelta(t, 15.0, pred.At(0, 0), 1e-12)
}

// TestRegressorStatisticIsStable verifies the statistic never changes after
// construction, even if the caller's slice is mutated afterwards.
func TestRegressorStatisticIsStable(t *testing.T) {
	targets := []float64{1, 2, 3, 4}
	reg, err := NewRegressor(targets)
	require.NoError(t, err)

	targets[0] = 1000

	pred, err := reg.Predict(mat.NewDense(2, 1, nil))
	require.NoError(t, err)
	assert.InDelta(t, 2.5, pred.At(0, 0), 1e-12)
}

// TestRegressorScoreOnTrainingTargets checks the R² floor: a mean baseline
// scored against its own training targets lands at exactly zero.
func TestRegressorScoreOnTrainingTargets(t *testing.T) {
	y := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	X := mat.NewDense(4, 1, nil)

	var reg Regressor
	require.NoError(t, reg.Fit(X, y))

	score, err := reg.Score(X, y)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, score, 1e-12)
}

func TestRegressorConcurrentPredict(t *testing.T) {
	reg, err := NewRegressor([]float64{1, 2, 3})
	require.NoError(t, err)

	X := mat.NewDense(8, 2, nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pred, err := reg.Predict(X)
			if err != nil {
				t.Error(err)
				return
			}
			if pred.At(0, 0) != 2.0 {
				t.Errorf("concurrent Predict = %v, want 2.0", pred.At(0, 0))
			}
		}()
	}
	wg.Wait()
}

func TestRegressorFitLogs(t *testing.T) {
	provider, _ := log.NewTestLoggerProvider(log.LevelDebug)
	log.SetProvider(provider)
	defer log.SetProvider(nil)

	_, err := NewRegressor([]float64{1, 2, 3, 4})
	require.NoError(t, err)

	logger := provider.GetLogger().(*log.TestLogger)
	assert.True(t, logger.ContainsMessage("Baseline fitted"))
	assert.True(t, logger.ContainsField(log.StrategyKey, "mean"))
}

func TestRegressorGetParams(t *testing.T) {
	reg, err := NewRegressor([]float64{1, 2, 3})
	require.NoError(t, err)

	params := reg.GetParams()
	assert.Equal(t, "mean", params["strategy"])
	assert.Equal(t, 3, params["n_targets"])
}
