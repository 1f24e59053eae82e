package dummy

import (
	"github.com/yusuke-okano/baseml/core/parallel"
	"github.com/yusuke-okano/baseml/metrics"
	"github.com/yusuke-okano/baseml/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// parallelThreshold is the record count below which prediction buffers are
// filled sequentially.
const parallelThreshold = 4096

// Baseline is the capability shared by the numeric baseline variants:
// a cached scalar statistic broadcast over any prediction batch.
type Baseline interface {
	// Statistic returns the scalar the baseline predicts for every record.
	Statistic() float64

	// Predict returns an n×1 matrix of the statistic, where n is X's
	// row count.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// numRecords extracts the record count from a feature batch. Only the batch
// shape is consumed; element values are never read. A *mat.VecDense serves as
// the one-dimensional batch form (n rows, one implicit feature).
func numRecords(op string, X mat.Matrix) (int, error) {
	if X == nil {
		return 0, errors.NewInvalidInputError(op, "feature matrix is nil")
	}
	n, _ := X.Dims()
	if n <= 0 {
		return 0, errors.NewInvalidInputError(op, "feature matrix reports no rows")
	}
	return n, nil
}

// repeat returns a slice of length n with every element equal to v.
// n == 0 yields an empty, non-nil slice.
func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = v
		}
	})
	return out
}

// broadcast returns an n×1 matrix with every entry equal to v. n must be
// positive; numRecords guarantees that for all Predict paths.
func broadcast(v float64, n int) *mat.Dense {
	return mat.NewDense(n, 1, repeat(v, n))
}

// fitColumn validates a supervised (X, y) pair and extracts y's single column
// as a target vector. X may be nil; when present it is only checked for row
// agreement with y, its values are ignored.
func fitColumn(estimator string, X, y mat.Matrix) ([]float64, error) {
	op := estimator + ".Fit"

	if y == nil {
		return nil, errors.NewInvalidInputError(op, "target matrix is nil")
	}
	yRows, yCols := y.Dims()
	if yCols != 1 {
		return nil, errors.NewDimensionError(op, 1, yCols, 1)
	}
	if X != nil {
		xRows, _ := X.Dims()
		if xRows != yRows {
			return nil, errors.NewDimensionError(op, xRows, yRows, 0)
		}
	}
	if yRows == 0 {
		return nil, errors.NewEmptyTargetError(estimator, "Fit")
	}

	targets := make([]float64, yRows)
	for i := 0; i < yRows; i++ {
		targets[i] = y.At(i, 0)
	}
	return targets, nil
}

// r2Score computes the coefficient of determination of p's predictions on X
// against the ground truth column y. Shared by the numeric variants' Score.
func r2Score(modelName string, p Baseline, X, y mat.Matrix) (float64, error) {
	op := modelName + ".Score"

	pred, err := p.Predict(X)
	if err != nil {
		return 0, err
	}

	if y == nil {
		return 0, errors.NewInvalidInputError(op, "target matrix is nil")
	}
	yRows, yCols := y.Dims()
	if yCols != 1 {
		return 0, errors.NewValueError(op, "y must be a column vector")
	}
	n, _ := pred.Dims()
	if yRows != n {
		return 0, errors.NewDimensionError(op, n, yRows, 0)
	}

	yVec := mat.NewVecDense(n, nil)
	predVec := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		yVec.SetVec(i, y.At(i, 0))
		predVec.SetVec(i, pred.At(i, 0))
	}
	return metrics.R2Score(yVec, predVec)
}
