package dummy

import (
	"github.com/yusuke-okano/baseml/core/model"
	"github.com/yusuke-okano/baseml/pkg/errors"
	"github.com/yusuke-okano/baseml/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// Ordinal is a baseline for ordinal/ranked targets that predicts the median
// of the training target vector for every record. The median uses the
// conventional midpoint rule: for an even number of targets, the average of
// the two middle elements of the sorted sequence.
type Ordinal struct {
	model.BaseEstimator

	targets   []float64
	statistic float64
}

var (
	_ model.Regressor       = (*Ordinal)(nil)
	_ model.ParameterGetter = (*Ordinal)(nil)
	_ Baseline              = (*Ordinal)(nil)
)

// NewOrdinal creates a median baseline from a target vector. The vector is
// copied and the statistic computed immediately; an empty vector fails with
// EmptyTargetError.
func NewOrdinal(targets []float64) (*Ordinal, error) {
	ord := &Ordinal{}
	if err := ord.fitTargets("NewOrdinal", targets); err != nil {
		return nil, err
	}
	return ord, nil
}

func (ord *Ordinal) fitTargets(op string, targets []float64) error {
	if len(targets) == 0 {
		return errors.NewEmptyTargetError("Ordinal", op)
	}

	ord.targets = append([]float64(nil), targets...)
	ord.statistic = medianOf(ord.targets)
	ord.SetFitted()

	log.GetLoggerWithName("dummy.ordinal").Debug("Baseline fitted",
		log.OperationKey, "fit",
		log.StrategyKey, "median",
		log.TargetsKey, len(ord.targets),
		log.StatisticKey, ord.statistic)
	return nil
}

// Fit stores y's single column as the target vector and computes its median.
// X is accepted for estimator-interface compatibility; it is validated for
// row agreement with y and otherwise ignored (X may be nil).
func (ord *Ordinal) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "Ordinal.Fit")

	targets, err := fitColumn("Ordinal", X, y)
	if err != nil {
		return err
	}
	return ord.fitTargets("Fit", targets)
}

// Predict returns an n×1 matrix where every entry is the cached median, n
// being X's row count. Pure; safe for concurrent use.
func (ord *Ordinal) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !ord.IsFitted() {
		return nil, errors.NewNotFittedError("Ordinal", "Predict")
	}

	n, err := numRecords("Ordinal.Predict", X)
	if err != nil {
		return nil, err
	}
	return broadcast(ord.statistic, n), nil
}

// Statistic returns the cached median of the stored targets.
func (ord *Ordinal) Statistic() float64 {
	return ord.statistic
}

// Score returns the coefficient of determination R² of the baseline
// prediction against y.
func (ord *Ordinal) Score(X, y mat.Matrix) (float64, error) {
	if !ord.IsFitted() {
		return 0, errors.NewNotFittedError("Ordinal", "Score")
	}
	return r2Score("Ordinal", ord, X, y)
}

// GetParams returns the parameters of the baseline.
func (ord *Ordinal) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"strategy":  "median",
		"n_targets": len(ord.targets),
	}
}
