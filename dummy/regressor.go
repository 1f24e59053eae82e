package dummy

import (
	"github.com/yusuke-okano/baseml/core/model"
	"github.com/yusuke-okano/baseml/pkg/errors"
	"github.com/yusuke-okano/baseml/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// Regressor is a baseline for continuous targets that predicts the arithmetic
// mean of the training target vector for every record. Feature values are
// never read; only the batch's record count sizes the output.
//
// Numeric semantics are the standard floating-point mean. Behavior on
// non-finite targets (NaN, Inf) is the caller's responsibility: the mean
// propagates them naturally.
type Regressor struct {
	model.BaseEstimator

	targets   []float64
	statistic float64
}

var (
	_ model.Regressor       = (*Regressor)(nil)
	_ model.ParameterGetter = (*Regressor)(nil)
	_ Baseline              = (*Regressor)(nil)
)

// NewRegressor creates a mean baseline from a target vector. The vector is
// copied and the statistic computed immediately; an empty vector fails with
// EmptyTargetError.
func NewRegressor(targets []float64) (*Regressor, error) {
	reg := &Regressor{}
	if err := reg.fitTargets("NewRegressor", targets); err != nil {
		return nil, err
	}
	return reg, nil
}

func (reg *Regressor) fitTargets(op string, targets []float64) error {
	if len(targets) == 0 {
		return errors.NewEmptyTargetError("Regressor", op)
	}

	reg.targets = append([]float64(nil), targets...)
	reg.statistic = meanOf(reg.targets)
	reg.SetFitted()

	log.GetLoggerWithName("dummy.regressor").Debug("Baseline fitted",
		log.OperationKey, "fit",
		log.StrategyKey, "mean",
		log.TargetsKey, len(reg.targets),
		log.StatisticKey, reg.statistic)
	return nil
}

// Fit stores y's single column as the target vector and computes its mean.
// X is accepted for estimator-interface compatibility; it is validated for
// row agreement with y and otherwise ignored (X may be nil).
func (reg *Regressor) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "Regressor.Fit")

	targets, err := fitColumn("Regressor", X, y)
	if err != nil {
		return err
	}
	return reg.fitTargets("Fit", targets)
}

// Predict returns an n×1 matrix where every entry is the cached mean, n being
// X's row count. Pure; safe for concurrent use.
func (reg *Regressor) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !reg.IsFitted() {
		return nil, errors.NewNotFittedError("Regressor", "Predict")
	}

	n, err := numRecords("Regressor.Predict", X)
	if err != nil {
		return nil, err
	}
	return broadcast(reg.statistic, n), nil
}

// Statistic returns the cached arithmetic mean of the stored targets.
func (reg *Regressor) Statistic() float64 {
	return reg.statistic
}

// Score returns the coefficient of determination R² of the baseline
// prediction against y. For targets drawn from the training distribution
// this is close to zero, the floor a real regressor has to beat.
func (reg *Regressor) Score(X, y mat.Matrix) (float64, error) {
	if !reg.IsFitted() {
		return 0, errors.NewNotFittedError("Regressor", "Score")
	}
	return r2Score("Regressor", reg, X, y)
}

// GetParams returns the parameters of the baseline.
func (reg *Regressor) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"strategy":  "mean",
		"n_targets": len(reg.targets),
	}
}
