package dummy

import (
	"fmt"
	"math"

	"github.com/yusuke-okano/baseml/core/model"
	"github.com/yusuke-okano/baseml/metrics"
	"github.com/yusuke-okano/baseml/pkg/errors"
	"github.com/yusuke-okano/baseml/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// Nominal is a baseline classifier for categorical targets that predicts the
// most frequent training label for every record. T may be any comparable
// label type: strings, integers, or float64 class codes.
//
// When several labels are tied for most frequent, the label returned is
// implementation-defined (currently the first to reach the maximal count in
// target order) and must not be relied upon; a given instance always returns
// the same label because the statistic is computed once at construction.
type Nominal[T comparable] struct {
	model.BaseEstimator

	targets []T
	classes []T // distinct labels in first-seen order
	counts  map[T]int
	mode    T
}

// NewNominal creates a mode baseline from a target vector of labels. The
// vector is copied and the statistic computed immediately; an empty vector
// fails with EmptyTargetError.
func NewNominal[T comparable](targets []T) (*Nominal[T], error) {
	if len(targets) == 0 {
		return nil, errors.NewEmptyTargetError("Nominal", "NewNominal")
	}

	clf := &Nominal[T]{targets: append([]T(nil), targets...)}
	clf.mode, clf.classes, clf.counts = modeOf(clf.targets)
	clf.SetFitted()

	log.GetLoggerWithName("dummy.nominal").Debug("Baseline fitted",
		log.OperationKey, "fit",
		log.StrategyKey, "mode",
		log.TargetsKey, len(clf.targets),
		log.ClassesKey, len(clf.classes),
		log.StatisticKey, fmt.Sprintf("%v", clf.mode))
	return clf, nil
}

// NewNominalFromMatrix creates a mode baseline from the single column of y,
// treating each value as a float64 class code. NaN cannot serve as a label
// and fails with TypeMismatchError. X may be nil; when present it is only
// checked for row agreement with y.
func NewNominalFromMatrix(X, y mat.Matrix) (*Nominal[float64], error) {
	labels, err := fitColumn("Nominal", X, y)
	if err != nil {
		return nil, errors.Wrap(err, "NewNominalFromMatrix")
	}

	for i, v := range labels {
		if math.IsNaN(v) {
			return nil, errors.NewTypeMismatchError("NewNominalFromMatrix",
				"finite label", fmt.Sprintf("NaN at row %d", i))
		}
	}
	return NewNominal(labels)
}

// Predict returns a slice of length equal to X's row count where every
// element is the most frequent training label. Pure; safe for concurrent use.
func (clf *Nominal[T]) Predict(X mat.Matrix) ([]T, error) {
	if !clf.IsFitted() {
		return nil, errors.NewNotFittedError("Nominal", "Predict")
	}

	n, err := numRecords("Nominal.Predict", X)
	if err != nil {
		return nil, err
	}

	out := make([]T, n)
	for i := range out {
		out[i] = clf.mode
	}
	return out, nil
}

// PredictProba returns an n×k matrix of empirical class frequencies, one row
// per record in X and one column per class in Classes() order. Every row is
// identical: the training distribution of the labels.
func (clf *Nominal[T]) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	if !clf.IsFitted() {
		return nil, errors.NewNotFittedError("Nominal", "PredictProba")
	}

	n, err := numRecords("Nominal.PredictProba", X)
	if err != nil {
		return nil, err
	}

	row := make([]float64, len(clf.classes))
	total := float64(len(clf.targets))
	for j, class := range clf.classes {
		row[j] = float64(clf.counts[class]) / total
	}

	proba := mat.NewDense(n, len(clf.classes), nil)
	for i := 0; i < n; i++ {
		proba.SetRow(i, row)
	}
	return proba, nil
}

// Statistic returns the cached most frequent label.
func (clf *Nominal[T]) Statistic() T {
	return clf.mode
}

// Classes returns the distinct labels in first-seen order. The returned
// slice is a copy.
func (clf *Nominal[T]) Classes() []T {
	return append([]T(nil), clf.classes...)
}

// Score returns the accuracy of the baseline prediction against yTrue,
// which must have one label per record in X.
func (clf *Nominal[T]) Score(X mat.Matrix, yTrue []T) (float64, error) {
	if !clf.IsFitted() {
		return 0, errors.NewNotFittedError("Nominal", "Score")
	}

	pred, err := clf.Predict(X)
	if err != nil {
		return 0, err
	}
	if len(yTrue) != len(pred) {
		return 0, errors.NewDimensionError("Nominal.Score", len(pred), len(yTrue), 0)
	}
	return metrics.AccuracyLabels(yTrue, pred)
}

// GetParams returns the parameters of the baseline.
func (clf *Nominal[T]) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"strategy":  "mode",
		"n_targets": len(clf.targets),
		"n_classes": len(clf.classes),
	}
}
