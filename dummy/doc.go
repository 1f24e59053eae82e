// Package dummy provides naive baseline predictors for supervised-learning
// benchmarking, mirroring scikit-learn's dummy estimators.
//
// Each predictor stores a training target vector, computes one representative
// statistic from it at construction time, and on every prediction request
// returns that statistic once per queried record. Feature values are never
// read; only the batch's record count is used to size the output. The point
// of these estimators is to provide a reference score that real models must
// beat, not to learn anything.
//
// Three variants are provided:
//
//   - Regressor: arithmetic mean, for continuous targets
//   - Ordinal: median, for ordinal/ranked targets
//   - Nominal: mode, for categorical targets
//
// # Basic Usage
//
//	reg, err := dummy.NewRegressor([]float64{1, 2, 3, 4})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pred, _ := reg.Predict(X) // every row of pred is 2.5
//
// Labels of any comparable type work with the nominal variant:
//
//	clf, _ := dummy.NewNominal([]string{"a", "b", "b", "c"})
//	labels, _ := clf.Predict(X) // every element is "b"
//
// The scikit-learn style Fit(X, y) surface is also supported for the numeric
// variants, so a baseline can stand in wherever a real estimator is used:
//
//	var reg dummy.Regressor
//	if err := reg.Fit(XTrain, yTrain); err != nil { ... }
//	r2, _ := reg.Score(XTest, yTest)
//
// Predict is a pure read of immutable cached state and is safe for concurrent
// use without locking. The stored target vector is copied at construction and
// never mutated afterwards.
package dummy
