// Package baseml provides naive baseline predictors for supervised-learning
// benchmarking in Go.
//
// A baseline predictor ignores input features entirely and returns a fixed
// summary statistic of the training targets for every queried record. Its
// score is the minimum bar a real model has to clear: if a trained regressor
// cannot beat "always predict the mean", it has learned nothing.
//
// # Features
//
// - Three variants: mean (continuous), median (ordinal), mode (categorical)
// - scikit-learn-like API: constructors plus Fit/Predict/Score surfaces
// - Generic label support: the nominal baseline works with any comparable type
// - Robust error handling: structured error kinds with stack traces
// - Concurrency-safe prediction: pure reads of immutable cached statistics
//
// # Installation
//
// Install baseml using go get:
//
//	go get github.com/yusuke-okano/baseml
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/yusuke-okano/baseml/dummy"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    reg, err := dummy.NewRegressor([]float64{1, 2, 3, 4})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    X := mat.NewDense(3, 2, nil) // values are irrelevant, only the row count matters
//	    pred, err := reg.Predict(X)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(mat.Formatted(pred)) // [2.5; 2.5; 2.5]
//	}
//
// The estimator packages are:
//
//   - dummy: the baseline predictors themselves
//   - metrics: scoring utilities (MSE, MAE, R², accuracy) for comparing real
//     models against the baselines
package baseml
