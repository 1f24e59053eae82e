// Package log defines standard attribute keys for baseline estimator operations.
//
// Using these keys consistently across all logging enables structured log
// analysis and filtering. The keys follow a hierarchical naming convention
// (e.g. "model.name", "data.targets").

package log

// Model and operation context.
const (
	// ModelNameKey identifies the type of estimator.
	// Examples: "Regressor", "Ordinal", "Nominal"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which component or package is performing the
	// operation. Examples: "dummy.regressor", "metrics"
	ComponentKey = "ml.component"

	// StrategyKey names the baseline strategy in use.
	// Values: "mean", "median", "mode"
	StrategyKey = "ml.strategy"
)

// Data shape and characteristics.
const (
	// SamplesKey indicates the number of records (rows) in a prediction batch.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of feature columns in a batch.
	// Baseline estimators never read feature values, only the batch shape.
	FeaturesKey = "data.features"

	// TargetsKey indicates the length of the training target vector.
	TargetsKey = "data.targets"

	// ClassesKey indicates the number of distinct labels seen by a nominal
	// baseline.
	ClassesKey = "data.classes"
)

// Computed statistics.
const (
	// StatisticKey carries the scalar statistic a baseline will broadcast.
	StatisticKey = "ml.statistic"
)
