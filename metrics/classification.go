package metrics

import (
	"github.com/yusuke-okano/baseml/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Accuracy は正解率を計算する
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	// 入力検証
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("Accuracy", n, yPred.Len(), 0)
	}

	// 一致したラベルの割合
	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}

	return float64(correct) / float64(n), nil
}

// AccuracyLabels は任意のラベル型に対する正解率を計算する。
// 名義ベースライン（最頻値予測）のスコアリングに使用される。
func AccuracyLabels[T comparable](yTrue, yPred []T) (float64, error) {
	// 入力検証
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("AccuracyLabels", "empty label slice")
	}

	if len(yPred) != n {
		return 0, errors.NewDimensionError("AccuracyLabels", n, len(yPred), 0)
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}

	return float64(correct) / float64(n), nil
}
