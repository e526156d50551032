package classifier

import "math"

// Logistic is a binary logistic regression model.
type Logistic struct {
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
}

// Probability returns sigmoid(coef·v + intercept).
func (l *Logistic) Probability(v SparseVector) float64 {
	return sigmoid(v.Dot(l.Coef) + l.Intercept)
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

// fitLogistic minimises mean log-loss plus ||w||²/(2Cn) by full-batch gradient descent.
// The intercept is not regularised.
func fitLogistic(xs []SparseVector, ys []float64, features int, opts TrainOptions) *Logistic {
	model := &Logistic{Coef: make([]float64, features)}
	n := float64(len(xs))
	grad := make([]float64, features)

	for iter := 0; iter < opts.MaxIter; iter++ {
		for j := range grad {
			grad[j] = model.Coef[j] / (opts.C * n)
		}
		var gradB float64
		for i, x := range xs {
			residual := (model.Probability(x) - ys[i]) / n
			for k, idx := range x.Indices {
				grad[idx] += residual * x.Values[k]
			}
			gradB += residual
		}

		maxGrad := math.Abs(gradB)
		for j := range grad {
			model.Coef[j] -= opts.LearningRate * grad[j]
			maxGrad = math.Max(maxGrad, math.Abs(grad[j]))
		}
		model.Intercept -= opts.LearningRate * gradB

		if maxGrad < opts.Tolerance {
			break
		}
	}
	return model
}
