package nn

import "github.com/ember-ml/ember/internal/value"

// MSELoss computes the mean squared error between predictions and targets:
//
//	loss = (1/n) * Σ (pred_i - target_i)²
//
// The returned node is the root of the whole training graph; calling
// Backward on it populates gradients for every model parameter that
// contributed to the predictions.
//
// predictions and targets must have the same length. Targets are promoted
// to constant leaves; their gradients are computed but not used.
func MSELoss(predictions []*value.Value, targets []float64) *value.Value {
	sum := value.New(0)
	for i, pred := range predictions {
		diff := pred.SubScalar(targets[i])
		sum = sum.Add(diff.Pow(2))
	}
	return sum.DivScalar(float64(len(predictions)))
}
