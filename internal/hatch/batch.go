package hatch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// PredictBatch predicts each measurement in order and stops at the first
// failure, reporting its index in a *BatchError.
func PredictBatch(inputs []Measurement) ([]Prediction, error) {
	out := make([]Prediction, 0, len(inputs))
	for i, m := range inputs {
		p, err := Predict(m)
		if err != nil {
			return nil, &BatchError{Index: i, Err: err}
		}
		out = append(out, p)
	}
	return out, nil
}

// PredictBatchParallel is PredictBatch spread over up to workers goroutines.
// Every element is evaluated and the failure with the lowest index is
// returned, so the outcome matches the sequential fold.
func PredictBatchParallel(ctx context.Context, inputs []Measurement, workers int) ([]Prediction, error) {
	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return PredictBatch(inputs)
	}

	results := make([]Prediction, len(inputs))
	errs := make([]error, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, m := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i], errs[i] = Predict(m)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, err := range errs {
		if err != nil {
			return nil, &BatchError{Index: i, Err: err}
		}
	}
	return results, nil
}

// Outcome is the result of one element of an assessment.
type Outcome struct {
	Index      int
	Input      Measurement
	Prediction Prediction
	Err        error
}

// Assess predicts every measurement without stopping at failures.
func Assess(inputs []Measurement) []Outcome {
	out := make([]Outcome, len(inputs))
	for i, m := range inputs {
		p, err := Predict(m)
		out[i] = Outcome{Index: i, Input: m, Prediction: p, Err: err}
	}
	return out
}
