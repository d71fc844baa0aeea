/*
 *     Copyright 2023 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package models

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"gonum.org/v1/gonum/floats"

	"d7y.io/logit/classifier/dataset"
	logger "d7y.io/logit/internal/dflog"
	"d7y.io/logit/internal/dferrors"
	"d7y.io/logit/pkg/math"
)

const (
	// MinMaxIters is the exclusive lower bound of maxIters.
	MinMaxIters = 10

	// MaxMaxIters is the exclusive upper bound of maxIters.
	MaxMaxIters = 10000

	// MinLearningRate is the exclusive lower bound of the learning rate.
	MinLearningRate = 1e-7

	// MaxLearningRate is the exclusive upper bound of the learning rate.
	MaxLearningRate = 1e-1

	// MinEpsilon is the exclusive lower bound of the convergence threshold.
	MinEpsilon = 1e-7

	// MaxEpsilon is the exclusive upper bound of the convergence threshold.
	MaxEpsilon = 0.25
)

// weightsLen is the bias plus one coefficient per coordinate.
const weightsLen = 3

const (
	// Model is training, it is never observable outside NewLogisticRegression.
	ModelStateTraining = "Training"

	// Model converged, classify always succeeds.
	ModelStateTrained = "Trained"

	// Model exhausted maxIters, classify always yields nothing.
	ModelStateUntrained = "Untrained"
)

const (
	// Model converged.
	ModelEventConverge = "Converge"

	// Model exhausted maxIters without converging.
	ModelEventExhaust = "Exhaust"
)

// Classification is the result of classifying a point.
type Classification struct {
	// Positive is Likelihood > 0.
	Positive bool `json:"positive"`

	// Likelihood is the raw linear score w0 + w1*x1 + w2*x2,
	// it is not bounded to [0, 1].
	Likelihood float64 `json:"likelihood"`

	// Probability is the sigmoid of Likelihood.
	Probability float64 `json:"probability"`
}

// LogisticRegression is a binary classifier of two dimensional points.
// It is trained once by NewLogisticRegression and is either fitted for
// its whole lifetime or never able to classify.
type LogisticRegression struct {
	id string

	// weights is nil unless training converged.
	weights []float64

	// iterations is the number of iterations executed.
	iterations int

	gradient Gradient
	distance Distance
	source   Source
	observer Observer

	// fsm is the state machine of the model.
	fsm *fsm.FSM
}

// Option is a functional option for configuring the training.
type Option func(lr *LogisticRegression)

// WithSource sets the random source of the initial weights.
func WithSource(source Source) Option {
	return func(lr *LogisticRegression) {
		lr.source = source
	}
}

// WithObserver sets the observer of the training loop.
func WithObserver(observer Observer) Option {
	return func(lr *LogisticRegression) {
		lr.observer = observer
	}
}

// WithGradient sets the gradient variant.
func WithGradient(gradient Gradient) Option {
	return func(lr *LogisticRegression) {
		lr.gradient = gradient
	}
}

// WithDistance sets the convergence distance.
func WithDistance(distance Distance) Option {
	return func(lr *LogisticRegression) {
		lr.distance = distance
	}
}

// WithID sets the model id used in logs.
func WithID(id string) Option {
	return func(lr *LogisticRegression) {
		lr.id = id
	}
}

// NewLogisticRegression validates the parameters and trains a model on set.
// A model that does not converge within maxIters is returned unfitted
// without error.
func NewLogisticRegression(set dataset.TrainingSet, maxIters int, learningRate, epsilon float64, options ...Option) (*LogisticRegression, error) {
	if !(maxIters > MinMaxIters && maxIters < MaxMaxIters) {
		return nil, fmt.Errorf("maxIters %d is out of range (%d, %d): %w", maxIters, MinMaxIters, MaxMaxIters, dferrors.ErrInvalidArgument)
	}

	if !(learningRate > MinLearningRate && learningRate < MaxLearningRate) {
		return nil, fmt.Errorf("eta %v is out of range (%v, %v): %w", learningRate, MinLearningRate, MaxLearningRate, dferrors.ErrInvalidArgument)
	}

	if !(epsilon > MinEpsilon && epsilon < MaxEpsilon) {
		return nil, fmt.Errorf("eps %v is out of range (%v, %v): %w", epsilon, MinEpsilon, MaxEpsilon, dferrors.ErrInvalidArgument)
	}

	if set == nil {
		return nil, fmt.Errorf("labels is nil: %w", dferrors.ErrInvalidArgument)
	}

	if set.Len() <= 1 {
		return nil, fmt.Errorf("labels size %d requires more than 1 point: %w", set.Len(), dferrors.ErrInvalidArgument)
	}

	lr := &LogisticRegression{
		gradient: SharedGradient,
		distance: SumDistance,
		source:   systemSource{},
		observer: nopObserver{},
	}

	for _, opt := range options {
		opt(lr)
	}

	if !lr.gradient.IsValid() {
		return nil, fmt.Errorf("gradient %q: %w", lr.gradient, dferrors.ErrInvalidArgument)
	}

	if !lr.distance.IsValid() {
		return nil, fmt.Errorf("distance %q: %w", lr.distance, dferrors.ErrInvalidArgument)
	}

	if lr.source == nil {
		lr.source = systemSource{}
	}

	if lr.observer == nil {
		lr.observer = nopObserver{}
	}

	if lr.id == "" {
		lr.id = uuid.NewString()
	}

	// Initialize state machine.
	log := logger.WithModel(lr.id)
	lr.fsm = fsm.NewFSM(
		ModelStateTraining,
		fsm.Events{
			{Name: ModelEventConverge, Src: []string{ModelStateTraining}, Dst: ModelStateTrained},
			{Name: ModelEventExhaust, Src: []string{ModelStateTraining}, Dst: ModelStateUntrained},
		},
		fsm.Callbacks{
			"enter_state": func(ctx context.Context, e *fsm.Event) {
				log.Debugf("model state is %s", e.FSM.Current())
			},
		},
	)

	if err := lr.fit(set, maxIters, learningRate, epsilon); err != nil {
		return nil, err
	}

	return lr, nil
}

// fit runs batch gradient ascent until the distance between two
// consecutive weight vectors is below epsilon.
func (lr *LogisticRegression) fit(set dataset.TrainingSet, maxIters int, learningRate, epsilon float64) error {
	log := logger.WithModel(lr.id)

	w := make([]float64, weightsLen)
	for i := range w {
		w[i] = lr.source.Float64() - 1.0
	}
	log.Debugf("initial weights %v, gradient %s, distance %s", w, lr.gradient, lr.distance)

	dw := make([]float64, weightsLen)
	next := make([]float64, weightsLen)
	var delta float64
	for iteration := 0; iteration < maxIters; iteration++ {
		for i := range dw {
			dw[i] = 0
		}

		for _, lp := range set {
			yHat := math.Sigmoid(score(w, lp.Point))
			lr.gradient.accumulate(dw, lp, lp.Outcome()-yHat)
		}

		copy(next, w)
		floats.AddScaled(next, learningRate, dw)
		delta = lr.distance.between(w, next)
		w, next = next, w

		lr.iterations = iteration + 1
		lr.observer.OnIteration(iteration, delta)

		if delta < epsilon {
			lr.weights = w
			log.Debugf("fitted weights %v after %d iterations", w, lr.iterations)
			lr.observer.OnConverged(iteration, lr.copyWeights())
			return lr.fsm.Event(context.Background(), ModelEventConverge)
		}
	}

	log.Debugf("unfitted after %d iterations, last delta %v", maxIters, delta)
	lr.observer.OnNotConverged(maxIters, delta)
	return lr.fsm.Event(context.Background(), ModelEventExhaust)
}

// Classify returns the class of p and its raw score. The second
// result is false when the model is not fitted.
func (lr *LogisticRegression) Classify(p dataset.Point) (Classification, bool) {
	if !lr.Fitted() {
		return Classification{}, false
	}

	likelihood := score(lr.weights, p)
	return Classification{
		Positive:    likelihood > 0.0,
		Likelihood:  likelihood,
		Probability: math.Sigmoid(likelihood),
	}, true
}

// ID returns the model id.
func (lr *LogisticRegression) ID() string {
	return lr.id
}

// Fitted reports whether training converged.
func (lr *LogisticRegression) Fitted() bool {
	return lr.fsm.Is(ModelStateTrained)
}

// State returns the state of the model, Trained or Untrained.
func (lr *LogisticRegression) State() string {
	return lr.fsm.Current()
}

// Weights returns a copy of [w0, w1, w2], false when the model is not fitted.
func (lr *LogisticRegression) Weights() ([]float64, bool) {
	if !lr.Fitted() {
		return nil, false
	}

	return lr.copyWeights(), true
}

// Iterations returns the number of iterations training executed.
func (lr *LogisticRegression) Iterations() int {
	return lr.iterations
}

// Gradient returns the gradient variant used in training.
func (lr *LogisticRegression) Gradient() Gradient {
	return lr.gradient
}

// Distance returns the convergence distance used in training.
func (lr *LogisticRegression) Distance() Distance {
	return lr.distance
}

func (lr *LogisticRegression) copyWeights() []float64 {
	weights := make([]float64, len(lr.weights))
	copy(weights, lr.weights)
	return weights
}

func score(w []float64, p dataset.Point) float64 {
	return w[0] + w[1]*p.X1 + w[2]*p.X2
}
