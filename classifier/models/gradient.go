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
	"gonum.org/v1/gonum/floats"

	"d7y.io/logit/classifier/dataset"
)

// Gradient selects how the weight delta is accumulated.
type Gradient string

const (
	// SharedGradient adds the same (y - yHat) * (x1 + x2) term to every
	// weight, the bias included. It is an approximation kept for
	// compatibility with previously fitted boundaries.
	SharedGradient Gradient = "shared"

	// PartialGradient adds the partial derivative of the log likelihood
	// to each weight.
	PartialGradient Gradient = "partial"
)

// IsValid reports whether g is a known gradient.
func (g Gradient) IsValid() bool {
	return g == SharedGradient || g == PartialGradient
}

// accumulate adds the contribution of lp to dw, residual is y - yHat.
func (g Gradient) accumulate(dw []float64, lp dataset.LabeledPoint, residual float64) {
	switch g {
	case PartialGradient:
		dw[0] += residual
		dw[1] += residual * lp.X1
		dw[2] += residual * lp.X2
	default:
		term := residual * (lp.X1 + lp.X2)
		for i := range dw {
			dw[i] += term
		}
	}
}

// Distance selects how two consecutive weight vectors are compared.
type Distance string

const (
	// SumDistance is |sum(next) - sum(w)|. Vectors with equal sums
	// compare as identical even when their components differ.
	SumDistance Distance = "sum"

	// EuclideanDistance is the L2 norm of next - w.
	EuclideanDistance Distance = "euclidean"
)

// IsValid reports whether d is a known distance.
func (d Distance) IsValid() bool {
	return d == SumDistance || d == EuclideanDistance
}

// between returns the distance between w and next.
func (d Distance) between(w, next []float64) float64 {
	switch d {
	case EuclideanDistance:
		return floats.Distance(next, w, 2)
	default:
		diff := floats.Sum(next) - floats.Sum(w)
		if diff < 0 {
			return -diff
		}

		return diff
	}
}
