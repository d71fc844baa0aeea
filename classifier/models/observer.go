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

//go:generate mockgen -destination mocks/observer_mock.go -source observer.go -package mocks

package models

// Observer receives the progress of a training loop.
type Observer interface {
	// OnIteration is called after every iteration with the convergence delta.
	OnIteration(iteration int, delta float64)

	// OnConverged is called once when the delta falls below epsilon.
	OnConverged(iteration int, weights []float64)

	// OnNotConverged is called once when maxIters is exhausted.
	OnNotConverged(maxIters int, delta float64)
}

type nopObserver struct{}

func (nopObserver) OnIteration(int, float64) {}

func (nopObserver) OnConverged(int, []float64) {}

func (nopObserver) OnNotConverged(int, float64) {}
