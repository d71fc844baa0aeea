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

package observer

import (
	"d7y.io/logit/classifier/metrics"
	"d7y.io/logit/classifier/models"
	logger "d7y.io/logit/internal/dflog"
)

type logObserver struct {
	log *logger.SugaredLoggerOnWith
}

// NewLogObserver returns an observer writing the training progress of
// the model to the core logger. Iterations are logged at debug level.
func NewLogObserver(modelID string) models.Observer {
	return &logObserver{log: logger.WithModel(modelID)}
}

func (o *logObserver) OnIteration(iteration int, delta float64) {
	if !logger.IsDebug() {
		return
	}

	o.log.Debugf("iteration %d delta %v", iteration, delta)
}

func (o *logObserver) OnConverged(iteration int, weights []float64) {
	o.log.Infof("converged at iteration %d with weights %v", iteration, weights)
}

func (o *logObserver) OnNotConverged(maxIters int, delta float64) {
	o.log.Warnf("not converged after %d iterations, last delta %v", maxIters, delta)
}

type metricsObserver struct {
	gradient string
	distance string
}

// NewMetricsObserver returns an observer recording training outcomes
// in the classifier metrics.
func NewMetricsObserver(gradient models.Gradient, distance models.Distance) models.Observer {
	return &metricsObserver{gradient: string(gradient), distance: string(distance)}
}

func (o *metricsObserver) OnIteration(int, float64) {}

func (o *metricsObserver) OnConverged(iteration int, _ []float64) {
	metrics.TrainingConvergedCount.WithLabelValues(o.gradient, o.distance).Inc()
	metrics.TrainingIterations.WithLabelValues(o.gradient, o.distance).Observe(float64(iteration + 1))
}

func (o *metricsObserver) OnNotConverged(maxIters int, _ float64) {
	metrics.TrainingNotConvergedCount.WithLabelValues(o.gradient, o.distance).Inc()
	metrics.TrainingIterations.WithLabelValues(o.gradient, o.distance).Observe(float64(maxIters))
}

type multiObserver []models.Observer

// Multi returns an observer notifying every non nil observer in order.
func Multi(observers ...models.Observer) models.Observer {
	var m multiObserver
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}

	return m
}

func (m multiObserver) OnIteration(iteration int, delta float64) {
	for _, o := range m {
		o.OnIteration(iteration, delta)
	}
}

func (m multiObserver) OnConverged(iteration int, weights []float64) {
	for _, o := range m {
		o.OnConverged(iteration, weights)
	}
}

func (m multiObserver) OnNotConverged(maxIters int, delta float64) {
	for _, o := range m {
		o.OnNotConverged(maxIters, delta)
	}
}
