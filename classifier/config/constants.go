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

package config

const (
	// DefaultMetricsAddr is default address for metrics server.
	DefaultMetricsAddr = ":8000"
)

const (
	// DefaultLogRotateMaxSize is default maximum size in megabytes of log files.
	DefaultLogRotateMaxSize = 1024

	// DefaultLogRotateMaxAge is default maximum number of days to retain log files.
	DefaultLogRotateMaxAge = 7

	// DefaultLogRotateMaxBackups is default maximum number of old log files.
	DefaultLogRotateMaxBackups = 20
)

const (
	// DefaultTrainingMaxIters is default maximum number of iterations.
	DefaultTrainingMaxIters = 1000

	// DefaultTrainingLearningRate is default learning rate.
	DefaultTrainingLearningRate = 0.001

	// DefaultTrainingEpsilon is default convergence threshold.
	DefaultTrainingEpsilon = 0.0001

	// DefaultTrainingGradient is default gradient variant.
	DefaultTrainingGradient = "shared"

	// DefaultTrainingDistance is default convergence distance.
	DefaultTrainingDistance = "sum"
)

const (
	// DefaultDatasetSize is default number of simulated points.
	DefaultDatasetSize = 40

	// DefaultDatasetMargin is default distance of the simulated classes from the boundary.
	DefaultDatasetMargin = 30

	// DefaultDatasetSpread is default jitter of the simulated points.
	DefaultDatasetSpread = 10

	// DefaultDatasetTestPercent is default fraction of points held out for evaluation.
	DefaultDatasetTestPercent = 0.25

	// DefaultDatasetSeed is default seed of the simulation.
	DefaultDatasetSeed = 1
)
