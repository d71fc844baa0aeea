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

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"d7y.io/logit/cmd/dependency/base"
)

type Config struct {
	// Base options.
	base.Options `yaml:",inline" mapstructure:",squash"`

	// Server configuration.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Training configuration.
	Training TrainingConfig `yaml:"training" mapstructure:"training"`

	// Dataset configuration.
	Dataset DatasetConfig `yaml:"dataset" mapstructure:"dataset"`

	// Metrics configuration.
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

type ServerConfig struct {
	// Server log directory.
	LogDir string `yaml:"logDir" mapstructure:"logDir"`

	// Maximum size in megabytes of log files before rotation (default: 1024)
	LogMaxSize int `yaml:"logMaxSize" mapstructure:"logMaxSize" validate:"gte=0"`

	// Maximum number of days to retain old log files (default: 7)
	LogMaxAge int `yaml:"logMaxAge" mapstructure:"logMaxAge" validate:"gte=0"`

	// Maximum number of old log files to keep (default: 20)
	LogMaxBackups int `yaml:"logMaxBackups" mapstructure:"logMaxBackups" validate:"gte=0"`
}

type TrainingConfig struct {
	// MaxIters is the maximum number of gradient ascent iterations.
	MaxIters int `yaml:"maxIters" mapstructure:"maxIters" validate:"gt=10,lt=10000"`

	// LearningRate is the step size of every iteration.
	LearningRate float64 `yaml:"learningRate" mapstructure:"learningRate" validate:"gt=0.0000001,lt=0.1"`

	// Epsilon is the convergence threshold.
	Epsilon float64 `yaml:"epsilon" mapstructure:"epsilon" validate:"gt=0.0000001,lt=0.25"`

	// Seed of the initial weights, zero uses the process wide source.
	Seed uint64 `yaml:"seed" mapstructure:"seed"`

	// Gradient is the gradient variant, shared or partial.
	Gradient string `yaml:"gradient" mapstructure:"gradient" validate:"oneof=shared partial"`

	// Distance is the convergence distance, sum or euclidean.
	Distance string `yaml:"distance" mapstructure:"distance" validate:"oneof=sum euclidean"`
}

type DatasetConfig struct {
	// Size is the number of simulated points.
	Size int `yaml:"size" mapstructure:"size" validate:"gte=2"`

	// Margin is the minimum |x1 + x2| of simulated points.
	Margin float64 `yaml:"margin" mapstructure:"margin" validate:"gt=0"`

	// Spread is the jitter of simulated points.
	Spread float64 `yaml:"spread" mapstructure:"spread" validate:"gte=0"`

	// TestPercent is the fraction of points held out for evaluation.
	TestPercent float64 `yaml:"testPercent" mapstructure:"testPercent" validate:"gte=0,lt=1"`

	// Seed of the simulation.
	Seed uint64 `yaml:"seed" mapstructure:"seed"`
}

type MetricsConfig struct {
	// Enable metrics service.
	Enable bool `yaml:"enable" mapstructure:"enable"`

	// Metrics service address.
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// New default configuration.
func New() *Config {
	return &Config{
		Options: base.Options{
			Console: false,
			Verbose: false,
		},
		Server: ServerConfig{
			LogMaxSize:    DefaultLogRotateMaxSize,
			LogMaxAge:     DefaultLogRotateMaxAge,
			LogMaxBackups: DefaultLogRotateMaxBackups,
		},
		Training: TrainingConfig{
			MaxIters:     DefaultTrainingMaxIters,
			LearningRate: DefaultTrainingLearningRate,
			Epsilon:      DefaultTrainingEpsilon,
			Gradient:     DefaultTrainingGradient,
			Distance:     DefaultTrainingDistance,
		},
		Dataset: DatasetConfig{
			Size:        DefaultDatasetSize,
			Margin:      DefaultDatasetMargin,
			Spread:      DefaultDatasetSpread,
			TestPercent: DefaultDatasetTestPercent,
			Seed:        DefaultDatasetSeed,
		},
		Metrics: MetricsConfig{
			Enable: false,
			Addr:   DefaultMetricsAddr,
		},
	}
}

// Validate config parameters.
func (cfg *Config) Validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			return fmt.Errorf("%s requires parameter %s %s", errs[0].Namespace(), errs[0].Tag(), errs[0].Param())
		}

		return err
	}

	// The test part holds floor(size * testPercent) points.
	if train := cfg.Dataset.Size - int(float64(cfg.Dataset.Size)*cfg.Dataset.TestPercent); train < 2 {
		return fmt.Errorf("dataset requires parameter size to leave at least 2 training points, got %d", train)
	}

	if cfg.Metrics.Enable {
		if cfg.Metrics.Addr == "" {
			return errors.New("metrics requires parameter addr")
		}
	}

	return nil
}
