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
	"os"
	"testing"

	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"d7y.io/logit/cmd/dependency/base"
)

var mockConfig = &Config{
	Options: base.Options{
		Console:  false,
		Verbose:  true,
		WorkHome: "bar",
	},
	Server: ServerConfig{
		LogDir:        "foo",
		LogMaxSize:    512,
		LogMaxAge:     5,
		LogMaxBackups: 3,
	},
	Training: TrainingConfig{
		MaxIters:     500,
		LearningRate: 0.01,
		Epsilon:      0.00001,
		Seed:         7,
		Gradient:     "partial",
		Distance:     "euclidean",
	},
	Dataset: DatasetConfig{
		Size:        100,
		Margin:      20,
		Spread:      5,
		TestPercent: 0.5,
		Seed:        3,
	},
	Metrics: MetricsConfig{
		Enable: true,
		Addr:   ":8000",
	},
}

func TestConfig_Load(t *testing.T) {
	classifierConfigYAML := &Config{}
	contentYAML, _ := os.ReadFile("./testdata/classifier.yaml")
	if err := yaml.Unmarshal(contentYAML, &classifierConfigYAML); err != nil {
		t.Fatal(err)
	}

	assert := assert.New(t)
	assert.EqualValues(mockConfig, classifierConfigYAML)
	assert.NoError(classifierConfigYAML.Validate())
}

func TestConfig_Decode(t *testing.T) {
	var raw map[string]any
	contentYAML, _ := os.ReadFile("./testdata/classifier.yaml")
	if err := yaml.Unmarshal(contentYAML, &raw); err != nil {
		t.Fatal(err)
	}

	classifierConfig := New()
	if err := mapstructure.Decode(raw, classifierConfig); err != nil {
		t.Fatal(err)
	}

	assert := assert.New(t)
	assert.EqualValues(mockConfig, classifierConfig)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		mock   func(cfg *Config)
		expect func(t *testing.T, err error)
	}{
		{
			name:   "valid config",
			config: New(),
			mock:   func(cfg *Config) {},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name:   "training requires parameter maxIters",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.MaxIters = 10
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "Config.Training.MaxIters requires parameter gt 10")
			},
		},
		{
			name:   "training requires parameter learningRate",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.LearningRate = 0.1
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "Config.Training.LearningRate requires parameter lt 0.1")
			},
		},
		{
			name:   "training requires parameter epsilon",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.Epsilon = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "Config.Training.Epsilon requires parameter gt 0.0000001")
			},
		},
		{
			name:   "training requires parameter gradient",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.Gradient = "foo"
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "Config.Training.Gradient requires parameter oneof shared partial")
			},
		},
		{
			name:   "training requires parameter distance",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.Distance = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "Config.Training.Distance requires parameter oneof sum euclidean")
			},
		},
		{
			name:   "dataset requires parameter size",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Dataset.Size = 1
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "Config.Dataset.Size requires parameter gte 2")
			},
		},
		{
			name:   "dataset requires parameter testPercent",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Dataset.TestPercent = 1
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "Config.Dataset.TestPercent requires parameter lt 1")
			},
		},
		{
			name:   "dataset requires a training part of at least 2 points",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Dataset.Size = 2
				cfg.Dataset.TestPercent = 0.5
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "dataset requires parameter size to leave at least 2 training points, got 1")
			},
		},
		{
			name:   "dataset with the smallest training part",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Dataset.Size = 3
				cfg.Dataset.TestPercent = 0.25
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name:   "metrics requires parameter addr",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Metrics.Enable = true
				cfg.Metrics.Addr = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "metrics requires parameter addr")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mock(tc.config)
			tc.expect(t, tc.config.Validate())
		})
	}
}
