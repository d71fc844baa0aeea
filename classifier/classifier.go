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

package classifier

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/exp/rand"

	"d7y.io/logit/classifier/config"
	"d7y.io/logit/classifier/dataset"
	"d7y.io/logit/classifier/evaluation"
	"d7y.io/logit/classifier/metrics"
	"d7y.io/logit/classifier/models"
	"d7y.io/logit/classifier/observer"
	logger "d7y.io/logit/internal/dflog"
	"d7y.io/logit/internal/dferrors"
	"d7y.io/logit/pkg/idgen"
)

// shutdownTimeout is the timeout of stopping the metrics server.
const shutdownTimeout = 5 * time.Second

type Server struct {
	// Server configuration.
	config *config.Config

	// Metrics server.
	metricsServer *http.Server
}

func New(cfg *config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Server{config: cfg}

	// Initialize metrics.
	if cfg.Metrics.Enable {
		s.metricsServer = metrics.New(&cfg.Metrics)
	}

	return s, nil
}

// Dataset simulates the configured set and splits it into a training
// part and a test part, both drawn from the dataset seed. The training
// part is used for both when the test part is empty.
func (s *Server) Dataset() (dataset.TrainingSet, dataset.TrainingSet, error) {
	cfg := s.config.Dataset
	r := rand.New(rand.NewSource(cfg.Seed))
	set, err := dataset.Simulate(cfg.Size, cfg.Margin, cfg.Spread, r)
	if err != nil {
		return nil, nil, err
	}

	train, test, err := dataset.Split(set, cfg.TestPercent, r)
	if err != nil {
		return nil, nil, err
	}

	if test.Len() == 0 {
		logger.Warnf("test set is empty, evaluate on %d training points", train.Len())
		test = train
	}

	return train, test, nil
}

// Train fits a model on set with the training configuration. A non zero
// seed overrides the configured one.
func (s *Server) Train(set dataset.TrainingSet, seed uint64) (*models.LogisticRegression, error) {
	cfg := s.config.Training
	gradient, distance := models.Gradient(cfg.Gradient), models.Distance(cfg.Distance)

	if seed == 0 {
		seed = cfg.Seed
	}

	id := idgen.ModelIDV2()
	var options []models.Option
	if seed != 0 {
		id = idgen.ModelIDV1(cfg.Gradient, cfg.Distance, seed)
		options = append(options, models.WithSource(models.NewSource(seed)))
	}

	options = append(options,
		models.WithID(id),
		models.WithGradient(gradient),
		models.WithDistance(distance),
		models.WithObserver(observer.Multi(observer.NewLogObserver(id), observer.NewMetricsObserver(gradient, distance))),
	)

	metrics.TrainingCount.WithLabelValues(cfg.Gradient, cfg.Distance).Inc()
	lr, err := models.NewLogisticRegression(set, cfg.MaxIters, cfg.LearningRate, cfg.Epsilon, options...)
	if err != nil {
		metrics.TrainingFailureCount.WithLabelValues(cfg.Gradient, cfg.Distance).Inc()
		logger.WithModel(id).Errorf("train failed: %s", err.Error())
		return nil, err
	}

	return lr, nil
}

// Classify classifies p, it fails when the model is not fitted.
func (s *Server) Classify(lr *models.LogisticRegression, p dataset.Point) (models.Classification, error) {
	c, ok := lr.Classify(p)
	if !ok {
		metrics.ClassifyFailureCount.Inc()
		return models.Classification{}, fmt.Errorf("model %s: %w", lr.ID(), dferrors.ErrModelNotFitted)
	}

	metrics.ClassifyCount.WithLabelValues(strconv.FormatBool(c.Positive)).Inc()
	return c, nil
}

// Evaluate evaluates the model over set.
func (s *Server) Evaluate(lr *models.LogisticRegression, set dataset.TrainingSet) (*evaluation.Eval, error) {
	e, err := evaluation.Evaluate(lr, set)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", lr.ID(), err)
	}

	logger.WithModel(lr.ID()).Infof("evaluation %s", e)
	return e, nil
}

func (s *Server) Serve() error {
	// Started metrics server.
	if s.metricsServer != nil {
		go func() {
			logger.Infof("started metrics server at %s", s.metricsServer.Addr)
			if err := s.metricsServer.ListenAndServe(); err != nil {
				if err == http.ErrServerClosed {
					return
				}

				logger.Fatalf("metrics server closed unexpect: %s", err.Error())
			}
		}()
	}

	return nil
}

func (s *Server) Stop() {
	// Stop metrics server.
	if s.metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.metricsServer.Shutdown(ctx); err != nil {
			logger.Errorf("metrics server failed to stop: %s", err.Error())
		} else {
			logger.Info("metrics server closed under request")
		}
	}
}
