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

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"d7y.io/logit/classifier/config"
	"d7y.io/logit/pkg/types"
	"d7y.io/logit/version"
)

// Variables declared for metrics.
var (
	TrainingCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ClassifierMetricsName,
		Name:      "training_total",
		Help:      "Counter of the number of the training.",
	}, []string{"gradient", "distance"})

	TrainingFailureCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ClassifierMetricsName,
		Name:      "training_failure_total",
		Help:      "Counter of the number of failed of the training.",
	}, []string{"gradient", "distance"})

	TrainingConvergedCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ClassifierMetricsName,
		Name:      "training_converged_total",
		Help:      "Counter of the number of the training converged.",
	}, []string{"gradient", "distance"})

	TrainingNotConvergedCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ClassifierMetricsName,
		Name:      "training_not_converged_total",
		Help:      "Counter of the number of the training not converged.",
	}, []string{"gradient", "distance"})

	TrainingIterations = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ClassifierMetricsName,
		Name:      "training_iterations",
		Help:      "Histogram of the number of iterations of the training.",
		Buckets:   prometheus.ExponentialBuckets(10, 2, 10),
	}, []string{"gradient", "distance"})

	ClassifyCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ClassifierMetricsName,
		Name:      "classify_total",
		Help:      "Counter of the number of the classifying.",
	}, []string{"positive"})

	ClassifyFailureCount = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ClassifierMetricsName,
		Name:      "classify_failure_total",
		Help:      "Counter of the number of failed of the classifying.",
	})

	VersionGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: types.MetricsNamespace,
		Subsystem: types.ClassifierMetricsName,
		Name:      "version",
		Help:      "Version info of the service.",
	}, []string{"major", "minor", "git_version", "git_commit", "platform", "build_time", "go_version", "go_tags", "go_gcflags"})
)

func New(cfg *config.MetricsConfig) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	VersionGauge.WithLabelValues(version.Major, version.Minor, version.GitVersion, version.GitCommit, version.Platform, version.BuildTime, version.GoVersion, version.Gotags, version.Gogcflags).Set(1)
	return &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}
}
