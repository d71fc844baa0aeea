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

package evaluation

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"d7y.io/logit/classifier/dataset"
	"d7y.io/logit/classifier/models"
	"d7y.io/logit/internal/dferrors"
	pkgmath "d7y.io/logit/pkg/math"
)

// Classifier classifies a point, the second result is false when it has no result.
type Classifier interface {
	Classify(p dataset.Point) (models.Classification, bool)
}

// Eval is the evaluation of a classifier over a labeled set.
type Eval struct {
	// Accuracy is the fraction of correctly classified points.
	Accuracy float64 `json:"accuracy"`

	// Precision is TP / (TP + FP), zero without positive predictions.
	Precision float64 `json:"precision"`

	// Recall is TP / (TP + FN), zero without positive labels.
	Recall float64 `json:"recall"`

	TruePositives  int `json:"truePositives"`
	FalsePositives int `json:"falsePositives"`
	TrueNegatives  int `json:"trueNegatives"`
	FalseNegatives int `json:"falseNegatives"`

	// Statistics of the raw scores.
	MeanScore   float64 `json:"meanScore"`
	StdDevScore float64 `json:"stdDevScore"`
	MedianScore float64 `json:"medianScore"`
	MinScore    float64 `json:"minScore"`
	MaxScore    float64 `json:"maxScore"`
}

// Evaluate classifies every point of set and compares the result with its label.
func Evaluate(c Classifier, set dataset.TrainingSet) (*Eval, error) {
	if set.Len() == 0 {
		return nil, fmt.Errorf("empty set: %w", dferrors.ErrInvalidArgument)
	}

	e := &Eval{
		MinScore: math.Inf(1),
		MaxScore: math.Inf(-1),
	}
	scores := make(stats.Float64Data, 0, set.Len())
	for _, lp := range set {
		result, ok := c.Classify(lp.Point)
		if !ok {
			return nil, dferrors.ErrModelNotFitted
		}

		switch {
		case result.Positive && lp.Label:
			e.TruePositives++
		case result.Positive && !lp.Label:
			e.FalsePositives++
		case !result.Positive && !lp.Label:
			e.TrueNegatives++
		default:
			e.FalseNegatives++
		}

		e.MinScore = pkgmath.Min(e.MinScore, result.Likelihood)
		e.MaxScore = pkgmath.Max(e.MaxScore, result.Likelihood)
		scores = append(scores, result.Likelihood)
	}

	e.Accuracy = float64(e.TruePositives+e.TrueNegatives) / float64(set.Len())
	if n := e.TruePositives + e.FalsePositives; n > 0 {
		e.Precision = float64(e.TruePositives) / float64(n)
	}

	if n := e.TruePositives + e.FalseNegatives; n > 0 {
		e.Recall = float64(e.TruePositives) / float64(n)
	}

	var err error
	if e.MeanScore, err = scores.Mean(); err != nil {
		return nil, err
	}

	if e.StdDevScore, err = scores.StandardDeviation(); err != nil {
		return nil, err
	}

	if e.MedianScore, err = scores.Median(); err != nil {
		return nil, err
	}

	if err := e.CheckEval(); err != nil {
		return nil, err
	}

	return e, nil
}

// CheckEval returns an error when a statistic is NaN.
func (e *Eval) CheckEval() error {
	for _, v := range []float64{e.Accuracy, e.Precision, e.Recall, e.MeanScore, e.StdDevScore, e.MedianScore} {
		if math.IsNaN(v) {
			return errors.New("evaluation NaN")
		}
	}

	return nil
}

func (e *Eval) String() string {
	return fmt.Sprintf("accuracy %.4f, precision %.4f, recall %.4f, tp %d, fp %d, tn %d, fn %d, score mean %.4f stddev %.4f median %.4f min %.4f max %.4f",
		e.Accuracy, e.Precision, e.Recall, e.TruePositives, e.FalsePositives, e.TrueNegatives, e.FalseNegatives,
		e.MeanScore, e.StdDevScore, e.MedianScore, e.MinScore, e.MaxScore)
}
