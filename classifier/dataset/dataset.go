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

package dataset

// Point is a two dimensional coordinate.
type Point struct {
	X1 float64 `json:"x1" yaml:"x1" mapstructure:"x1"`
	X2 float64 `json:"x2" yaml:"x2" mapstructure:"x2"`
}

// LabeledPoint is a point tagged with a binary outcome.
type LabeledPoint struct {
	Point `yaml:",inline" mapstructure:",squash"`

	Label bool `json:"label" yaml:"label" mapstructure:"label"`
}

// NewLabeledPoint returns a labeled point of (x1, x2).
func NewLabeledPoint(x1, x2 float64, label bool) LabeledPoint {
	return LabeledPoint{Point: Point{X1: x1, X2: x2}, Label: label}
}

// Outcome returns the label as 1 or 0.
func (lp LabeledPoint) Outcome() float64 {
	if lp.Label {
		return 1
	}

	return 0
}

// TrainingSet is an ordered sequence of labeled points.
type TrainingSet []LabeledPoint

// New returns a training set holding a copy of points.
func New(points ...LabeledPoint) TrainingSet {
	set := make(TrainingSet, len(points))
	copy(set, points)
	return set
}

// Len returns the number of points.
func (s TrainingSet) Len() int {
	return len(s)
}

// Positives returns the number of points labeled true.
func (s TrainingSet) Positives() int {
	var n int
	for _, lp := range s {
		if lp.Label {
			n++
		}
	}

	return n
}
