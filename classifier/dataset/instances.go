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

import (
	"fmt"

	"github.com/sjwhitworth/golearn/base"
	"golang.org/x/exp/rand"

	"d7y.io/logit/internal/dferrors"
)

const (
	// X1AttributeName is the attribute name of the first coordinate.
	X1AttributeName = "x1"

	// X2AttributeName is the attribute name of the second coordinate.
	X2AttributeName = "x2"

	// LabelAttributeName is the name of the class attribute.
	LabelAttributeName = "label"
)

// ToInstances converts the training set into dense instances,
// the label is stored as a float class attribute of 1 or 0.
func ToInstances(set TrainingSet) (*base.DenseInstances, error) {
	if len(set) == 0 {
		return nil, fmt.Errorf("training set: %w", dferrors.ErrEmptyValue)
	}

	instances := base.NewDenseInstances()
	x1 := base.NewFloatAttribute(X1AttributeName)
	x2 := base.NewFloatAttribute(X2AttributeName)
	label := base.NewFloatAttribute(LabelAttributeName)

	x1Spec := instances.AddAttribute(x1)
	x2Spec := instances.AddAttribute(x2)
	labelSpec := instances.AddAttribute(label)
	if err := instances.AddClassAttribute(label); err != nil {
		return nil, err
	}

	if err := instances.Extend(len(set)); err != nil {
		return nil, err
	}

	for i, lp := range set {
		instances.Set(x1Spec, i, base.PackFloatToBytes(lp.X1))
		instances.Set(x2Spec, i, base.PackFloatToBytes(lp.X2))
		instances.Set(labelSpec, i, base.PackFloatToBytes(lp.Outcome()))
	}

	return instances, nil
}

// FromInstances converts a data grid produced by ToInstances back into a training set.
func FromInstances(grid base.FixedDataGrid) (TrainingSet, error) {
	specs := make(map[string]base.AttributeSpec)
	for _, attr := range grid.AllAttributes() {
		spec, err := grid.GetAttribute(attr)
		if err != nil {
			return nil, err
		}

		specs[attr.GetName()] = spec
	}

	x1Spec, ok := specs[X1AttributeName]
	if !ok {
		return nil, fmt.Errorf("attribute %s: %w", X1AttributeName, dferrors.ErrConvertFailed)
	}

	x2Spec, ok := specs[X2AttributeName]
	if !ok {
		return nil, fmt.Errorf("attribute %s: %w", X2AttributeName, dferrors.ErrConvertFailed)
	}

	labelSpec, ok := specs[LabelAttributeName]
	if !ok {
		return nil, fmt.Errorf("attribute %s: %w", LabelAttributeName, dferrors.ErrConvertFailed)
	}

	_, rows := grid.Size()
	set := make(TrainingSet, 0, rows)
	for i := 0; i < rows; i++ {
		set = append(set, NewLabeledPoint(
			base.UnpackBytesToFloat(grid.Get(x1Spec, i)),
			base.UnpackBytesToFloat(grid.Get(x2Spec, i)),
			base.UnpackBytesToFloat(grid.Get(labelSpec, i)) > 0.5,
		))
	}

	return set, nil
}

// Split divides the set into a training part and a test part. The rows
// are permuted by r and the first floor(len(set)*testPercent) of them
// form the test part, so the same r state always gives the same parts.
func Split(set TrainingSet, testPercent float64, r *rand.Rand) (TrainingSet, TrainingSet, error) {
	if testPercent < 0 || testPercent >= 1 {
		return nil, nil, fmt.Errorf("testPercent %v: %w", testPercent, dferrors.ErrInvalidArgument)
	}

	if testPercent == 0 {
		return New(set...), TrainingSet{}, nil
	}

	if r == nil {
		return nil, nil, fmt.Errorf("rand: %w", dferrors.ErrInvalidArgument)
	}

	instances, err := ToInstances(set)
	if err != nil {
		return nil, nil, err
	}

	_, rows := instances.Size()
	perm := r.Perm(rows)
	testRows := int(float64(rows) * testPercent)
	attrs := instances.AllAttributes()

	trainSet, err := FromInstances(base.NewInstancesViewFromVisible(instances, perm[testRows:], attrs))
	if err != nil {
		return nil, nil, err
	}

	testSet, err := FromInstances(base.NewInstancesViewFromVisible(instances, perm[:testRows], attrs))
	if err != nil {
		return nil, nil, err
	}

	return trainSet, testSet, nil
}
