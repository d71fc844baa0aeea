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
	"testing"

	"github.com/sjwhitworth/golearn/base"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"

	"d7y.io/logit/internal/dferrors"
)

var mockTrainingSet = TrainingSet{
	NewLabeledPoint(1, 1, false),
	NewLabeledPoint(5, 5, true),
	NewLabeledPoint(1, 2, false),
	NewLabeledPoint(6, 5, true),
}

func TestToInstances(t *testing.T) {
	tests := []struct {
		name   string
		set    TrainingSet
		expect func(t *testing.T, instances *base.DenseInstances, err error)
	}{
		{
			name: "convert training set",
			set:  mockTrainingSet,
			expect: func(t *testing.T, instances *base.DenseInstances, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				cols, rows := instances.Size()
				assert.Equal(3, cols)
				assert.Equal(4, rows)

				classAttrs := instances.AllClassAttributes()
				assert.Len(classAttrs, 1)
				assert.Equal(LabelAttributeName, classAttrs[0].GetName())

				spec, err := instances.GetAttribute(classAttrs[0])
				assert.NoError(err)
				assert.Equal(1.0, base.UnpackBytesToFloat(instances.Get(spec, 1)))
				assert.Equal(0.0, base.UnpackBytesToFloat(instances.Get(spec, 2)))
			},
		},
		{
			name: "convert empty training set",
			set:  TrainingSet{},
			expect: func(t *testing.T, instances *base.DenseInstances, err error) {
				assert := assert.New(t)
				assert.ErrorIs(err, dferrors.ErrEmptyValue)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			instances, err := ToInstances(tc.set)
			tc.expect(t, instances, err)
		})
	}
}

func TestFromInstances(t *testing.T) {
	assert := assert.New(t)
	instances, err := ToInstances(mockTrainingSet)
	assert.NoError(err)

	set, err := FromInstances(instances)
	assert.NoError(err)
	assert.Equal(mockTrainingSet, set)

	invalid := base.NewDenseInstances()
	invalid.AddAttribute(base.NewFloatAttribute("foo"))
	_, err = FromInstances(invalid)
	assert.ErrorIs(err, dferrors.ErrConvertFailed)
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name        string
		testPercent float64
		r           func() *rand.Rand
		expect      func(t *testing.T, train, test TrainingSet, err error)
	}{
		{
			name:        "split training set",
			testPercent: 0.25,
			r:           func() *rand.Rand { return rand.New(rand.NewSource(1)) },
			expect: func(t *testing.T, train, test TrainingSet, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(3, train.Len())
				assert.Equal(1, test.Len())
				assert.ElementsMatch(mockTrainingSet, append(New(train...), test...))
			},
		},
		{
			name:        "split rounds the test part down",
			testPercent: 0.2,
			r:           func() *rand.Rand { return rand.New(rand.NewSource(1)) },
			expect: func(t *testing.T, train, test TrainingSet, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(mockTrainingSet.Len(), train.Len())
				assert.Empty(test)
			},
		},
		{
			name:        "split without test part",
			testPercent: 0,
			r:           func() *rand.Rand { return nil },
			expect: func(t *testing.T, train, test TrainingSet, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(mockTrainingSet, train)
				assert.Empty(test)
			},
		},
		{
			name:        "rand is nil",
			testPercent: 0.25,
			r:           func() *rand.Rand { return nil },
			expect: func(t *testing.T, train, test TrainingSet, err error) {
				assert := assert.New(t)
				assert.ErrorIs(err, dferrors.ErrInvalidArgument)
			},
		},
		{
			name:        "testPercent is invalid",
			testPercent: 1,
			r:           func() *rand.Rand { return rand.New(rand.NewSource(1)) },
			expect: func(t *testing.T, train, test TrainingSet, err error) {
				assert := assert.New(t)
				assert.ErrorIs(err, dferrors.ErrInvalidArgument)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			train, test, err := Split(mockTrainingSet, tc.testPercent, tc.r())
			tc.expect(t, train, test, err)
		})
	}
}

func TestSplit_Deterministic(t *testing.T) {
	assert := assert.New(t)
	set, err := Simulate(40, 30, 10, rand.New(rand.NewSource(1)))
	assert.NoError(err)

	train, test, err := Split(set, 0.25, rand.New(rand.NewSource(7)))
	assert.NoError(err)
	assert.Equal(30, train.Len())
	assert.Equal(10, test.Len())

	for i := 0; i < 10; i++ {
		otherTrain, otherTest, err := Split(set, 0.25, rand.New(rand.NewSource(7)))
		assert.NoError(err)
		assert.Equal(train, otherTrain)
		assert.Equal(test, otherTest)
	}
}
