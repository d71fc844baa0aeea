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

	"golang.org/x/exp/rand"

	"d7y.io/logit/internal/dferrors"
)

// Simulate returns a linearly separable training set of size points.
// Even indexes are positives with x1+x2 >= margin, odd indexes are
// negatives with x1+x2 <= -margin. Spread bounds the extra distance
// from the margin and the split between the two coordinates.
func Simulate(size int, margin, spread float64, r *rand.Rand) (TrainingSet, error) {
	if size < 2 {
		return nil, fmt.Errorf("size %d: %w", size, dferrors.ErrInvalidArgument)
	}

	if margin <= 0 {
		return nil, fmt.Errorf("margin %v: %w", margin, dferrors.ErrInvalidArgument)
	}

	if spread < 0 {
		return nil, fmt.Errorf("spread %v: %w", spread, dferrors.ErrInvalidArgument)
	}

	set := make(TrainingSet, 0, size)
	for i := 0; i < size; i++ {
		sum := margin + spread*r.Float64()
		x1 := sum/2 + spread*(r.Float64()-0.5)
		x2 := sum - x1

		if i%2 == 0 {
			set = append(set, NewLabeledPoint(x1, x2, true))
			continue
		}

		set = append(set, NewLabeledPoint(-x1, -x2, false))
	}

	return set, nil
}
