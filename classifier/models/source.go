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

package models

import (
	"golang.org/x/exp/rand"
)

// Source produces the random values used to initialize weights.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// NewSource returns a source seeded with seed. The returned source
// is not safe for concurrent use.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewSource(seed))
}

// systemSource draws from the process wide generator.
type systemSource struct{}

func (systemSource) Float64() float64 {
	return rand.Float64()
}
