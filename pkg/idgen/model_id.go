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

package idgen

import (
	"strconv"

	"github.com/google/uuid"

	"d7y.io/logit/pkg/digest"
)

const (
	// LogisticRegressionModelNameSuffix is suffix of logistic regression model id.
	LogisticRegressionModelNameSuffix = "lr"
)

// ModelIDV1 generates v1 version of model id, it is stable for the
// same gradient, distance and seed.
func ModelIDV1(gradient, distance string, seed uint64) string {
	return digest.SHA256FromStrings(gradient, distance, strconv.FormatUint(seed, 10), LogisticRegressionModelNameSuffix)
}

// ModelIDV2 generates v2 version of model id, it is random.
func ModelIDV2() string {
	return uuid.NewString()
}
