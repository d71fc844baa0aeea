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

package digest

import (
	_ "crypto/sha256"

	"github.com/opencontainers/go-digest"
)

// SHA256FromStrings returns the encoded sha256 digest of the concatenation of data.
func SHA256FromStrings(data ...string) string {
	digester := digest.SHA256.Digester()
	for _, s := range data {
		// Writes to a hash never fail.
		digester.Hash().Write([]byte(s)) // nolint: errcheck
	}

	return digester.Digest().Encoded()
}
