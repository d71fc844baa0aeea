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

package dfpath

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		options func(dir string) []Option
		expect  func(t *testing.T, dir string, d Dfpath, err error)
	}{
		{
			name: "new dfpath failed",
			options: func(dir string) []Option {
				file := filepath.Join(dir, "foo")
				if err := os.WriteFile(file, nil, 0600); err != nil {
					t.Fatal(err)
				}

				return []Option{WithWorkHome(filepath.Join(file, "bar"))}
			},
			expect: func(t *testing.T, dir string, d Dfpath, err error) {
				assert := assert.New(t)
				assert.Error(err)
				assert.Nil(d)
			},
		},
		{
			name: "new dfpath by workHome",
			options: func(dir string) []Option {
				return []Option{WithWorkHome(dir)}
			},
			expect: func(t *testing.T, dir string, d Dfpath, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(dir, d.WorkHome())
				assert.Equal(filepath.Join(dir, "config"), d.ConfigDir())
				assert.Equal(filepath.Join(dir, "logs"), d.LogDir())
				assert.DirExists(filepath.Join(dir, "logs"))
			},
		},
		{
			name: "new dfpath by workHome and logDir",
			options: func(dir string) []Option {
				return []Option{WithWorkHome(filepath.Join(dir, "foo")), WithLogDir(filepath.Join(dir, "bar"))}
			},
			expect: func(t *testing.T, dir string, d Dfpath, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(filepath.Join(dir, "foo", "config"), d.ConfigDir())
				assert.Equal(filepath.Join(dir, "bar"), d.LogDir())
				assert.DirExists(filepath.Join(dir, "foo"))
				assert.DirExists(filepath.Join(dir, "bar"))
				assert.NoDirExists(filepath.Join(dir, "foo", "logs"))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			d, err := New(tc.options(dir)...)
			tc.expect(t, dir, d, err)
		})
	}
}
