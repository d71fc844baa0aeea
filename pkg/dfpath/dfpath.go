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
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
)

var (
	DefaultWorkHome     = filepath.Join(homeDir(), ".logit")
	DefaultWorkHomeMode = os.FileMode(0700)
	DefaultConfigDir    = filepath.Join(DefaultWorkHome, "config")
)

// Dfpath is the interface used for init project path.
type Dfpath interface {
	WorkHome() string
	ConfigDir() string
	LogDir() string
}

// Dfpath provides init project path function.
type dfpath struct {
	workHome     string
	workHomeMode fs.FileMode
	configDir    string
	logDir       string
}

// Option is a functional option for configuring the dfpath.
type Option func(d *dfpath)

// WithWorkHome set the workhome directory, the config and log
// directories default to its config and logs subdirectories.
func WithWorkHome(dir string) Option {
	return func(d *dfpath) {
		d.workHome = dir
	}
}

// WithLogDir set the log directory.
func WithLogDir(dir string) Option {
	return func(d *dfpath) {
		d.logDir = dir
	}
}

// New returns a new dfpath interface and creates the workhome and log directories.
func New(options ...Option) (Dfpath, error) {
	d := &dfpath{
		workHome:     DefaultWorkHome,
		workHomeMode: DefaultWorkHomeMode,
	}

	for _, opt := range options {
		opt(d)
	}

	d.configDir = filepath.Join(d.workHome, "config")
	if d.logDir == "" {
		d.logDir = filepath.Join(d.workHome, "logs")
	}

	var errs *multierror.Error

	// Create workhome directory.
	if err := os.MkdirAll(d.workHome, d.workHomeMode); err != nil {
		errs = multierror.Append(errs, err)
	}

	// Create log directory.
	if err := os.MkdirAll(d.logDir, fs.FileMode(0700)); err != nil {
		errs = multierror.Append(errs, err)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *dfpath) WorkHome() string {
	return d.workHome
}

func (d *dfpath) ConfigDir() string {
	return d.configDir
}

func (d *dfpath) LogDir() string {
	return d.logDir
}

func homeDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return dir
	}

	return os.TempDir()
}
