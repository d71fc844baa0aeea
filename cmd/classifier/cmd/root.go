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

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"d7y.io/logit/classifier"
	"d7y.io/logit/classifier/config"
	"d7y.io/logit/cmd/dependency"
	"d7y.io/logit/internal/dferrors"
	logger "d7y.io/logit/internal/dflog"
	"d7y.io/logit/pkg/dfpath"
	"d7y.io/logit/version"
)

var (
	cfg *config.Config
)

// Exit codes of the classifier command.
const (
	exitCodeFailed          = 1
	exitCodeInvalidArgument = 2
	exitCodeModelNotFitted  = 3
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "classifier",
	Short: "the binary logistic classifier of two dimensional points",
	Long: `Classifier simulates a linearly separable set of two dimensional points, trains a binary
logistic regression on it by batch gradient ascent and reports the evaluation on held out points.`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		svr, err := initServer()
		if err != nil {
			return err
		}
		defer svr.Stop()

		return runClassifier(cmd.Context(), cmd.OutOrStdout(), svr)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error(err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case dferrors.IsInvalidArgument(err):
		return exitCodeInvalidArgument
	case dferrors.IsModelNotFitted(err):
		return exitCodeModelNotFitted
	default:
		return exitCodeFailed
	}
}

func init() {
	// Initialize default classifier config.
	cfg = config.New()

	// Initialize training and dataset flags.
	flags := rootCmd.PersistentFlags()
	flags.Int("max-iters", cfg.Training.MaxIters, "maximum number of iterations, must be in (10, 10000)")
	flags.Float64("learning-rate", cfg.Training.LearningRate, "learning rate of every iteration, must be in (1e-7, 1e-1)")
	flags.Float64("epsilon", cfg.Training.Epsilon, "convergence threshold, must be in (1e-7, 0.25)")
	flags.Uint64("seed", cfg.Training.Seed, "seed of the initial weights, 0 uses the process wide source")
	flags.String("gradient", cfg.Training.Gradient, "gradient variant, shared or partial")
	flags.String("distance", cfg.Training.Distance, "convergence distance, sum or euclidean")
	flags.Int("size", cfg.Dataset.Size, "number of simulated points")
	flags.Float64("margin", cfg.Dataset.Margin, "minimum |x1 + x2| of simulated points")
	flags.Float64("spread", cfg.Dataset.Spread, "jitter of simulated points")
	flags.Float64("test-percent", cfg.Dataset.TestPercent, "fraction of points held out for evaluation")
	flags.Uint64("dataset-seed", cfg.Dataset.Seed, "seed of the simulation")

	// Initialize command and config.
	dependency.InitCommandAndConfig(rootCmd, true, cfg)
	dependency.BindPersistentFlags(rootCmd, map[string]string{
		"training.maxIters":     "max-iters",
		"training.learningRate": "learning-rate",
		"training.epsilon":      "epsilon",
		"training.seed":         "seed",
		"training.gradient":     "gradient",
		"training.distance":     "distance",
		"dataset.size":          "size",
		"dataset.margin":        "margin",
		"dataset.spread":        "spread",
		"dataset.testPercent":   "test-percent",
		"dataset.seed":          "dataset-seed",
	})

	rootCmd.AddCommand(classifyCmd, sweepCmd)
}

func initDfpath(cfg *config.Config) (dfpath.Dfpath, error) {
	var options []dfpath.Option
	if cfg.WorkHome != "" {
		options = append(options, dfpath.WithWorkHome(cfg.WorkHome))
	}

	if cfg.Server.LogDir != "" {
		options = append(options, dfpath.WithLogDir(cfg.Server.LogDir))
	}

	return dfpath.New(options...)
}

// initServer validates the config, initializes the logger and serves metrics.
func initServer() (*classifier.Server, error) {
	// Validate config.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Initialize dfpath.
	d, err := initDfpath(cfg)
	if err != nil {
		return nil, err
	}

	rotateConfig := logger.LogRotateConfig{
		MaxSize:    cfg.Server.LogMaxSize,
		MaxAge:     cfg.Server.LogMaxAge,
		MaxBackups: cfg.Server.LogMaxBackups,
	}

	// Initialize logger.
	if err := logger.InitClassifier(cfg.Verbose, cfg.Console, d.LogDir(), rotateConfig); err != nil {
		return nil, fmt.Errorf("init classifier logger: %w", err)
	}
	logger.Infof("version:\n%s", version.Version())
	logger.Infof("work home: %s, log dir: %s", d.WorkHome(), d.LogDir())

	svr, err := classifier.New(cfg)
	if err != nil {
		return nil, err
	}

	if err := svr.Serve(); err != nil {
		return nil, err
	}

	return svr, nil
}

func runClassifier(ctx context.Context, out io.Writer, svr *classifier.Server) error {
	train, test, err := svr.Dataset()
	if err != nil {
		return err
	}

	lr, err := svr.Train(train, 0)
	if err != nil {
		return err
	}

	if !lr.Fitted() {
		fmt.Fprintf(out, "model %s not converged after %d iterations\n", lr.ID(), lr.Iterations())
		return nil
	}

	weights, _ := lr.Weights()
	fmt.Fprintf(out, "model %s converged after %d iterations, weights %v\n", lr.ID(), lr.Iterations(), weights)

	if err := ctx.Err(); err != nil {
		return err
	}

	e, err := svr.Evaluate(lr, test)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "evaluated %d points, %s\n", test.Len(), e)
	return nil
}
