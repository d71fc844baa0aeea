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

	"github.com/gocarina/gocsv"
	"github.com/montanaflynn/stats"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"d7y.io/logit/classifier"
	"d7y.io/logit/classifier/dataset"
	logger "d7y.io/logit/internal/dflog"
)

const (
	// defaultSweepRuns is default number of trained models.
	defaultSweepRuns = 100

	// defaultSweepConcurrency is default number of models trained at once.
	defaultSweepConcurrency = 8
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "train many models with consecutive seeds",
	Long: `Sweep trains models on the simulated training set with seeds seed..seed+runs-1 concurrently
and reports how many of them converged and how many iterations they took.`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		runs, err := cmd.Flags().GetInt("runs")
		if err != nil {
			return err
		}

		concurrency, err := cmd.Flags().GetInt("concurrency")
		if err != nil {
			return err
		}

		csv, err := cmd.Flags().GetBool("csv")
		if err != nil {
			return err
		}

		if runs <= 0 || concurrency <= 0 {
			return fmt.Errorf("runs %d and concurrency %d must be positive", runs, concurrency)
		}

		svr, err := initServer()
		if err != nil {
			return err
		}
		defer svr.Stop()

		train, _, err := svr.Dataset()
		if err != nil {
			return err
		}

		baseSeed := cfg.Training.Seed
		if baseSeed == 0 {
			baseSeed = 1
		}

		bar := progressbar.NewOptions(runs,
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("training"),
			progressbar.OptionClearOnFinish(),
		)
		result, err := sweep(cmd.Context(), svr, train, baseSeed, runs, concurrency, bar)
		if err != nil {
			return err
		}

		if csv {
			return result.printCSV(cmd.OutOrStdout())
		}

		return result.print(cmd.OutOrStdout())
	},
}

func init() {
	sweepCmd.Flags().Int("runs", defaultSweepRuns, "number of trained models")
	sweepCmd.Flags().Int("concurrency", defaultSweepConcurrency, "number of models trained at once")
	sweepCmd.Flags().Bool("csv", false, "print one csv record per run")
}

// sweepRecord is the outcome of one run.
type sweepRecord struct {
	Run        int    `csv:"run"`
	Seed       uint64 `csv:"seed"`
	ModelID    string `csv:"model_id"`
	Fitted     bool   `csv:"fitted"`
	Iterations int    `csv:"iterations"`
}

type sweepResult struct {
	runs       int
	converged  int64
	iterations []float64
	records    []*sweepRecord
}

// sweep trains runs models with seeds baseSeed..baseSeed+runs-1.
func sweep(ctx context.Context, svr *classifier.Server, set dataset.TrainingSet, baseSeed uint64, runs, concurrency int, bar *progressbar.ProgressBar) (*sweepResult, error) {
	var (
		converged = atomic.NewInt64(0)
		records   = make([]*sweepRecord, runs)
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)
	for i := 0; i < runs; i++ {
		run, seed := i, baseSeed+uint64(i)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			lr, err := svr.Train(set, seed)
			if err != nil {
				return err
			}

			logger.WithRun(run, seed).Debugf("model %s fitted %t after %d iterations", lr.ID(), lr.Fitted(), lr.Iterations())
			if lr.Fitted() {
				converged.Inc()
			}

			records[run] = &sweepRecord{
				Run:        run,
				Seed:       seed,
				ModelID:    lr.ID(),
				Fitted:     lr.Fitted(),
				Iterations: lr.Iterations(),
			}

			// Progress is informational only.
			bar.Add(1) // nolint: errcheck
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if err := bar.Finish(); err != nil {
		logger.Warnf("finish progress bar failed: %s", err.Error())
	}

	result := &sweepResult{runs: runs, converged: converged.Load(), records: records}
	for _, record := range records {
		if record.Fitted {
			result.iterations = append(result.iterations, float64(record.Iterations))
		}
	}

	return result, nil
}

func (r *sweepResult) print(out io.Writer) error {
	fmt.Fprintf(out, "converged %d of %d runs\n", r.converged, r.runs)
	if len(r.iterations) == 0 {
		return nil
	}

	mean, err := stats.Mean(r.iterations)
	if err != nil {
		return err
	}

	max, err := stats.Max(r.iterations)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "iterations mean %.2f max %.0f\n", mean, max)
	return nil
}

func (r *sweepResult) printCSV(out io.Writer) error {
	return gocsv.Marshal(r.records, out)
}
