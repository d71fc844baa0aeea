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
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"d7y.io/logit/classifier/dataset"
	"d7y.io/logit/internal/dferrors"
)

var classifyCmd = &cobra.Command{
	Use:   "classify x1 x2 [x1 x2...]",
	Short: "classify points with a model trained on the simulated set",
	Long: `Classify trains a model on the simulated training set and prints the class, the raw score
and the probability of every point given as pairs of coordinates.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || len(args)%2 != 0 {
			return fmt.Errorf("requires pairs of coordinates, got %d args: %w", len(args), dferrors.ErrInvalidArgument)
		}

		return nil
	},
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := parsePoints(args)
		if err != nil {
			return err
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

		lr, err := svr.Train(train, 0)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, p := range points {
			c, err := svr.Classify(lr, p)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "(%v, %v)\tpositive=%t\tlikelihood=%.6f\tprobability=%.6f\n", p.X1, p.X2, c.Positive, c.Likelihood, c.Probability)
		}

		return nil
	},
}

// parsePoints parses pairs of coordinates.
func parsePoints(args []string) ([]dataset.Point, error) {
	points := make([]dataset.Point, 0, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		x1, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, fmt.Errorf("x1 %q: %w", args[i], dferrors.ErrInvalidArgument)
		}

		x2, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("x2 %q: %w", args[i+1], dferrors.ErrInvalidArgument)
		}

		points = append(points, dataset.Point{X1: x1, X2: x2})
	}

	return points, nil
}
