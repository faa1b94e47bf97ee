/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/notargets/nodaldg/InputParameters"
	"github.com/notargets/nodaldg/element"
	"github.com/notargets/nodaldg/utils"
)

// BatchResult is one built element of a batch
type BatchResult struct {
	Request InputParameters.Request
	Np, Nfp int
	Elapsed time.Duration
}

// RunBatch builds all requests concurrently through the process wide cache.
// Results are in request order; any failure returns the first error.
func RunBatch(R []InputParameters.Request, workers int) (results []BatchResult, err error) {
	var (
		g errgroup.Group
	)
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	g.SetLimit(workers)
	results = make([]BatchResult, len(R))
	for i, r := range R {
		i, r := i, r
		g.Go(func() error {
			start := time.Now()
			el, err := element.Lookup(r.Kind, r.Order)
			if err != nil {
				return fmt.Errorf("%v: %w", r, err)
			}
			// Derived matrices are built here too
			_ = el.D()
			results[i] = BatchResult{Request: r, Np: el.Np, Nfp: el.Nfp, Elapsed: time.Since(start)}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		results = nil
	}
	return
}

// BatchCmd represents the batch command
var BatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Build every element listed in a YAML batch file",
	Long: `
Builds every (kind, order) in the batch file concurrently. Example file:
########################################
Title: "Test Case"
Elements:
  - Kind: triangle
    Orders: [1, 2, 3]
  - Kind: hex
    MaxOrder: 4
########################################`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			data    []byte
			bp      InputParameters.BatchParameters
			R       []InputParameters.Request
			results []BatchResult
		)
		input, _ := cmd.Flags().GetString("input")
		workers, _ := cmd.Flags().GetInt("workers")
		if len(input) == 0 {
			return fmt.Errorf("must supply a batch file (-I, --input)")
		}
		if data, err = os.ReadFile(input); err != nil {
			return
		}
		if err = bp.Parse(data); err != nil {
			return
		}
		if R, err = bp.Requests(); err != nil {
			return
		}
		logger.Info("running batch", zap.String("title", bp.Title), zap.Int("requests", len(R)))
		start := time.Now()
		if results, err = RunBatch(R, workers); err != nil {
			return
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "\"%s\"\n", bp.Title)
		for _, br := range results {
			fmt.Fprintf(out, "%-28v Np = %5d Nfp = %4d %v\n", br.Request, br.Np, br.Nfp, br.Elapsed)
		}
		fmt.Fprintf(out, "%d elements in %v\n", len(results), time.Since(start))
		logger.Debug("batch done", zap.String("memory", utils.GetMemUsage()))
		return
	},
}

func init() {
	rootCmd.AddCommand(BatchCmd)
	BatchCmd.Flags().StringP("input", "I", "", "YAML batch file")
	BatchCmd.Flags().IntP("workers", "w", 0, "concurrent builds, default is the number of CPUs")
}
