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
	"math"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/notargets/nodaldg/element"
)

// QualityReport summarizes the conditioning and node spacing of one element
type QualityReport struct {
	Order, Np int
	CondV     float64
	// Nearest neighbor distances between nodes
	MinSpacing, MeanSpacing, StdDevSpacing float64
}

// Quality builds every order of kind from its minimum up to maxOrder
func Quality(kind element.CellKind, maxOrder int) (Q []QualityReport, err error) {
	var (
		minOrder int
		el       *element.RefElement
	)
	if minOrder, err = element.MinOrder(kind); err != nil {
		return
	}
	for N := max(minOrder, 1); N <= maxOrder; N++ {
		if el, err = element.Lookup(kind, N); err != nil {
			return
		}
		qr := QualityReport{
			Order: N,
			Np:    el.Np,
			CondV: el.V().ConditionNumber(),
		}
		spacing := nearestNeighbor(el)
		if qr.MinSpacing, err = stats.Min(spacing); err != nil {
			return
		}
		if qr.MeanSpacing, err = stats.Mean(spacing); err != nil {
			return
		}
		if qr.StdDevSpacing, err = stats.StandardDeviation(spacing); err != nil {
			return
		}
		Q = append(Q, qr)
	}
	return
}

func nearestNeighbor(el *element.RefElement) (dist stats.Float64Data) {
	var (
		X      = el.Nodes()
		np, nd = X.Dims()
	)
	dist = make(stats.Float64Data, np)
	for i := 0; i < np; i++ {
		dist[i] = math.Inf(1)
		for j := 0; j < np; j++ {
			if i == j {
				continue
			}
			var d2 float64
			for d := 0; d < nd; d++ {
				dx := X.At(i, d) - X.At(j, d)
				d2 += dx * dx
			}
			dist[i] = math.Min(dist[i], math.Sqrt(d2))
		}
	}
	return
}

// QualityCmd represents the quality command
var QualityCmd = &cobra.Command{
	Use:   "quality",
	Short: "Report Vandermonde conditioning and node spacing per order",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			kind element.CellKind
			Q    []QualityReport
		)
		kindName, _ := cmd.Flags().GetString("kind")
		maxOrder, _ := cmd.Flags().GetInt("max-order")
		if kind, err = element.ParseCellKind(kindName); err != nil {
			return
		}
		if Q, err = Quality(kind, maxOrder); err != nil {
			return
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%v\n%5s %6s %12s %12s %12s %12s\n", kind, "N", "Np", "cond(V)", "min h", "mean h", "stddev h")
		for _, qr := range Q {
			fmt.Fprintf(out, "%5d %6d %12.5g %12.5g %12.5g %12.5g\n",
				qr.Order, qr.Np, qr.CondV, qr.MinSpacing, qr.MeanSpacing, qr.StdDevSpacing)
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(QualityCmd)
	QualityCmd.Flags().StringP("kind", "k", "triangle", "cell kind: line, triangle, quad, tet, hex")
	QualityCmd.Flags().IntP("max-order", "n", 8, "highest polynomial order")
}
