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

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/notargets/nodaldg/element"
	"github.com/notargets/nodaldg/utils"
)

// ElementOutput is the YAML form of a reference element, matrices row major
type ElementOutput struct {
	Kind      string        `json:"Kind"`
	Order     int           `json:"Order"`
	Np        int           `json:"Np"`
	Nfp       int           `json:"Nfp"`
	Nodes     [][]float64   `json:"Nodes"`
	FaceNodes [][]int       `json:"FaceNodes"`
	V         [][]float64   `json:"V"`
	GradV     [][][]float64 `json:"GradV"`
	D         [][][]float64 `json:"D"`
}

func NewElementOutput(el *element.RefElement) (eo *ElementOutput) {
	eo = &ElementOutput{
		Kind:      el.Kind().String(),
		Order:     el.Order(),
		Np:        el.Np,
		Nfp:       el.Nfp,
		Nodes:     rows(el.Nodes()),
		FaceNodes: el.FaceNodes(),
		V:         rows(el.V()),
	}
	for _, GV := range el.GradV() {
		eo.GradV = append(eo.GradV, rows(GV))
	}
	for _, D := range el.D() {
		eo.D = append(eo.D, rows(D))
	}
	return
}

func rows(M utils.Matrix) (R [][]float64) {
	nr, _ := M.Dims()
	R = make([][]float64, nr)
	for i := range R {
		R[i] = M.Row(i).DataP
	}
	return
}

// BuildCmd represents the build command
var BuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build one reference element and write its nodes and matrices as YAML",
	Long: `
Builds the reference element of the given kind and order and writes the nodes,
face node lists, Vandermonde, gradient Vandermonde and differentiation matrices.

nodaldg build --kind tet --order 3 --output tet3.yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			kind  element.CellKind
			el    *element.RefElement
			data  []byte
			order int
		)
		kindName, _ := cmd.Flags().GetString("kind")
		order, _ = cmd.Flags().GetInt("order")
		output, _ := cmd.Flags().GetString("output")
		if kind, err = element.ParseCellKind(kindName); err != nil {
			return
		}
		if el, err = element.Lookup(kind, order); err != nil {
			return
		}
		if data, err = yaml.Marshal(NewElementOutput(el)); err != nil {
			return
		}
		if len(output) == 0 {
			_, err = cmd.OutOrStdout().Write(data)
			return
		}
		if err = os.WriteFile(output, data, 0644); err != nil {
			return
		}
		logger.Info("wrote reference element", zap.Stringer("element", el), zap.String("file", output))
		fmt.Fprintf(cmd.OutOrStdout(), "%v written to %s\n", el, output)
		return
	},
}

func init() {
	rootCmd.AddCommand(BuildCmd)
	BuildCmd.Flags().StringP("kind", "k", "triangle", "cell kind: line, triangle, quad, tet, hex")
	BuildCmd.Flags().IntP("order", "n", 3, "polynomial order")
	BuildCmd.Flags().StringP("output", "o", "", "YAML output file, default is stdout")
}
