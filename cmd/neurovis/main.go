// Copyright (c) 2025, Neurovis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command neurovis generates neuron networks headlessly for inspection
// and tuning: it builds a network on a placeholder model, prints its
// summary statistics, and can write an HTML report of the degree
// distribution.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/neurovis/neurovis"
	"github.com/neurovis/neurovis/scene"
	"github.com/neurovis/neurovis/section"
)

func main() {
	root := &cobra.Command{
		Use:   "neurovis",
		Short: "neuron network generation and cross-section tooling",
	}
	root.AddCommand(generateCmd(), planeCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var (
		count  int
		prob   float32
		seed   int64
		report string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "generate a neuron network on a placeholder model and print its stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			model := scene.NewPlaceholder(nil)
			ctx := neurovis.NewContext(model, &neurovis.Config{
				Count:           count,
				BaseProbability: prob,
				Seed:            seed,
			})
			nw := ctx.GenerateNetwork(count, prob)
			if nw == nil {
				return fmt.Errorf("network generation failed")
			}
			st := nw.Stats()
			slog.Info("generated network",
				"requested", count,
				"neurons", st.Neurons,
				"synapses", st.Synapses,
				"meanDegree", st.MeanDegree,
				"degreeStdDev", st.DegreeStdDev,
				"meanSynapseLength", st.MeanSynapseLength,
				"maxSynapseLength", st.MaxSynapseLength)
			if report == "" {
				return nil
			}
			if err := writeReport(report, st); err != nil {
				return err
			}
			slog.Info("wrote report", "path", report)
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 50, "requested neuron count")
	cmd.Flags().Float32Var(&prob, "prob", 0.35, "base connection probability")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed (0 seeds from time)")
	cmd.Flags().StringVar(&report, "report", "", "write an HTML report to this path")
	return cmd
}

func planeCmd() *cobra.Command {
	var position float32
	cmd := &cobra.Command{
		Use:   "plane [coronal|sagittal|axial]",
		Short: "print the clip plane for a section type and position",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cp := section.ComputePlane(section.SectionFromString(args[0]), position)
			fmt.Printf("%s: normal (%g, %g, %g) constant %g\n",
				cp.Section, cp.Normal.X, cp.Normal.Y, cp.Normal.Z, cp.Constant)
		},
	}
	cmd.Flags().Float32Var(&position, "position", 0.5, "section position in [0,1]")
	return cmd
}
