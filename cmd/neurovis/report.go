// Copyright (c) 2025, Neurovis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"sort"

	"cogentcore.org/core/base/errors"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/neurovis/neurovis/neuro"
)

// writeReport renders the degree histogram and synapse length summary
// of a generated network as a standalone HTML page.
func writeReport(path string, st neuro.Stats) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Neuron out-degree distribution",
			Subtitle: fmt.Sprintf("%d neurons, %d synapses, mean degree %.2f ± %.2f",
				st.Neurons, st.Synapses, st.MeanDegree, st.DegreeStdDev),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "out-degree"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "neurons"}),
	)

	degrees := make([]int, 0, len(st.DegreeHist))
	for dg := range st.DegreeHist {
		degrees = append(degrees, dg)
	}
	sort.Ints(degrees)

	labels := make([]string, len(degrees))
	data := make([]opts.BarData, len(degrees))
	for i, dg := range degrees {
		labels[i] = fmt.Sprintf("%d", dg)
		data[i] = opts.BarData{Value: st.DegreeHist[dg]}
	}
	bar.SetXAxis(labels).AddSeries("neurons", data)

	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { errors.Log(fp.Close()) }()
	return bar.Render(fp)
}
