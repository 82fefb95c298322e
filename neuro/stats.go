// Copyright (c) 2025, Neurovis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuro

import (
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes a generated network: connectivity degree and
// synapse length distributions.
type Stats struct {

	// Neurons and Synapses are the delivered counts.
	Neurons  int
	Synapses int

	// MeanDegree and DegreeStdDev describe the out-degree distribution.
	MeanDegree   float64
	DegreeStdDev float64

	// MeanSynapseLength and MaxSynapseLength describe the straight
	// distances between connected pairs.
	MeanSynapseLength float64
	MaxSynapseLength  float64

	// DegreeHist maps out-degree to neuron count.
	DegreeHist map[int]int
}

// Stats computes summary statistics for the network.
func (nw *Network) Stats() Stats {
	st := Stats{
		Neurons:    len(nw.Neurons),
		Synapses:   len(nw.Synapses),
		DegreeHist: make(map[int]int),
	}
	if len(nw.Neurons) > 0 {
		degrees := make([]float64, len(nw.Neurons))
		for i, nr := range nw.Neurons {
			degrees[i] = float64(nr.Degree())
			st.DegreeHist[nr.Degree()]++
		}
		st.MeanDegree = stat.Mean(degrees, nil)
		st.DegreeStdDev = stat.StdDev(degrees, nil)
	}
	if len(nw.Synapses) > 0 {
		lengths := make([]float64, len(nw.Synapses))
		for i, sy := range nw.Synapses {
			lengths[i] = float64(sy.From.DistanceTo(sy.To))
			if lengths[i] > st.MaxSynapseLength {
				st.MaxSynapseLength = lengths[i]
			}
		}
		st.MeanSynapseLength = stat.Mean(lengths, nil)
	}
	return st
}
