// Package metrics provides per-frame observables of a particle system.
//
// Every metric is fed the system and the frame after each step and reports a
// single scalar. [Default] returns the set the CLI records for a run.
package metrics

import "github.com/san-kum/particles/internal/sim"

// Default returns the standard metrics in a stable order.
func Default(width, height int) []sim.Metric {
	return []sim.Metric{
		NewActiveCount(),
		NewTotalMass(),
		NewMerges(),
		NewKineticEnergy(),
		NewMomentumDrift(),
		NewContainment(width, height),
	}
}
