// Package particle holds the point-mass data model of the simulation.
//
// A [System] is a fixed-length, index-stable slice of [Particle] values.
// Particles are never inserted or removed after generation: a particle that
// has been absorbed by a collision is marked inactive and skipped by every
// later step and by every renderer.
//
//   - [Particle]: position, velocity, mass and the active flag
//   - [System]: the population, with aggregate observables
//   - [Bounds]: the five sampling ranges used by [Generate]
//
// # Example
//
//	rng := rand.New(rand.NewSource(42))
//	sys, err := particle.Generate(rng, 2000, particle.Bounds{
//	    X:    particle.Range{Min: 0, Max: 1920},
//	    Y:    particle.Range{Min: 0, Max: 1080},
//	    Mass: particle.Range{Min: 1, Max: 10},
//	})
//
// # Thread Safety
//
// A System is owned by one driver. The engine package is the only code that
// touches it from several goroutines, and only for reads.
package particle
