// Package analysis inspects the metric series recorded by a run.
//
// A series is one value per frame, as produced by [sim.Result] or read back
// with the storage package. The package offers:
//
//   - [PowerSpectrum] and [DominantFrequency]: spectral content of a series
//   - [Summarize]: mean, spread and linear trend
//   - [Portrait] and [PortraitToASCII]: one series plotted against another
//
// # Oscillation
//
// A collapsing cluster often breathes before it settles. The breathing period
// shows up as the dominant frequency of the kinetic energy series:
//
//	freq, _, err := analysis.DominantFrequency(series["kinetic_energy"], fps)
//	if err == nil && freq > 0 {
//	    period := 1 / freq
//	}
package analysis
