package analysis

import (
	"errors"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

var ErrShortSeries = errors.New("analysis: series too short")

// PowerSpectrum returns the magnitude of the first len(series)/2+1 frequency
// bins. The series mean is removed first so bin 0 only carries drift.
func PowerSpectrum(series []float64) []float64 {
	n := len(series)
	if n == 0 {
		return nil
	}

	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(n)

	centered := make([]float64, n)
	for i, v := range series {
		centered[i] = v - mean
	}

	spectrum := fft.FFTReal(centered)
	ps := make([]float64, n/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}

	return ps
}

// DominantFrequency returns the frequency, in cycles per unit of sampleRate,
// of the strongest non-zero bin and its magnitude. A flat series reports 0.
func DominantFrequency(series []float64, sampleRate float64) (float64, float64, error) {
	if len(series) < 4 {
		return 0, 0, ErrShortSeries
	}

	ps := PowerSpectrum(series)

	best, power := 0, 0.0
	for i := 1; i < len(ps); i++ {
		if ps[i] > power {
			best, power = i, ps[i]
		}
	}

	if best == 0 {
		return 0, 0, nil
	}

	return float64(best) * sampleRate / float64(len(series)), power, nil
}
