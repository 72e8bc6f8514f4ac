package analysis

import "math"

type Summary struct {
	Mean  float64
	Std   float64
	Min   float64
	Max   float64
	Slope float64 // least-squares change per frame
}

func Summarize(series []float64) Summary {
	n := len(series)
	if n == 0 {
		return Summary{}
	}

	s := Summary{Min: series[0], Max: series[0]}
	for _, v := range series {
		s.Mean += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Mean /= float64(n)

	xMean := float64(n-1) / 2
	var sxx, sxy, ss float64
	for i, v := range series {
		dx := float64(i) - xMean
		dv := v - s.Mean
		sxx += dx * dx
		sxy += dx * dv
		ss += dv * dv
	}

	s.Std = math.Sqrt(ss / float64(n))
	if sxx > 0 {
		s.Slope = sxy / sxx
	}

	return s
}
