// Package stats holds the numeric kernels shared by the analysis tools:
// extraction of float values from records, descriptive statistics,
// Pearson correlation, and the closed set of named aggregations.
//
// Kernels are pure functions over already-resolved field values. None
// of them fails because some rows are non-numeric — unparseable values
// are dropped during extraction, and callers decide whether an empty
// result set is an error.
package stats

import (
	"math"
	"sort"
	"strconv"

	"github.com/ashita-ai/soroban/internal/dataset"
)

// Extract parses the named field of each record as a float64, silently
// dropping values that do not parse. Empty and non-numeric cells both
// drop, so a misresolved field name naturally yields an empty slice.
func Extract(records []dataset.Record, field string) []float64 {
	var out []float64
	for _, rec := range records {
		if v, err := strconv.ParseFloat(rec[field], 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}

// ExtractPairs returns the paired values of two fields, keeping only
// records where both parse as numbers.
func ExtractPairs(records []dataset.Record, fieldX, fieldY string) (xs, ys []float64) {
	for _, rec := range records {
		x, errX := strconv.ParseFloat(rec[fieldX], 64)
		y, errY := strconv.ParseFloat(rec[fieldY], 64)
		if errX == nil && errY == nil {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	return xs, ys
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Median returns the midpoint of the ascending-sorted values, averaging
// the two middle elements when the count is even. Returns 0 for an
// empty slice.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// PopStdDev returns the population standard deviation (squared
// deviations divided by N, not N-1), or 0 for an empty slice.
func PopStdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	mean := Mean(xs)
	var sq float64
	for _, x := range xs {
		d := x - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(xs)))
}

// Min returns the smallest value, or 0 for an empty slice.
func Min(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	min := xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		}
	}
	return min
}

// Max returns the largest value, or 0 for an empty slice.
func Max(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	max := xs[0]
	for _, x := range xs[1:] {
		if x > max {
			max = x
		}
	}
	return max
}

// Pearson returns the Pearson correlation coefficient of the paired
// values: covariance divided by the product of the two population
// standard deviations. ok is false when fewer than 2 pairs exist or
// when either column has zero variance, where the coefficient is
// undefined.
func Pearson(xs, ys []float64) (r float64, ok bool) {
	n := len(xs)
	if n < 2 || len(ys) != n {
		return 0, false
	}
	meanX, meanY := Mean(xs), Mean(ys)
	var cov float64
	for i := range xs {
		cov += (xs[i] - meanX) * (ys[i] - meanY)
	}
	cov /= float64(n)
	stdX, stdY := PopStdDev(xs), PopStdDev(ys)
	if stdX == 0 || stdY == 0 {
		return 0, false
	}
	return cov / (stdX * stdY), true
}

// Round4 rounds to 4 decimal places, the precision every tool reports
// floating statistics at.
func Round4(x float64) float64 { return roundTo(x, 4) }

// Round2 rounds to 2 decimal places, used by the dataset summary and
// keyword engagement means.
func Round2(x float64) float64 { return roundTo(x, 2) }

func roundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
