// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Extrapolation computes a 1-dimensional velocity estimate
// for a set of timestamped points using the least squares
// fit of a 2nd order polynomial. The same method is used
// by Android.
type Extrapolation struct {
	// Index of the next write position in the circular
	// buffer.
	idx int
	// Circular buffer of samples.
	samples []sample
	// Pre-allocated cache for samples.
	cache [historySize]sample

	// Filtered values and times
	values [historySize]float32
	times  [historySize]float32
}

type sample struct {
	t time.Duration
	v float32
}

type matrix struct {
	rows, cols int
	data       []float32
}

type coefficients [degree + 1]float32

// Estimate is the result of a velocity estimation.
type Estimate struct {
	// Velocity is the estimated velocity in units per second.
	Velocity float32
	// Distance is the distance covered by the samples used
	// for the estimate.
	Distance float32
}

const (
	degree       = 2
	historySize  = 20
	maxAge       = 100 * time.Millisecond
	maxSampleGap = 40 * time.Millisecond
)

// Sample adds a sample to the estimation history.
func (e *Extrapolation) Sample(t time.Duration, val float32) {
	if e.samples == nil {
		e.samples = e.cache[:0]
	}
	s := sample{
		t: t,
		v: val,
	}
	if len(e.samples) < historySize {
		e.samples = append(e.samples, s)
		e.idx = len(e.samples) % historySize
	} else {
		e.samples[e.idx] = s
		e.idx = (e.idx + 1) % historySize
	}
}

// Reset discards the sample history.
func (e *Extrapolation) Reset() {
	e.samples = e.cache[:0]
	e.idx = 0
}

// Estimate computes the velocity and distance of the samples
// no older than maxAge relative to the newest sample.
func (e *Extrapolation) Estimate() Estimate {
	n := len(e.samples)
	if n == 0 {
		return Estimate{}
	}
	newest := e.samples[(e.idx-1+n)%n]
	prev := newest
	count := 0
	for k := 0; k < n; k++ {
		s := e.samples[(e.idx-1-k+2*n)%n]
		age := newest.t - s.t
		if age > maxAge || prev.t-s.t > maxSampleGap {
			break
		}
		prev = s
		e.times[count] = -float32(age.Seconds())
		e.values[count] = s.v - newest.v
		count++
	}
	if count < 2 {
		return Estimate{}
	}
	times, values := e.times[:count], e.values[:count]
	est := Estimate{Distance: values[0] - values[count-1]}
	if count > degree {
		if coef, ok := polyFit(times, values); ok {
			est.Velocity = coef[1]
			return est
		}
	}
	// Too few samples for a fit; use the mean velocity.
	if dt := times[0] - times[count-1]; dt > 0 {
		est.Velocity = est.Distance / dt
	}
	return est
}

// polyFit computes the least squares polynomial fit of
// the set of points in X, Y with degree degree.
func polyFit(X, Y []float32) (coefficients, bool) {
	if len(X) != len(Y) {
		panic("X and Y lengths differ")
	}
	if len(X) <= degree {
		return coefficients{}, false
	}
	A := newMatrix(len(X), degree+1)
	for i, x := range X {
		p := float32(1)
		for j := 0; j <= degree; j++ {
			A.set(i, j, p)
			p *= x
		}
	}
	Q, Rt, ok := decomposeQR(A)
	if !ok {
		return coefficients{}, false
	}
	// Solve R*c = Q^T*Y by back substitution.
	var b coefficients
	for j := 0; j <= degree; j++ {
		var dot float32
		for i, y := range Y {
			dot += Q.get(i, j) * y
		}
		b[j] = dot
	}
	var c coefficients
	for j := degree; j >= 0; j-- {
		v := b[j]
		for k := j + 1; k <= degree; k++ {
			// R[j][k] is stored transposed.
			v -= Rt.get(k, j) * c[k]
		}
		c[j] = v / Rt.get(j, j)
	}
	return c, true
}

// decomposeQR computes and returns Q, Rt where Q*transpose(Rt) = A, if
// possible. R is guaranteed to be upper triangular and only the square
// part of R is returned.
func decomposeQR(A *matrix) (*matrix, *matrix, bool) {
	// Modified Gram-Schmidt over the columns of A.
	Q := newMatrix(A.rows, A.cols)
	Rt := newMatrix(A.cols, A.cols)
	for j := 0; j < A.cols; j++ {
		for i := 0; i < A.rows; i++ {
			Q.set(i, j, A.get(i, j))
		}
		for k := 0; k < j; k++ {
			var dot float32
			for i := 0; i < A.rows; i++ {
				dot += Q.get(i, k) * Q.get(i, j)
			}
			Rt.set(j, k, dot)
			for i := 0; i < A.rows; i++ {
				Q.set(i, j, Q.get(i, j)-dot*Q.get(i, k))
			}
		}
		var norm float32
		for i := 0; i < A.rows; i++ {
			norm += Q.get(i, j) * Q.get(i, j)
		}
		norm = float32(math.Sqrt(float64(norm)))
		if norm < 1e-6 {
			// Linearly dependent columns.
			return nil, nil, false
		}
		for i := 0; i < A.rows; i++ {
			Q.set(i, j, Q.get(i, j)/norm)
		}
		Rt.set(j, j, norm)
	}
	return Q, Rt, true
}

func newMatrix(rows, cols int) *matrix {
	return &matrix{
		rows: rows,
		cols: cols,
		data: make([]float32, rows*cols),
	}
}

func (m *matrix) get(row, col int) float32 {
	if col >= m.cols {
		panic("column out of range")
	}
	if row >= m.rows {
		panic("row out of range")
	}
	return m.data[row*m.cols+col]
}

func (m *matrix) set(row, col int, v float32) {
	if col >= m.cols {
		panic("column out of range")
	}
	if row >= m.rows {
		panic("row out of range")
	}
	m.data[row*m.cols+col] = v
}

func (m *matrix) transpose() *matrix {
	t := newMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.set(j, i, m.get(i, j))
		}
	}
	return t
}

func (m *matrix) mul(m2 *matrix) *matrix {
	if m.cols != m2.rows {
		panic("mismatched matrices")
	}
	mm := newMatrix(m.rows, m2.cols)
	for i := 0; i < mm.rows; i++ {
		for j := 0; j < mm.cols; j++ {
			var v float32
			for k := 0; k < m.cols; k++ {
				v += m.get(i, k) * m2.get(k, j)
			}
			mm.set(i, j, v)
		}
	}
	return mm
}

func (m *matrix) approxEqual(m2 *matrix) bool {
	if m.rows != m2.rows || m.cols != m2.cols {
		return false
	}
	for i, v := range m.data {
		if !approxEqual(v, m2.data[i]) {
			return false
		}
	}
	return true
}

func (m *matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatFloat(float64(m.get(i, j)), 'g', -1, 32))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (c coefficients) approxEqual(c2 coefficients) bool {
	for i, v := range c {
		if !approxEqual(v, c2[i]) {
			return false
		}
	}
	return true
}

func approxEqual(v1, v2 float32) bool {
	const epsilon = 1e-4
	d := math.Abs(float64(v1 - v2))
	return d <= epsilon*(1+math.Max(math.Abs(float64(v1)), math.Abs(float64(v2))))
}
