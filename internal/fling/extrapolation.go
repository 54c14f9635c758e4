// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Extrapolation computes a release velocity from a short history
// of pointer samples. The zero value is ready to use.
type Extrapolation struct {
	// Index of the next sample.
	idx int
	// Circular buffer of samples.
	samples []sample
	// Scratch space for the least squares fit.
	times  []float32
	values []float32
}

// Estimate is the velocity estimated at the most recent sample.
type Estimate struct {
	// Velocity in units per second.
	Velocity float32
}

type sample struct {
	t time.Duration
	v float32
}

type matrix struct {
	rows, cols int
	// data is column-major: column c occupies
	// data[c*rows : (c+1)*rows].
	data []float32
}

type coefficients [degree + 1]float32

const (
	degree = 2
	// historySize is the number of samples retained.
	historySize = 20
	// maxAge bounds the trailing window used for the fit.
	maxAge = 100 * time.Millisecond
	// maxGap is the largest pause between two samples before the
	// older ones are considered part of a previous movement.
	maxGap = 40 * time.Millisecond
)

// Sample adds a sample at time t with value v.
func (e *Extrapolation) Sample(t time.Duration, v float32) {
	s := sample{t: t, v: v}
	if len(e.samples) < historySize {
		e.samples = append(e.samples, s)
		e.idx = len(e.samples) % historySize
		return
	}
	e.samples[e.idx] = s
	e.idx = (e.idx + 1) % historySize
}

// Clear discards every sample. Clear keeps the buffers for reuse.
func (e *Extrapolation) Clear() {
	e.samples = e.samples[:0]
	e.idx = 0
}

// Len reports the number of retained samples.
func (e *Extrapolation) Len() int {
	return len(e.samples)
}

// Estimate computes the velocity at the most recent sample.
// Velocities are normalized to one second regardless of the
// sampling rate. Fewer than two usable samples yield a zero
// estimate.
func (e *Extrapolation) Estimate() Estimate {
	n := len(e.samples)
	if n < 2 {
		return Estimate{}
	}
	newest := e.samples[(e.idx-1+n)%n]
	e.times = e.times[:0]
	e.values = e.values[:0]
	prev := newest.t
	for i := 0; i < n; i++ {
		s := e.samples[(e.idx-1-i+2*n)%n]
		if newest.t-s.t > maxAge || prev-s.t > maxGap || s.t > prev {
			break
		}
		prev = s.t
		e.times = append(e.times, float32((s.t - newest.t).Seconds()))
		e.values = append(e.values, s.v-newest.v)
	}
	switch m := len(e.times); {
	case m < 2:
		return Estimate{}
	case m > degree:
		if c, ok := polyFit(e.times, e.values); ok {
			return Estimate{Velocity: c[1]}
		}
	}
	// Linear fallback over the window.
	last := len(e.times) - 1
	dt := e.times[0] - e.times[last]
	if dt <= 0 {
		return Estimate{}
	}
	return Estimate{Velocity: (e.values[0] - e.values[last]) / dt}
}

// polyFit computes the least squares polynomial coefficients
// of degree degree for the points (X[i], Y[i]).
func polyFit(X, Y []float32) (coefficients, bool) {
	if len(X) != len(Y) {
		panic("X and Y lengths differ")
	}
	if len(X) <= degree {
		return coefficients{}, false
	}
	// Vandermonde matrix, one row per sample.
	A := newMatrix(len(X), degree+1)
	for i, x := range X {
		A.set(i, 0, 1)
		for j := 1; j < A.cols; j++ {
			A.set(i, j, A.get(i, j-1)*x)
		}
	}
	Q, Rt, ok := decomposeQR(A)
	if !ok {
		return coefficients{}, false
	}
	// Solve R*B = Qt*Y by back substitution.
	var B coefficients
	for i := Q.cols - 1; i >= 0; i-- {
		B[i] = dot(Q.col(i), Y)
		for j := Q.cols - 1; j > i; j-- {
			B[i] -= Rt.get(j, i) * B[j]
		}
		B[i] /= Rt.get(i, i)
	}
	return B, true
}

// decomposeQR computes and returns Q, Rt where Q*transpose(Rt) = A, if
// possible. R is upper triangular and only its square part is returned.
func decomposeQR(A *matrix) (*matrix, *matrix, bool) {
	// Gram-Schmidt over the columns of A.
	Q := newMatrix(A.rows, A.cols)
	Rt := newMatrix(A.cols, A.cols)
	for i := 0; i < Q.cols; i++ {
		qi := Q.col(i)
		copy(qi, A.col(i))
		// Subtract the projections on the previous, already
		// normalized, columns.
		for j := 0; j < i; j++ {
			qj := Q.col(j)
			d := dot(qj, qi)
			for k := range qi {
				qi[k] -= d * qj[k]
			}
		}
		n := norm(qi)
		if n < 0.000001 {
			// Degenerate data, no solution.
			return nil, nil, false
		}
		invNorm := 1 / n
		for k := range qi {
			qi[k] *= invNorm
		}
		for j := i; j < A.cols; j++ {
			Rt.set(j, i, dot(qi, A.col(j)))
		}
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
	return m.data[col*m.rows+row]
}

func (m *matrix) set(row, col int, v float32) {
	m.data[col*m.rows+row] = v
}

func (m *matrix) col(c int) []float32 {
	return m.data[c*m.rows : (c+1)*m.rows]
}

func (m *matrix) transpose() *matrix {
	t := newMatrix(m.cols, m.rows)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			t.set(c, r, m.get(r, c))
		}
	}
	return t
}

func (m *matrix) mul(m2 *matrix) *matrix {
	if m.cols != m2.rows {
		panic("mismatched matrices")
	}
	res := newMatrix(m.rows, m2.cols)
	for r := 0; r < res.rows; r++ {
		for c := 0; c < res.cols; c++ {
			var v float32
			for k := 0; k < m.cols; k++ {
				v += m.get(r, k) * m2.get(k, c)
			}
			res.set(r, c, v)
		}
	}
	return res
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
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(float64(m.get(r, c)), 'g', 6, 32))
		}
		b.WriteByte('\n')
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

// approxEqual compares v1 and v2 with a tolerance relative
// to their magnitude.
func approxEqual(v1, v2 float32) bool {
	const epsilon = 0.0001
	scale := float32(math.Max(1, math.Max(math.Abs(float64(v1)), math.Abs(float64(v2)))))
	d := v1 - v2
	return d >= -epsilon*scale && d <= epsilon*scale
}

func norm(v []float32) float32 {
	return float32(math.Sqrt(float64(dot(v, v))))
}

func dot(v1, v2 []float32) float32 {
	if len(v1) != len(v2) {
		panic("different lengths")
	}
	var res float32
	for i := range v1 {
		res += v1[i] * v2[i]
	}
	return res
}
