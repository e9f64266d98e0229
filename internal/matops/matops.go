// Package matops provides the small set of density-matrix operations the
// simulation kernel needs: tensor products, subsystem reordering, the Bell
// projection used by entanglement swapping, and the application of quantum
// maps to a subspace of a larger state.
//
// States are complex dense matrices of dimension 2^n x 2^n for n qubits.
// Qubit 0 is the first (most significant) tensor factor.
package matops

import (
	"math"
	"math/cmplx"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// realIfCloseTol is the magnitude below which imaginary parts are treated
// as numerical noise.
const realIfCloseTol = 1e-12

// Eye returns the d x d identity matrix.
func Eye(d int) *mat.CDense {
	out := mat.NewCDense(d, d, nil)
	for i := 0; i < d; i++ {
		out.Set(i, i, 1)
	}
	return out
}

// Tensor returns the matrix representation of the tensor product of the
// given matrices, left to right.
func Tensor(ms ...*mat.CDense) *mat.CDense {
	out := mat.NewCDense(1, 1, []complex128{1})
	for _, m := range ms {
		out = kron(out, m)
	}
	return out
}

func kron(a, b *mat.CDense) *mat.CDense {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	out := mat.NewCDense(ra*rb, ca*cb, nil)
	for ia := 0; ia < ra; ia++ {
		for ja := 0; ja < ca; ja++ {
			va := a.At(ia, ja)
			if va == 0 {
				continue
			}
			for ib := 0; ib < rb; ib++ {
				for jb := 0; jb < cb; jb++ {
					out.Set(ia*rb+ib, ja*cb+jb, va*b.At(ib, jb))
				}
			}
		}
	}
	return out
}

// Dag returns the conjugate transpose of a.
func Dag(a *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	out := mat.NewCDense(c, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(j, i, cmplx.Conj(a.At(i, j)))
		}
	}
	return out
}

// Mul returns the matrix product a * b.
func Mul(a, b *mat.CDense) *mat.CDense {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ca != rb {
		logrus.Panicf("matops: cannot multiply %dx%d by %dx%d", ra, ca, rb, cb)
	}
	out := mat.NewCDense(ra, cb, nil)
	for i := 0; i < ra; i++ {
		for k := 0; k < ca; k++ {
			v := a.At(i, k)
			if v == 0 {
				continue
			}
			for j := 0; j < cb; j++ {
				out.Set(i, j, out.At(i, j)+v*b.At(k, j))
			}
		}
	}
	return out
}

// Trace returns the trace of a square matrix.
func Trace(a *mat.CDense) complex128 {
	r, _ := a.Dims()
	var sum complex128
	for i := 0; i < r; i++ {
		sum += a.At(i, i)
	}
	return sum
}

// Scale returns f * a.
func Scale(f complex128, a *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, f*a.At(i, j))
		}
	}
	return out
}

// NumQubits returns n for a 2^n x 2^n state.
func NumQubits(rho *mat.CDense) int {
	r, _ := rho.Dims()
	n := 0
	for d := 1; d < r; d *= 2 {
		n++
	}
	return n
}

// PhiPlusVec returns the |phi+> Bell state as a 4x1 column vector.
func PhiPlusVec() *mat.CDense {
	s := complex(1/math.Sqrt2, 0)
	return mat.NewCDense(4, 1, []complex128{s, 0, 0, s})
}

// PhiPlusState returns the |phi+><phi+| density matrix.
func PhiPlusState() *mat.CDense {
	v := PhiPlusVec()
	return Mul(v, Dag(v))
}

// Reorder permutes the subsystems of rho so that output subsystem k is
// input subsystem sys[k]. sys must be a permutation of 0..n-1.
func Reorder(rho *mat.CDense, sys []int) *mat.CDense {
	n := NumQubits(rho)
	if len(sys) != n {
		logrus.Panicf("matops: reorder needs %d subsystems, got %d", n, len(sys))
	}
	d := 1 << n
	out := mat.NewCDense(d, d, nil)
	for io := 0; io < d; io++ {
		ii := gatherIndex(io, sys, n)
		for jo := 0; jo < d; jo++ {
			ji := gatherIndex(jo, sys, n)
			out.Set(io, jo, rho.At(ii, ji))
		}
	}
	return out
}

// gatherIndex maps an output index whose bit k belongs to input subsystem
// sys[k] back to the corresponding input index.
func gatherIndex(out int, sys []int, n int) int {
	in := 0
	for k := 0; k < n; k++ {
		bit := (out >> (n - 1 - k)) & 1
		in |= bit << (n - 1 - sys[k])
	}
	return in
}

// RealIfClose zeroes all imaginary parts of a if every one of them is
// below a small tolerance, mirroring the cleanup applied after physical
// single-qubit maps.
func RealIfClose(a *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if math.Abs(imag(a.At(i, j))) > realIfCloseTol {
				return a
			}
		}
	}
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, complex(real(a.At(i, j)), 0))
		}
	}
	return out
}

// EqualApprox reports whether a and b have the same shape and all entries
// within tol of each other.
func EqualApprox(a, b *mat.CDense, tol float64) bool {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ra != rb || ca != cb {
		return false
	}
	for i := 0; i < ra; i++ {
		for j := 0; j < ca; j++ {
			if cmplx.Abs(a.At(i, j)-b.At(i, j)) > tol {
				return false
			}
		}
	}
	return true
}
