// Package noise provides the standardized way to define noise channels and
// noise models. The physics lives in the channel functions supplied by the
// caller; this package only composes them and takes care of applying them
// to the right subspace of a larger state.
package noise

import (
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/jwallnoefer/requsim/internal/matops"
)

// A MapFunc is a pure function mapping a density matrix to a transformed
// density matrix of the same dimension, optionally parameterized (e.g. by
// an elapsed time).
type MapFunc func(rho *mat.CDense, params ...float64) *mat.CDense

// A Channel wraps a MapFunc and tags it with the number of qubits it
// expects, so the channel can handle its own application to a subspace of
// a larger state.
type Channel struct {
	nQubits int
	fn      MapFunc
}

// NewChannel creates a Channel acting on nQubits input qubits.
func NewChannel(nQubits int, fn MapFunc) *Channel {
	return &Channel{nQubits: nQubits, fn: fn}
}

// NQubits returns the number of qubits the channel acts on.
func (c *Channel) NQubits() int {
	return c.nQubits
}

// Apply calls the channel function directly on a state of the channel's
// own dimension.
func (c *Channel) Apply(rho *mat.CDense, params ...float64) *mat.CDense {
	return c.fn(rho, params...)
}

// ApplyTo applies the channel to the designated qubits of a state rho of
// any dimension. Panics when the number of qubit indices does not match
// the channel arity. The single-qubit path clamps numerically tiny
// imaginary parts; multi-qubit application returns the raw result.
func (c *Channel) ApplyTo(
	rho *mat.CDense,
	qubitIndices []int,
	params ...float64,
) *mat.CDense {
	if len(qubitIndices) != c.nQubits {
		logrus.Panicf(
			"noise: channel expects %d qubit indices, got %d",
			c.nQubits, len(qubitIndices),
		)
	}

	mapFunc := func(block *mat.CDense) *mat.CDense {
		return c.fn(block, params...)
	}
	out := matops.ApplySubspaceMap(mapFunc, rho, qubitIndices)
	if c.nQubits == 1 {
		out = matops.RealIfClose(out)
	}
	return out
}

// Freeze pre-binds the extra parameters, returning a channel that needs
// only the state. This is useful when the application of the channel is
// delayed, so the parameters do not need to be stored separately until
// that happens.
func (c *Channel) Freeze(params ...float64) *Channel {
	frozen := append([]float64(nil), params...)
	return NewChannel(c.nQubits, func(rho *mat.CDense, _ ...float64) *mat.CDense {
		return c.fn(rho, frozen...)
	})
}
