package matops

import (
	"sort"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// ApplySubspaceMap applies an m-qubit map to the designated qubits of an
// n-qubit state, iterating over all basis configurations of the remaining
// qubits. The map receives a 2^m x 2^m block and must return one of the
// same dimension. The returned state has the same dimension as rho.
func ApplySubspaceMap(
	mapFunc func(block *mat.CDense) *mat.CDense,
	rho *mat.CDense,
	qubitIndices []int,
) *mat.CDense {
	n := NumQubits(rho)
	m := len(qubitIndices)
	if m > n {
		logrus.Panicf(
			"matops: cannot apply %d-qubit map to %d-qubit state", m, n)
	}

	targets := append([]int(nil), qubitIndices...)
	sort.Ints(targets)
	rest := restPositions(n, targets)

	d := 1 << n
	dm := 1 << m
	dr := 1 << len(rest)

	out := mat.NewCDense(d, d, nil)
	for rowRest := 0; rowRest < dr; rowRest++ {
		for colRest := 0; colRest < dr; colRest++ {
			block := mat.NewCDense(dm, dm, nil)
			for a := 0; a < dm; a++ {
				rowIdx := scatterIndex(a, targets, rowRest, rest, n)
				for b := 0; b < dm; b++ {
					colIdx := scatterIndex(b, targets, colRest, rest, n)
					block.Set(a, b, rho.At(rowIdx, colIdx))
				}
			}

			blockOut := mapFunc(block)

			for a := 0; a < dm; a++ {
				rowIdx := scatterIndex(a, targets, rowRest, rest, n)
				for b := 0; b < dm; b++ {
					colIdx := scatterIndex(b, targets, colRest, rest, n)
					out.Set(rowIdx, colIdx, blockOut.At(a, b))
				}
			}
		}
	}
	return out
}

func restPositions(n int, targets []int) []int {
	rest := make([]int, 0, n-len(targets))
	t := 0
	for k := 0; k < n; k++ {
		if t < len(targets) && targets[t] == k {
			t++
			continue
		}
		rest = append(rest, k)
	}
	return rest
}

// scatterIndex builds a full n-qubit basis index from the target-qubit bits
// and the remaining-qubit bits.
func scatterIndex(
	targetBits int, targets []int,
	restBits int, rest []int,
	n int,
) int {
	idx := 0
	for k, pos := range targets {
		bit := (targetBits >> (len(targets) - 1 - k)) & 1
		idx |= bit << (n - 1 - pos)
	}
	for k, pos := range rest {
		bit := (restBits >> (len(rest) - 1 - k)) & 1
		idx |= bit << (n - 1 - pos)
	}
	return idx
}
