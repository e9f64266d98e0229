package noise

import "gonum.org/v1/gonum/mat"

// A ReplaceMap overrides the entire measurement-to-output step of a noisy
// two-stage operation.
type ReplaceMap func(rho *mat.CDense) *mat.CDense

// A Model describes noise of a two-stage operation in a standardized way:
// an optional channel applied to the joint state before the operation, an
// optional map that replaces the operation's default behavior entirely,
// and an optional channel applied to the finished output state. Exactly
// one of {default behavior, Replace} executes; Before and After always
// execute if present.
//
// The zero value is the noiseless model.
type Model struct {
	Before  *Channel
	Replace ReplaceMap
	After   *Channel
}
