// Package conv computes convolutions for visualization, one instant at a
// time or as a full output curve.
//
// Both kernels implement the same four visualized sub-steps: reflect h about
// the origin, shift the reflection to the current time shift, form the
// pointwise product with x on a fixed grid, and reduce to a scalar.
//
//   - [ContinuousKernel]: trapezoidal integration over a fixed tau grid
//   - [DiscreteKernel]: exact summation over a fixed index window
//
// Grids are fixed per kernel and independent of the time shift, so frames at
// different shifts share the same axes.
//
// Kernels are immutable after construction and safe for concurrent use.
package conv
