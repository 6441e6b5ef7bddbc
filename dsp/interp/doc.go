// Package interp provides sub-sample interpolation primitives used to refine
// peak positions between pixels.
//
//   - [Linear2]:   2-point linear interpolation
//   - [Parabolic]: 3-point parabolic vertex
//   - [Vertex]:    parabolic refinement of a trace maximum
package interp
