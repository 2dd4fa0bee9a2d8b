// Package rtin implements the Right-Triangulated Irregular Network
// algorithm: an adaptive triangulation of a square power-of-two heightmap.
//
// The tree of candidate triangles is never materialized. Every triangle is
// addressed by a bin_id, a binary path from one of the two root triangles
// (see BinID), and the four pieces that matter — identifying a triangle,
// reconstructing its corners, scoring its approximation error and selecting
// a crack-free subset of triangles against an error threshold — are all
// pure functions over that identifier.
package rtin
