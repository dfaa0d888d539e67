// Package graph defines the immutable node-link model the engine renders.
//
// A [Snapshot] is built once from external input ([New], [Load]) and never
// mutated afterward. Links are resolved to indexes into the node table at
// build time ([Edge]); links whose endpoints do not resolve are dropped and
// counted rather than aliased to a substitute node.
package graph
