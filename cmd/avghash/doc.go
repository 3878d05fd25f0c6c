// Package main hosts the avghash CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration, builds the logger, and hands
// path streams to the batch runner. Hashing, input sourcing, and reporting
// live in internal packages; commands here only wire them together and map
// flags onto configuration.
package main
