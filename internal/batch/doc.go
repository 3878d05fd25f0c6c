// Package batch runs the average hash pipeline over many inputs in parallel.
//
// Inputs arrive lazily from an inputs.Source and are fanned out to a bounded
// errgroup. Every input yields exactly one Result; a failing image never
// stops the others. Results are delivered to the sink one at a time but in
// completion order, which is not the input order.
package batch
