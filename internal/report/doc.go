// Package report renders batch results.
//
// Sinks are not safe for concurrent use; batch.Runner serializes calls. The
// text format reproduces the historical "path<TAB>-><TAB>hash" line so existing
// consumers keep working.
package report
