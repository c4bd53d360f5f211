// Package alignment runs the engine on behalf of the command surface and the
// HTTP service.
//
// It checks that align-mode input holds exactly two records, fans repeated
// runs out over a bounded worker pool, logs each record and the throughput
// summary, records metrics and optionally persists the record.
package alignment
