// Package store persists alignment records as JSON on disk.
//
// Writes go to a temporary file in the target directory that is renamed over
// the destination, so readers never observe a partially written record.
// Concurrent Save calls to the same path are safe; the last rename wins.
package store
