// Package fingerprint produces short digests of serialized alignment records.
//
// Two runs that produce the same traceback encode to the same bytes, so equal
// fingerprints identify reproducible output across runs, processes and hosts.
// Digests are BLAKE2b-256 truncated to 10 bytes (20 hex chars).
package fingerprint
