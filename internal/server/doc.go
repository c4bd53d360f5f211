// Package server exposes the alignment engine over HTTP.
//
// HTTP API
//
//	POST /align {"seq1": "...", "seq2": "..."}
//	    Align the two texts character by character with the process-wide
//	    penalties and return the serialized record
//	    {"alignment": [[a|null, b|null], ...], "score": s}. Both fields are
//	    required; empty strings are valid sequences. The response carries
//	    X-Alignment-Digest, a fingerprint of the body.
//
//	GET /health
//	    {"status": "ok"}
//
//	GET /metrics
//	    Prometheus exposition of the registered collectors.
//
// Behaviour
//
//   - Every response carries X-Request-ID, echoed from the request or generated.
//   - An access log records method, path, status, bytes and duration.
//   - Malformed bodies, including bodies that are not valid UTF-8, are
//     answered with 400 and {"error": "..."}.
//   - No authentication and no request size limit beyond net/http defaults.
package server
