// Package remote is an HTTP client for a running nwalign service.
//
// Requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as errors carrying the method,
// URL and status text, plus the server's error message when it sent one.
package remote
