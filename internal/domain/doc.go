// Package domain defines the core data models and interfaces shared across nwalign.
// It contains plain types (sequences, penalties, alignment records) and contracts only;
// the scoring algorithm lives in internal/align.
package domain
