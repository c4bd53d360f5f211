// Package fasta decodes multi-record FASTA text into sequences.
//
// A record starts at a header line whose first character is '>' and owns every
// following data line up to the next header. Data lines are concatenated with
// line breaks removed. Data before the first header is rejected with ErrNoHeader.
package fasta
