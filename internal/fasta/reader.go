package fasta

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"nwalign/internal/domain"
)

// HeaderMarker starts a header line.
const HeaderMarker = '>'

var (
	// ErrNoHeader is returned when sequence data appears before any header.
	ErrNoHeader = errors.New("fasta: sequence without header")
	// ErrInvalidUTF8 is returned for a line that is not valid UTF-8. Invalid
	// bytes would otherwise all decode to U+FFFD and compare equal.
	ErrInvalidUTF8 = errors.New("fasta: invalid UTF-8")
)

// Record is one decoded entry.
type Record struct {
	Header   string
	Sequence domain.Sequence[domain.Char]
}

// Decode reads all records from r.
func Decode(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)

	var (
		records []Record
		header  string
		body    strings.Builder
		open    bool
		lineNo  int
	)
	flush := func() {
		if open {
			records = append(records, Record{Header: header, Sequence: domain.FromString(body.String())})
		}
	}

	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		eof := err != nil
		if eof && line == "" {
			break
		}
		lineNo++
		line = strings.TrimRight(line, "\r\n")
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrInvalidUTF8)
		}

		switch {
		case len(line) > 0 && line[0] == HeaderMarker:
			flush()
			header, open = line[1:], true
			body.Reset()
		case !open:
			if line != "" {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrNoHeader)
			}
		default:
			body.WriteString(line)
		}
		if eof {
			break
		}
	}
	flush()
	return records, nil
}

// ReadFile decodes the file at path. A ".gz" suffix is read through gzip and
// "-" reads standard input.
func ReadFile(path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	recs, err := Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return recs, nil
}

func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			fh.Close()
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		return struct {
			io.Reader
			io.Closer
		}{Reader: gr, Closer: fh}, nil
	}
	return fh, nil
}
