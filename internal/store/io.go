package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"nwalign/internal/domain"
)

// FileMode is the permission applied to written records.
const FileMode os.FileMode = 0o644

// FileSink writes records to the local filesystem.
type FileSink struct{}

var _ domain.AlignmentSink = FileSink{}

// Save writes rec to path as JSON.
func (FileSink) Save(path string, rec domain.Alignment[domain.Char]) error {
	return writeJSON(path, rec, FileMode)
}

// Load reads a record previously written by Save.
func Load(path string) (domain.Alignment[domain.Char], error) {
	var rec domain.Alignment[domain.Char]
	if err := readJSON(path, &rec); err != nil {
		return domain.Alignment[domain.Char]{}, err
	}
	return rec, nil
}

// readJSON decodes the file at path into out. A missing file is an error.
func readJSON(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v any, mode os.FileMode) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return writeFile(path, b, mode)
}

// writeFile stages b in a sibling temp file and renames it over path, so a
// reader sees either the previous record or the new one. The temp file is
// removed on every failure path.
func writeFile(path string, b []byte, mode os.FileMode) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("stage %s: %w", path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(b); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err = f.Chmod(mode); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmp, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
