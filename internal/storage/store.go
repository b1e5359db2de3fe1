package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store reads and writes JSON artifacts under a single data directory,
// laid out as data/bronze, data/silver and data/gold.
type Store struct {
	BaseDir string
}

func NewStore(baseDir string) *Store {
	return &Store{BaseDir: baseDir}
}

func (s *Store) Path(rel string) string {
	return filepath.Join(s.BaseDir, rel)
}

// SaveJSON writes v as indented JSON, creating parent directories as
// needed, and returns the absolute artifact path.
func (s *Store) SaveJSON(v interface{}, rel string) (string, error) {
	path := s.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", rel, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// LoadJSON decodes an artifact into v. A missing file is not an error;
// it reports found=false and leaves v untouched so callers can degrade
// to empty inputs.
func (s *Store) LoadJSON(rel string, v interface{}) (bool, error) {
	data, err := os.ReadFile(s.Path(rel))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading %s: %w", rel, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decoding %s: %w", rel, err)
	}
	return true, nil
}

// LoadRecords decodes a record array into out, skipping a leading
// "_metadata" entry when the extractor prepended one. Missing files
// yield an empty slice.
func LoadRecords[T any](s *Store, rel string) ([]T, error) {
	var raw []json.RawMessage
	found, err := s.LoadJSON(rel, &raw)
	if err != nil || !found {
		return nil, err
	}

	if len(raw) > 0 && hasMetadataKey(raw[0]) {
		raw = raw[1:]
	}

	records := make([]T, 0, len(raw))
	for i, msg := range raw {
		var rec T
		if err := json.Unmarshal(msg, &rec); err != nil {
			return nil, fmt.Errorf("decoding %s record %d: %w", rel, i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func hasMetadataKey(msg json.RawMessage) bool {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(msg, &probe); err != nil {
		return false
	}
	_, ok := probe["_metadata"]
	return ok
}

// ListJSON walks a layer directory and returns every .json artifact in
// it, relative to the store base. A missing layer is an empty list.
func (s *Store) ListJSON(layer string) ([]string, error) {
	root := s.Path(layer)
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		rel, err := filepath.Rel(s.BaseDir, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return files, nil
}
