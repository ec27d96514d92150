package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

var _ RecordStore = (*CSVStore)(nil)

// CSVStore keeps each collection in <dir>/<collection>.csv with a header
// row. Writes are serialized per collection and performed as a temp-file
// write plus rename, so readers never observe a partial rewrite.
type CSVStore struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewCSVStore(dir string) *CSVStore {
	return &CSVStore{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *CSVStore) LoadAll(_ context.Context, collection string) ([]Record, error) {
	f, err := os.Open(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, collection)
		}
		return nil, fmt.Errorf("open %s: %w", collection, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Hand-edited files sometimes carry ragged rows; missing trailing
	// fields are simply absent from the record.
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err == io.EOF {
		// A file with no header holds no records.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s header: %w", collection, err)
	}

	var records []Record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", collection, err)
		}
		rec := make(Record, len(header))
		for i, field := range header {
			if i < len(row) {
				rec[field] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *CSVStore) SaveAll(_ context.Context, collection string, records []Record, fieldOrder []string) error {
	lock := s.lockFor(collection)
	lock.Lock()
	defer lock.Unlock()

	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(fieldOrder); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s header: %w", collection, err)
	}
	row := make([]string, len(fieldOrder))
	for _, rec := range records {
		for i, field := range fieldOrder {
			row[i] = rec[field]
		}
		if err := w.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("write %s: %w", collection, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}

	// Rename makes the rewrite atomic for concurrent readers.
	if err := os.Rename(tmp.Name(), s.path(collection)); err != nil {
		return fmt.Errorf("replace %s: %w", collection, err)
	}
	return nil
}

func (s *CSVStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".csv")
}

func (s *CSVStore) lockFor(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[collection]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[collection] = lock
	}
	return lock
}
