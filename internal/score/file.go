// internal/score/file.go
package score

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

const scoreFileVersion = 1

// historyLimit ограничивает историю в файле; старые записи выбрасываются первыми.
const historyLimit = 500

type scoreFile struct {
	Version int      `json:"version"`
	Rows    []Record `json:"rows"`
	History []Record `json:"history"`
}

// FileStore хранит таблицу рекордов в локальном JSON-файле и атомарно переписывает его при каждой записи.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Upsert(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.load()
	if err != nil {
		return err
	}
	replaced := false
	for i := range f.Rows {
		if f.Rows[i].Key() == rec.Key() {
			f.Rows[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		f.Rows = append(f.Rows, rec)
	}
	f.History = append(f.History, rec)
	if over := len(f.History) - historyLimit; over > 0 {
		f.History = f.History[over:]
	}
	sort.Slice(f.Rows, func(i, j int) bool {
		if f.Rows[i].UserID != f.Rows[j].UserID {
			return f.Rows[i].UserID < f.Rows[j].UserID
		}
		return f.Rows[i].GameType < f.Rows[j].GameType
	})
	return s.save(f)
}

func (s *FileStore) Best(_ context.Context, key Key) (Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.load()
	if err != nil {
		return Record{}, false, err
	}
	for _, r := range f.Rows {
		if r.Key() == key {
			return r, true, nil
		}
	}
	return Record{}, false, nil
}

// History возвращает сохранённые записи для key, от старых к новым.
func (s *FileStore) History(key Key) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.load()
	if err != nil {
		return nil, err
	}
	var out []Record
	for _, r := range f.History {
		if r.Key() == key {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *FileStore) load() (scoreFile, error) {
	blob, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return scoreFile{Version: scoreFileVersion}, nil
	}
	if err != nil {
		return scoreFile{}, fmt.Errorf("%w: read %s: %v", ErrStoreUnavailable, s.path, err)
	}
	var f scoreFile
	if err := json.Unmarshal(blob, &f); err != nil {
		return scoreFile{}, fmt.Errorf("decode %s: %w", s.path, err)
	}
	if f.Version == 0 {
		f.Version = scoreFileVersion
	}
	if f.Version != scoreFileVersion {
		return scoreFile{}, fmt.Errorf("unsupported score file version: %d", f.Version)
	}
	return f, nil
}

func (s *FileStore) save(f scoreFile) error {
	if s.path == "" {
		return fmt.Errorf("%w: path is empty", ErrStoreUnavailable)
	}
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: ensure parent dir: %v", ErrStoreUnavailable, err)
		}
	}
	f.Version = scoreFileVersion
	blob, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return fmt.Errorf("%w: write temp file: %v", ErrStoreUnavailable, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: rename temp file: %v", ErrStoreUnavailable, err)
	}
	return nil
}
