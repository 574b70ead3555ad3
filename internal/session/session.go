// Package session keeps per-visitor state for the web server: where the
// visitor is in the documentation and what is in their playground editor.
//
// Records live in memory and, when a directory is configured, are mirrored
// to <dir>/<id>.json so sessions survive a restart.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/proxpl/proxsite/internal/nav"
	"github.com/proxpl/proxsite/internal/playground"
)

// ErrInvalidID is returned for identifiers that are not UUIDs.
var ErrInvalidID = errors.New("invalid session id")

// Record is one visitor's state.
type Record struct {
	ID      string            `json:"id"`
	Nav     nav.State         `json:"nav"`
	Code    string            `json:"code,omitempty"`
	Output  string            `json:"output,omitempty"`
	Status  playground.Status `json:"status,omitempty"`
	Touched time.Time         `json:"touched"`
}

// Store is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	dir     string
	ttl     time.Duration
	records map[string]Record

	now func() time.Time
}

// NewStore creates a store. An empty dir keeps sessions in memory only; a
// zero ttl never expires them.
func NewStore(dir string, ttl time.Duration) (*Store, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating session dir: %w", err)
		}
	}
	return &Store{
		dir:     dir,
		ttl:     ttl,
		records: make(map[string]Record),
		now:     time.Now,
	}, nil
}

// NewID returns a fresh session identifier.
func NewID() string {
	return uuid.NewString()
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil && !strings.ContainsAny(id, `/\`)
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

func (s *Store) expired(r Record) bool {
	return s.ttl > 0 && s.now().Sub(r.Touched) > s.ttl
}

// Get returns the record for id. Unknown, malformed and expired ids all
// report false; an expired record is removed.
func (s *Store) Get(id string) (Record, bool) {
	if !validID(id) {
		return Record{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok && s.dir != "" {
		loaded, err := s.load(id)
		if err != nil {
			return Record{}, false
		}
		r, ok = loaded, true
		s.records[id] = r
	}
	if !ok {
		return Record{}, false
	}
	if s.expired(r) {
		s.remove(id)
		return Record{}, false
	}
	return r, true
}

func (s *Store) load(id string) (Record, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		return Record{}, err
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, err
	}
	if r.ID != id {
		return Record{}, fmt.Errorf("session file %s holds id %q", id, r.ID)
	}
	return r, nil
}

// Put stores r and refreshes its timestamp.
func (s *Store) Put(r Record) error {
	if !validID(r.ID) {
		return fmt.Errorf("%w: %q", ErrInvalidID, r.ID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	r.Touched = s.now()
	s.records[r.ID] = r
	if s.dir == "" {
		return nil
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(s.path(r.ID), data, 0600)
}

// Delete forgets id. Deleting an unknown session is not an error.
func (s *Store) Delete(id string) error {
	if !validID(id) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(id)
}

func (s *Store) remove(id string) error {
	delete(s.records, id)
	if s.dir == "" {
		return nil
	}
	if err := os.Remove(s.path(id)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Sweep removes expired sessions from memory and disk and returns how many
// were removed.
func (s *Store) Sweep() (int, error) {
	if s.ttl <= 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, r := range s.records {
		if s.expired(r) {
			if err := s.remove(id); err != nil {
				return n, err
			}
			n++
		}
	}
	if s.dir == "" {
		return n, nil
	}

	// Files for sessions never loaded since startup are judged by mtime.

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return n, err
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		id := strings.TrimSuffix(name, ".json")
		if !validID(id) {
			continue
		}
		if _, live := s.records[id]; live {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if s.now().Sub(info.ModTime()) <= s.ttl {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return n, err
		}
		n++
	}
	return n, nil
}

// Len reports the number of sessions held in memory.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
