package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	domain "github.com/donaldgifford/quicklist/pkg/types"
)

// fileState is the on-disk layout of the JSON store, keyed by instance.
type fileState struct {
	Instances map[string]*instanceState `json:"instances"`
}

type instanceState struct {
	Credential *domain.Credential   `json:"credential,omitempty"`
	Listings   []domain.LastListing `json:"listings,omitempty"` // newest first
}

// FileStore implements Store on a single JSON file. It suits one process on
// one host; writes go to a temp file that replaces the original by rename.
type FileStore struct {
	mu       sync.Mutex
	path     string
	instance string
}

// NewFileStore returns a FileStore at path. The file and its directory are
// created on first write.
func NewFileStore(path string, opts ...Option) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("file store path is required")
	}
	o := buildOptions(opts)
	return &FileStore{path: path, instance: o.instance}, nil
}

// Close is a no-op.
func (*FileStore) Close() error { return nil }

// Migrate creates the parent directory.
func (s *FileStore) Migrate(context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}
	return nil
}

// Ping checks that the store file is readable when it exists.
func (s *FileStore) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.load()
	return err
}

// GetCredential returns the stored credential or domain.ErrNoCredential.
func (s *FileStore) GetCredential(context.Context) (*domain.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return nil, err
	}
	inst := st.Instances[s.instance]
	if inst == nil || inst.Credential == nil {
		return nil, domain.ErrNoCredential
	}
	c := *inst.Credential
	return &c, nil
}

// SaveCredential replaces the stored credential.
func (s *FileStore) SaveCredential(_ context.Context, c *domain.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return err
	}
	c.UpdatedAt = time.Now().UTC()
	saved := *c
	s.instanceState(st).Credential = &saved
	return s.save(st)
}

// DeleteCredential removes the stored credential, if any.
func (s *FileStore) DeleteCredential(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return err
	}
	s.instanceState(st).Credential = nil
	return s.save(st)
}

// SaveLastListing prepends l to the capped history.
func (s *FileStore) SaveLastListing(_ context.Context, l *domain.LastListing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return err
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	inst := s.instanceState(st)
	inst.Listings = append([]domain.LastListing{*l}, inst.Listings...)
	if len(inst.Listings) > maxHistory {
		inst.Listings = inst.Listings[:maxHistory]
	}
	return s.save(st)
}

// GetLastListing returns the most recent listing or domain.ErrNoLastListing.
func (s *FileStore) GetLastListing(context.Context) (*domain.LastListing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return nil, err
	}
	inst := st.Instances[s.instance]
	if inst == nil || len(inst.Listings) == 0 {
		return nil, domain.ErrNoLastListing
	}
	l := inst.Listings[0]
	return &l, nil
}

// ListListings filters the stored history in memory.
func (s *FileStore) ListListings(
	_ context.Context,
	q *ListingQuery,
) ([]domain.LastListing, int, error) {
	if q == nil {
		q = &ListingQuery{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load()
	if err != nil {
		return nil, 0, err
	}
	var all []domain.LastListing
	if inst := st.Instances[s.instance]; inst != nil {
		all = inst.Listings
	}

	page, total := q.Apply(all)
	return page, total, nil
}

func (s *FileStore) instanceState(st *fileState) *instanceState {
	inst := st.Instances[s.instance]
	if inst == nil {
		inst = &instanceState{}
		st.Instances[s.instance] = inst
	}
	return inst
}

// load reads the file. A missing file is an empty store. Callers hold mu.
func (s *FileStore) load() (*fileState, error) {
	st := &fileState{Instances: map[string]*instanceState{}}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return st, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading store file: %w", err)
	}
	if len(data) == 0 {
		return st, nil
	}

	if err := json.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("decoding store file: %w", err)
	}
	if st.Instances == nil {
		st.Instances = map[string]*instanceState{}
	}
	return st, nil
}

// save writes st atomically. Callers hold mu.
func (s *FileStore) save(st *fileState) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store file: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp store file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing temp store file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("setting store file mode: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing store file: %w", err)
	}
	return nil
}
