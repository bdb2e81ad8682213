package record

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/mduval/wedding-rsvp/model"
	"github.com/mduval/wedding-rsvp/utils/identity"
)

// FileRepository keeps the whole record set in one JSON file. Reads parse
// the entire file; a missing or unparsable file is an empty set, never an
// error. Writes rewrite the whole file under a mutex, so concurrent
// submissions within one process cannot lose each other's updates.
type FileRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) ReadAll(_ context.Context) ([]model.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}

func (r *FileRepository) FindMatch(_ context.Context, email, phone string) (*model.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.load()
	if idx := matchIndex(all, email, phone); idx >= 0 {
		rec := all[idx]
		return &rec, nil
	}
	return nil, nil
}

func (r *FileRepository) Upsert(_ context.Context, rec model.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.load()
	for i := range all {
		if all[i].ID == rec.ID {
			all[i] = rec
			return r.save(all)
		}
	}

	// New records go first; listing order falls out of this.
	all = append([]model.Record{rec}, all...)
	return r.save(all)
}

func (r *FileRepository) load() []model.Record {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil
	}
	var all []model.Record
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil
	}
	return all
}

func (r *FileRepository) save(all []model.Record) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, raw, 0o644)
}

// matchIndex scans for a record whose normalized email or phone equals one
// of the given keys. Empty keys never match.
func matchIndex(all []model.Record, email, phone string) int {
	for i := range all {
		re := identity.NormalizeEmail(all[i].Email)
		rp := identity.NormalizePhone(all[i].Phone)
		if (email != "" && re == email) || (phone != "" && rp == phone) {
			return i
		}
	}
	return -1
}
