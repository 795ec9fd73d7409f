package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/bracketpress/bracketpress/internal/logger"
	"github.com/bracketpress/bracketpress/internal/palette"
	bperrors "github.com/bracketpress/bracketpress/pkg/errors"
)

// Status is the publication state of a tournament record.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// Tournament is one registered tournament site record. The published-page
// viewer lists and resolves these; the builder document holds the page
// itself.
type Tournament struct {
	ID           string             `json:"id" validate:"required"`
	Name         string             `json:"name" validate:"required,min=1,max=100"`
	Slug         string             `json:"slug"`
	Description  string             `json:"description,omitempty" validate:"max=500"`
	StartDate    time.Time          `json:"start_date"`
	EndDate      time.Time          `json:"end_date" validate:"omitempty,gtefield=StartDate"`
	Colors       palette.BaseColors `json:"colors"`
	Status       Status             `json:"status" validate:"required,oneof=draft published"`
	DocumentPath string             `json:"document_path,omitempty"`
	RegisteredAt time.Time          `json:"registered_at"`
}

// registryFile is the JSON file format for the tournament registry.
type registryFile struct {
	Version     string       `json:"version"`
	Tournaments []Tournament `json:"tournaments"`
}

// Registry manages tournament record persistence.
type Registry struct {
	path        string
	mu          sync.RWMutex
	version     string
	tournaments []Tournament
	validate    *validator.Validate
}

// NewRegistry creates a Registry and loads it from disk. A missing file
// starts empty; a corrupt file is logged and treated as empty rather than
// failing the caller.
func NewRegistry(path string, log *logger.Logger) (*Registry, error) {
	r := &Registry{
		path:     path,
		version:  "1.0",
		validate: validator.New(),
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, bperrors.NewStorageError(dir, "mkdir", err)
	}

	if err := r.load(); err != nil {
		if os.IsNotExist(err) {
			r.tournaments = []Tournament{}
		} else {
			log.WithFields(map[string]any{"path": path}).Error(err, "tournament registry corrupt, starting empty")
			r.tournaments = []Tournament{}
		}
	}

	return r, nil
}

func (r *Registry) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		return err
	}

	var file registryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return bperrors.NewParseError(r.path, 0, err)
	}

	r.version = file.Version
	r.tournaments = file.Tournaments
	return nil
}

// Save writes the registry to disk atomically.
func (r *Registry) Save() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	file := registryFile{
		Version:     r.version,
		Tournaments: r.tournaments,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return bperrors.NewStorageError(r.path, "marshal", err)
	}

	tmpPath := r.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return bperrors.NewStorageError(tmpPath, "write", err)
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		os.Remove(tmpPath)
		return bperrors.NewStorageError(r.path, "rename", err)
	}
	return nil
}

// List returns all registered tournaments.
func (r *Registry) List() []Tournament {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Tournament, len(r.tournaments))
	copy(out, r.tournaments)
	return out
}

// Published returns only the records visible to the public viewer.
func (r *Registry) Published() []Tournament {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Tournament
	for _, t := range r.tournaments {
		if t.Status == StatusPublished {
			out = append(out, t)
		}
	}
	return out
}

// Get retrieves a tournament by ID.
func (r *Registry) Get(id string) (Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tournaments {
		if t.ID == id {
			return t, nil
		}
	}
	return Tournament{}, fmt.Errorf("tournament not found: %s", id)
}

// ResolveBySlug resolves a record for the public route. Only published
// records resolve: a draft 404s on the public route even when its slug
// matches.
func (r *Registry) ResolveBySlug(slug string) (Tournament, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tournaments {
		if t.Slug == slug && t.Status == StatusPublished {
			return t, true
		}
	}
	return Tournament{}, false
}

// Add validates and adds a new tournament. The slug is derived from the
// name; duplicate ids and slugs are rejected.
func (r *Registry) Add(t Tournament) error {
	t.Slug = Slugify(t.Name)
	if t.Slug == "" {
		return bperrors.NewValidationError("name", "produces an empty slug", nil)
	}
	if err := r.validate.Struct(t); err != nil {
		return bperrors.NewValidationError("tournament", err.Error(), err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.tournaments {
		if existing.ID == t.ID {
			return fmt.Errorf("tournament with ID %s already exists", t.ID)
		}
		if existing.Slug == t.Slug {
			return fmt.Errorf("tournament with slug %s already exists", t.Slug)
		}
	}

	r.tournaments = append(r.tournaments, t)
	return nil
}

// Update validates and replaces an existing tournament, rederiving its slug.
func (r *Registry) Update(t Tournament) error {
	t.Slug = Slugify(t.Name)
	if err := r.validate.Struct(t); err != nil {
		return bperrors.NewValidationError("tournament", err.Error(), err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.tournaments {
		if existing.ID == t.ID {
			r.tournaments[i] = t
			return nil
		}
	}
	return fmt.Errorf("tournament not found: %s", t.ID)
}

// SetStatus flips a record between draft and published.
func (r *Registry) SetStatus(id string, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tournaments {
		if r.tournaments[i].ID == id {
			r.tournaments[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("tournament not found: %s", id)
}

// Remove removes a tournament from the registry.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.tournaments {
		if t.ID == id {
			r.tournaments = append(r.tournaments[:i], r.tournaments[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("tournament not found: %s", id)
}
