// Package assets tracks the uploaded image library shared by every
// section: each asset keeps its data inline as a data URL plus reverse
// usage references ("used in: Hero, About"). Assignment copies the value
// into the target setting; deleting an asset never retracts data already
// copied out.
package assets

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/bracketpress/bracketpress/internal/logger"
)

// Asset is one uploaded image.
type Asset struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	DataURL     string   `json:"data_url"`
	DisplaySize string   `json:"display_size"`
	UsedIn      []string `json:"used_in"`
}

// Target is a drop destination: a named setter bound to one section's
// image field. The registry only ever calls Set with the asset's data; it
// knows nothing about the editor machinery that produced the drop.
type Target struct {
	Name string
	Set  func(dataURL string)
}

// Registry is the flat uploaded-asset collection.
type Registry struct {
	mu     sync.RWMutex
	assets []Asset
	log    *logger.Logger
}

// NewRegistry creates an empty asset registry.
func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{log: log}
}

// Upload reads an image and adds it to the registry with a fresh id, a
// humanized display size, and no usage references yet.
func (r *Registry) Upload(name string, src io.Reader) (Asset, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return Asset{}, fmt.Errorf("read upload %q: %w", name, err)
	}

	asset := Asset{
		ID:          uuid.NewString(),
		Name:        name,
		DataURL:     dataURL(name, data),
		DisplaySize: humanize.Bytes(uint64(len(data))),
	}

	r.mu.Lock()
	r.assets = append(r.assets, asset)
	r.mu.Unlock()
	return asset, nil
}

// UploadFile reads a file from disk. A failed read is logged and dropped,
// never surfaced as a blocking failure.
func (r *Registry) UploadFile(path string) (Asset, bool) {
	f, err := os.Open(path)
	if err != nil {
		r.log.Error(err, "upload skipped")
		return Asset{}, false
	}
	defer f.Close()

	asset, err := r.Upload(filepath.Base(path), f)
	if err != nil {
		r.log.Error(err, "upload skipped")
		return Asset{}, false
	}
	return asset, true
}

// dataURL builds an inline data URL, sniffing the media type from the
// extension and falling back to content detection.
func dataURL(name string, data []byte) string {
	mediaType := ""
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		mediaType = "image/png"
	case ".jpg", ".jpeg":
		mediaType = "image/jpeg"
	case ".gif":
		mediaType = "image/gif"
	case ".svg":
		mediaType = "image/svg+xml"
	case ".webp":
		mediaType = "image/webp"
	default:
		mediaType = http.DetectContentType(data)
	}
	return fmt.Sprintf("data:%s;base64,%s", mediaType, base64.StdEncoding.EncodeToString(data))
}

// List returns a copy of all assets in upload order.
func (r *Registry) List() []Asset {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Asset, len(r.assets))
	copy(out, r.assets)
	for i := range out {
		out[i].UsedIn = append([]string(nil), out[i].UsedIn...)
	}
	return out
}

// Get retrieves an asset by id.
func (r *Registry) Get(id string) (Asset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.assets {
		if a.ID == id {
			a.UsedIn = append([]string(nil), a.UsedIn...)
			return a, true
		}
	}
	return Asset{}, false
}

// Rename changes an asset's display name. Unknown ids are a no-op.
func (r *Registry) Rename(id, newName string) bool {
	if strings.TrimSpace(newName) == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.assets {
		if r.assets[i].ID == id {
			r.assets[i].Name = newName
			return true
		}
	}
	return false
}

// Delete removes an asset from the library. Sections that already copied
// its data URL keep their value: references are by value, not by id.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.assets {
		if r.assets[i].ID == id {
			r.assets = append(r.assets[:i], r.assets[i+1:]...)
			return true
		}
	}
	return false
}

// Assign invokes the target's setter with the asset's data URL and records
// the usage. Repeated assignment to the same target is idempotent: the
// setter runs again but the usage list gains no duplicate.
func (r *Registry) Assign(id string, target Target) bool {
	r.mu.Lock()
	var asset *Asset
	for i := range r.assets {
		if r.assets[i].ID == id {
			asset = &r.assets[i]
			break
		}
	}
	if asset == nil || target.Set == nil {
		r.mu.Unlock()
		return false
	}

	dataURL := asset.DataURL
	recorded := false
	for _, used := range asset.UsedIn {
		if used == target.Name {
			recorded = true
			break
		}
	}
	if !recorded {
		asset.UsedIn = append(asset.UsedIn, target.Name)
	}
	r.mu.Unlock()

	target.Set(dataURL)
	return true
}

// UsedBy returns the display names of the targets an asset has been
// assigned to. Unknown ids yield nil.
func (r *Registry) UsedBy(id string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.assets {
		if a.ID == id {
			return append([]string(nil), a.UsedIn...)
		}
	}
	return nil
}

// Export returns the registry contents for persistence.
func (r *Registry) Export() []Asset {
	return r.List()
}

// Import replaces the registry contents from a loaded document.
func (r *Registry) Import(assets []Asset) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.assets = make([]Asset, len(assets))
	copy(r.assets, assets)
}
