// Package project persists builder state: one versioned JSON document per
// tournament site, plus the registry of tournament records the published
// viewer resolves by slug.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bracketpress/bracketpress/internal/assets"
	"github.com/bracketpress/bracketpress/internal/logger"
	"github.com/bracketpress/bracketpress/internal/store"
)

// DocumentVersion is written into every saved project document.
const DocumentVersion = "1.0"

// Document is the full serialized builder state for one site: section
// order, visibility, base colors, per-section settings, and the asset
// library, wrapped in a versioned envelope.
type Document struct {
	Version string         `json:"version"`
	Name    string         `json:"name"`
	State   store.State    `json:"state"`
	Assets  []assets.Asset `json:"assets"`
}

// NewDocument snapshots a store and asset registry into a document.
func NewDocument(name string, s *store.Store, reg *assets.Registry) Document {
	return Document{
		Version: DocumentVersion,
		Name:    name,
		State:   s.ExportState(),
		Assets:  reg.Export(),
	}
}

// Apply restores a document into a store and asset registry.
func (d Document) Apply(s *store.Store, reg *assets.Registry) {
	s.ImportState(d.State)
	reg.Import(d.Assets)
}

// SaveDocument writes the document atomically: marshal, write a temporary
// sibling, rename into place.
func SaveDocument(path string, doc Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

// LoadDocument reads a project document. A missing file or unparseable
// JSON is treated as "no data": the zero document is returned with ok
// false and corruption is logged, never propagated, so a broken file can
// not take the editor down.
func LoadDocument(path string, log *logger.Logger) (Document, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Error(err, "failed to read project document")
		}
		return Document{Version: DocumentVersion}, false
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.WithFields(map[string]any{"path": path}).Error(err, "project document corrupt, starting fresh")
		return Document{Version: DocumentVersion}, false
	}
	return doc, true
}
