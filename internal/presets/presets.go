// Package presets loads user theme presets from YAML files and imports
// preset collections from git repositories. Builtin presets live in the
// palette package; this package only handles user-supplied ones.
package presets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/bracketpress/bracketpress/internal/logger"
	"github.com/bracketpress/bracketpress/internal/palette"
	bperrors "github.com/bracketpress/bracketpress/pkg/errors"
)

type presetFile struct {
	Name        string
	Description string
	Colors      palette.BaseColors
}

var validate = validator.New()

// LoadFile parses and validates one preset YAML file.
func LoadFile(path string) (palette.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return palette.Preset{}, bperrors.NewStorageError(path, "read", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file presetFile
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return palette.Preset{}, bperrors.NewParseError(path, 0, err)
	}

	if file.Name == "" {
		return palette.Preset{}, bperrors.NewValidationError("name", "preset name is required", nil)
	}
	if err := validate.Struct(file.Colors); err != nil {
		return palette.Preset{}, bperrors.NewValidationError("colors", err.Error(), err)
	}

	return palette.Preset{
		Name:        file.Name,
		Description: file.Description,
		Colors:      file.Colors.Normalized(),
	}, nil
}

// LoadDir loads every preset YAML in dir, sorted by name. Unparseable
// files are logged and skipped so one bad preset cannot hide the rest. A
// missing directory is an empty result, not an error.
func LoadDir(dir string, log *logger.Logger) []palette.Preset {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithFields(map[string]any{"dir": dir}).Warn("cannot read presets directory")
		}
		return nil
	}

	var out []palette.Preset
	for _, entry := range entries {
		if entry.IsDir() || !isPresetFile(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		preset, err := LoadFile(path)
		if err != nil {
			log.WithFields(map[string]any{"file": entry.Name()}).Warn("skipping bad preset file")
			continue
		}
		out = append(out, preset)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func isPresetFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// Import clones a preset repository and copies its preset files into the
// presets directory. Returns the number of files imported.
func Import(ctx context.Context, gitURL, presetsDir string, log *logger.Logger) (int, error) {
	tmpDir, err := os.MkdirTemp("", "bracketpress-presets-*")
	if err != nil {
		return 0, bperrors.NewPresetError(gitURL, fmt.Errorf("failed to create staging directory: %w", err))
	}
	defer os.RemoveAll(tmpDir)

	if _, err := git.PlainCloneContext(ctx, tmpDir, false, &git.CloneOptions{
		URL:   gitURL,
		Depth: 1,
	}); err != nil {
		return 0, bperrors.NewPresetError(gitURL, fmt.Errorf("clone failed: %w", err))
	}

	if err := os.MkdirAll(presetsDir, 0755); err != nil {
		return 0, bperrors.NewPresetError(gitURL, err)
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		return 0, bperrors.NewPresetError(gitURL, err)
	}

	imported := 0
	for _, entry := range entries {
		if entry.IsDir() || !isPresetFile(entry.Name()) {
			continue
		}
		src := filepath.Join(tmpDir, entry.Name())

		// Validate before copying so a repository full of junk imports nothing.
		if _, err := LoadFile(src); err != nil {
			log.WithFields(map[string]any{"file": entry.Name()}).Warn("skipping invalid preset in repository")
			continue
		}

		data, err := os.ReadFile(src)
		if err != nil {
			log.WithFields(map[string]any{"file": entry.Name()}).Warn("skipping unreadable preset in repository")
			continue
		}
		if err := os.WriteFile(filepath.Join(presetsDir, entry.Name()), data, 0644); err != nil {
			return imported, bperrors.NewPresetError(gitURL, err)
		}
		imported++
	}
	return imported, nil
}
