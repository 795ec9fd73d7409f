package builder

import (
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bracketpress/bracketpress/internal/assets"
	"github.com/bracketpress/bracketpress/internal/palette"
	"github.com/bracketpress/bracketpress/internal/section"
	"github.com/bracketpress/bracketpress/internal/store"
)

// Model is the interactive page-builder model. The store is the single
// source of truth; the model only tracks cursors, focus, and transient
// banners.
type Model struct {
	// Core data
	store       *store.Store
	assets      *assets.Registry
	projectName string
	projectPath string
	presets     []palette.Preset

	// UI state
	viewMode    ViewMode
	returnMode  ViewMode
	cursor      int
	themeCursor int
	presetIdx   int
	assetCursor int
	formatIdx   map[section.ID]int

	// Component state
	picker   filepicker.Model
	picking  bool
	rename   textinput.Model
	renaming bool

	// Banner state
	showError bool
	errorMsg  string
	statusMsg string

	// Dimensions
	width  int
	height int

	// Configuration
	useUnicode bool
}

// Options configures a new builder model.
type Options struct {
	Store       *store.Store
	Assets      *assets.Registry
	ProjectName string
	ProjectPath string
	Presets     []palette.Preset
	Unicode     bool
}

// NewModel creates a builder model over a store and asset registry.
func NewModel(opts Options) Model {
	presets := append([]palette.Preset(nil), palette.BuiltinPresets()...)
	presets = append(presets, opts.Presets...)

	picker := filepicker.New()
	picker.AllowedTypes = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg"}

	rename := textinput.New()
	rename.Prompt = "Rename: "
	rename.CharLimit = 64

	return Model{
		picker:      picker,
		rename:      rename,
		store:       opts.Store,
		assets:      opts.Assets,
		projectName: opts.ProjectName,
		projectPath: opts.ProjectPath,
		presets:     presets,
		viewMode:    ViewSections,
		formatIdx:   make(map[section.ID]int),
		useUnicode:  opts.Unicode,
		width:       80,
		height:      24,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Helper Methods

// SelectedSection returns the section id under the cursor.
func (m *Model) SelectedSection() (section.ID, bool) {
	order := m.store.Order()
	if m.cursor < 0 || m.cursor >= len(order) {
		return "", false
	}
	return order[m.cursor], true
}

// MoveCursorUp moves the section cursor up with wrapping.
func (m *Model) MoveCursorUp() {
	n := len(m.store.Order())
	if n == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = n - 1
	}
}

// MoveCursorDown moves the section cursor down with wrapping.
func (m *Model) MoveCursorDown() {
	n := len(m.store.Order())
	if n == 0 {
		return
	}
	m.cursor++
	if m.cursor >= n {
		m.cursor = 0
	}
}

// VisibleCount returns how many sections are currently shown on the page.
func (m *Model) VisibleCount() int {
	count := 0
	for _, id := range m.store.Order() {
		if m.store.Visible(id) {
			count++
		}
	}
	return count
}

// CurrentPreset returns the preset under the theme cursor.
func (m *Model) CurrentPreset() (palette.Preset, bool) {
	if len(m.presets) == 0 {
		return palette.Preset{}, false
	}
	if m.presetIdx < 0 || m.presetIdx >= len(m.presets) {
		return palette.Preset{}, false
	}
	return m.presets[m.presetIdx], true
}

// SelectedAsset returns the asset under the asset cursor.
func (m *Model) SelectedAsset() (assets.Asset, bool) {
	list := m.assets.List()
	if m.assetCursor < 0 || m.assetCursor >= len(list) {
		return assets.Asset{}, false
	}
	return list[m.assetCursor], true
}

// GetViewMode returns the focused pane.
func (m *Model) GetViewMode() ViewMode {
	return m.viewMode
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
}

func (m *Model) setError(msg string) {
	m.showError = true
	m.errorMsg = msg
}

func (m *Model) clearError() {
	m.showError = false
	m.errorMsg = ""
}

// imageTarget maps a section to its single image slot, when it has one.
func (m *Model) imageTarget(id section.ID) (assets.Target, bool) {
	s := m.store
	switch id {
	case section.Navigation:
		return assets.Target{
			Name: "Navigation logo",
			Set: func(dataURL string) {
				s.Update(id, func(set *section.Settings) {
					set.Navigation.LogoImage = dataURL
				})
			},
		}, true
	case section.Hero:
		return assets.Target{
			Name: "Hero background",
			Set: func(dataURL string) {
				s.Update(id, func(set *section.Settings) {
					set.Hero.BackgroundImage = dataURL
				})
			},
		}, true
	case section.About:
		return assets.Target{
			Name: "About image",
			Set: func(dataURL string) {
				s.Update(id, func(set *section.Settings) {
					set.About.Image = dataURL
				})
			},
		}, true
	}
	return assets.Target{}, false
}
