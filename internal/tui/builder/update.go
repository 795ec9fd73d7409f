package builder

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bracketpress/bracketpress/internal/section"
	"github.com/bracketpress/bracketpress/internal/store"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		ApplyMaxWidth(m.width)
		return m, nil

	case tea.KeyMsg:
		if m.picking {
			return m.updatePicker(msg)
		}
		if m.renaming {
			return m.updateRename(msg)
		}
		return m.handleKeyPress(msg)

	case AssetUploadedMsg:
		m.setStatus(fmt.Sprintf("Uploaded %s (%s)", msg.Asset.Name, msg.Asset.DisplaySize))
		return m, nil

	case AssetUploadFailedMsg:
		m.setError(fmt.Sprintf("Could not read %s", msg.Path))
		return m, nil

	case ProjectSavedMsg:
		m.setStatus(fmt.Sprintf("Saved to %s", msg.Path))
		return m, nil

	case ProjectSaveFailedMsg:
		m.setError(fmt.Sprintf("Save failed: %s", msg.Err.Error()))
		return m, nil

	case ErrorMsg:
		m.setError(msg.Message)
		return m, nil

	case ClearErrorMsg:
		m.clearError()
		return m, nil

	default:
		// The picker owns messages it understands (directory reads etc).
		if m.picking {
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// handleKeyPress routes keys to the focused pane.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys first.
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.clearError()
		m.statusMsg = ""
		switch m.viewMode {
		case ViewSections:
			m.viewMode = ViewTheme
		case ViewTheme:
			m.viewMode = ViewAssets
		case ViewAssets:
			m.viewMode = ViewSections
		}
		return m, nil
	case "ctrl+s":
		if m.projectPath == "" {
			m.setError("No project file to save to")
			return m, nil
		}
		return m, saveProjectCmd(m.projectPath, m.projectName, m.store, m.assets)
	case "?":
		if m.viewMode != ViewHelp {
			m.returnMode = m.viewMode
			m.viewMode = ViewHelp
		}
		return m, nil
	}

	switch m.viewMode {
	case ViewSections:
		return m.handleSectionKeys(msg)
	case ViewTheme:
		return m.handleThemeKeys(msg)
	case ViewAssets:
		return m.handleAssetKeys(msg)
	case ViewHelp:
		return m.handleHelpKeys(msg)
	default:
		return m, nil
	}
}

// handleSectionKeys drives the section list: visibility, ordering, and
// layout changes. Every out-of-range action is a no-op rather than an
// error.
func (m Model) handleSectionKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		m.MoveCursorUp()
		return m, nil

	case "down", "j":
		m.MoveCursorDown()
		return m, nil

	// Reorder the section under the cursor.
	case "K", "shift+up":
		if m.cursor > 0 && m.store.Reorder(m.cursor, m.cursor-1) {
			m.cursor--
		}
		return m, nil

	case "J", "shift+down":
		if m.store.Reorder(m.cursor, m.cursor+1) {
			m.cursor++
		}
		return m, nil

	// Toggle visibility.
	case " ", "enter":
		if id, ok := m.SelectedSection(); ok {
			m.store.Toggle(id)
		}
		return m, nil

	case "a":
		m.store.ToggleAll(true)
		return m, nil

	case "n":
		m.store.ToggleAll(false)
		return m, nil

	// Cycle layout variant for the selected section.
	case "v":
		if id, ok := m.SelectedSection(); ok {
			m.cycleVariant(id)
		}
		return m, nil

	// Cycle format for sections that have them.
	case "f":
		if id, ok := m.SelectedSection(); ok {
			m.cycleFormat(id)
		}
		return m, nil

	case "r":
		if id, ok := m.SelectedSection(); ok {
			m.store.ResetSection(id)
			m.setStatus(fmt.Sprintf("Reset %s to defaults", section.Label(id)))
		}
		return m, nil

	case "esc", "x":
		m.clearError()
		m.statusMsg = ""
		return m, nil
	}

	return m, nil
}

func (m *Model) cycleVariant(id section.ID) {
	variants := section.Variants(id)
	if len(variants) == 0 {
		return
	}
	current := m.store.Settings(id).Layout()
	next := variants[0].Name
	for i, v := range variants {
		if v.Name == current {
			next = variants[(i+1)%len(variants)].Name
			break
		}
	}
	if m.store.SetLayoutVariant(id, next) {
		m.setStatus(fmt.Sprintf("%s layout: %s", section.Label(id), next))
	}
}

func (m *Model) cycleFormat(id section.ID) {
	formats := section.Formats(id)
	if len(formats) == 0 {
		return
	}
	// Formats leave no discriminant behind, so the model remembers which
	// one it applied last.
	idx := m.formatIdx[id] % len(formats)
	name := formats[idx].Name
	if m.store.ApplyFormat(id, name) {
		m.formatIdx[id] = idx + 1
		m.setStatus(fmt.Sprintf("%s format: %s", section.Label(id), name))
	}
}

// handleThemeKeys drives the base-color roles and preset cycling.
func (m Model) handleThemeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	roles := store.BaseColorRoles()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if len(roles) > 0 {
			m.themeCursor--
			if m.themeCursor < 0 {
				m.themeCursor = len(roles) - 1
			}
		}
		return m, nil

	case "down", "j":
		if len(roles) > 0 {
			m.themeCursor++
			if m.themeCursor >= len(roles) {
				m.themeCursor = 0
			}
		}
		return m, nil

	case "left", "h":
		if len(m.presets) > 0 {
			m.presetIdx--
			if m.presetIdx < 0 {
				m.presetIdx = len(m.presets) - 1
			}
		}
		return m, nil

	case "right", "l":
		if len(m.presets) > 0 {
			m.presetIdx = (m.presetIdx + 1) % len(m.presets)
		}
		return m, nil

	case "enter", " ":
		if preset, ok := m.CurrentPreset(); ok {
			dirty := m.store.ApplyThemePreset(preset)
			m.setStatus(fmt.Sprintf("Applied %s (%d sections updated)", preset.Name, len(dirty)))
		}
		return m, nil

	case "esc", "x":
		m.clearError()
		m.statusMsg = ""
		return m, nil
	}

	return m, nil
}

// handleAssetKeys drives the asset library pane.
func (m Model) handleAssetKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		n := len(m.assets.List())
		if n > 0 {
			m.assetCursor--
			if m.assetCursor < 0 {
				m.assetCursor = n - 1
			}
		}
		return m, nil

	case "down", "j":
		n := len(m.assets.List())
		if n > 0 {
			m.assetCursor = (m.assetCursor + 1) % n
		}
		return m, nil

	// Assign the selected asset to the selected section's image slot.
	case "enter", " ":
		asset, ok := m.SelectedAsset()
		if !ok {
			return m, nil
		}
		id, ok := m.SelectedSection()
		if !ok {
			return m, nil
		}
		target, ok := m.imageTarget(id)
		if !ok {
			m.setError(fmt.Sprintf("%s has no image slot", section.Label(id)))
			return m, nil
		}
		if m.assets.Assign(asset.ID, target) {
			m.setStatus(fmt.Sprintf("Assigned %s to %s", asset.Name, target.Name))
		}
		return m, nil

	case "u":
		m.picking = true
		return m, m.picker.Init()

	case "R":
		if asset, ok := m.SelectedAsset(); ok {
			m.renaming = true
			m.rename.SetValue(asset.Name)
			m.rename.CursorEnd()
			return m, m.rename.Focus()
		}
		return m, nil

	case "d":
		if asset, ok := m.SelectedAsset(); ok {
			if m.assets.Delete(asset.ID) && m.assetCursor > 0 {
				m.assetCursor--
			}
		}
		return m, nil

	case "esc", "x":
		m.clearError()
		m.statusMsg = ""
		return m, nil
	}

	return m, nil
}

// updateRename drives the asset rename input while it is open.
func (m Model) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.renaming = false
		m.rename.Blur()
		return m, nil
	case "enter":
		m.renaming = false
		m.rename.Blur()
		if asset, ok := m.SelectedAsset(); ok {
			name := m.rename.Value()
			if m.assets.Rename(asset.ID, name) {
				m.setStatus(fmt.Sprintf("Renamed to %s", name))
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.rename, cmd = m.rename.Update(msg)
	return m, cmd
}

// updatePicker drives the upload file picker while it is open.
func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.picking = false
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		m.picking = false
		return m, tea.Batch(cmd, uploadAssetCmd(m.assets, path))
	}
	return m, cmd
}

// handleHelpKeys dismisses the help overlay.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "?", "enter":
		m.viewMode = m.returnMode
		return m, nil
	}
	return m, nil
}

// UploadAsset queues an asynchronous upload, for callers wiring file-picker
// input into the model.
func (m Model) UploadAsset(path string) (Model, tea.Cmd) {
	return m, uploadAssetCmd(m.assets, path)
}
