package builder

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bracketpress/bracketpress/internal/assets"
	"github.com/bracketpress/bracketpress/internal/project"
	"github.com/bracketpress/bracketpress/internal/store"
)

// uploadAssetCmd reads a file into the asset registry asynchronously so a
// slow disk never blocks the event loop.
func uploadAssetCmd(reg *assets.Registry, path string) tea.Cmd {
	return func() tea.Msg {
		asset, ok := reg.UploadFile(path)
		if !ok {
			return AssetUploadFailedMsg{Path: path}
		}
		return AssetUploadedMsg{Asset: asset}
	}
}

// saveProjectCmd snapshots the store and writes the project document.
func saveProjectCmd(path, name string, s *store.Store, reg *assets.Registry) tea.Cmd {
	doc := project.NewDocument(name, s, reg)
	return func() tea.Msg {
		if err := project.SaveDocument(path, doc); err != nil {
			return ProjectSaveFailedMsg{Err: err}
		}
		return ProjectSavedMsg{Path: path}
	}
}
