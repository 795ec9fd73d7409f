package builder

import (
	"github.com/bracketpress/bracketpress/internal/assets"
)

// ViewMode determines which pane has focus.
type ViewMode int

const (
	ViewSections ViewMode = iota
	ViewTheme
	ViewAssets
	ViewHelp
)

// Asset Messages

// AssetUploadedMsg indicates an upload finished.
type AssetUploadedMsg struct {
	Asset assets.Asset
}

// AssetUploadFailedMsg indicates an upload could not be read.
type AssetUploadFailedMsg struct {
	Path string
}

// Persistence Messages

// ProjectSavedMsg indicates the project document was written.
type ProjectSavedMsg struct {
	Path string
}

// ProjectSaveFailedMsg indicates the save failed.
type ProjectSaveFailedMsg struct {
	Err error
}

// Error Messages

// ErrorMsg surfaces a general error in the banner.
type ErrorMsg struct {
	Message string
}

// ClearErrorMsg dismisses the error banner.
type ClearErrorMsg struct{}
