package builder

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bracketpress/bracketpress/internal/binder"
	"github.com/bracketpress/bracketpress/internal/section"
	"github.com/bracketpress/bracketpress/internal/store"
)

// View renders the focused pane.
func (m Model) View() string {
	if m.viewMode == ViewHelp {
		return m.renderHelpView()
	}

	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	if m.showError {
		content.WriteString(errorBannerStyle.Render(m.errorMsg))
		content.WriteString("\n")
	} else if m.statusMsg != "" {
		content.WriteString(statusStyle.Render(m.statusMsg))
		content.WriteString("\n")
	}

	switch m.viewMode {
	case ViewTheme:
		content.WriteString(m.renderThemePane())
	case ViewAssets:
		content.WriteString(m.renderAssetsPane())
	default:
		content.WriteString(m.renderSectionsPane())
	}

	content.WriteString("\n")
	content.WriteString(m.renderFooter())

	return content.String()
}

func (m Model) renderHeader() string {
	name := m.projectName
	if name == "" {
		name = "Untitled"
	}
	title := titleStyle.Render(fmt.Sprintf("BracketPress — %s", name))

	tabs := []string{"Sections", "Theme", "Assets"}
	var rendered []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			rendered = append(rendered, activeTabStyle.Render(tab))
		} else {
			rendered = append(rendered, tabStyle.Render(tab))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Bottom, rendered...))
}

// renderSectionsPane shows the full catalog on the left and the bound
// preview of visible slots on the right.
func (m Model) renderSectionsPane() string {
	order := m.store.Order()
	visible := m.store.VisibilityMap()

	var items []string
	for i, id := range order {
		marker := m.visibilityMarker(visible[id])
		line := fmt.Sprintf("%s %s", marker, section.Label(id))

		switch {
		case i == m.cursor:
			items = append(items, selectedItemStyle.Render(line))
		case !visible[id]:
			items = append(items, hiddenItemStyle.Render(line))
		default:
			items = append(items, itemStyle.Render(line))
		}
	}

	list := lipgloss.JoinVertical(lipgloss.Left, items...)
	return lipgloss.JoinHorizontal(lipgloss.Top, list, m.renderPreview())
}

func (m Model) visibilityMarker(visible bool) string {
	if m.useUnicode {
		if visible {
			return "●"
		}
		return "○"
	}
	if visible {
		return "[x]"
	}
	return "[ ]"
}

// renderPreview paints one colored line per bound slot, in page order,
// using the derived palette so theme edits show up immediately.
func (m Model) renderPreview() string {
	slots := binder.Plan(m.store)
	if len(slots) == 0 {
		return previewBoxStyle.Render(emptyStateStyle.Render("Nothing visible yet.\nPress space to show a section."))
	}

	pal := m.store.Palette()
	var lines []string
	for _, slot := range slots {
		line := fmt.Sprintf("%2d  %-14s %s", slot.Index, slot.Label, slot.Layout)
		style := previewSlotStyle.
			Foreground(lipgloss.Color(pal.Heading)).
			Background(lipgloss.Color(pal.CardBackground))
		if slot.Index%2 == 1 {
			style = style.Background(lipgloss.Color(pal.CardAlt))
		}
		lines = append(lines, style.Render(line))
	}
	return previewBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderThemePane lists the editable seed colors and the preset selector.
func (m Model) renderThemePane() string {
	roles := store.BaseColorRoles()

	var lines []string
	for i, role := range roles {
		hex := m.store.BaseColor(role)
		swatch := swatchStyle.Background(lipgloss.Color(hex)).Render("  ")
		line := fmt.Sprintf("%s %s %s", roleLabelStyle.Render(string(role)), swatch, hex)
		if i == m.themeCursor {
			lines = append(lines, selectedItemStyle.Render(line))
		} else {
			lines = append(lines, itemStyle.Render(line))
		}
	}

	presetLine := "No presets available"
	if preset, ok := m.CurrentPreset(); ok {
		presetLine = fmt.Sprintf("Preset: %s  (%d/%d)  %s",
			presetNameStyle.Render(preset.Name), m.presetIdx+1, len(m.presets), preset.Description)
	}
	lines = append(lines, "", itemStyle.Render(presetLine))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderAssetsPane lists the uploaded assets with sizes and usage, or the
// file picker while an upload is being chosen.
func (m Model) renderAssetsPane() string {
	if m.picking {
		return previewBoxStyle.Render(m.picker.View())
	}
	if m.renaming {
		return previewBoxStyle.Render(m.rename.View())
	}

	list := m.assets.List()
	if len(list) == 0 {
		return emptyStateStyle.Render("No assets uploaded yet. Press u to upload.")
	}

	var lines []string
	for i, asset := range list {
		usage := "unused"
		if len(asset.UsedIn) > 0 {
			usage = "used in " + strings.Join(asset.UsedIn, ", ")
		}
		line := fmt.Sprintf("%-24s %-10s %s", asset.Name, asset.DisplaySize, usage)
		if i == m.assetCursor {
			lines = append(lines, selectedItemStyle.Render(line))
		} else {
			lines = append(lines, itemStyle.Render(line))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderFooter() string {
	var hints string
	switch m.viewMode {
	case ViewTheme:
		hints = "↑/↓ role • ←/→ preset • enter apply • tab pane • ? help • q quit"
	case ViewAssets:
		hints = "↑/↓ select • u upload • enter assign • R rename • d delete • tab pane • ? help • q quit"
	default:
		hints = "↑/↓ move • space toggle • J/K reorder • v variant • f format • a/n all/none • tab pane • ? help • q quit"
	}
	hints += fmt.Sprintf("  —  %d/%d visible", m.VisibleCount(), len(m.store.Order()))
	return footerStyle.Render(hints)
}

func (m Model) renderHelpView() string {
	rows := [][2]string{
		{"space/enter", "Toggle section visibility"},
		{"J / K", "Move section down / up the page"},
		{"v", "Cycle layout variant"},
		{"f", "Cycle content format"},
		{"a / n", "Show all / hide all sections"},
		{"u", "Upload an asset (assets pane)"},
		{"R", "Rename the selected asset (assets pane)"},
		{"r", "Reset section to defaults"},
		{"tab", "Switch pane (sections, theme, assets)"},
		{"ctrl+s", "Save project"},
		{"q", "Quit"},
	}

	var lines []string
	lines = append(lines, helpTitleStyle.Render("BracketPress Builder"))
	for _, row := range rows {
		lines = append(lines, helpKeyStyle.Render(row[0])+helpDescStyle.Render(row[1]))
	}
	return helpBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
