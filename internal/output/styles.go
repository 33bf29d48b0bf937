package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all lipgloss styles for text output
var Styles = struct {
	Header  lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Path    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style

	// Picker
	Title    lipgloss.Style
	Selected lipgloss.Style
}{
	Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(lipgloss.Color("239")),
	Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	Value:   lipgloss.NewStyle().Bold(true),
	Path:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")), // Blue
	Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),  // Green
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // Orange
	Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red

	Title:    lipgloss.NewStyle().Background(lipgloss.Color("39")).Foreground(lipgloss.Color("0")).Padding(0, 1),
	Selected: lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("39")).Foreground(lipgloss.Color("39")).Padding(0, 0, 0, 1),
}

// StatusIcon returns a styled check mark for ok, warning or error
func StatusIcon(status string) string {
	switch status {
	case "ok":
		return Styles.Success.Render("✓")
	case "warning":
		return Styles.Warning.Render("⚠")
	case "error":
		return Styles.Danger.Render("✗")
	default:
		return " "
	}
}

// YesNo renders a boolean as a styled yes/no
func YesNo(b bool) string {
	if b {
		return Styles.Success.Render("yes")
	}
	return Styles.Muted.Render("no")
}
