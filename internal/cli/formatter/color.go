package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// LevelColor returns the style for a resource level, green when there is
// plenty of headroom and red when the session is nearly exhausted.
func LevelColor(level domain.ResourceLevel) lipgloss.Style {
	switch level {
	case domain.LevelFull:
		return StyleGreen
	case domain.LevelNormal:
		return StyleBlue
	case domain.LevelLight:
		return StyleYellow
	case domain.LevelMinimal:
		return StyleRed
	default:
		return StyleDim
	}
}

// LevelBadge renders a level indicator such as "● NORMAL (usage 70%)".
func LevelBadge(level domain.ResourceLevel, usage int) string {
	label := fmt.Sprintf("● %s", strings.ToUpper(level.String()))
	return LevelColor(level).Render(label) + Dim(fmt.Sprintf(" (usage %d%%)", usage))
}

// MutationPill returns a colored marker for a per-file outcome.
func MutationPill(m domain.Mutation) string {
	switch m {
	case domain.MutationChecked:
		return StyleGreen.Render("✔ checked")
	case domain.MutationAppended:
		return StyleBlue.Render("+ appended")
	case domain.MutationPending:
		return StyleYellow.Render("○ pending")
	case domain.MutationUnchanged:
		return StyleDim.Render("· unchanged")
	case domain.MutationFailed:
		return StyleRed.Render("✖ failed")
	default:
		return StylePurple.Render(string(m))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
