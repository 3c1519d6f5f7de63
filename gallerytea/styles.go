package gallerytea

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styling for the terminal slide strip. Replace
// individual fields after New to re-theme a gallery.
type Styles struct {
	Slide       lipgloss.Style
	ActiveSlide lipgloss.Style
	ActiveDot   lipgloss.Style
	InactiveDot lipgloss.Style
}

// DefaultStyles returns the stock look: rounded borders, the active slide
// framed with the focus color, paginator-style dots underneath.
func DefaultStyles() Styles {
	return Styles{
		Slide: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		ActiveSlide: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("212")).
			Padding(0, 1),
		ActiveDot:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		InactiveDot: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
