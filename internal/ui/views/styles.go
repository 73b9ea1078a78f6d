package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Tab           lipgloss.Style
	ActiveTab     lipgloss.Style
	Facet         lipgloss.Style
	ActiveFacet   lipgloss.Style
	Overview      lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Filter        lipgloss.Style
	InfoBox       lipgloss.Style
	LightboxBox   lipgloss.Style
	ErrorPanel    lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Skeleton      lipgloss.Style
	Highlight     lipgloss.Style
	Price         lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
	SelectionBg   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Tab:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		ActiveTab:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("99")).Padding(0, 1),
		Facet:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		ActiveFacet: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("214")),
		Overview:    lipgloss.NewStyle().Faint(true).Italic(true),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			Width(60).
			BorderForeground(lipgloss.Color("241")),
		LightboxBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			Width(64).
			BorderForeground(lipgloss.Color("99")),
		ErrorPanel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			Foreground(lipgloss.Color("203")).
			BorderForeground(lipgloss.Color("203")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Skeleton:      lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Price:         lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
	}
}
