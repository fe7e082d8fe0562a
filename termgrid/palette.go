package termgrid

import "github.com/charmbracelet/lipgloss"

// Palette holds the colors of one color scheme.
type Palette struct {
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Link       lipgloss.Color
	Border     lipgloss.Color
	Stripe     lipgloss.Color
}

var (
	// LightPalette is used for datagrid.Style values without Dark.
	LightPalette = Palette{
		Foreground: "#1f2328",
		Muted:      "#6e7781",
		Accent:     "#0550ae",
		Link:       "#0969da",
		Border:     "#d0d7de",
		Stripe:     "#f6f8fa",
	}

	// DarkPalette is used for datagrid.Style values with Dark.
	DarkPalette = Palette{
		Foreground: "#e6edf3",
		Muted:      "#8b949e",
		Accent:     "#79c0ff",
		Link:       "#58a6ff",
		Border:     "#30363d",
		Stripe:     "#161b22",
	}
)

type styles struct {
	header      lipgloss.Style
	cell        lipgloss.Style
	stripe      lipgloss.Style
	placeholder lipgloss.Style
	link        lipgloss.Style
	border      lipgloss.Style
	footer      lipgloss.Style
}

func (r *Renderer) styles(p Palette, dense bool) styles {
	pad := 1
	if dense {
		pad = 0
	}
	cell := r.lip.NewStyle().Foreground(p.Foreground).Padding(0, pad)
	return styles{
		header:      cell.Bold(true).Foreground(p.Accent),
		cell:        cell,
		stripe:      cell.Background(p.Stripe),
		placeholder: r.lip.NewStyle().Foreground(p.Muted),
		link:        r.lip.NewStyle().Foreground(p.Link).Underline(true),
		border:      r.lip.NewStyle().Foreground(p.Border),
		footer:      r.lip.NewStyle().Foreground(p.Muted).Italic(true),
	}
}
