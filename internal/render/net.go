// Package render draws cube nets for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	rubikscube "github.com/h4rr9/rubiks-cube"
)

// stickerColors are the ANSI 256 colors used for each sticker.
var stickerColors = map[rubikscube.Color]lipgloss.Color{
	rubikscube.White:  lipgloss.Color("255"),
	rubikscube.Yellow: lipgloss.Color("226"),
	rubikscube.Green:  lipgloss.Color("34"),
	rubikscube.Blue:   lipgloss.Color("27"),
	rubikscube.Red:    lipgloss.Color("196"),
	rubikscube.Orange: lipgloss.Color("208"),
}

var (
	stickerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("16")).
			Bold(true)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1)
)

// Sticker renders one facelet as a colored two-cell block labelled with its
// color letter.
func Sticker(c rubikscube.Color) string {
	return stickerStyle.Background(stickerColors[c]).Render(c.String() + " ")
}

// Face renders a 3x3 face.
func Face(face [3][3]rubikscube.Color) string {
	rows := make([]string, 3)
	for r := range face {
		cells := make([]string, 3)
		for c := range face[r] {
			cells[c] = Sticker(face[r][c])
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Net renders the unfolded cube: Yellow above the Red, Green, Orange, Blue
// band and White below, aligned on the Green face.
func Net(f rubikscube.Facelets) string {
	band := lipgloss.JoinHorizontal(lipgloss.Top,
		Face(f[rubikscube.Red]), " ",
		Face(f[rubikscube.Green]), " ",
		Face(f[rubikscube.Orange]), " ",
		Face(f[rubikscube.Blue]),
	)
	indent := strings.Repeat(" ", lipgloss.Width(Face(f[rubikscube.Red]))+1)
	pad := func(s string) string {
		lines := strings.Split(s, "\n")
		for i := range lines {
			lines[i] = indent + lines[i]
		}
		return strings.Join(lines, "\n")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		pad(Face(f[rubikscube.Yellow])),
		band,
		pad(Face(f[rubikscube.White])),
	)
}

// Framed renders the net inside a border.
func Framed(c rubikscube.Cube) string {
	return frameStyle.Render(Net(c.Facelets()))
}
