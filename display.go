package rubikscube

import "strings"

// bandOrder is the left-to-right order of the side faces in the net.
var bandOrder = [4]Color{Red, Green, Orange, Blue}

const netIndent = "       "

// String draws the cube as an unfolded net: Yellow on top, the Red, Green,
// Orange and Blue faces in a band, White at the bottom.
func (c Cube) String() string {
	return FormatNet(c.Facelets())
}

// FormatNet draws a facelet array as an unfolded net using color letters.
func FormatNet(f Facelets) string {
	var sb strings.Builder
	writeFace := func(face Color) {
		for row := 0; row < 3; row++ {
			sb.WriteString(netIndent)
			writeRow(&sb, f[face][row])
			sb.WriteByte('\n')
		}
	}

	writeFace(Yellow)
	for row := 0; row < 3; row++ {
		for i, face := range bandOrder {
			if i > 0 {
				sb.WriteString("  ")
			}
			writeRow(&sb, f[face][row])
		}
		sb.WriteByte('\n')
	}
	writeFace(White)
	return sb.String()
}

func writeRow(sb *strings.Builder, row [3]Color) {
	for i, c := range row {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
}
