package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const maxModalW = 72

var (
	modalBorder = lipgloss.Color("62")
	modalBg     = lipgloss.Color("235")
	shadowBg    = lipgloss.Color("236")
)

// overlayCenter draws fg in the middle of bg, which is padded or cut to h
// lines of width w.
func overlayCenter(bg, fg string, w, h int) string {
	bgLines := splitLinesN(bg, h)
	fgLines := strings.Split(fg, "\n")
	fgH := len(fgLines)
	fgW := 0
	for _, ln := range fgLines {
		if n := xansi.StringWidth(ln); n > fgW {
			fgW = n
		}
	}
	if fgW <= 0 || fgH <= 0 {
		return strings.Join(bgLines, "\n")
	}
	fgW = min(fgW, w)
	fgH = min(fgH, h)

	x := max((w-fgW)/2, 0)
	y := max((h-fgH)/2, 0)

	shadowLine := lipgloss.NewStyle().Background(shadowBg).Render(strings.Repeat(" ", fgW))
	shadow := make([]string, fgH)
	for i := range shadow {
		shadow[i] = shadowLine
	}
	overlayAt(bgLines, shadow, w, x+1, y+1, fgW)
	overlayAt(bgLines, fgLines, w, x, y, fgW)
	return strings.Join(bgLines, "\n")
}

func overlayAt(bgLines, fgLines []string, w, x, y, fgW int) {
	if fgW <= 0 {
		return
	}
	for i := 0; i < len(fgLines) && y+i < len(bgLines); i++ {
		bgLine := bgLines[y+i]
		if n := xansi.StringWidth(bgLine); n < w {
			bgLine += strings.Repeat(" ", w-n)
		}
		left := xansi.Cut(bgLine, 0, x)
		right := xansi.Cut(bgLine, x+fgW, w)

		fgLine := fgLines[i]
		if n := xansi.StringWidth(fgLine); n < fgW {
			fgLine += strings.Repeat(" ", fgW-n)
		} else if n > fgW {
			fgLine = xansi.Cut(fgLine, 0, fgW)
		}
		bgLines[y+i] = left + fgLine + right
	}
}

// dim fades the screen behind an open dialog without changing its layout.
func dim(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Faint(true).Render(xansi.Strip(s))
}

func renderModalBox(screenWidth int, title, body string) string {
	w := min(screenWidth-4, maxModalW)
	w = max(w, 24)

	header := lipgloss.NewStyle().Bold(true).Render(title)
	return lipgloss.NewStyle().
		Width(w).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modalBorder).
		Background(modalBg).
		Render(header + "\n\n" + body)
}

func splitLinesN(s string, n int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) >= n {
		return lines[:n]
	}
	out := make([]string, 0, n)
	out = append(out, lines...)
	for len(out) < n {
		out = append(out, "")
	}
	return out
}
