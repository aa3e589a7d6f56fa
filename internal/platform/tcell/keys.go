package tcell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// palette maps core colors onto the terminal's 256-color palette.
var palette = map[core.Color]tcell.Color{
	core.ColorRed:          tcell.ColorMaroon,
	core.ColorGreen:        tcell.ColorGreen,
	core.ColorYellow:       tcell.ColorOlive,
	core.ColorBlue:         tcell.ColorNavy,
	core.ColorCyan:         tcell.ColorTeal,
	core.ColorWhite:        tcell.ColorWhite,
	core.ColorGray:         tcell.Color245,
	core.ColorLightGray:    tcell.Color250,
	core.ColorDarkGray:     tcell.Color240,
	core.ColorBrightGreen:  tcell.ColorLime,
	core.ColorBrightYellow: tcell.ColorYellow,
}

// Style returns the tcell style for a core color.
func Style(c core.Color) tcell.Style {
	fg, ok := palette[c]
	if !ok {
		return tcell.StyleDefault
	}
	st := tcell.StyleDefault.Foreground(fg)
	if c == core.ColorWhite || c == core.ColorBrightGreen {
		st = st.Bold(true)
	}
	return st
}

// MapKey translates a tcell key event into a game action, using the same
// bindings as the Bubble Tea host.
func MapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyUp:
		return core.ActionFire
	case tcell.KeyDown:
		return core.ActionStop
	case tcell.KeyEscape:
		return core.ActionBack
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		return mapRune(ev.Rune())
	}
	return core.ActionNone
}

func mapRune(r rune) core.Action {
	switch r {
	case 'a', 'h':
		return core.ActionLeft
	case 'd', 'l':
		return core.ActionRight
	case ' ', 'w':
		return core.ActionFire
	case 's':
		return core.ActionStop
	case 'p':
		return core.ActionPause
	case 'r':
		return core.ActionRestart
	case 'b':
		return core.ActionBack
	case 'q':
		return core.ActionQuit
	}
	return core.ActionNone
}
