package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/phroun/loupe"
)

var (
	styleText  = tcell.StyleDefault
	styleBar   = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorDarkGray)
	styleFile  = styleBar.Italic(true)
	styleError = styleBar.Foreground(tcell.ColorYellow)
)

// viewer is the interactive loop: one tcell screen, the shared file handle
// and the scroll state. The index keeps growing underneath it; every frame
// re-reads the counters, so scroll limits and totals stay current while the
// builder works.
type viewer struct {
	screen tcell.Screen
	file   *loupe.File
	path   string
	cfg    *Config

	topLine int // first visible line
	leftCol int // first visible column
	cmd     commandLine
}

func newViewer(file *loupe.File, path string, cfg *Config) (*viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	if cfg.Mouse {
		screen.EnableMouse()
	}
	return &viewer{screen: screen, file: file, path: path, cfg: cfg}, nil
}

// run drives the event loop until the user quits. The tick only forces a
// redraw, keeping the displayed totals live while indexing is in flight.
func (v *viewer) run() {
	defer v.screen.Fini()

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go v.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(v.cfg.RefreshInterval.Duration)
	defer ticker.Stop()

	for {
		v.draw()
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !v.handleEvent(ev) {
				close(quit)
				return
			}
		case <-ticker.C:
		}
	}
}

// handleEvent processes one event; a false return exits the loop.
func (v *viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		if v.cmd.state != cmdIdle {
			break
		}
		switch {
		case ev.Buttons()&tcell.WheelUp != 0:
			v.scrollUp(v.cfg.WheelLines)
		case ev.Buttons()&tcell.WheelDown != 0:
			v.scrollDown(v.cfg.WheelLines)
		}
	}
	return true
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	// Any keypress dismisses a lingering error message.
	v.cmd.clearError()

	if ev.Key() == tcell.KeyCtrlC {
		return false
	}

	if v.cmd.state == cmdComposing {
		switch ev.Key() {
		case tcell.KeyEnter:
			action, target := v.cmd.execute()
			switch action {
			case actionQuit:
				return false
			case actionGoto:
				v.jump(target)
			}
		case tcell.KeyEscape:
			v.cmd.cancel()
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			v.cmd.backspace()
		case tcell.KeyRune:
			v.cmd.insert(ev.Rune())
		}
		return true
	}

	switch ev.Key() {
	case tcell.KeyUp:
		v.scrollUp(1)
	case tcell.KeyDown:
		v.scrollDown(1)
	case tcell.KeyLeft:
		if v.leftCol > 0 {
			v.leftCol--
		}
	case tcell.KeyRight:
		if int64(v.leftCol)+1 < v.file.Index().MaxColumns() {
			v.leftCol++
		}
	case tcell.KeyPgUp:
		v.scrollUp(v.pageSize())
	case tcell.KeyPgDn:
		v.scrollDown(v.pageSize())
	case tcell.KeyHome:
		v.topLine, v.leftCol = 0, 0
	case tcell.KeyEnd:
		v.jump(v.file.Index().LineCount())
	case tcell.KeyRune:
		if ev.Rune() == ':' {
			v.cmd.begin()
		}
	}
	return true
}

func (v *viewer) pageSize() int {
	_, h := v.screen.Size()
	if h <= 1 {
		return 1
	}
	return h - 1
}

func (v *viewer) scrollUp(amt int) {
	v.topLine -= amt
	if v.topLine < 0 {
		v.topLine = 0
	}
}

func (v *viewer) scrollDown(amt int) {
	n := v.file.Index().LineCount()
	if n == 0 {
		return
	}
	v.topLine += amt
	if v.topLine > n-1 {
		v.topLine = n - 1
	}
}

// jump scrolls so that 1-based line n is at the top.
func (v *viewer) jump(n int) {
	v.topLine = n - 1
	if last := v.file.Index().LineCount() - 1; v.topLine > last {
		v.topLine = last
	}
	if v.topLine < 0 {
		v.topLine = 0
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	if w == 0 || h == 0 {
		v.screen.Show()
		return
	}

	lineCount := v.file.Index().LineCount()
	if v.topLine > lineCount-1 {
		v.topLine = lineCount - 1
	}
	if v.topLine < 0 {
		v.topLine = 0
	}

	for row := 0; row < h-1; row++ {
		line := v.topLine + row
		if line >= lineCount {
			break
		}
		drawText(v.screen, 0, row, w, v.file.Text(line, v.leftCol, v.leftCol+w), styleText)
	}

	v.drawStatus(w, h-1, lineCount)
	v.screen.Show()
}

// drawStatus paints the bottom row: filename, command box or error on the
// left, position summary on the right.
func (v *viewer) drawStatus(w, y, lineCount int) {
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, y, ' ', nil, styleBar)
	}

	// Lines are 1-based in the UI. A trailing '+' marks totals that are
	// still growing.
	lineNo := v.topLine + 1
	percent := 0
	if lineCount > 0 {
		percent = lineNo * 100 / lineCount
	}
	suffix := ""
	if !v.file.Index().Complete() {
		suffix = "+"
	}
	pos := fmt.Sprintf(" %d%% ☰ %d/%d%s ㏑:%d ", percent, lineNo, lineCount, suffix, v.leftCol)
	posX := w - runewidth.StringWidth(pos)
	if posX < 0 {
		posX = 0
	}
	drawText(v.screen, posX, y, w, pos, styleBar)

	var text string
	style := styleFile
	switch v.cmd.state {
	case cmdComposing:
		text, style = v.cmd.text, styleBar
	case cmdError:
		text, style = v.cmd.text, styleError
	default:
		text = v.path
	}
	drawText(v.screen, 0, y, posX, text, style)
}

// drawText paints text from x up to the maxX cell boundary, advancing by
// display width so wide characters stay aligned.
func drawText(s tcell.Screen, x, y, maxX int, text string, style tcell.Style) {
	for _, r := range text {
		cw := runewidth.RuneWidth(r)
		if cw == 0 {
			cw = 1
		}
		if x+cw > maxX {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x += cw
	}
}
