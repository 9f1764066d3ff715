// Package tty plays back fire simulation histories in a terminal.
package tty

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/sims/fire"
)

var glyphs = [...]rune{
	fire.Unburned: '.',
	fire.Burning:  '*',
	fire.Burned:   '#',
	fire.Water:    '~',
}

func styleFor(s fire.CellState) tcell.Style {
	c := s.Color()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// DrawFrame renders one snapshot with a status line underneath. Each cell takes
// two columns so the grid keeps a square aspect. Cells past the screen edge are
// clipped.
func DrawFrame(screen tcell.Screen, snap fire.Snapshot, step int, stats fire.Stats) {
	screen.Clear()
	w, h := screen.Size()
	n := snap.Size()
	for row := 0; row < n && row < h-1; row++ {
		for col := 0; col < n && 2*col+1 < w; col++ {
			s := snap.At(row, col)
			g := '?'
			if int(s) < len(glyphs) {
				g = glyphs[s]
			}
			style := styleFor(s)
			screen.SetContent(2*col, row, g, nil, style)
			screen.SetContent(2*col+1, row, ' ', nil, style)
		}
	}
	status := fmt.Sprintf("step %d  unburned %.1f%%  burning %.1f%%  burned %.1f%%",
		step, stats.UnburnedPct, stats.BurningPct, stats.BurnedPct)
	drawText(screen, 0, min(n, h-1), status, tcell.StyleDefault.Bold(true))
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// Player steps through a recorded history on a screen.
type Player struct {
	screen  tcell.Screen
	history *fire.History
	pacer   *core.FixedStep

	frame  int
	paused bool
}

// NewPlayer prepares playback of history at sps frames per second.
func NewPlayer(screen tcell.Screen, history *fire.History, sps int) *Player {
	return &Player{screen: screen, history: history, pacer: core.NewFixedStep(sps)}
}

// Frame returns the index of the frame currently shown.
func (p *Player) Frame() int { return p.frame }

// Draw renders the current frame.
func (p *Player) Draw() {
	if p.history.Len() == 0 {
		return
	}
	DrawFrame(p.screen, p.history.Frame(p.frame), p.frame, p.history.StatsAt(p.frame))
}

// Advance moves playback forward by n frames, stopping at the last one. It
// reports whether the frame changed.
func (p *Player) Advance(n int) bool {
	last := p.history.Len() - 1
	next := min(p.frame+n, last)
	if next == p.frame || next < 0 {
		return false
	}
	p.frame = next
	return true
}

// HandleKey applies a key press and reports whether playback should continue.
func (p *Player) HandleKey(key tcell.Key, r rune) bool {
	switch {
	case key == tcell.KeyEscape || key == tcell.KeyCtrlC:
		return false
	case key == tcell.KeyRune && r == 'q':
		return false
	case key == tcell.KeyRune && r == ' ':
		p.paused = !p.paused
	case key == tcell.KeyRight || (key == tcell.KeyRune && r == 'n'):
		p.Advance(1)
	case key == tcell.KeyLeft:
		if p.frame > 0 {
			p.frame--
		}
	case key == tcell.KeyRune && r == 'r':
		p.frame = 0
	}
	p.Draw()
	return true
}

// Run plays the history until the user quits. The caller owns the screen
// and must Fini it afterwards, which also stops the event reader.
func (p *Player) Run() {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(p.pacer.Interval() / 2)
	defer ticker.Stop()

	p.Draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !p.HandleKey(ev.Key(), ev.Rune()) {
					return
				}
			case *tcell.EventResize:
				p.screen.Sync()
				p.Draw()
			}
		case <-ticker.C:
			due := p.pacer.Due()
			if !p.paused && p.Advance(due) {
				p.Draw()
			}
		}
	}
}
