package fire

// History is the append-only record of a run: one snapshot and one stats
// entry per recorded step, starting with the initial state.
type History struct {
	frames []Snapshot
	stats  []Stats
}

func (h *History) record(s Snapshot) {
	h.frames = append(h.frames, s)
	h.stats = append(h.stats, statsOf(s.cells))
}

func (h *History) reset() {
	h.frames = nil
	h.stats = nil
}

// Len returns the number of recorded snapshots.
func (h *History) Len() int { return len(h.frames) }

// Frame returns the snapshot recorded at step i.
func (h *History) Frame(i int) Snapshot { return h.frames[i] }

// StatsAt returns the stats recorded at step i.
func (h *History) StatsAt(i int) Stats { return h.stats[i] }

// Frames returns the recorded snapshots in order.
func (h *History) Frames() []Snapshot { return append([]Snapshot(nil), h.frames...) }

// Stats returns the recorded stats in order.
func (h *History) Stats() []Stats { return append([]Stats(nil), h.stats...) }

// Final returns the most recent stats entry, if any.
func (h *History) Final() (Stats, bool) {
	if len(h.stats) == 0 {
		return Stats{}, false
	}
	return h.stats[len(h.stats)-1], true
}
