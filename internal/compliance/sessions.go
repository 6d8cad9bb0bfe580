package compliance

import (
	"sort"
	"time"

	clockmodels "worktime/internal/clock/models"
)

// MaxSessionLength bounds a plausible entry/exit pair. Longer pairs are
// treated as data anomalies and excluded from totals.
const MaxSessionLength = 24 * time.Hour

// Session is a matched entry/exit pair.
type Session struct {
	Entry *clockmodels.ClockEvent
	Exit  *clockmodels.ClockEvent
}

func (s Session) Duration() time.Duration {
	return s.Exit.Timestamp.Sub(s.Entry.Timestamp)
}

func (s Session) Hours() float64 {
	return s.Duration().Hours()
}

// Pairing is the outcome of matching a sequence of punches.
type Pairing struct {
	Sessions []Session
	// Anomalies are pairs longer than MaxSessionLength.
	Anomalies []Session
	// Orphans are entries never closed by an exit.
	Orphans []*clockmodels.ClockEvent
	// StrayExits are exits with no open entry.
	StrayExits []*clockmodels.ClockEvent
}

// PairSessions matches entries to the next exit in timestamp order. A second
// entry before an exit orphans the first one.
func PairSessions(events []*clockmodels.ClockEvent) Pairing {
	ordered := append([]*clockmodels.ClockEvent(nil), events...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	var (
		p    Pairing
		open *clockmodels.ClockEvent
	)
	for _, e := range ordered {
		switch e.Type {
		case clockmodels.EventEntry:
			if open != nil {
				p.Orphans = append(p.Orphans, open)
			}
			open = e
		case clockmodels.EventExit:
			if open == nil {
				p.StrayExits = append(p.StrayExits, e)
				continue
			}
			s := Session{Entry: open, Exit: e}
			open = nil
			if s.Duration() > MaxSessionLength {
				p.Anomalies = append(p.Anomalies, s)
				continue
			}
			p.Sessions = append(p.Sessions, s)
		}
	}
	if open != nil {
		p.Orphans = append(p.Orphans, open)
	}
	return p
}

// WorkedHours sums the valid sessions.
func (p Pairing) WorkedHours() float64 {
	var total time.Duration
	for _, s := range p.Sessions {
		total += s.Duration()
	}
	return total.Hours()
}

// MaxGap returns the longest rest between consecutive sessions. ok is false
// with fewer than two sessions.
func (p Pairing) MaxGap() (gap time.Duration, ok bool) {
	if len(p.Sessions) < 2 {
		return 0, false
	}
	for i := 1; i < len(p.Sessions); i++ {
		if g := p.Sessions[i].Entry.Timestamp.Sub(p.Sessions[i-1].Exit.Timestamp); g > gap {
			gap = g
		}
	}
	return gap, true
}

// eventsBetween returns the events with timestamps in [from, to). events must
// be ordered by timestamp.
func eventsBetween(events []*clockmodels.ClockEvent, from, to time.Time) []*clockmodels.ClockEvent {
	lo := sort.Search(len(events), func(i int) bool { return !events[i].Timestamp.Before(from) })
	hi := sort.Search(len(events), func(i int) bool { return !events[i].Timestamp.Before(to) })
	return events[lo:hi]
}
