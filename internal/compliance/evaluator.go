package compliance

import (
	"math"
	"sort"
	"time"

	clockmodels "worktime/internal/clock/models"
	"worktime/internal/compliance/models"
	rulesmodels "worktime/internal/rules/models"
	id "worktime/pkg/domain"
)

// defaultWeeklyHours is the standard week used for the overtime basis when
// no MAX_WEEKLY_HOURS rule resolves.
const defaultWeeklyHours = 40

// Overtime tier thresholds as fractions of the annual ceiling.
const (
	overtimeWarnRatio     = 0.75
	overtimeCriticalRatio = 0.90
)

// DayInput is everything needed to evaluate one employee on one day.
type DayInput struct {
	CompanyID  id.CompanyID
	EmployeeID id.EmployeeID
	Date       id.Date
	Location   *time.Location
	// Events must cover at least the lookback window returned by
	// LookbackStart up to the end of Date.
	Events []*clockmodels.ClockEvent
	Rules  rulesmodels.RuleSet
}

// DayEvaluation is the pure outcome for one employee and day.
type DayEvaluation struct {
	Violations []models.Violation
	// Evaluated lists every code whose state this run decided. Stored
	// violations for these codes are replaced; others are left alone.
	Evaluated   []models.Code
	WorkedHours float64
	RestHours   *float64
	Sessions    int
	Anomalies   int
	Orphans     int
}

// LookbackStart is the earliest instant Evaluate reads for date: the start of
// the year, the start of the trailing week or the previous day, whichever is
// first.
func LookbackStart(date id.Date, loc *time.Location) time.Time {
	yearStart, _ := date.StartOfYear().Window(loc)
	weekStart, _ := date.AddDays(-6).Window(loc)
	prevStart, _ := date.AddDays(-1).Window(loc)
	earliest := yearStart
	for _, t := range []time.Time{weekStart, prevStart} {
		if t.Before(earliest) {
			earliest = t
		}
	}
	return earliest
}

// Evaluate runs every resolvable rule against the employee's punches.
func Evaluate(in DayInput) DayEvaluation {
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}
	events := append([]*clockmodels.ClockEvent(nil), in.Events...)
	sort.SliceStable(events, func(i, j int) bool { return events[i].Timestamp.Before(events[j].Timestamp) })

	dayStart, dayEnd := in.Date.Window(loc)
	dayEvents := eventsBetween(events, dayStart, dayEnd)
	day := PairSessions(dayEvents)

	ev := DayEvaluation{
		WorkedHours: round2(day.WorkedHours()),
		Sessions:    len(day.Sessions),
		Anomalies:   len(day.Anomalies),
		Orphans:     len(day.Orphans),
	}
	e := evaluator{in: in, loc: loc, events: events, day: day, dayEvents: dayEvents, out: &ev}

	e.maxDailyHours()
	e.minDailyRest(dayStart)
	e.breakRequired()
	e.minWeeklyRest(dayEnd)
	e.overtime(dayEnd)
	return ev
}

type evaluator struct {
	in        DayInput
	loc       *time.Location
	events    []*clockmodels.ClockEvent
	day       Pairing
	dayEvents []*clockmodels.ClockEvent
	out       *DayEvaluation
}

func (e *evaluator) maxDailyHours() {
	rule, ok := e.in.Rules.Get(rulesmodels.CodeMaxDailyHours)
	if !ok {
		return
	}
	e.out.Evaluated = append(e.out.Evaluated, models.CodeMaxDailyHours)
	worked := e.day.WorkedHours()
	if worked <= rule.Limit {
		return
	}
	e.raise(models.CodeMaxDailyHours, rule, rule.Severity, worked, rule.Limit, map[string]any{
		"sessions":  sessionEvidence(e.day.Sessions),
		"anomalies": len(e.day.Anomalies),
	})
}

func (e *evaluator) minDailyRest(dayStart time.Time) {
	rule, ok := e.in.Rules.Get(rulesmodels.CodeMinDailyRest)
	if !ok {
		return
	}
	e.out.Evaluated = append(e.out.Evaluated, models.CodeMinDailyRest)

	prevStart, _ := e.in.Date.AddDays(-1).Window(e.loc)
	lastExit := lastOfType(eventsBetween(e.events, prevStart, dayStart), clockmodels.EventExit)
	firstEntry := firstOfType(e.dayEvents, clockmodels.EventEntry)
	if lastExit == nil || firstEntry == nil {
		return
	}
	rest := firstEntry.Timestamp.Sub(lastExit.Timestamp).Hours()
	rounded := round2(rest)
	e.out.RestHours = &rounded
	if rest >= rule.Limit {
		return
	}
	e.raise(models.CodeMinDailyRest, rule, rule.Severity, rest, rule.Limit, map[string]any{
		"previous_exit": lastExit.Timestamp.UTC().Format(time.RFC3339),
		"first_entry":   firstEntry.Timestamp.UTC().Format(time.RFC3339),
	})
}

// breakRequired raises one BREAK_REQUIRED per day listing every session
// longer than the BREAK_AFTER_HOURS limit.
func (e *evaluator) breakRequired() {
	rule, ok := e.in.Rules.Get(rulesmodels.CodeBreakAfterHours)
	if !ok {
		return
	}
	e.out.Evaluated = append(e.out.Evaluated, models.CodeBreakRequired)
	var (
		long    []Session
		longest float64
	)
	for _, s := range e.day.Sessions {
		if h := s.Hours(); h > rule.Limit {
			long = append(long, s)
			longest = math.Max(longest, h)
		}
	}
	if len(long) == 0 {
		return
	}
	e.raise(models.CodeBreakRequired, rule, rule.Severity, longest, rule.Limit, map[string]any{
		"sessions": sessionEvidence(long),
	})
}

// minWeeklyRest runs on Sundays over the trailing seven days.
func (e *evaluator) minWeeklyRest(dayEnd time.Time) {
	rule, ok := e.in.Rules.Get(rulesmodels.CodeMinWeeklyRest)
	if !ok || e.in.Date.Weekday() != time.Sunday {
		return
	}
	e.out.Evaluated = append(e.out.Evaluated, models.CodeMinWeeklyRest)
	weekStart, _ := e.in.Date.AddDays(-6).Window(e.loc)
	week := PairSessions(eventsBetween(e.events, weekStart, dayEnd))
	gap, ok := week.MaxGap()
	if !ok || gap.Hours() >= rule.Limit {
		return
	}
	e.raise(models.CodeMinWeeklyRest, rule, rule.Severity, gap.Hours(), rule.Limit, map[string]any{
		"week_start": e.in.Date.AddDays(-6).String(),
		"sessions":   len(week.Sessions),
	})
}

// overtime compares year-to-date hours beyond the standard week against the
// annual ceiling and raises only the highest tier reached.
func (e *evaluator) overtime(dayEnd time.Time) {
	rule, ok := e.in.Rules.Get(rulesmodels.CodeOvertimeMaxYear)
	if !ok || rule.Limit <= 0 {
		return
	}
	e.out.Evaluated = append(e.out.Evaluated, models.OvertimeCodes...)

	yearStart, _ := e.in.Date.StartOfYear().Window(e.loc)
	ytd := PairSessions(eventsBetween(e.events, yearStart, dayEnd)).WorkedHours()

	weekly := float64(defaultWeeklyHours)
	if w, ok := e.in.Rules.Get(rulesmodels.CodeMaxWeeklyHours); ok && w.Limit > 0 {
		weekly = w.Limit
	}
	workingDays := e.in.Date.DaysSince(e.in.Date.StartOfYear()) * 5 / 7
	standard := float64(workingDays) * weekly / 5
	overtime := math.Max(0, ytd-standard)

	ceiling := rule.Limit
	var (
		code      models.Code
		severity  rulesmodels.Severity
		threshold float64
	)
	switch {
	case overtime > ceiling:
		code, severity, threshold = models.CodeOvertimeCap, rulesmodels.SeverityCritical, ceiling
	case overtime >= ceiling*overtimeCriticalRatio:
		code, severity, threshold = models.CodeOvertime90, rulesmodels.SeverityCritical, ceiling*overtimeCriticalRatio
	case overtime >= ceiling*overtimeWarnRatio:
		code, severity, threshold = models.CodeOvertime75, rulesmodels.SeverityWarn, ceiling*overtimeWarnRatio
	default:
		return
	}
	e.raise(code, rule, severity, overtime, threshold, map[string]any{
		"ytd_worked_hours": round2(ytd),
		"standard_hours":   round2(standard),
		"annual_ceiling":   ceiling,
	})
}

func (e *evaluator) raise(code models.Code, rule rulesmodels.EffectiveRule, severity rulesmodels.Severity, detected, threshold float64, evidence map[string]any) {
	evidence["limit"] = rule.Limit
	evidence["actual"] = round2(detected)
	evidence["rule_source"] = string(rule.Source)
	e.out.Violations = append(e.out.Violations, models.Violation{
		CompanyID:     e.in.CompanyID,
		EmployeeID:    e.in.EmployeeID,
		Code:          code,
		Date:          e.in.Date,
		Severity:      severity,
		Detected:      round2(detected),
		Threshold:     round2(threshold),
		RuleVersionID: rule.RuleVersionID,
		Evidence:      evidence,
	})
}

func sessionEvidence(sessions []Session) []map[string]any {
	out := make([]map[string]any, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, map[string]any{
			"entry": s.Entry.Timestamp.UTC().Format(time.RFC3339),
			"exit":  s.Exit.Timestamp.UTC().Format(time.RFC3339),
			"hours": round2(s.Hours()),
		})
	}
	return out
}

func firstOfType(events []*clockmodels.ClockEvent, t clockmodels.EventType) *clockmodels.ClockEvent {
	for _, e := range events {
		if e.Type == t {
			return e
		}
	}
	return nil
}

func lastOfType(events []*clockmodels.ClockEvent, t clockmodels.EventType) *clockmodels.ClockEvent {
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type == t {
			return events[i]
		}
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
