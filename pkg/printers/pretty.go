package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/actionmenu/pkg/state"
)

// PrettyPrint renders state sections for the terminal.
type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}

func (pp *PrettyPrint) table() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	return tbl
}

func (pp *PrettyPrint) flush(tbl *uitable.Table) {
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Reflections prints the intentions singleton.
func (pp *PrettyPrint) Reflections(r state.Reflections) {
	if r.Empty() {
		pp.none()
		return
	}
	tbl := pp.table()
	tbl.AddRow("VALUES", r.Values)
	tbl.AddRow("MILESTONES", r.Milestones)
	tbl.AddRow("ENERGY", r.Energy)
	pp.flush(tbl)
}

// Goals prints the SMART goal list.
func (pp *PrettyPrint) Goals(goals []*state.SmartGoal) {
	if len(goals) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	if pp.ShowID {
		tbl.AddRow("ID", "GOAL", "CATEGORY", "HORIZON", "KEY METRIC")
	} else {
		tbl.AddRow("GOAL", "CATEGORY", "HORIZON", "KEY METRIC")
	}
	for _, g := range goals {
		metric := g.Measurable
		if metric == "" {
			metric = g.TimeBound
		}
		if pp.ShowID {
			tbl.AddRow(g.ID, g.Title, g.Category, string(g.Horizon), metric)
		} else {
			tbl.AddRow(g.Title, g.Category, string(g.Horizon), metric)
		}
	}
	pp.flush(tbl)
}

// Habits prints the habit plans with their soft goal links.
func (pp *PrettyPrint) Habits(habits []*state.HabitPlan) {
	if len(habits) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	if pp.ShowID {
		tbl.AddRow("ID", "HABIT", "FREQUENCY", "ANCHOR", "GOAL")
	} else {
		tbl.AddRow("HABIT", "FREQUENCY", "ANCHOR", "GOAL")
	}
	for _, h := range habits {
		if pp.ShowID {
			tbl.AddRow(h.ID, h.Name, h.Frequency, h.Anchor, h.LinkedGoal)
		} else {
			tbl.AddRow(h.Name, h.Frequency, h.Anchor, h.LinkedGoal)
		}
	}
	pp.flush(tbl)
}

// Weekly prints the weekly action board, default buckets first.
func (pp *PrettyPrint) Weekly(weekly map[string][]string) {
	printed := make(map[string]bool)
	buckets := append([]string(nil), state.DefaultWeeklyBuckets()...)
	for bucket := range weekly {
		if !printed[bucket] && !contains(buckets, bucket) {
			buckets = append(buckets, bucket)
		}
	}
	for _, bucket := range buckets {
		actions, ok := weekly[bucket]
		if !ok {
			continue
		}
		printed[bucket] = true
		pp.TitleWithCount(bucket, len(actions))
		if len(actions) == 0 {
			pp.none()
			continue
		}
		t := color.New()
		for _, a := range actions {
			_, _ = t.Printf("  %s\n", a)
		}
		fmt.Println("")
	}
}

// Focus prints the transient focus selection.
func (pp *PrettyPrint) Focus(actions []string) {
	y := color.New(color.FgHiYellow)
	for _, a := range actions {
		_, _ = y.Printf("  %s\n", a)
	}
	fmt.Println("")
}

// TimeEntries prints tracked blocks with derived hours and calendar tags.
func (pp *PrettyPrint) TimeEntries(entries []*state.TimeEntry) {
	if len(entries) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	if pp.ShowID {
		tbl.AddRow("ID", "ACTIVITY", "CATEGORY", "START", "HOURS", "CALENDAR TAG")
	} else {
		tbl.AddRow("ACTIVITY", "CATEGORY", "START", "HOURS", "CALENDAR TAG")
	}
	for _, e := range entries {
		start := e.Start.Local().Format("Jan 02 15:04")
		hours := fmt.Sprintf("%.2f", e.DurationHours())
		if pp.ShowID {
			tbl.AddRow(e.ID, e.Activity, e.Category, start, hours, e.CalendarColor)
		} else {
			tbl.AddRow(e.Activity, e.Category, start, hours, e.CalendarColor)
		}
	}
	pp.flush(tbl)
}

// Effort prints per-category hour totals.
func (pp *PrettyPrint) Effort(totals map[string]float64) {
	if len(totals) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	tbl.AddRow("CATEGORY", "HOURS")
	for _, category := range state.DefaultTimerCategories() {
		if hours, ok := totals[category]; ok {
			tbl.AddRow(category, fmt.Sprintf("%.2f", hours))
		}
	}
	for category, hours := range totals {
		if !contains(state.DefaultTimerCategories(), category) {
			tbl.AddRow(category, fmt.Sprintf("%.2f", hours))
		}
	}
	pp.flush(tbl)
}

// FlowLogs prints before/after flow reflections, resolving activities through
// the soft time-entry reference. A dangling reference renders blank.
func (pp *PrettyPrint) FlowLogs(logs []*state.FlowLog, s *state.AppState) {
	if len(logs) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	tbl.AddRow("BLOCK", "FLOW BEFORE", "FLOW AFTER", "EMOTION AFTER", "LOGGED")
	for _, l := range logs {
		activity := ""
		if entry := s.TimeEntryByID(l.TimeEntryID); entry != nil {
			activity = entry.Activity
		}
		tbl.AddRow(activity,
			fmt.Sprintf("%d/5", l.FlowBefore),
			fmt.Sprintf("%d/5", l.FlowAfter),
			l.EmotionAfter,
			l.CreatedAt.Local().Format("Jan 02 15:04"))
	}
	pp.flush(tbl)
}

// JournalEntries prints the journal history with tags and frozen suggestions.
func (pp *PrettyPrint) JournalEntries(entries []*state.JournalEntry) {
	if len(entries) == 0 {
		pp.none()
		return
	}
	faint := color.New(color.Faint)
	t := color.New()
	for _, e := range entries {
		_, _ = faint.Printf("%s", e.CreatedAt.Local().Format("Jan 02 15:04"))
		if len(e.Tags) > 0 {
			_, _ = faint.Printf("  [%s]", strings.Join(e.Tags, ", "))
		}
		fmt.Println("")
		_, _ = t.Printf("  %s\n", excerpt(e.Text, 76))
		pp.Suggestions(e.Suggestions)
	}
}

// Suggestions prints classified suggestions, one per line.
func (pp *PrettyPrint) Suggestions(suggestions []state.JournalSuggestion) {
	if len(suggestions) == 0 {
		pp.none()
		return
	}
	k := color.New(color.FgHiCyan)
	t := color.New()
	for _, sg := range suggestions {
		_, _ = k.Printf("  %-8s", string(sg.Kind))
		_, _ = t.Printf(" %s\n", sg.Text)
	}
	fmt.Println("")
}

// QuickCapture prints the triage inbox.
func (pp *PrettyPrint) QuickCapture(items []*state.QuickCaptureItem) {
	if len(items) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	tbl.AddRow("ID", "ITEM", "STATUS", "CAPTURED")
	for _, item := range items {
		tbl.AddRow(item.ID, item.Text, string(item.Status), item.CreatedAt.Local().Format("Jan 02 15:04"))
	}
	pp.flush(tbl)
}

// PendingCapture prints the flow-capture prompt for a just-stopped block.
func (pp *PrettyPrint) PendingCapture(p *state.PendingCapture) {
	b := color.New(color.FgHiBlue)
	f := color.New(color.Faint)
	_, _ = b.Printf("How did %q feel?\n", p.Activity)
	_, _ = f.Printf("  flow before: %d/5 · emotion before: %s\n", p.FlowBefore, p.EmotionBefore)
	_, _ = f.Printf("  resolve with: actionmenu track flow %s --flow N --emotion E\n", p.Token)
	_, _ = f.Printf("  or skip with: actionmenu track skip %s\n", p.Token)
}

func excerpt(text string, n int) string {
	flat := strings.Join(strings.Fields(text), " ")
	if len(flat) <= n {
		return flat
	}
	return flat[:n-1] + "…"
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
