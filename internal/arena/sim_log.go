package arena

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event of a match.
type SimLogEntry struct {
	Round    int    // 0 for spawns
	Unit     string // "L-W0", "R-Q0"
	Team     string
	Category string // init, move, attack, remove, violation, unit
	Key      string
	Value    string
	NumVal   float64 // remaining strength where it applies
}

//	[R=042] L-W0   attack    hit              R-W3
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[R=%03d] %-6s %-9s %-16s %s",
		e.Round, e.Unit, e.Category, e.Key, e.Value)
}

// matches treats an empty category, key or substr as a wildcard.
func (e SimLogEntry) matches(category, key, substr string) bool {
	return (category == "" || e.Category == category) &&
		(key == "" || e.Key == key) &&
		(substr == "" || strings.Contains(e.Value, substr))
}

// SimLog is the append-only journal of a match.
//
// Events (spawns, moves, attacks, removals, violations) are always kept.
// A verbose journal also keeps a "unit"/"state" snapshot of every live unit
// at the end of each round, which is what per-unit histories are built from.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Verbose reports whether per-round unit snapshots are kept.
func (sl *SimLog) Verbose() bool { return sl.verbose }

func (sl *SimLog) Add(round int, unit, team, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{round, unit, team, category, key, value, numVal})
}

// AddVerbose is Add for entries only a verbose journal keeps.
func (sl *SimLog) AddVerbose(round int, unit, team, category, key, value string, numVal float64) {
	if sl.verbose {
		sl.Add(round, unit, team, category, key, value, numVal)
	}
}

// Entries returns the journal in recording order. Callers must not modify it.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

func (sl *SimLog) where(keep func(SimLogEntry) bool) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Filter selects by category and key; "" matches anything.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	return sl.where(func(e SimLogEntry) bool { return e.matches(category, key, "") })
}

// FilterUnit selects every entry about the unit with the given label.
func (sl *SimLog) FilterUnit(label string) []SimLogEntry {
	return sl.where(func(e SimLogEntry) bool { return e.Unit == label })
}

// FilterRoundRange selects entries recorded in rounds from..to inclusive.
func (sl *SimLog) FilterRoundRange(from, to int) []SimLogEntry {
	return sl.where(func(e SimLogEntry) bool { return e.Round >= from && e.Round <= to })
}

func (sl *SimLog) Count(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the latest entry with the given category and key.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	for i := len(sl.entries) - 1; i >= 0; i-- {
		if sl.entries[i].matches(category, key, "") {
			return sl.entries[i], true
		}
	}
	return SimLogEntry{}, false
}

// FirstRound is the round of the earliest matching entry, or -1.
func (sl *SimLog) FirstRound(category, key, valueSubstr string) int {
	for _, e := range sl.entries {
		if e.Category == category && e.Key == key && e.matches("", "", valueSubstr) {
			return e.Round
		}
	}
	return -1
}

func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if e.matches(category, key, valueSubstr) {
			return true
		}
	}
	return false
}

const arrow = " → "

// UnitFate is where a unit's journal leaves it.
type UnitFate struct {
	Label     string
	Team      string
	Removed   bool
	LastRound int    // round of the unit's last entry
	Last      string // removal detail, or last known position
	Strength  int    // last recorded strength; 0 once removed
}

func (f UnitFate) String() string {
	if f.Removed {
		return fmt.Sprintf("%s removed@R%d", f.Label, f.LastRound)
	}
	return fmt.Sprintf("%s alive@R%d %s str=%d", f.Label, f.LastRound, f.Last, f.Strength)
}

// Fates walks the history of every unit spawned in round 0. Strength after
// spawn is only tracked by a verbose journal.
func (sl *SimLog) Fates() []UnitFate {
	var out []UnitFate
	for _, spawn := range sl.FilterRoundRange(0, 0) {
		if spawn.Category != "init" {
			continue
		}
		f := UnitFate{Label: spawn.Unit, Team: spawn.Team, Last: spawn.Value, Strength: int(spawn.NumVal)}
		for _, e := range sl.FilterUnit(spawn.Unit) {
			f.LastRound = e.Round
			switch {
			case e.Category == "move" && e.Key == "applied":
				if i := strings.LastIndex(e.Value, arrow); i >= 0 {
					f.Last = e.Value[i+len(arrow):]
				}
			case e.Category == "remove":
				f.Removed, f.Last, f.Strength = true, e.Value, 0
			case e.Category == "unit" && e.Key == "state":
				f.Last, f.Strength = e.Value, int(e.NumVal)
			}
		}
		out = append(out, f)
	}
	return out
}

// Format renders the whole journal, one entry per line.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary condenses the journal and the board at round into a few lines.
func (sl *SimLog) Summary(round int, v View) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at R=%03d ---\n", round)
	o := Standings(v)
	for _, team := range []Team{TeamLeft, TeamRight} {
		ts := o.Teams[team]
		fmt.Fprintf(&sb, "%s: alive=%d queens=%d strength=%d\n", team, ts.Alive, ts.Queens, ts.Strength)
	}
	fmt.Fprintf(&sb, "moves=%d blocked=%d hits=%d misses=%d removed=%d violations=%d\n",
		sl.Count("move", "applied"), sl.Count("move", "blocked"),
		sl.Count("attack", "hit"), sl.Count("attack", "miss"),
		sl.Count("remove", ""), sl.Count("violation", ""))
	if last, ok := sl.LastOf("remove", "killed"); ok {
		fmt.Fprintf(&sb, "last removal: %s %s in R=%d\n", last.Unit, last.Value, last.Round)
	}
	fmt.Fprintf(&sb, "outcome: %s\n", o.Result)
	return sb.String()
}
