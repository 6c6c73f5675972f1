package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/Garsondee/Ant-Arena/internal/arena"
	"github.com/Garsondee/Ant-Arena/internal/config"
	"golang.org/x/sync/errgroup"
)

type runStats struct {
	runIndex int
	seed     int64
	matchID  string

	status string
	rounds int

	firstHitRound     int
	firstRemoveRound  int
	firstQueenRemoval int

	moves      int
	blocked    int
	hits       int
	misses     int
	removals   int
	violations int

	leftAlive, rightAlive       int
	leftStrength, rightStrength int
	removed                     map[string]struct{}
	fates                       []arena.UnitFate // only with -verbose
}

type options struct {
	runs       int
	rounds     int
	seedBase   int64
	seedStep   int64
	configPath string
	workers    int
	logLevel   string
	verbose    bool
}

func main() {
	var opts options
	flag.IntVar(&opts.runs, "runs", 5, "number of headless matches")
	flag.IntVar(&opts.rounds, "steps", 0, "round limit per match (0 = use config)")
	flag.Int64Var(&opts.seedBase, "seed-base", 42, "bot seed for run 1")
	flag.Int64Var(&opts.seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&opts.configPath, "config", "", "match config YAML (default: built-in)")
	flag.IntVar(&opts.workers, "workers", 4, "matches run in parallel")
	flag.StringVar(&opts.logLevel, "log-level", "warn", "debug, info, warn or error")
	flag.BoolVar(&opts.verbose, "verbose", false, "journal every unit each round and print per-unit fates")
	flag.Parse()

	if err := run(context.Background(), opts, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out, logOut io.Writer) error {
	if opts.runs <= 0 {
		return fmt.Errorf("-runs must be > 0")
	}
	if opts.workers <= 0 {
		return fmt.Errorf("-workers must be > 0")
	}
	logger, err := config.NewLogger(logOut, opts.logLevel)
	if err != nil {
		return err
	}
	cfg := config.Default()
	if opts.configPath != "" {
		if cfg, err = config.Load(opts.configPath); err != nil {
			return err
		}
	}
	if opts.rounds > 0 {
		cfg.Steps = opts.rounds
	}
	if cfg.Steps <= 0 {
		return fmt.Errorf("a round limit is required for headless runs (-steps or config steps)")
	}

	fmt.Fprintf(out, "=== Headless Match Report ===\n")
	fmt.Fprintf(out, "board=%s bots=%s/%s units=%d strength=%d runs=%d steps=%d seed_base=%d seed_step=%d\n\n",
		cfg.Size(), cfg.Bots.Left, cfg.Bots.Right, cfg.UnitsPerSide, cfg.InitialStrength,
		opts.runs, cfg.Steps, opts.seedBase, opts.seedStep)

	all := make([]runStats, opts.runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers)
	for i := 0; i < opts.runs; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c := cfg
			c.Seed = opts.seedBase + int64(i)*opts.seedStep
			rs, err := runMatch(i+1, c, opts.verbose, logger)
			if err != nil {
				return fmt.Errorf("run %d: %w", i+1, err)
			}
			all[i] = rs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, rs := range all {
		printRun(out, rs)
	}
	printAggregate(out, all)
	return nil
}

func runMatch(runIndex int, cfg config.MatchConfig, verbose bool, logger *slog.Logger) (runStats, error) {
	match, err := cfg.NewMatch(
		arena.WithLogger(logger.With("run", runIndex)),
		arena.WithSimLog(arena.NewSimLog(verbose)),
	)
	if err != nil {
		return runStats{}, err
	}
	ref := arena.NewReferee(match, cfg.Steps)
	for ref.Advance() {
	}
	return collect(runIndex, cfg.Seed, ref), nil
}

func collect(runIndex int, seed int64, ref *arena.Referee) runStats {
	match := ref.Match()
	sl := match.SimLog()
	o := arena.Standings(match.View())

	removed := map[string]struct{}{}
	firstQueen := -1
	for _, e := range sl.Filter("remove", "killed") {
		removed[e.Unit] = struct{}{}
		if firstQueen < 0 && strings.Contains(e.Unit, "-Q") {
			firstQueen = e.Round
		}
	}

	var fates []arena.UnitFate
	if sl.Verbose() {
		fates = sl.Fates()
	}

	return runStats{
		runIndex:          runIndex,
		seed:              seed,
		matchID:           match.ID(),
		status:            ref.Status(),
		rounds:            match.RoundNumber(),
		firstHitRound:     sl.FirstRound("attack", "hit", ""),
		firstRemoveRound:  sl.FirstRound("remove", "killed", ""),
		firstQueenRemoval: firstQueen,
		moves:             sl.Count("move", "applied"),
		blocked:           sl.Count("move", "blocked"),
		hits:              sl.Count("attack", "hit"),
		misses:            sl.Count("attack", "miss"),
		removals:          sl.Count("remove", "killed"),
		violations:        sl.Count("violation", ""),
		leftAlive:         o.Teams[arena.TeamLeft].Alive,
		rightAlive:        o.Teams[arena.TeamRight].Alive,
		leftStrength:      o.Teams[arena.TeamLeft].Strength,
		rightStrength:     o.Teams[arena.TeamRight].Strength,
		removed:           removed,
		fates:             fates,
	}
}

// detectStalemate flags a match that hit its round limit without either
// side making progress against the other.
func detectStalemate(rs runStats) (bool, string) {
	if rs.status != arena.StatusRoundLimit {
		return false, "decided"
	}
	reasons := []string{}
	if rs.hits == 0 {
		reasons = append(reasons, "no_contact")
	} else if rs.removals == 0 {
		reasons = append(reasons, "no_removals")
	}
	if rs.moves > 0 && rs.blocked*2 > rs.moves {
		reasons = append(reasons, "mostly_blocked")
	}
	if len(reasons) == 0 {
		return false, "attrition"
	}
	return true, strings.Join(reasons, "+")
}

func printRun(w io.Writer, rs runStats) {
	stalemate, reason := detectStalemate(rs)
	fmt.Fprintf(w, "--- Run %d (seed=%d match=%s) ---\n", rs.runIndex, rs.seed, rs.matchID)
	fmt.Fprintf(w, "result=%s rounds=%d stalemate=%v (%s)\n", rs.status, rs.rounds, stalemate, reason)
	fmt.Fprintf(w, "phase_markers: first_hit=%d first_removal=%d first_queen_removal=%d\n",
		rs.firstHitRound, rs.firstRemoveRound, rs.firstQueenRemoval)
	fmt.Fprintf(w, "event_totals: moves=%d blocked=%d hits=%d misses=%d removals=%d violations=%d\n",
		rs.moves, rs.blocked, rs.hits, rs.misses, rs.removals, rs.violations)
	fmt.Fprintf(w, "survivors: left=%d (str %d) right=%d (str %d)\n",
		rs.leftAlive, rs.leftStrength, rs.rightAlive, rs.rightStrength)
	fmt.Fprintf(w, "removed_labels: %s\n", joinSet(rs.removed))
	if len(rs.fates) > 0 {
		parts := make([]string, 0, len(rs.fates))
		for _, f := range rs.fates {
			parts = append(parts, f.String())
		}
		fmt.Fprintf(w, "unit_fates: %s\n", strings.Join(parts, ", "))
	}
	fmt.Fprintln(w)
}

func printAggregate(w io.Writer, all []runStats) {
	results := map[string]int{}
	var totalRounds, totalBlocked, totalHits, totalMisses, totalRemovals, totalViolations, stalemates int
	firstHits := make([]int, 0, len(all))
	firstRemovals := make([]int, 0, len(all))
	removedGlobal := map[string]struct{}{}

	for _, rs := range all {
		results[rs.status]++
		totalRounds += rs.rounds
		totalBlocked += rs.blocked
		totalHits += rs.hits
		totalMisses += rs.misses
		totalRemovals += rs.removals
		totalViolations += rs.violations
		if s, _ := detectStalemate(rs); s {
			stalemates++
		}
		if rs.firstHitRound >= 0 {
			firstHits = append(firstHits, rs.firstHitRound)
		}
		if rs.firstRemoveRound >= 0 {
			firstRemovals = append(firstRemovals, rs.firstRemoveRound)
		}
		for label := range rs.removed {
			removedGlobal[label] = struct{}{}
		}
	}

	fmt.Fprintln(w, "=== Aggregate ===")
	fmt.Fprintf(w, "runs=%d results=%s stalemates=%d\n", len(all), joinCounts(results), stalemates)
	fmt.Fprintf(w, "avg_per_run: rounds=%.1f blocked=%.1f hits=%.1f misses=%.1f removals=%.1f violations=%.1f\n",
		avg(totalRounds, len(all)), avg(totalBlocked, len(all)), avg(totalHits, len(all)),
		avg(totalMisses, len(all)), avg(totalRemovals, len(all)), avg(totalViolations, len(all)))
	fmt.Fprintf(w, "phase_marker_avg_rounds: first_hit=%s first_removal=%s\n",
		avgRoundString(firstHits), avgRoundString(firstRemovals))
	fmt.Fprintf(w, "unique_removed_labels=%d [%s]\n", len(removedGlobal), joinSet(removedGlobal))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgRoundString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinCounts(m map[string]int) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s:%d", k, m[k]))
	}
	return strings.Join(parts, ",")
}

func joinSet(s map[string]struct{}) string {
	if len(s) == 0 {
		return "none"
	}
	labels := make([]string, 0, len(s))
	for k := range s {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return strings.Join(labels, ",")
}
