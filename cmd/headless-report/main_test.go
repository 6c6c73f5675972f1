package main

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/Garsondee/Ant-Arena/internal/arena"
)

func TestDetectStalemate_TrueWhenNoContact(t *testing.T) {
	rs := runStats{status: arena.StatusRoundLimit, moves: 40, blocked: 10}
	isStalemate, reason := detectStalemate(rs)
	if !isStalemate {
		t.Fatalf("expected stalemate=true, got false (reason=%s)", reason)
	}
	if !strings.Contains(reason, "no_contact") {
		t.Fatalf("expected reason to mention no_contact, got: %s", reason)
	}
}

func TestDetectStalemate_TrueWhenMostlyBlocked(t *testing.T) {
	rs := runStats{status: arena.StatusRoundLimit, moves: 10, blocked: 30, hits: 4, removals: 1}
	isStalemate, reason := detectStalemate(rs)
	if !isStalemate || reason != "mostly_blocked" {
		t.Fatalf("expected mostly_blocked stalemate, got %v (%s)", isStalemate, reason)
	}
}

func TestDetectStalemate_FalseWhenDecided(t *testing.T) {
	rs := runStats{status: arena.ResultLeftVictory.String()}
	if isStalemate, reason := detectStalemate(rs); isStalemate {
		t.Fatalf("expected stalemate=false for a decided match (reason=%s)", reason)
	}
}

func TestDetectStalemate_FalseUnderAttrition(t *testing.T) {
	rs := runStats{status: arena.StatusRoundLimit, moves: 40, blocked: 5, hits: 9, removals: 2}
	if isStalemate, reason := detectStalemate(rs); isStalemate {
		t.Fatalf("expected stalemate=false under attrition (reason=%s)", reason)
	}
}

func TestRun_ReportsEveryRun(t *testing.T) {
	var out strings.Builder
	opts := options{runs: 3, rounds: 60, seedBase: 5, seedStep: 2, workers: 2, logLevel: "error"}
	if err := run(context.Background(), opts, &out, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	report := out.String()
	for _, want := range []string{"--- Run 1 (seed=5", "--- Run 2 (seed=7", "--- Run 3 (seed=9", "=== Aggregate ===", "runs=3"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestRun_VerbosePrintsUnitFates(t *testing.T) {
	var quiet, loud strings.Builder
	base := options{runs: 1, rounds: 20, seedBase: 3, seedStep: 1, workers: 1, logLevel: "error"}
	if err := run(context.Background(), base, &quiet, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(quiet.String(), "unit_fates:") {
		t.Fatal("fates should only be printed with -verbose")
	}
	base.verbose = true
	if err := run(context.Background(), base, &loud, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	report := loud.String()
	if !strings.Contains(report, "unit_fates: L-W0 ") || !strings.Contains(report, "L-Q0 ") {
		t.Fatalf("expected per-unit fates in verbose report:\n%s", report)
	}
}

func TestRun_RejectsBadFlags(t *testing.T) {
	for _, opts := range []options{
		{runs: 0, workers: 1, logLevel: "info"},
		{runs: 1, workers: 0, logLevel: "info"},
		{runs: 1, workers: 1, logLevel: "chatty"},
	} {
		if err := run(context.Background(), opts, io.Discard, io.Discard); err == nil {
			t.Errorf("expected error for %+v", opts)
		}
	}
}

func TestJoinCounts(t *testing.T) {
	got := joinCounts(map[string]int{"round_limit": 2, "left_victory": 1})
	if got != "left_victory:1,round_limit:2" {
		t.Fatalf("joinCounts = %q", got)
	}
}
