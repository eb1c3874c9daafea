/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roundrobin

import (
	"strings"
	"testing"
)

func TestBuildScheduleOutputEven(t *testing.T) {
	sched, err := Generate([]string{"Alice", "Bob"})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	out := BuildScheduleOutput(sched)
	if !strings.Contains(out, "2 players, 1 rounds") {
		t.Errorf("missing header in output: %q", out)
	}
	if !strings.Contains(out, "Players: Alice, Bob") {
		t.Errorf("missing player list in output: %q", out)
	}
	if !strings.Contains(out, "Board 1: Alice vs. Bob") {
		t.Errorf("missing board line in output: %q", out)
	}
	if strings.Contains(out, "BYE") {
		t.Errorf("unexpected bye in even-count output: %q", out)
	}
}

func TestBuildScheduleOutputOdd(t *testing.T) {
	sched, err := Generate([]string{"Alice", "Bob", "Carol", "Dan", "Erin"})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	out := BuildScheduleOutput(sched)
	if !strings.Contains(out, "one player sits out each round") {
		t.Errorf("missing odd-count note in output: %q", out)
	}
	if !strings.Contains(out, "Round 5:") {
		t.Errorf("missing final round in output: %q", out)
	}
	if got := strings.Count(out, "BYE: "); got != 5 {
		t.Errorf("expected 5 bye lines, got %d in output: %q", got, out)
	}
}
