/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package roundrobin generates complete round robin tournament schedules
// using the circle method: every player meets every other player exactly
// once, with one bye per round when the player count is odd.
package roundrobin

import (
	"fmt"
)

// Match is a single game between two players within a round. The pairing
// is unordered; PlayerA merely held the lower seat index when the round
// was formed.
type Match struct {
	PlayerA string
	PlayerB string
}

// Round holds the matches for one round plus the player sitting out, if
// any. Bye is empty when every player is paired.
type Round struct {
	Number  int
	Matches []Match
	Bye     string
}

// Schedule is a complete round robin schedule for Players, in round order.
type Schedule struct {
	Players []string
	Rounds  []Round
}

// InvalidInputError indicates the caller supplied fewer than the two
// players required to form at least one match.
type InvalidInputError struct {
	Count int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("need at least 2 players to build a schedule; have %d",
		e.Count)
}

// seat is one slot in the rotation circle: either a real player or the
// synthetic slot whose opponent each round becomes that round's bye.
type seat struct {
	player string
	isBye  bool
}

// Generate builds a round robin schedule for the given players. An even
// player count yields len(players)-1 rounds with no byes; an odd count
// yields len(players) rounds with exactly one bye per round, each player
// sitting out exactly once. Output is deterministic for a given input
// ordering. Duplicate names are treated as distinct seats; dedupe
// beforehand (e.g. via ParseRoster) if that matters.
func Generate(players []string) (*Schedule, error) {
	if len(players) < 2 {
		return nil, &InvalidInputError{Count: len(players)}
	}

	seats := make([]seat, 0, len(players)+1)
	for _, p := range players {
		seats = append(seats, seat{player: p})
	}
	if len(seats)%2 == 1 {
		seats = append(seats, seat{isBye: true})
	}
	n := len(seats)

	sched := &Schedule{
		Players: append([]string(nil), players...),
		Rounds:  make([]Round, 0, n-1),
	}

	for r := 0; r < n-1; r++ {
		rnd := Round{Number: r + 1}

		// pair first with last, second with second-to-last, & so on
		for i := 0; i < n/2; i++ {
			a := seats[i]
			b := seats[n-1-i]
			switch {
			case a.isBye:
				rnd.Bye = b.player
			case b.isBye:
				rnd.Bye = a.player
			default:
				rnd.Matches = append(rnd.Matches, Match{
					PlayerA: a.player,
					PlayerB: b.player,
				})
			}
		}
		sched.Rounds = append(sched.Rounds, rnd)

		// rotate the circle: seat 0 stays fixed, seat 1 moves to the
		// end, every other seat shifts down one
		moved := seats[1]
		copy(seats[1:], seats[2:])
		seats[n-1] = moved
	}

	return sched, nil
}
