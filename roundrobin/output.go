/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roundrobin

import (
	"fmt"
	"strings"
)

// BuildScheduleOutput formats a schedule into per-round board listings
// suitable for monospace display in a terminal or chat code block.
func BuildScheduleOutput(s *Schedule) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Round robin schedule: %d players, %d rounds\n",
		len(s.Players), len(s.Rounds)))
	sb.WriteString(fmt.Sprintf("Players: %s\n", strings.Join(s.Players, ", ")))
	if len(s.Players)%2 == 1 {
		sb.WriteString("Odd number of players; one player sits out each round.\n")
	}
	sb.WriteString("\n")

	for _, rnd := range s.Rounds {
		sb.WriteString(fmt.Sprintf("Round %d:\n", rnd.Number))
		for i, m := range rnd.Matches {
			sb.WriteString(fmt.Sprintf("  Board %d: %s vs. %s\n", i+1,
				m.PlayerA, m.PlayerB))
		}
		if rnd.Bye != "" {
			sb.WriteString(fmt.Sprintf("  BYE: %s\n", rnd.Bye))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
