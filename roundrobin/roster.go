/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package roundrobin

import (
	"strings"
)

// ParseRoster splits free-form comma separated text into an ordered player
// list. Whitespace around names is trimmed, empty entries are dropped, and
// case-insensitive duplicates are removed keeping the first occurrence.
func ParseRoster(text string) []string {
	var players []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(text, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		players = append(players, name)
	}

	return players
}
