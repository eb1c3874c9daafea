/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/padraic-m/roundrobin-duelbot/roundrobin"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":     handleHelp,
	"schedule": handleSchedule,
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(args []string) {
	usage()
}

// handleSchedule generates and prints a round robin schedule from a comma
// separated player list given on the command line.
func handleSchedule(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr,
			"Please provide a comma separated list of players.\n")
		os.Exit(1)
	}

	players := roundrobin.ParseRoster(strings.Join(args, " "))
	sched, err := roundrobin.Generate(players)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rrtd: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s", roundrobin.BuildScheduleOutput(sched))
}
