/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	_ "embed"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/padraic-m/roundrobin-duelbot/roundrobin"
)

type RrSubCommand string

const (
	RrAboutCmd    RrSubCommand = "about"
	RrHelpCmd     RrSubCommand = "help"
	RrScheduleCmd RrSubCommand = "schedule"
)

var rrSubCmdHdlrs = map[RrSubCommand]CmdHandler{
	RrAboutCmd:    rrAboutCmdHandler,
	RrHelpCmd:     rrHelpCmdHandler,
	RrScheduleCmd: rrScheduleCmdHandler,
}

func rrCmdHandler(inter *discordgo.Interaction) *discordgo.InteractionResponse {
	data := inter.ApplicationCommandData()
	hdlr := rrHelpCmdHandler
	if len(data.Options) > 0 {
		if subName := data.Options[0].Name; subName != "" {
			h, ok := rrSubCmdHdlrs[RrSubCommand(subName)]
			if ok {
				hdlr = h
			}
		}
	}
	return hdlr(inter)
}

//go:embed about.txt
var aboutText string

func rrAboutCmdHandler(inter *discordgo.Interaction) *discordgo.InteractionResponse {
	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	resp.Data.Content = truncateContent(aboutText)

	return resp
}

//go:embed help.md
var helpText string

func rrHelpCmdHandler(inter *discordgo.Interaction) *discordgo.InteractionResponse {
	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	resp.Data.Content = truncateContent(helpText)
	return resp
}

// rrScheduleCmdHandler handles the /rr schedule command to generate and
// display a round robin schedule for the supplied players
func rrScheduleCmdHandler(inter *discordgo.Interaction) *discordgo.InteractionResponse {
	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	data := inter.ApplicationCommandData()
	playersText := ""
	broadcast := false // default
	if len(data.Options) > 0 {
		for _, opt := range data.Options[0].Options {
			if opt.Name == "players" {
				playersText = opt.StringValue()
			} else if opt.Name == "broadcast" {
				broadcast = opt.BoolValue()
			}
		}
	}
	if playersText == "" {
		resp.Data.Content = "Please provide a comma separated list of players."
		log.Printf("discordbot.schedule: %v", resp.Data.Content)
		return resp
	}

	players := roundrobin.ParseRoster(playersText)
	sched, err := roundrobin.Generate(players)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("%v. Example: Alice, Bob, Carol", err)
		log.Printf("discordbot.schedule: %v", resp.Data.Content)
		return resp
	}

	// Wrap output in code block for monospace formatting in Discord
	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(roundrobin.BuildScheduleOutput(sched)))

	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

// https://discord.com/developers/docs/resources/channel#start-thread-in-forum-or-media-channel-forum-and-media-thread-message-params-object
// limits messages to 2k characters
func truncateContent(s string) string {
	const MsgLimit = 1988 // keep space for newlines and markdown
	runes := []rune(s)
	if len(runes) > MsgLimit {
		s = fmt.Sprintf("%v...", string(runes[:MsgLimit]))
	}
	return s
}
