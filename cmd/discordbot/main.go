/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/padraic-m/roundrobin-duelbot/internal"

	_ "embed"
)

// set after first registration; leave empty to register a fresh command
const RrCmdId = "1401237719077581102"

var client *discordgo.Session
var botPubKey ed25519.PublicKey

type TopLevelCommand string

const (
	RrCmd TopLevelCommand = "rr"
)

type CmdHandler func(i *discordgo.Interaction) *discordgo.InteractionResponse

var topLevelCmdHdlrs = map[TopLevelCommand]CmdHandler{
	RrCmd: rrCmdHandler,
}

func interactionHandler(w http.ResponseWriter, r *http.Request) {
	if !discordgo.VerifyInteraction(r, botPubKey) {
		log.Printf("discordbot.int: failed to verify")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("discordbot.int: failed to read request body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var inter discordgo.Interaction
	if err := inter.UnmarshalJSON(body); err != nil {
		log.Printf("discordbot.int: failed to unmarshal interaction: err:%v body:%v",
			err, body)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resp := &discordgo.InteractionResponse{}
	if inter.Type == discordgo.InteractionPing {
		resp.Type = discordgo.InteractionResponsePong
	} else if inter.Type == discordgo.InteractionApplicationCommand {
		hdlr, ok :=
			topLevelCmdHdlrs[TopLevelCommand(inter.ApplicationCommandData().Name)]
		if !ok {
			resp.Type = discordgo.InteractionResponseChannelMessageWithSource
			resp.Data = &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("unknown command '%v'",
					inter.ApplicationCommandData().Name),
				Flags: discordgo.MessageFlagsEphemeral,
			}
		} else {
			resp = hdlr(&inter)
		}
	} else {
		log.Printf("discordbot.int: unimplemented interation type %v: inter:%v",
			inter.Type, inter)
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	rawResp, err := json.Marshal(resp)
	if err != nil {
		log.Printf("discordbot.int: failed to marshal resp: err:%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_, err = w.Write(rawResp)
	if err != nil {
		log.Printf("discordbot.int: failed to write resp: err:%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}

func init() {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))
}

//go:embed lastupdate.hash
var lastCmdUpdateHash string

func shouldUpdateCmdRegistration(cmd *discordgo.ApplicationCommand) bool {
	cmdJson, err := json.Marshal(cmd)
	if err != nil {
		log.Fatalf("discordbot.reg: failed to marshal cmd: %v", err)
		return false
	}
	hasher := sha256.New()
	hasher.Write(cmdJson)
	hash := hasher.Sum(nil)
	hexString := hex.EncodeToString(hash)

	shouldUpdate := (hexString != lastCmdUpdateHash)

	if shouldUpdate {
		log.Printf("discordbot.reg: updating cmd reg; please update lastupdate.hash to %v",
			hexString)
	}

	return shouldUpdate
}

func registerSlashCommands(appId string) {
	rrCmd := &discordgo.ApplicationCommand{
		Name:        string(RrCmd),
		Description: "Round robin duel commands; try /rr help to start",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(RrHelpCmd),
				Description: "Show usage for rr",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(RrAboutCmd),
				Description: "Show information about roundrobin-duelbot",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(RrScheduleCmd),
				Description: "Generate a round robin schedule for a list of players",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "players",
						Description: "Comma separated player names (e.g. Alice, Bob, Carol)",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "broadcast",
						Description: "Share with the rest of the channel instead of only to you (default is false)",
						Required:    false,
					},
				},
			},
		},
	}

	if RrCmdId == "" {
		cmd, err := client.ApplicationCommandCreate(appId, "", rrCmd)
		if err != nil {
			log.Printf("discordbot.reg: failed to register %v: %v", rrCmd.Name,
				err)
			return
		}

		log.Printf("discordbot.reg: registered %v(cmdID:%v)", cmd.Name, cmd.ID)
	} else if shouldUpdateCmdRegistration(rrCmd) {
		cmd, err := client.ApplicationCommandEdit(appId, "", RrCmdId, rrCmd)
		if err != nil {
			log.Printf("discordbot.reg: failed to update %v: %v", rrCmd.Name,
				err)
			return
		}

		log.Printf("discordbot.reg: updated %v(cmdID:%v)", cmd.Name, cmd.ID)
	}
}

func main() {
	cfg, err := internal.LoadConfig()
	if err != nil {
		log.Fatalf("discordbot.main: Failed to load config: %v", err)
	}

	pubKeyBytes, err := hex.DecodeString(cfg.PublicKey)
	if err != nil {
		log.Fatalf("discordbot.main: Failed to parse public key: %v", err)
	}
	botPubKey = ed25519.PublicKey(pubKeyBytes)

	client, err = discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		log.Fatalf("discordbot.main: Failed to initialize discord client: %v",
			err)
	}

	go registerSlashCommands(cfg.AppID)

	log.Printf("discordbot.main: starting server on %v", cfg.ListenAddr)

	http.HandleFunc("/DiscordBot/Interaction", interactionHandler)
	if err := http.ListenAndServe(cfg.ListenAddr, nil); err != nil {
		log.Fatalf("discordbot.main: Serve failed: %v", err)
	}

	log.Printf("discordbot.main: exiting")
}
