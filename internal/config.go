/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the bot's runtime settings, sourced from the environment.
// A .env file in the working directory is honored when present.
type Config struct {
	BotToken   string `envconfig:"DISCORD_BOT_TOKEN" required:"true"`
	PublicKey  string `envconfig:"DISCORD_PUBLIC_KEY" required:"true"`
	AppID      string `envconfig:"DISCORD_APP_ID" required:"true"`
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`
}

// LoadConfig reads Config from the environment, loading a .env file first
// if one exists.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to load config from environment: %w",
			err)
	}

	return &cfg, nil
}
