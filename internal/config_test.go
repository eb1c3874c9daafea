/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "tok123")
	t.Setenv("DISCORD_PUBLIC_KEY", "abcd1234")
	t.Setenv("DISCORD_APP_ID", "9876543210")
	t.Setenv("LISTEN_ADDR", "placeholder")
	os.Unsetenv("LISTEN_ADDR")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.BotToken != "tok123" {
		t.Errorf("expected BotToken tok123, got %q", cfg.BotToken)
	}
	if cfg.PublicKey != "abcd1234" {
		t.Errorf("expected PublicKey abcd1234, got %q", cfg.PublicKey)
	}
	if cfg.AppID != "9876543210" {
		t.Errorf("expected AppID 9876543210, got %q", cfg.AppID)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("expected default ListenAddr :8080, got %q", cfg.ListenAddr)
	}
}

func TestLoadConfigListenAddrOverride(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "tok123")
	t.Setenv("DISCORD_PUBLIC_KEY", "abcd1234")
	t.Setenv("DISCORD_APP_ID", "9876543210")
	t.Setenv("LISTEN_ADDR", ":9000")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.ListenAddr != ":9000" {
		t.Errorf("expected ListenAddr :9000, got %q", cfg.ListenAddr)
	}
}

func TestLoadConfigMissingToken(t *testing.T) {
	// t.Setenv registers the restore; unset so the var is truly absent
	t.Setenv("DISCORD_BOT_TOKEN", "placeholder")
	os.Unsetenv("DISCORD_BOT_TOKEN")
	t.Setenv("DISCORD_PUBLIC_KEY", "abcd1234")
	t.Setenv("DISCORD_APP_ID", "9876543210")

	if _, err := LoadConfig(); err == nil {
		t.Error("expected error when DISCORD_BOT_TOKEN is unset")
	}
}
