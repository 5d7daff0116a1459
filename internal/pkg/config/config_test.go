package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func processWith(t *testing.T, env map[string]string) *Config {
	t.Helper()
	var cfg Config
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.MapLookuper(env),
	})
	if err != nil {
		t.Fatalf("process config: %v", err)
	}
	return &cfg
}

func TestConfig_Defaults(t *testing.T) {
	cfg := processWith(t, nil)

	if cfg.Port != "3000" {
		t.Fatalf("expected port 3000, got %q", cfg.Port)
	}

	want := []string{
		"https://cosbuyai.onrender.com",
		"https://cosbuyai.com",
		"http://localhost:3000",
	}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("expected %d origins, got %v", len(want), cfg.AllowedOrigins)
	}
	for i, origin := range want {
		if cfg.AllowedOrigins[i] != origin {
			t.Fatalf("expected origin %d to be %q, got %q", i, origin, cfg.AllowedOrigins[i])
		}
	}

	if cfg.Mongo.Timeout != 10*time.Second {
		t.Fatalf("unexpected mongo timeout: %v", cfg.Mongo.Timeout)
	}
	if cfg.Redis.Timeout != 5*time.Second {
		t.Fatalf("unexpected redis timeout: %v", cfg.Redis.Timeout)
	}
	if cfg.OpenAI.MaxTokens != 1000 || cfg.OpenAI.Model != "gpt-3.5-turbo" {
		t.Fatalf("unexpected openai defaults: %+v", cfg.OpenAI)
	}
}

func TestConfig_AllowedOriginsOverride(t *testing.T) {
	cfg := processWith(t, map[string]string{
		"ALLOWED_ORIGINS": "https://a.test;https://b.test",
	})

	if len(cfg.AllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.AllowedOrigins)
	}
	if cfg.AllowedOrigins[0] != "https://a.test" || cfg.AllowedOrigins[1] != "https://b.test" {
		t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}
