package config

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{"JWT_SECRET": secret})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	want := Config{
		Port:       8080,
		DBDriver:   DriverSQLite,
		DBPath:     "./data/proofy.db",
		JWTSecret:  secret,
		TokenTTL:   24 * time.Hour,
		LogLevel:   "info",
		CORSOrigin: "*",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("LoadFrom() mismatch (-want +got):\n%s", diff)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
}

func TestLoadFromOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"JWT_SECRET":   secret,
		"PORT":         "9090",
		"DB_DRIVER":    "postgres",
		"DATABASE_URL": "postgres://localhost/proofy",
		"TOKEN_TTL":    "90m",
		"LOG_LEVEL":    "debug",
		"STATIC_PATH":  "../frontend",
	})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Port != 9090 || cfg.DBDriver != DriverPostgres || cfg.TokenTTL != 90*time.Minute || cfg.StaticPath != "../frontend" {
		t.Errorf("LoadFrom() = %+v", cfg)
	}
}

func TestLoadFromErrors(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		wantErr string
	}{
		{name: "missing secret", vars: map[string]string{}, wantErr: "JWT_SECRET"},
		{name: "short secret", vars: map[string]string{"JWT_SECRET": "short"}, wantErr: "at least 32 bytes"},
		{name: "postgres without url", vars: map[string]string{"JWT_SECRET": secret, "DB_DRIVER": "postgres"}, wantErr: "DATABASE_URL"},
		{name: "unknown driver", vars: map[string]string{"JWT_SECRET": secret, "DB_DRIVER": "mysql"}, wantErr: "DB_DRIVER"},
		{name: "bad level", vars: map[string]string{"JWT_SECRET": secret, "LOG_LEVEL": "loud"}, wantErr: "LOG_LEVEL"},
		{name: "bad duration", vars: map[string]string{"JWT_SECRET": secret, "TOKEN_TTL": "soon"}, wantErr: "TokenTTL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(tt.vars)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadFrom() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}
