package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port == "" {
		t.Error("expected default port")
	}
	if cfg.Env != "development" && cfg.Env != "production" && cfg.Env != "testing" {
		t.Errorf("unexpected env %q", cfg.Env)
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "db", DBPort: "5433", DBUser: "cp", DBPassword: "secret", DBName: "charity",
	}
	want := "postgres://cp:secret@db:5433/charity?sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN: got %q, want %q", got, want)
	}
}

func TestAddr(t *testing.T) {
	cfg := &Config{Host: "0.0.0.0", Port: "8080"}
	if got := cfg.Addr(); got != "0.0.0.0:8080" {
		t.Errorf("Addr: got %q", got)
	}
}

func TestIsDevAndSecureCookies(t *testing.T) {
	tests := []struct {
		env    string
		isDev  bool
		secure bool
	}{
		{"development", true, false},
		{"production", false, true},
		{"testing", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := &Config{Env: tt.env}
			if cfg.IsDev() != tt.isDev {
				t.Errorf("IsDev: got %v, want %v", cfg.IsDev(), tt.isDev)
			}
			if cfg.SecureCookies() != tt.secure {
				t.Errorf("SecureCookies: got %v, want %v", cfg.SecureCookies(), tt.secure)
			}
		})
	}
}

func TestLoadProductionRequiresPassword(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("POSTGRES_PASSWORD", "")

	if _, err := Load(); err == nil {
		t.Error("expected error for default password in production")
	}
}
