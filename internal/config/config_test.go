package config

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MOVEGEN_ADDR", "")
	t.Setenv("MOVEGEN_ORIGINS", "")
	t.Setenv("MOVEGEN_DEBUG", "")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{Addr: DefaultAddr, AllowOrigins: []string{DefaultOrigins}}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvAndFlags(t *testing.T) {
	t.Setenv("MOVEGEN_ADDR", ":8080")
	t.Setenv("MOVEGEN_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("MOVEGEN_DEBUG", "yes")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{Addr: ":8080", AllowOrigins: []string{"http://a.test", "http://b.test"}, Debug: true}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.OriginList(); got != "http://a.test, http://b.test" {
		t.Errorf("OriginList = %q", got)
	}

	cfg, err = Load([]string{"-addr", ":9090", "-debug=false"})
	if err != nil {
		t.Fatalf("Load with flags: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.Debug {
		t.Errorf("flags should override env, got %+v", cfg)
	}
}

func TestLoadRejectsEmptyValues(t *testing.T) {
	t.Setenv("MOVEGEN_ADDR", "")
	t.Setenv("MOVEGEN_ORIGINS", "")

	if _, err := Load([]string{"-addr", " "}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("empty addr: want ErrInvalidConfig, got %v", err)
	}
	if _, err := Load([]string{"-origins", " , "}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("empty origins: want ErrInvalidConfig, got %v", err)
	}
}
