package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/speedtype/internal/config"
	"github.com/verte-zerg/speedtype/internal/model"
	"github.com/verte-zerg/speedtype/internal/textsource"
)

func validConfig() model.Config {
	return model.Config{
		Strict:   true,
		Source:   model.SourceParagraphs,
		Words:    defaultWords,
		PunctSet: defaultPunctSet,
	}
}

func TestValidateConfig(t *testing.T) {
	if err := validateConfig(validConfig()); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
	bad := validConfig()
	bad.Source = "quotes"
	if err := validateConfig(bad); err == nil {
		t.Fatalf("expected error for unknown source")
	}
	bad = validConfig()
	bad.Words = 0
	if err := validateConfig(bad); err == nil {
		t.Fatalf("expected error for zero words")
	}
	bad = validConfig()
	bad.CapsPct = 1.5
	if err := validateConfig(bad); err == nil {
		t.Fatalf("expected error for caps out of range")
	}
	bad = validConfig()
	bad.PunctPct = 0.5
	bad.PunctSet = ""
	if err := validateConfig(bad); err == nil {
		t.Fatalf("expected error for empty punct set")
	}
}

func TestBuildSourceParagraphs(t *testing.T) {
	src, err := buildSource(validConfig())
	if err != nil {
		t.Fatalf("build source: %v", err)
	}
	text, err := src.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	found := false
	for _, p := range textsource.DefaultPassages {
		if p == text {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a built-in passage, got %q", text)
	}
}

func TestBuildSourceWords(t *testing.T) {
	cfg := validConfig()
	cfg.Source = model.SourceWords
	cfg.Words = 4
	cfg.Seed = 3
	src, err := buildSource(cfg)
	if err != nil {
		t.Fatalf("build source: %v", err)
	}
	text, err := src.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if got := len(strings.Fields(text)); got != 4 {
		t.Fatalf("expected 4 words, got %d: %q", got, text)
	}
}

func TestBuildSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passages.txt")
	if err := os.WriteFile(path, []byte("only passage\n"), 0o644); err != nil {
		t.Fatalf("write passages: %v", err)
	}
	cfg := validConfig()
	cfg.PassagesPath = path
	src, err := buildSource(cfg)
	if err != nil {
		t.Fatalf("build source: %v", err)
	}
	if text, _ := src.Next(); text != "only passage" {
		t.Fatalf("unexpected passage %q", text)
	}
}

func TestBuildSourceMissingFile(t *testing.T) {
	cfg := validConfig()
	cfg.PassagesPath = filepath.Join(t.TempDir(), "missing.txt")
	if _, err := buildSource(cfg); err == nil {
		t.Fatalf("expected error for missing passages file")
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	var cfg config.FileConfig
	if _, err := toml.Decode(defaultConfigTemplate(), &cfg); err != nil {
		t.Fatalf("template is not valid TOML: %v", err)
	}
}

func TestWritePassages(t *testing.T) {
	var buf bytes.Buffer
	if err := writePassages(&buf, []string{"one", "two"}); err != nil {
		t.Fatalf("write passages: %v", err)
	}
	if buf.String() != "1\tone\n2\ttwo\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfgPath := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(cfgPath, []byte("[practice]\nstrict = false\nwords = 9\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := newRootCmd()
	if err := cmd.Flags().Set("words", "5"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	cfg, err := loadPracticeConfig(cmd)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Strict {
		t.Fatalf("expected strict from config file")
	}
	if cfg.Words != 5 {
		t.Fatalf("expected flag to override config, got %d", cfg.Words)
	}
}
