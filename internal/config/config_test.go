package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "loxconfig")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	path := filepath.Join(dir, "lox.yml")
	if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, found %+v", cfg)
	}
	if cfg.Level() != logrus.WarnLevel {
		t.Errorf("Expected warning level, found %s", cfg.Level())
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
color: false
prompt: "lox> "
line_mode: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Level() != logrus.DebugLevel {
		t.Errorf("Expected debug level, found %s", cfg.Level())
	}
	if cfg.Color {
		t.Error("Expected color to be disabled")
	}
	if cfg.Prompt != "lox> " {
		t.Errorf("Unexpected prompt %q", cfg.Prompt)
	}
	if !cfg.LineMode {
		t.Error("Expected line mode")
	}
	if cfg.ContinuationPrompt != Default().ContinuationPrompt {
		t.Errorf("Unset keys should keep their default, found %q", cfg.ContinuationPrompt)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, found %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":  "colour: true\n",
		"bad level":    "log_level: loud\n",
		"empty prompt": "prompt: \"\"\n",
		"invalid yaml": "color: [\n",
		"wrong type":   "line_mode: maybe\n",
	}
	for name, content := range cases {
		if _, err := Load(writeConfig(t, content)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}

	if _, err := Load(filepath.Join(os.TempDir(), "does-not-exist", "lox.yml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
