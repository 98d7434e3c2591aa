package conf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReplies_MissingFileUsesDefaults(t *testing.T) {
	replies, err := LoadReplies(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("LoadReplies: %v", err)
	}
	if replies.AckHeader != "Got it! I've logged:" {
		t.Errorf("AckHeader = %q", replies.AckHeader)
	}
	if len(replies.HelpExamples) == 0 {
		t.Error("default help examples missing")
	}
}

func TestLoadReplies_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replies.yaml")
	content := "ack_header: \"Noted:\"\nhelp_examples:\n  - \"I walked for 20 minutes\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	replies, err := LoadReplies(path)
	if err != nil {
		t.Fatalf("LoadReplies: %v", err)
	}
	if replies.AckHeader != "Noted:" {
		t.Errorf("AckHeader = %q, want override", replies.AckHeader)
	}
	if len(replies.HelpExamples) != 1 || replies.HelpExamples[0] != "I walked for 20 minutes" {
		t.Errorf("HelpExamples = %v", replies.HelpExamples)
	}
	// untouched fields backfill from defaults
	if replies.DigestHeader != "Here are your personalized recommendations:" {
		t.Errorf("DigestHeader = %q", replies.DigestHeader)
	}
	if replies.ProcessFailure == "" {
		t.Error("ProcessFailure should backfill")
	}
}

func TestLoadReplies_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replies.yaml")
	if err := os.WriteFile(path, []byte("ack_header: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadReplies(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestReplies_ToTemplates(t *testing.T) {
	replies := &Replies{
		AckHeader:    "A",
		DigestHeader: "B",
		HelpIntro:    "C",
		HelpExamples: []string{"x"},
	}
	tpl := replies.ToTemplates()
	if tpl.AckHeader != "A" || tpl.DigestHeader != "B" || tpl.HelpIntro != "C" {
		t.Errorf("templates = %+v", tpl)
	}
	if len(tpl.HelpExamples) != 1 || tpl.HelpExamples[0] != "x" {
		t.Errorf("HelpExamples = %v", tpl.HelpExamples)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("WELLNESS_DATA_DIR", "/tmp/wellness-test")
	t.Setenv("WELLNESS_DB_PATH", "")
	t.Setenv("WELLNESS_HISTORY_LIMIT", "25")
	t.Setenv("WELLNESS_DEBUG", "1")

	cfg := LoadFromEnv()
	if cfg.DataDir != "/tmp/wellness-test" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.DBPath != filepath.Join("/tmp/wellness-test", "wellness.db") {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.HistoryLimit != 25 {
		t.Errorf("HistoryLimit = %d", cfg.HistoryLimit)
	}
	if !cfg.Debug {
		t.Error("Debug should be set")
	}
}

func TestLoadFromEnv_BadHistoryLimitIgnored(t *testing.T) {
	t.Setenv("WELLNESS_HISTORY_LIMIT", "not-a-number")
	if cfg := LoadFromEnv(); cfg.HistoryLimit != defaultHistoryLimit {
		t.Errorf("HistoryLimit = %d, want default", cfg.HistoryLimit)
	}
}
