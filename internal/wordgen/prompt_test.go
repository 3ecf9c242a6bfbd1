package wordgen

import (
	"strings"
	"testing"
)

func TestBuildUserMessage(t *testing.T) {
	cfg := DefaultConfig()

	msg := buildUserMessage(GenerateInput{Count: 5, RecentWords: []string{"lucid", "ephemeral"}}, cfg)
	if !strings.Contains(msg, "Generate 5 vocabulary words.") {
		t.Errorf("count missing from message:\n%s", msg)
	}
	if !strings.Contains(msg, "lucid, ephemeral") {
		t.Errorf("recent words missing from message:\n%s", msg)
	}
}

func TestBuildUserMessageDefaultCount(t *testing.T) {
	msg := buildUserMessage(GenerateInput{}, DefaultConfig())
	if !strings.Contains(msg, "Generate 10 vocabulary words.") {
		t.Errorf("default count not applied:\n%s", msg)
	}
	if !strings.Contains(msg, "None") {
		t.Errorf("empty collection should read None:\n%s", msg)
	}
}

func TestBuildRecentTruncates(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e"}

	got := buildRecent(words, 3)
	if got != "a, b, c" {
		t.Errorf("buildRecent = %q, want %q", got, "a, b, c")
	}
	if got := buildRecent(words, 0); got != "a, b, c, d, e" {
		t.Errorf("zero max should keep all, got %q", got)
	}
}
