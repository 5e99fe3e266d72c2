package formatter

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestMarkdown(t *testing.T) {
	lines := Markdown(
		[]string{"ID", "NAME"},
		[][]string{
			{"trent", "Council of Trent"},
			{"a", "B"},
		},
	)

	expected := []string{
		"| ID    | NAME             |",
		"| ----- | ---------------- |",
		"| trent | Council of Trent |",
		"| a     | B                |",
	}

	if len(lines) != len(expected) {
		t.Fatalf("Markdown returned %d lines, want %d:\n%s", len(lines), len(expected), strings.Join(lines, "\n"))
	}

	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], expected[i])
		}
	}
}

func TestMarkdown_MinWidthAndShortRows(t *testing.T) {
	lines := Markdown([]string{"A", "B"}, [][]string{{"x"}})

	if lines[1] != "| --- | --- |" {
		t.Errorf("separator = %q, want minimum width 3", lines[1])
	}

	if lines[2] != "| x   |     |" {
		t.Errorf("short row = %q, want padded empty cell", lines[2])
	}
}

func TestMarkdown_EscapesPipes(t *testing.T) {
	lines := Markdown([]string{"NAME"}, [][]string{{"a|b"}})

	if !strings.Contains(lines[2], `a\|b`) {
		t.Errorf("pipe not escaped: %q", lines[2])
	}
}

func TestMarkdown_WideCharacters(t *testing.T) {
	lines := Markdown(
		[]string{"NAME", "C"},
		[][]string{
			{"聖伯多祿大殿", "4"},
			{"Hagia Sophia", "6"},
		},
	)

	width := runewidth.StringWidth(lines[0])
	for i, line := range lines {
		if w := runewidth.StringWidth(line); w != width {
			t.Errorf("line %d display width = %d, want %d: %q", i, w, width, line)
		}
	}
}

func TestPlain(t *testing.T) {
	lines := Plain([]string{"SCORE", "NAME"}, [][]string{{"100", "Trent"}, {"80", "Council of Trent"}})

	if len(lines) != 4 {
		t.Fatalf("Plain returned %d lines, want 4", len(lines))
	}

	if lines[0] != "SCORE  NAME" {
		t.Errorf("header = %q", lines[0])
	}

	if lines[2] != "100    Trent" {
		t.Errorf("row = %q", lines[2])
	}

	if strings.HasSuffix(lines[3], " ") {
		t.Errorf("trailing padding not trimmed: %q", lines[3])
	}

	if !strings.HasPrefix(lines[1], "─────") {
		t.Errorf("rule = %q", lines[1])
	}
}
