package console

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	rec, err := Parse([]byte(`{"level":"error","args":["boom","at line 3"]}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if rec.Level != "error" {
		t.Errorf("Expected level %q, got %q", "error", rec.Level)
	}
	if len(rec.Args) != 2 || rec.Args[0] != "boom" || rec.Args[1] != "at line 3" {
		t.Errorf("Unexpected args: %v", rec.Args)
	}
}

func TestParseEmptyArgs(t *testing.T) {
	rec, err := Parse([]byte(`{"level":"log","args":[]}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(rec.Args) != 0 {
		t.Errorf("Expected no args, got %v", rec.Args)
	}
}

func TestParseErrors(t *testing.T) {
	bodies := map[string]string{
		"invalid JSON":   `not-json`,
		"missing level":  `{"args":["x"]}`,
		"missing args":   `{"level":"log"}`,
		"args not array": `{"level":"log","args":"x"}`,
		"non-string arg": `{"level":"log","args":[1]}`,
		"level not text": `{"level":3,"args":["x"]}`,
	}
	for name, body := range bodies {
		if _, err := Parse([]byte(body)); err == nil {
			t.Errorf("%s: expected error, got none", name)
		}
	}
}

// Any level name the browser sends is accepted and only uppercased for
// display.
func TestParseUnknownLevel(t *testing.T) {
	rec, err := Parse([]byte(`{"level":"trace","args":["hi"]}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := rec.Line(); got != "TRACE: hi" {
		t.Errorf("Expected %q, got %q", "TRACE: hi", got)
	}
}

func TestLine(t *testing.T) {
	rec := Record{Level: "error", Args: []string{"boom", "at line 3"}}
	want := "ERROR: boom at line 3"
	if got := rec.Line(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if strings.Contains(rec.Line(), "  ") {
		t.Error("Args should be joined by single spaces")
	}
}
