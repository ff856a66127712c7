package diag

import (
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		err  bool
	}{
		{"error", ErrorLevel, false},
		{"WARN", WarnLevel, false},
		{"Warning", WarnLevel, false},
		{" info ", InfoLevel, false},
		{"verbose", VerboseLevel, false},
		{"DEBUG", DebugLevel, false},
		{"chatty", 0, true},
		{"", 0, true},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if (err != nil) != tc.err {
			t.Errorf("ParseLevel(%q) err = %v", tc.in, err)
			continue
		}
		if !tc.err && got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestWriterLoggerThreshold(t *testing.T) {
	var buf strings.Builder
	l := NewWriterLogger(&buf, WarnLevel).WithColor(false)
	l.Error("boom", "key", "v")
	l.Warn("careful")
	l.Info("ignored")
	l.Debug("ignored too")

	out := buf.String()
	if !strings.Contains(out, "ERROR boom key=v") {
		t.Errorf("missing error line: %q", out)
	}
	if !strings.Contains(out, "WARN careful") {
		t.Errorf("missing warn line: %q", out)
	}
	if strings.Contains(out, "ignored") {
		t.Errorf("threshold leak: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("%d lines, want 2", got)
	}
}

func TestWriterLoggerOddKV(t *testing.T) {
	var buf strings.Builder
	l := NewWriterLogger(&buf, DebugLevel).WithColor(false)
	l.Info("msg", "a", 1, "dangling")
	if got := buf.String(); got != "INFO msg a=1 dangling\n" {
		t.Errorf("line = %q", got)
	}
}

func TestCollect(t *testing.T) {
	c := &Collect{}
	c.Warn("value fell back", "key", "x")
	c.Error("rejected")
	if !c.Has(WarnLevel, "fell back") {
		t.Error("warn not recorded")
	}
	if c.Has(ErrorLevel, "fell back") {
		t.Error("level confusion")
	}
	if len(c.Entries) != 2 {
		t.Errorf("entries = %d", len(c.Entries))
	}
}

func TestNoop(t *testing.T) {
	// must simply not panic
	l := Noop()
	l.Error("x")
	l.Warn("x")
	l.Info("x")
	l.Verbose("x")
	l.Debug("x")
}
