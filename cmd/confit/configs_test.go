package main

import (
	"errors"
	"testing"

	"github.com/confit-format/confit/encode"
	"github.com/scott-cotton/cli"
)

func TestSplitBinding(t *testing.T) {
	tests := []struct {
		in        string
		name, val string
		ok        bool
	}{
		{"a=1", "a", "1", true},
		{"name=a=b", "name", "a=b", true},
		{"empty=", "empty", "", true},
		{"=x", "", "", false},
		{"novalue", "", "", false},
		{"", "", "", false},
	}
	for _, tc := range tests {
		name, val, ok := splitBinding(tc.in)
		if name != tc.name || val != tc.val || ok != tc.ok {
			t.Errorf("splitBinding(%q) = %q, %q, %v", tc.in, name, val, ok)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want encode.Mode
	}{
		{"", encode.Unexpanded},
		{"u", encode.Unexpanded},
		{"unexpanded", encode.Unexpanded},
		{"e", encode.Expanded},
		{"expanded", encode.Expanded},
		{"a", encode.All},
		{"all", encode.All},
	} {
		got, err := parseMode(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("parseMode(%q) = %v, %v", tc.in, got, err)
		}
	}
	if _, err := parseMode("bogus"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("parseMode(bogus) err = %v, want ErrUsage", err)
	}
}

func TestMainCommandBuilds(t *testing.T) {
	if MainCommand() == nil {
		t.Fatal("nil command")
	}
}
