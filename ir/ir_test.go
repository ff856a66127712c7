package ir

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValueRender(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{String("hello"), "hello"},
		{String(""), ""},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Int(-16, 32), "-16"},
		{Int(1 << 40, 64), "1099511627776"},
		{Uint(255, 8), "255"},
		{Big(new(big.Int).Lsh(big.NewInt(1), 70)), "1180591620717411303424"},
		{Decimal(decimal.RequireFromString("1.5")), "1.5"},
		{Float(1e14), "1e+14"},
	}
	for _, tc := range tests {
		if got := tc.v.Render(); got != tc.want {
			t.Errorf("Render(%s) = %q, want %q", tc.v.Kind, got, tc.want)
		}
	}
}

func TestValueEqual(t *testing.T) {
	if !Decimal(decimal.RequireFromString("1.50")).Equal(Decimal(decimal.RequireFromString("1.5"))) {
		t.Error("equal decimals with different exponents should compare equal")
	}
	if Int(1, 32).Equal(Int(1, 64)) {
		t.Error("same magnitude at different widths should not compare equal")
	}
	if Int(1, 32).Equal(Uint(1, 32)) {
		t.Error("int and uint should not compare equal")
	}
	if !Big(big.NewInt(7)).Equal(Big(big.NewInt(7))) {
		t.Error("equal bigs should compare equal")
	}
}

func TestDocumentOrderAndComments(t *testing.T) {
	d := NewDocument()
	s := d.EnsureSection(NoSection)
	s.AddComment("; first")
	s.AddKeyValue("a", "1", Int(1, 32))
	s.AddComment("# second")
	vars := d.EnsureSection("vars")
	vars.AddKeyValue("x", "y", String("y"))

	if got := d.SectionNames(); len(got) != 2 || got[0] != NoSection || got[1] != "vars" {
		t.Fatalf("section order = %v", got)
	}
	entries := s.Entries()
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	if entries[0].Name != "Comment0" || entries[2].Name != "Comment1" {
		t.Errorf("comment names = %q, %q", entries[0].Name, entries[2].Name)
	}
	// the counter is per section
	vars.AddComment("; in vars")
	if e, _ := vars.Entry("Comment0"); e == nil {
		t.Error("vars section should restart the comment counter at 0")
	}
}

func TestAddKeyValueDuplicateOverwrites(t *testing.T) {
	d := NewDocument()
	s := d.EnsureSection("s")
	s.AddKeyValue("k", "1", Int(1, 32))
	s.AddKeyValue("k", "2", Int(2, 32))
	if s.Len() != 1 {
		t.Fatalf("duplicate key should overwrite, len = %d", s.Len())
	}
	e, _ := s.Entry("k")
	if e.RawValue != "2" {
		t.Errorf("RawValue = %q, want %q", e.RawValue, "2")
	}
}

// A key literally named Comment<N> and the synthetic name of a comment
// must coexist: neither entry may shadow or overwrite the other.
func TestKeyNamedComment0DoesNotCollide(t *testing.T) {
	d := NewDocument()
	s := d.EnsureSection("a")
	s.AddComment("; hello")
	s.AddKeyValue("Comment0", "x", String("x"))

	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	e, ok := s.Entry("Comment0")
	if !ok || e.Kind != KeyValueEntry || e.RawValue != "x" {
		t.Errorf("Entry(Comment0) = %+v, want the key/value entry", e)
	}
	entries := s.Entries()
	if entries[0].Kind != CommentEntry || entries[0].Text != "; hello" {
		t.Errorf("comment lost: %+v", entries[0])
	}
	if entries[1].Kind != KeyValueEntry || entries[1].Key != "Comment0" {
		t.Errorf("key lost: %+v", entries[1])
	}

	// reverse order: the comment must not overwrite the key
	d2 := NewDocument()
	s2 := d2.EnsureSection("a")
	s2.AddKeyValue("Comment0", "x", String("x"))
	s2.AddComment("; hello")
	if s2.Len() != 2 {
		t.Fatalf("reverse order len = %d, want 2", s2.Len())
	}
	if e, _ := s2.Entry("Comment0"); e.Kind != KeyValueEntry || e.RawValue != "x" {
		t.Errorf("key overwritten by comment: %+v", e)
	}
}

func TestRawConcat(t *testing.T) {
	d := NewDocument()
	s := d.EnsureSection("a")
	s.AddKeyValue("k1", "v1", String("v1"))
	s.AddComment("; ignored")
	s.AddKeyValue("k2", "v2", String("v2"))
	if got := d.RawConcat(); got != "v1v2" {
		t.Errorf("RawConcat = %q, want %q", got, "v1v2")
	}
}
