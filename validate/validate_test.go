package validate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/confit-format/confit/ir"
	"github.com/google/go-cmp/cmp"
)

const specYAML = `database:
  - host
  - port
logging:
  - level
`

func TestParseSpec(t *testing.T) {
	spec, err := ParseSpec([]byte(specYAML))
	if err != nil {
		t.Fatalf("ParseSpec: %v", err)
	}
	want := Spec{
		"database": {"host", "port"},
		"logging":  {"level"},
	}
	if diff := cmp.Diff(want, spec); diff != "" {
		t.Errorf("spec (-want +got):\n%s", diff)
	}

	if _, err := ParseSpec([]byte(":\n  - [broken")); err == nil {
		t.Error("want error for malformed yaml")
	}
}

func TestLoadSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "required.yaml")
	if err := os.WriteFile(path, []byte(specYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	spec, err := LoadSpec(path)
	if err != nil {
		t.Fatalf("LoadSpec: %v", err)
	}
	if len(spec) != 2 {
		t.Errorf("spec = %v", spec)
	}
	if _, err := LoadSpec(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("want error for missing file")
	}
}

func TestCheck(t *testing.T) {
	doc := ir.NewDocument()
	db := doc.EnsureSection("database")
	db.AddKeyValue("host", "localhost", ir.String("localhost"))
	db.AddComment("; port intentionally missing")

	spec := Spec{
		"database": {"port", "host"},
		"logging":  {"level"},
	}
	want := []Finding{
		{Section: "database", Key: "port"},
		{Section: "logging"},
	}
	if diff := cmp.Diff(want, Check(doc, spec)); diff != "" {
		t.Errorf("findings (-want +got):\n%s", diff)
	}
}

func TestCheckCommentDoesNotSatisfyKey(t *testing.T) {
	doc := ir.NewDocument()
	s := doc.EnsureSection("a")
	s.AddComment("; x")
	got := Check(doc, Spec{"a": {"Comment0"}})
	if len(got) != 1 {
		t.Fatalf("findings = %v, want the comment name flagged missing", got)
	}
}

func TestCheckClean(t *testing.T) {
	doc := ir.NewDocument()
	doc.EnsureSection("a").AddKeyValue("k", "1", ir.Int(1, 32))
	if got := Check(doc, Spec{"a": {"k"}}); got != nil {
		t.Errorf("findings = %v, want none", got)
	}
}

func TestFindingString(t *testing.T) {
	if s := (Finding{Section: "db"}).String(); !strings.Contains(s, "[db]") {
		t.Errorf("section finding = %q", s)
	}
	f := Finding{Section: "db", Key: "host"}
	if s := f.String(); !strings.Contains(s, `"host"`) || !strings.Contains(s, "[db]") {
		t.Errorf("key finding = %q", s)
	}
}
