package encode

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/confit-format/confit/ir"
	"github.com/confit-format/confit/literal"
	"github.com/confit-format/confit/parse"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/encoding"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

var und = parse.WithLocale(literal.LocaleFor(language.Und))

func sampleDoc(t *testing.T) *ir.Document {
	t.Helper()
	doc, err := parse.Parse([]byte(`; header
top=1

[server]
# bind
host=localhost
size=1.5kb
`), und)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return doc
}

func TestEncodeUnexpanded(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(sampleDoc(t), &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := `; header
top=1

[server]
# bind
host=localhost
size=1.5kb

`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}

func TestEncodeExpanded(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(sampleDoc(t), &buf, EncodeMode(Expanded)); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := `; header
top=1

[server]
# bind
host=localhost
size=1536

`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}

func TestEncodeAll(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(sampleDoc(t), &buf, EncodeMode(All)); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := `; header
top=1
topunexpanded=1

[server]
# bind
host=localhost
hostunexpanded=localhost
size=1536
sizeunexpanded=1.5kb

`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}

// Unexpanded output re-imports into an equal document.
func TestEncodeUnexpandedRoundTrips(t *testing.T) {
	doc := sampleDoc(t)
	var buf bytes.Buffer
	if err := Encode(doc, &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	again, err := parse.Parse(buf.Bytes(), und)
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if diff := cmp.Diff(doc.SectionNames(), again.SectionNames()); diff != "" {
		t.Fatalf("sections (-orig +again):\n%s", diff)
	}
	for _, name := range doc.SectionNames() {
		s1, _ := doc.Section(name)
		s2, _ := again.Section(name)
		if diff := cmp.Diff(s1.Keys(), s2.Keys()); diff != "" {
			t.Errorf("[%s] keys (-orig +again):\n%s", name, diff)
			continue
		}
		for _, k := range s1.Keys() {
			e1, _ := s1.Entry(k)
			e2, _ := s2.Entry(k)
			if e1.RawValue != e2.RawValue || !e1.Typed.Equal(e2.Typed) {
				t.Errorf("[%s] %s: %q/%q vs %q/%q",
					name, k, e1.RawValue, e1.Typed.Render(), e2.RawValue, e2.Typed.Render())
			}
		}
	}
}

func TestEncodeEscapedKeyRoundTrips(t *testing.T) {
	doc := ir.NewDocument()
	doc.EnsureSection("s").AddKeyValue("a=b;c", "v", ir.String("v"))
	var buf bytes.Buffer
	if err := Encode(doc, &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	again, err := parse.Parse(buf.Bytes(), und)
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	s, _ := again.Section("s")
	if _, ok := s.Entry("a=b;c"); !ok {
		t.Errorf("escaped key lost, keys = %v", s.Keys())
	}
}

// A key literally named Comment0 serializes once, next to the comment it
// shares a section with, and the whole thing re-imports unchanged.
func TestEncodeKeyNamedComment0RoundTrips(t *testing.T) {
	src := "[a]\n; hello\nComment0=x\n\n"
	doc, err := parse.Parse([]byte(src), und)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var buf bytes.Buffer
	if err := Encode(doc, &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if diff := cmp.Diff(src, buf.String()); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}

// Re-importing mode All yields the synthetic keys as ordinary keys; the
// serializer does not promise a round-trip here.
func TestEncodeAllDoesNotRoundTrip(t *testing.T) {
	doc := sampleDoc(t)
	var buf bytes.Buffer
	if err := Encode(doc, &buf, EncodeMode(All)); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	again, err := parse.Parse(buf.Bytes(), und)
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	srv, _ := again.Section("server")
	if _, ok := srv.Entry("sizeunexpanded"); !ok {
		t.Error("synthetic key did not become an ordinary key")
	}
	if e, _ := srv.Entry("size"); !e.Typed.Equal(ir.Int(1536, 32)) {
		t.Errorf("size = %q", e.Typed.Render())
	}
}

func TestEncodeUTF16LE(t *testing.T) {
	doc := ir.NewDocument()
	doc.EnsureSection(ir.NoSection).AddKeyValue("k", "v", ir.String("v"))
	enc, err := ParseEncoding("utf-16le")
	if err != nil {
		t.Fatalf("ParseEncoding: %v", err)
	}
	var buf bytes.Buffer
	if err := Encode(doc, &buf, WithEncoding(enc)); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte{0xFF, 0xFE}) {
		t.Fatalf("missing BOM, got % x", out[:4])
	}
	if !bytes.Contains(out, []byte{'k', 0, '=', 0, 'v', 0}) {
		t.Errorf("little-endian payload missing: % x", out)
	}
}

// flushFailTransformer accepts every write and fails only on the final
// flush, the way a stateful encoder with pending output can.
type flushFailTransformer struct{}

func (flushFailTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if atEOF {
		return 0, 0, errors.New("pending output lost")
	}
	n := copy(dst, src)
	if n < len(src) {
		return n, n, transform.ErrShortDst
	}
	return n, n, nil
}

func (flushFailTransformer) Reset() {}

type flushFailEncoding struct{}

func (flushFailEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: transform.Nop}
}

func (flushFailEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: flushFailTransformer{}}
}

// An encoding failure surfacing only at the final flush must fail the
// encode, not silently report success.
func TestEncodeSurfacesFlushError(t *testing.T) {
	doc := ir.NewDocument()
	doc.EnsureSection(ir.NoSection).AddKeyValue("k", "v", ir.String("v"))
	var buf bytes.Buffer
	err := Encode(doc, &buf, WithEncoding(flushFailEncoding{}))
	if !errors.Is(err, ErrEncoding) {
		t.Fatalf("error = %v, want ErrEncoding", err)
	}
}

func TestParseEncodingUnknown(t *testing.T) {
	if _, err := ParseEncoding("ebcdic"); !errors.Is(err, ErrEncoding) {
		t.Errorf("error = %v, want ErrEncoding", err)
	}
}

func TestExport(t *testing.T) {
	doc := ir.NewDocument()
	doc.EnsureSection(ir.NoSection).AddKeyValue("k", "1", ir.Int(1, 32))
	path := filepath.Join(t.TempDir(), "out.conf")

	if err := Export(doc, path); err != nil {
		t.Fatalf("Export: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "k=1\n\n" {
		t.Errorf("contents = %q", b)
	}

	// refuses an existing target
	if err := Export(doc, path, NoClobber(true)); !errors.Is(err, ErrIO) {
		t.Errorf("NoClobber error = %v, want ErrIO", err)
	}

	// appends instead of truncating
	if err := Export(doc, path, Append(true)); err != nil {
		t.Fatalf("append Export: %v", err)
	}
	b, _ = os.ReadFile(path)
	if string(b) != "k=1\n\nk=1\n\n" {
		t.Errorf("appended contents = %q", b)
	}

	// unwritable target surfaces as an io failure
	if err := Export(doc, filepath.Join(t.TempDir(), "no", "dir", "x")); !errors.Is(err, ErrIO) {
		t.Errorf("bad path error = %v, want ErrIO", err)
	}
}
