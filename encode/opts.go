package encode

import "golang.org/x/text/encoding"

// Mode selects which value lines the serializer emits.
type Mode int

const (
	// Unexpanded emits key=RawValue lines; this is the round-tripping
	// mode.
	Unexpanded Mode = iota
	// Expanded emits key=<rendered typed value> lines.
	Expanded
	// All emits the typed line plus a key+"unexpanded"=RawValue line.
	// Re-importing this output does not round-trip: the synthetic keys
	// become ordinary keys and duplicate keys overwrite.
	All
)

func (m Mode) String() string {
	switch m {
	case Unexpanded:
		return "Unexpanded"
	case Expanded:
		return "Expanded"
	case All:
		return "All"
	}
	return "<unknown mode>"
}

type EncState struct {
	mode      Mode
	enc       encoding.Encoding
	appendTo  bool
	noClobber bool
}

type EncodeOption func(*EncState)

// EncodeMode selects the output mode; the default is Unexpanded.
func EncodeMode(m Mode) EncodeOption {
	return func(es *EncState) { es.mode = m }
}

// WithEncoding sets the byte-level rendering of the output. It never
// affects the document. Nil means UTF-8.
func WithEncoding(e encoding.Encoding) EncodeOption {
	return func(es *EncState) { es.enc = e }
}

// Append opens the export target in append mode instead of truncating.
func Append(v bool) EncodeOption {
	return func(es *EncState) { es.appendTo = v }
}

// NoClobber makes export refuse to overwrite an existing target.
func NoClobber(v bool) EncodeOption {
	return func(es *EncState) { es.noClobber = v }
}
