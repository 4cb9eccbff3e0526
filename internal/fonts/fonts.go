// Package fonts loads the embedded document fonts, substituting the built-in
// core face when the preferred TrueType files are unavailable.
package fonts

import (
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
)

const (
	// family is the name the preferred faces are registered under.
	family = "CVSans"
	// fallback is the built-in core face used when the TrueType files are
	// missing or unreadable. Core faces need no font file at all.
	fallback = "Helvetica"

	regularFile = "Roboto-Regular.ttf"
	boldFile    = "Roboto-Bold.ttf"
)

// Set describes the faces available to one document build. Read-only after
// Load; safe to consult from both language variants.
type Set struct {
	// Family is the font family to select for all drawing.
	Family string
	// Tr maps UTF-8 strings into the encoding of the active face. Identity
	// for TrueType faces, cp1252 translation for the core fallback.
	Tr func(string) string
}

func sniffTrueType(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	switch string(data[:4]) {
	case "\x00\x01\x00\x00", "true", "OTTO":
		return true
	}
	return false
}

// Load registers the regular and bold faces from dir on the given document.
// If either face is missing or not a TrueType file, both are substituted by
// the built-in fallback face; font trouble never fails a run.
func Load(doc *fpdf.Fpdf, dir string) *Set {
	regular, errR := os.ReadFile(filepath.Join(dir, regularFile))
	bold, errB := os.ReadFile(filepath.Join(dir, boldFile))
	if errR != nil || errB != nil || !sniffTrueType(regular) || !sniffTrueType(bold) {
		return &Set{
			Family: fallback,
			Tr:     doc.UnicodeTranslatorFromDescriptor(""),
		}
	}

	doc.AddUTF8FontFromBytes(family, "", regular)
	doc.AddUTF8FontFromBytes(family, "B", bold)
	return &Set{
		Family: family,
		Tr:     func(s string) string { return s },
	}
}
