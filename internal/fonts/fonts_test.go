package fonts

import (
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingDirFallsBack(t *testing.T) {
	doc := fpdf.New("P", "pt", "A4", "")
	set := Load(doc, t.TempDir())

	require.NotNil(t, set)
	assert.Equal(t, "Helvetica", set.Family)
	require.NotNil(t, set.Tr)
	// Accented Spanish text must survive the cp1252 translation.
	assert.NotEmpty(t, set.Tr("Educación"))
}

func TestLoad_FallbackFaceIsUsable(t *testing.T) {
	doc := fpdf.New("P", "pt", "A4", "")
	set := Load(doc, t.TempDir())

	doc.SetFont(set.Family, "B", 12)
	assert.False(t, doc.Err())
	assert.Greater(t, doc.GetStringWidth(set.Tr("hola")), 0.0)
}

func TestSniffTrueType(t *testing.T) {
	assert.True(t, sniffTrueType([]byte{0x00, 0x01, 0x00, 0x00, 0x00}))
	assert.True(t, sniffTrueType([]byte("OTTO....")))
	assert.False(t, sniffTrueType([]byte("<html>")))
	assert.False(t, sniffTrueType(nil))
}
