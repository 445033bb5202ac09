package browser

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFontCSSMissingFont(t *testing.T) {
	css, err := BuildFontCSS(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, css)
}

func TestBuildFontCSS(t *testing.T) {
	baseDir := t.TempDir()
	fontData := []byte{0x00, 0x01, 0x00, 0x00, 0xDE, 0xAD}
	fontsDir := filepath.Join(baseDir, "fonts")
	require.NoError(t, os.MkdirAll(fontsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(fontsDir, FontFileName), fontData, 0o644))

	css, err := BuildFontCSS(baseDir)
	require.NoError(t, err)

	assert.Contains(t, css, "@font-face")
	assert.Contains(t, css, FontFamilyName)
	assert.Contains(t, css, "data:font/ttf;base64,"+base64.StdEncoding.EncodeToString(fontData))
	assert.Contains(t, css, "font-display: swap")

	// The body override must come after the face declaration so form
	// controls pick the font up too
	faceIdx := strings.Index(css, "@font-face")
	bodyIdx := strings.Index(css, "body,")
	assert.Greater(t, bodyIdx, faceIdx)
	for _, element := range []string{"button", "input", "select", "textarea"} {
		assert.Contains(t, css, element)
	}
}

func TestBuildFontCSSUnreadableFont(t *testing.T) {
	baseDir := t.TempDir()
	// A directory where the font file should be forces a read error
	require.NoError(t, os.MkdirAll(filepath.Join(baseDir, "fonts", FontFileName), 0o755))

	_, err := BuildFontCSS(baseDir)
	assert.Error(t, err)
}

func TestFontInitScriptEscapesCSS(t *testing.T) {
	css := "body { font-family: 'IPAexGothic'; }\n/* \"quoted\" */"
	script := fontInitScript(css)

	assert.Contains(t, script, "document.createElement('style')")
	assert.Contains(t, script, `\"quoted\"`)
	assert.Contains(t, script, "documentElement.appendChild")
	// The raw CSS newline must be JSON-escaped, not literal
	assert.NotContains(t, script, "}\n/*")
}
