package browser

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
)

// Bundled CJK font. Pages rendered from scratch in a bare browser install
// have no Japanese glyphs; the tool embeds this font into every page when
// the file is present next to the binary.
const (
	FontFileName   = "ipaexg.ttf"
	FontFamilyName = "IPAexGothic"
	fontsDirName   = "fonts"
)

// BuildFontCSS builds the @font-face stylesheet for the bundled font under
// <baseDir>/fonts/. An absent font file is not an error: the stylesheet is
// empty and the browser falls back to its default fonts.
func BuildFontCSS(baseDir string) (string, error) {
	fontPath := filepath.Join(baseDir, fontsDirName, FontFileName)

	data, err := os.ReadFile(fontPath)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("browser: read font %s: %w", fontPath, err)
	}

	dataURI := "data:font/ttf;base64," + base64.StdEncoding.EncodeToString(data)

	css := fmt.Sprintf(`@font-face {
  font-family: '%[1]s';
  font-style: normal;
  font-weight: 400;
  font-display: swap;
  src: url(%[2]s) format('truetype');
}

body,
button,
input,
select,
textarea {
  font-family: '%[1]s', sans-serif;
}`, FontFamilyName, dataURI)

	return css, nil
}
