package clusters

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/charmap"
)

// source extracts the raw text of a cluster document. One variant exists per
// supported file format; new formats are added as new variants, not as branching
// in the callers.
type source interface {
	Extract(path string) (string, error)
}

// sourceFor dispatches on the file extension. The second return is false for
// unsupported extensions.
func sourceFor(path string) (source, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		return textSource{}, true
	case ".pdf":
		return pdfSource{}, true
	default:
		return nil, false
	}
}

// textSource reads plain text and markdown files. Files that are not valid
// UTF-8 fall back to Latin-1 decoding.
type textSource struct{}

func (textSource) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// pdfSource extracts text page by page. A page whose extraction fails is logged
// and skipped; the remaining pages still contribute.
type pdfSource struct{}

func (pdfSource) Extract(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("Warning: failed to extract page %d of %s: %v", i, filepath.Base(path), err)
			continue
		}
		if text != "" {
			pages = append(pages, text)
		}
	}

	return strings.Join(pages, "\n"), nil
}
