// Package document decodes resume files into cleaned plain text. The rest of
// the system never touches file formats directly.
package document

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// minExtractedLength guards against decoders that "succeed" on an image-only
// or corrupted file by returning next to nothing.
const minExtractedLength = 20

// UnsupportedFormatError is returned for file types the decoder cannot handle.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q: must be .pdf, .docx or .txt", e.Ext)
}

// ExtractText decodes the file at path and returns cleaned plain text.
// Unsupported extensions yield an UnsupportedFormatError with no partial result.
func ExtractText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var (
		text string
		err  error
	)
	switch ext {
	case ".pdf":
		text, err = extractPDF(path)
	case ".docx":
		text, err = extractDOCX(path)
	case ".txt":
		var data []byte
		data, err = os.ReadFile(path)
		text = string(data)
	default:
		return "", &UnsupportedFormatError{Ext: ext}
	}
	if err != nil {
		return "", err
	}

	text = Clean(text)
	if len(text) < minExtractedLength {
		return "", fmt.Errorf("extracted text from %q is too short for analysis", path)
	}

	return text, nil
}

func extractPDF(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		page, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("extract pdf page %d: %w", n+1, err)
		}
		if strings.TrimSpace(page) == "" {
			continue
		}
		sb.WriteString(page)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// extractDOCX reads the WordprocessingML main document part and collects the
// text runs, emitting one line per paragraph.
func extractDOCX(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer archive.Close()

	var part *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			part = f
			break
		}
	}
	if part == nil {
		return "", fmt.Errorf("docx %q has no document part", path)
	}

	reader, err := part.Open()
	if err != nil {
		return "", fmt.Errorf("open docx document part: %w", err)
	}
	defer reader.Close()

	return decodeWordprocessingText(reader)
}

func decodeWordprocessingText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var (
		sb     strings.Builder
		inText bool
	)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decode docx xml: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	return sb.String(), nil
}
