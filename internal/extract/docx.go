package extract

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"
)

// fromDocx parses a .docx file by reading word/document.xml from the
// ZIP archive. Each paragraph becomes one line of output.
func fromDocx(path string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open zip: %w", err)
	}
	defer func() {
		_ = r.Close()
	}()

	return docxText(&r.Reader)
}

func docxText(r *zip.Reader) (string, error) {
	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("word/document.xml not found in archive")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("open document.xml: %w", err)
	}
	defer func() {
		_ = rc.Close()
	}()

	decoder := xml.NewDecoder(rc)
	var lines []string
	var currentText strings.Builder
	var inParagraph, inText bool

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				currentText.Reset()
			case "t":
				inText = inParagraph
			case "tab":
				if inParagraph {
					currentText.WriteByte('\t')
				}
			case "br":
				if inParagraph {
					currentText.WriteByte('\n')
				}
			}

		case xml.CharData:
			// Only <w:t> runs hold document text; other character data
			// inside a paragraph is structural noise.
			if inText {
				currentText.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if inParagraph {
					inParagraph = false
					lines = append(lines, strings.TrimRight(currentText.String(), " \t"))
				}
			}
		}
	}

	text := strings.TrimSpace(strings.Join(lines, "\n"))
	if text == "" {
		return "", fmt.Errorf("no text content found in DOCX")
	}
	return text, nil
}
