package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"

	"resumelens/internal/errors"
	"resumelens/internal/utils"
)

// FromFile extracts plain resume text from a file. Text formats pass
// through unchanged; .pdf and .docx are unpacked to their text content.
func FromFile(path string) (string, error) {
	switch utils.GetFileExtension(path) {
	case ".pdf":
		text, err := fromPDF(path)
		if err != nil {
			return "", errors.NewIOError(errors.ErrCodeExtractionFailed,
				fmt.Sprintf("Failed to extract text from PDF: %s", path), err)
		}
		return text, nil
	case ".docx":
		text, err := fromDocx(path)
		if err != nil {
			return "", errors.NewIOError(errors.ErrCodeExtractionFailed,
				fmt.Sprintf("Failed to extract text from DOCX: %s", path), err)
		}
		return text, nil
	case ".txt", ".md", ".markdown", ".text":
		return fromPlainText(path)
	default:
		return "", errors.NewValidationError(errors.ErrCodeUnsupportedFormat,
			fmt.Sprintf("Unsupported resume file format: %s", path), nil)
	}
}

// FromBytes extracts resume text from in-memory file content, using
// the original filename only to pick the decoder. Uploaded files never
// touch the filesystem.
func FromBytes(name string, data []byte) (string, error) {
	switch utils.GetFileExtension(name) {
	case ".pdf":
		text, err := pdfText(bytes.NewReader(data))
		if err != nil {
			return "", errors.NewIOError(errors.ErrCodeExtractionFailed,
				fmt.Sprintf("Failed to extract text from PDF: %s", name), err)
		}
		return text, nil
	case ".docx":
		zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return "", errors.NewIOError(errors.ErrCodeExtractionFailed,
				fmt.Sprintf("Failed to extract text from DOCX: %s", name), err)
		}
		text, err := docxText(zr)
		if err != nil {
			return "", errors.NewIOError(errors.ErrCodeExtractionFailed,
				fmt.Sprintf("Failed to extract text from DOCX: %s", name), err)
		}
		return text, nil
	case ".txt", ".md", ".markdown", ".text":
		return string(data), nil
	default:
		return "", errors.NewValidationError(errors.ErrCodeUnsupportedFormat,
			fmt.Sprintf("Unsupported resume file format: %s", name), nil)
	}
}

func fromPlainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("Cannot read file: %s", path), err)
	}
	return string(data), nil
}
