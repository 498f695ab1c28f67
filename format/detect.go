// Package format provides file format detection for the minidocx library.
package format

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a recognized container format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// ZIP indicates a ZIP archive that is not a recognized document format.
	ZIP
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case DOCX:
		return "DOCX"
	case ZIP:
		return "ZIP"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case DOCX:
		return ".docx"
	case ZIP:
		return ".zip"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".docx":
		return DOCX
	case ".zip":
		return ZIP
	default:
		return Unknown
	}
}

// DetectFromMagic checks magic bytes to determine whether data is a ZIP
// container. ZIP-based document formats need content inspection to tell
// apart; use DetectFromReader for that.
func DetectFromMagic(data []byte) Format {
	if isZIPMagic(data) {
		return ZIP
	}
	return Unknown
}

// isZIPMagic reports whether data starts with the ZIP local-file signature
// PK\x03\x04.
func isZIPMagic(data []byte) bool {
	return len(data) >= 4 &&
		data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04
}

// DetectFromReader inspects the content to determine format. This is more
// reliable than extension-based detection and distinguishes DOCX from other
// ZIP-based containers by looking for WordprocessingML parts.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 4)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	if !isZIPMagic(magic[:n]) {
		return Unknown, nil
	}

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "word/") {
			return DOCX, nil
		}
	}

	return ZIP, nil
}
