package constants

import (
	"bytes"
	"strings"
)

// FileTypes holds the allowed document kinds for the format field in ExtractJob.
var FileTypes = []string{"PDF", "IMAGE"}

const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// AllowedExtensions holds the file extensions accepted for report uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"tif":  {},
	"tiff": {},
}

// pdfMagic is the signature at the start of every PDF file.
var pdfMagic = []byte("%PDF")

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt reports whether a (raw or normalized) extension is accepted.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}

// MapExtToFormat maps a file extension to a document kind, or "" if unknown.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg", "png", "tif", "tiff":
		return IMAGE
	default:
		return ""
	}
}

// SniffFormat classifies raw document bytes when the filename carries no
// usable extension. Anything that does not start with the PDF signature is
// treated as an image, matching the upload contract (PDF or image only).
func SniffFormat(content []byte) string {
	if len(content) >= len(pdfMagic) && bytes.Equal(content[:len(pdfMagic)], pdfMagic) {
		return PDF
	}
	return IMAGE
}
