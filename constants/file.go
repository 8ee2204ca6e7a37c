package constants

import "strings"

// Format values for the extraction dispatcher.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// Formats holds the allowed values for the format field on extraction results.
var Formats = []string{PDF, IMAGE}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a file extension to an extraction format.
// Anything that is not a PDF is treated as a single image.
func MapExtToFormat(ext string) string {
	if NormalizeExt(ext) == "pdf" {
		return PDF
	}
	return IMAGE
}
