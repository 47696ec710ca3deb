package base64

import "strings"

// GetContentType extracts the mime type from a data URI, empty when the
// value is not one.
func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, ";base64,")

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}
