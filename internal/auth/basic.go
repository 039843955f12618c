package auth

import (
	"encoding/base64"
	"strings"
)

// DecodePadded decodes standard base64, restoring '=' padding the client dropped.
func DecodePadded(b64 string) ([]byte, error) {
	if rem := len(b64) % 4; rem != 0 {
		b64 += strings.Repeat("=", 4-rem)
	}
	return base64.StdEncoding.DecodeString(b64)
}

// parseBasicCredentials reads "Bearer <base64(user:pass)>".
func parseBasicCredentials(header string) (user, pass string, ok bool) {
	b64, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return "", "", false
	}
	decoded, err := DecodePadded(b64)
	if err != nil {
		return "", "", false
	}
	return strings.Cut(string(decoded), ":")
}
