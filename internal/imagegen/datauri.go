package imagegen

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeDataURI converts a data:<mime>;base64,<payload> string into the raw
// image bytes and their MIME type. Uploads arrive from the browser in this
// form and must be turned back into a file before the upstream call.
func DecodeDataURI(s string) ([]byte, string, error) {
	head, payload, ok := strings.Cut(s, ";base64,")
	if !ok {
		return nil, "", fmt.Errorf("data uri missing base64 separator")
	}
	mime, ok := strings.CutPrefix(head, "data:")
	if !ok || mime == "" {
		return nil, "", fmt.Errorf("data uri missing mime type")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("decode data uri payload: %w", err)
	}
	return data, mime, nil
}
