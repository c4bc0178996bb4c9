package imagegen

import (
	"bytes"
	"encoding/base64"
	"testing"
)

func TestDecodeDataURI(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	data, mime, err := DecodeDataURI(uri)
	if err != nil {
		t.Fatalf("DecodeDataURI returned error: %v", err)
	}
	if mime != "image/png" {
		t.Fatalf("mime = %q, want image/png", mime)
	}
	if !bytes.Equal(data, raw) {
		t.Fatalf("data mismatch: %v vs %v", data, raw)
	}
}

func TestDecodeDataURIRejectsMalformed(t *testing.T) {
	testCases := []struct {
		name string
		uri  string
	}{
		{"missing separator", "data:image/png,abcd"},
		{"missing data prefix", "image/png;base64,aGVsbG8="},
		{"empty mime", "data:;base64,aGVsbG8="},
		{"bad base64", "data:image/png;base64,!!not-base64!!"},
		{"raw base64 without header", base64.StdEncoding.EncodeToString([]byte("hi"))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := DecodeDataURI(tc.uri); err == nil {
				t.Fatalf("expected error for %q", tc.uri)
			}
		})
	}
}
