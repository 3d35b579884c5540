package importer

import (
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// base64Marker separates the metadata prefix from the payload in data-URL
// style uploads, e.g. "data:text/csv;base64,Q29kZSxOYW1l".
const base64Marker = "base64,"

// Decode turns an uploaded payload into text ready for parsing.
//
// Content containing a "base64," marker is decoded from base64 first; invalid
// base64 fails the whole call. Some tools export UTF-16 with a byte-order
// marker, so the decoded bytes are run through a BOM-aware transformer that
// converts everything to UTF-8.
func Decode(content string) (string, error) {
	if i := strings.Index(content, base64Marker); i >= 0 {
		raw, err := base64.StdEncoding.DecodeString(content[i+len(base64Marker):])
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrInvalidEncoding, err)
		}
		content = string(raw)
	}

	decoder := unicode.UTF8.NewDecoder()
	decoded, _, err := transform.String(unicode.BOMOverride(decoder), content)
	if err != nil {
		// The transformer only fails on broken UTF-16 pairs. The tokenizer
		// is byte oriented, so the untransformed content is still usable.
		return content, nil
	}

	return decoded, nil
}
