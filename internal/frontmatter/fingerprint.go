package frontmatter

import (
	"errors"
	"strings"

	"github.com/inful/mdfp"
)

// FingerprintField is the header key that carries the content fingerprint.
const FingerprintField = mdfp.FingerprintField

// Fingerprint hashes the header fields (minus the fingerprint itself) and the
// body. The serialized header loses its final newline before hashing.
func Fingerprint(fields map[string]any, body []byte) (string, error) {
	if fields == nil {
		return "", errors.New("fields map is nil")
	}
	hashed := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == FingerprintField {
			continue
		}
		hashed[k] = v
	}

	header := ""
	if len(hashed) > 0 {
		serialized, err := SerializeYAML(hashed)
		if err != nil {
			return "", err
		}
		header = strings.TrimSuffix(string(serialized), "\n")
	}
	return mdfp.CalculateFingerprintFromParts(header, string(body)), nil
}

// Stamp sets the fingerprint field of fields for body.
func Stamp(fields map[string]any, body []byte) error {
	fp, err := Fingerprint(fields, body)
	if err != nil {
		return err
	}
	fields[FingerprintField] = fp
	return nil
}

// Verify reports whether a complete document carries a fingerprint matching
// its content.
func Verify(doc []byte) (bool, error) {
	header, body, had, err := Split(doc)
	if err != nil || !had {
		return false, err
	}
	fields, err := ParseYAML(header)
	if err != nil {
		return false, err
	}
	stored, _ := fields[FingerprintField].(string)
	if stored == "" {
		return false, nil
	}
	want, err := Fingerprint(fields, body)
	if err != nil {
		return false, err
	}
	return stored == want, nil
}
