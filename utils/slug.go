// File: utils/slug.go
package utils

import (
	"crypto/rand"
	"fmt"
	"strings"
	"unicode"
)

const shortCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CreateSlug converts a display name into a URL-friendly identifier:
// lowercase, spaces to hyphens, non-alphanumerics stripped, runs of hyphens
// collapsed, no leading/trailing hyphen.
func CreateSlug(name string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.TrimSpace(strings.ToLower(name)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-':
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Unslug reverses a slug into a display string, capitalizing each word when
// capitalize is set.
func Unslug(slug string, capitalize bool) string {
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || unicode.IsSpace(r) })
	if capitalize {
		for i, w := range words {
			r := []rune(w)
			r[0] = unicode.ToUpper(r[0])
			words[i] = string(r)
		}
	}
	return strings.Join(words, " ")
}

// GenerateShortCode derives a short human-readable code from a business name,
// e.g. "Akub Ventures" -> "AKU-9X2Q". The prefix is the first three
// alphanumeric characters of the name; the suffix is 4 random characters.
func GenerateShortCode(name string) (string, error) {
	var prefix strings.Builder
	for _, r := range strings.ToUpper(name) {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			prefix.WriteRune(r)
			if prefix.Len() == 3 {
				break
			}
		}
	}

	suffix, err := randomString(shortCodeAlphabet, 4)
	if err != nil {
		return "", fmt.Errorf("failed to generate short code suffix: %w", err)
	}
	return prefix.String() + "-" + suffix, nil
}

// randomString draws length characters uniformly from alphabet using
// crypto/rand, rejecting bytes outside the unbiased range.
func randomString(alphabet string, length int) (string, error) {
	out := make([]byte, 0, length)
	max := 256 - (256 % len(alphabet))
	buf := make([]byte, length*2)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) < max {
				out = append(out, alphabet[int(b)%len(alphabet)])
				if len(out) == length {
					break
				}
			}
		}
	}
	return string(out), nil
}
