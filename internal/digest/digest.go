// Package digest computes and parses the MD5 digests fliphash works with.
package digest

import (
	"bufio"
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Size is the length of a hex encoded MD5 digest.
const Size = md5.Size * 2

// ErrInvalidDigest is returned for strings that are not 32 hex characters.
var ErrInvalidDigest = errors.New("invalid md5 digest")

// MD5Hex returns the lowercase hex MD5 of the UTF-8 bytes of s.
func MD5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// Parse validates a hex digest and normalises it to lowercase.
func Parse(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != Size {
		return "", errors.Wrapf(ErrInvalidDigest, "%q has %d characters, want %d", s, len(s), Size)
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", errors.Wrapf(ErrInvalidDigest, "%q is not hex", s)
	}
	return s, nil
}

// ParseList reads one digest per line. Blank lines and lines starting
// with '#' are skipped.
func ParseList(r io.Reader) ([]string, error) {
	var digests []string
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		d, err := Parse(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		digests = append(digests, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read digest list")
	}
	return digests, nil
}

// LoadFile reads a digest list from path.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open digest file")
	}
	defer func() { _ = f.Close() }()

	digests, err := ParseList(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	if len(digests) == 0 {
		return nil, errors.Errorf("no digests found in %s", path)
	}
	return digests, nil
}
