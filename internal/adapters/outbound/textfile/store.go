// Package textfile reads text files of unknown encoding as UTF-8 and writes
// them back as UTF-8.
package textfile

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/openkraft/docguard/internal/adapters/outbound/atomicfile"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Store implements domain.TextStore.
type Store struct{}

func New() *Store { return &Store{} }

// Read returns the file as UTF-8. A UTF-8 byte order mark is dropped;
// anything that is not valid UTF-8 is decoded as Windows-1252.
func (s *Store) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Decode(data)
}

// Decode converts raw file bytes to a UTF-8 string.
func Decode(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, bom)
	if utf8.Valid(data) {
		return string(data), nil
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding windows-1252: %w", err)
	}
	return string(out), nil
}

// Write replaces the file atomically, keeping its permission bits.
func (s *Store) Write(path, content string) error {
	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	return atomicfile.Write(path, []byte(content), perm)
}
