// SPDX-License-Identifier: BSD-2-Clause

package isa

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// SourceUnavailableError reports that a processor information source could
// not be accessed. For the attribute stream this is fatal; for the
// device-tree stream callers treat it as zero results.
type SourceUnavailableError struct {
	Path string
	Err  error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("processor information unavailable: %s: %v", e.Path, e.Err)
}

// Unwrap enables errors.Is/As to traverse the underlying cause.
func (e *SourceUnavailableError) Unwrap() error { return e.Err }

// Attribute keys whose values carry ISA tokens. Everything else in the
// attribute stream is ignored.
func significantKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "isa", "hart isa", "mmu":
		return true
	}
	return false
}

// ParseCPUInfo reads a /proc/cpuinfo style attribute stream: "key : value"
// lines, with the values of significant keys split on '_' into tokens.
func ParseCPUInfo(r io.Reader, b *Builder) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok || !significantKey(key) {
			continue
		}
		for _, tok := range strings.Split(strings.TrimSpace(value), "_") {
			b.ObserveToken(tok)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading attribute stream: %w", err)
	}
	return nil
}

// LoadCPUInfo feeds the attribute file at path into the builder. A missing or
// unreadable file is a SourceUnavailableError; there is no fallback path
// search here, that is the caller's concern.
func LoadCPUInfo(path string, b *Builder) error {
	f, err := os.Open(path)
	if err != nil {
		return &SourceUnavailableError{Path: path, Err: err}
	}
	defer f.Close()

	if err := ParseCPUInfo(f, b); err != nil {
		return &SourceUnavailableError{Path: path, Err: err}
	}
	return nil
}

// LoadDeviceTree feeds every file matching the glob pattern into the builder.
// Each file is a NUL-separated token list: single characters are bare flags,
// longer tokens are extension names. Zero matches contribute nothing and are
// not an error.
func LoadDeviceTree(pattern string, b *Builder) error {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return &SourceUnavailableError{Path: pattern, Err: err}
	}
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return &SourceUnavailableError{Path: path, Err: err}
		}
		for _, tok := range bytes.Split(data, []byte{0}) {
			b.ObserveRawToken(string(bytes.TrimSpace(tok)))
		}
	}
	return nil
}
