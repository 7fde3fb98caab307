// Package jsonc decodes the project's JSON-with-comments metadata files.
// Only //-prefixed line comments are supported; block comments and trailing
// commas are not.
package jsonc

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
)

// Strip removes everything from the first "//" to the end of each line.
// The scan is line-based and does not track string literals, matching the
// format the metadata files are written in (no "//" inside values).
func Strip(content []byte) []byte {
	lines := bytes.Split(content, []byte("\n"))
	cleaned := make([][]byte, 0, len(lines))
	for _, line := range lines {
		if idx := bytes.Index(line, []byte("//")); idx >= 0 {
			line = line[:idx]
		}
		cleaned = append(cleaned, line)
	}
	return bytes.Join(cleaned, []byte("\n"))
}

// Unmarshal strips comments and decodes the remaining JSON into v.
func Unmarshal(content []byte, v interface{}) error {
	if err := sonic.Unmarshal(Strip(content), v); err != nil {
		return fmt.Errorf("sonic.Unmarshal: %w", err)
	}
	return nil
}

// DecodeFile reads and decodes a JSONC file.
func DecodeFile(path string, v interface{}) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("os.ReadFile: %w", err)
	}
	if err := Unmarshal(content, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
