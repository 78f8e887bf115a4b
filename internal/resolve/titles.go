// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// ReadTitles reads one title per line from path, skipping blank lines.
// encodingName is an IANA charset name; empty or "utf-8" reads the file
// as-is.
func ReadTitles(path, encodingName string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening title file: %w", err)
	}
	defer f.Close()

	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(enc.NewDecoder().Reader(bufio.NewReader(f)))
	var titles []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			titles = append(titles, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading title file: %w", err)
	}
	return titles, nil
}

// lookupEncoding resolves an IANA charset name. Empty and "utf-8" map to
// the identity encoding.
func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" || strings.EqualFold(name, "utf-8") {
		return encoding.Nop, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
	return enc, nil
}
