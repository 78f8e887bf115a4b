// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ris serializes bibliography records to the RIS exchange format,
// a line-oriented format with two-letter field tags consumed by reference
// managers.
package ris

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/jsbywhc/title2ris/pkg/types"
)

// Render returns the RIS block for one record: mandatory tags first
// (TY, TI, AU, JF, PY, DO), optional tags interleaved in conventional
// order, terminated by ER. Empty fields are omitted entirely rather than
// written as blank tags.
func Render(c types.Candidate) string {
	var lines []string
	add := func(tag, value string) {
		if value != "" {
			lines = append(lines, tag+"  - "+value)
		}
	}

	lines = append(lines, "TY  - JOUR")
	add("TI", c.Title)
	for _, a := range c.Authors {
		add("AU", a.String())
	}
	add("JF", c.Journal)
	add("JN", c.JournalAbbrev)
	add("AB", c.Abstract)
	if c.Year > 0 {
		add("PY", fmt.Sprintf("%d", c.Year))
	}
	add("VL", c.Volume)
	add("IS", c.Issue)
	add("SP", c.Pages)
	add("DO", c.DOI)
	add("SN", c.ISSN)
	add("PB", c.Publisher)
	lines = append(lines, "ER  - ")

	return strings.Join(lines, "\n")
}

// Write emits all records to w, one block per record separated by a blank
// line, with a trailing newline.
func Write(w io.Writer, records []types.Candidate) error {
	if len(records) == 0 {
		return nil
	}
	blocks := make([]string, len(records))
	for i, r := range records {
		blocks[i] = Render(r)
	}
	_, err := io.WriteString(w, strings.Join(blocks, "\n\n")+"\n")
	return err
}

// WriteFile writes all records to path in the given encoding (IANA name;
// empty or "utf-8" writes bytes as-is).
func WriteFile(path string, records []types.Candidate, encodingName string) error {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	ew := enc.NewEncoder().Writer(f)
	if err := Write(ew, records); err != nil {
		f.Close()
		return fmt.Errorf("writing output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
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
