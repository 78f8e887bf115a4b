// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ris

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsbywhc/title2ris/pkg/types"
)

func TestRender_MinimalFields(t *testing.T) {
	c := types.Candidate{
		Title:   "The structure of scientific revolutions",
		Authors: []types.Author{{Family: "Kuhn", Given: "T."}},
		Journal: "University of Chicago Press",
		Year:    1962,
		DOI:     "10.1234/ssr",
	}

	want := strings.Join([]string{
		"TY  - JOUR",
		"TI  - The structure of scientific revolutions",
		"AU  - Kuhn, T.",
		"JF  - University of Chicago Press",
		"PY  - 1962",
		"DO  - 10.1234/ssr",
		"ER  - ",
	}, "\n")

	assert.Equal(t, want, Render(c))
}

func TestRender_AllFields(t *testing.T) {
	c := types.Candidate{
		Title: "Ultrafast demagnetization dynamics",
		Authors: []types.Author{
			{Family: "Beaurepaire", Given: "E."},
			{Family: "Merle", Given: "J.-C."},
			{Family: "Daunois"},
		},
		Journal:       "Physical Review Letters",
		JournalAbbrev: "Phys. Rev. Lett.",
		Abstract:      "We report the first measurement.",
		Year:          1996,
		Volume:        "76",
		Issue:         "22",
		Pages:         "4250-4253",
		DOI:           "10.1103/PhysRevLett.76.4250",
		ISSN:          "0031-9007",
		Publisher:     "American Physical Society",
	}

	got := Render(c)
	lines := strings.Split(got, "\n")
	assert.Equal(t, []string{
		"TY  - JOUR",
		"TI  - Ultrafast demagnetization dynamics",
		"AU  - Beaurepaire, E.",
		"AU  - Merle, J.-C.",
		"AU  - Daunois",
		"JF  - Physical Review Letters",
		"JN  - Phys. Rev. Lett.",
		"AB  - We report the first measurement.",
		"PY  - 1996",
		"VL  - 76",
		"IS  - 22",
		"SP  - 4250-4253",
		"DO  - 10.1103/PhysRevLett.76.4250",
		"SN  - 0031-9007",
		"PB  - American Physical Society",
		"ER  - ",
	}, lines)
}

func TestWrite_BlankLineBetweenBlocks(t *testing.T) {
	records := []types.Candidate{
		{Title: "First", Year: 2001},
		{Title: "Second", Year: 2002},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, records))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "ER  - \n"))
	assert.Contains(t, out, "ER  - \n\nTY  - JOUR")
	assert.Equal(t, 2, strings.Count(out, "TY  - JOUR"))
}

func TestWrite_NoRecordsWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.Zero(t, buf.Len())
}

func TestWriteFile_UTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ris")
	records := []types.Candidate{{Title: "Résonance magnétique", Year: 1999}}

	require.NoError(t, WriteFile(path, records, "utf-8"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "TI  - Résonance magnétique")
}

func TestWriteFile_Latin1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ris")
	records := []types.Candidate{{Title: "Résonance", Year: 1999}}

	require.NoError(t, WriteFile(path, records, "ISO-8859-1"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// é encoded as the single Latin-1 byte.
	assert.Contains(t, string(data), "TI  - R\xe9sonance")
}

func TestWriteFile_UnknownEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ris")
	err := WriteFile(path, nil, "klingon")
	assert.Error(t, err)
}
