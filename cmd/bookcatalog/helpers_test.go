package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func executeCommand(args ...string) (stdout, stderr string, err error) {
	root := newRootCmd()
	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	root.SetOut(outBuf)
	root.SetErr(errBuf)
	root.SetArgs(args)

	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

const smallDataset = `page_size: 2
authors:
  a1: Isaac Asimov
  a2: Frank Herbert
genres:
  g1: Science Fiction
  g2: Drama
books:
  - id: x1
    title: Foundation
    author: a1
    genres: [g1]
    published: "1951-05-01"
    description: Psychohistory and the fall of an empire.
  - id: x2
    title: Dune Messiah
    author: a2
    genres: [g1, g2]
    published: "1969-10-15"
  - id: x3
    title: Second Foundation
    author: a1
    genres: [g1]
    published: "1953-01-01"
  - id: x4
    title: Orphaned
    author: ghost
    genres: [g2]
    published: "2000-01-01"
`
