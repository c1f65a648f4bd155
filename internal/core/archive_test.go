package core

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
)

// Helpers

func readZipEntries(t *testing.T, data []byte) map[string]string {
	t.Helper()
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("failed to open zip: %v", err)
	}

	entries := make(map[string]string)
	for _, f := range reader.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open zip entry %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read zip entry %s: %v", f.Name, err)
		}
		entries[f.Name] = string(content)
	}
	return entries
}

// Tests

func TestToZipBytes(t *testing.T) {
	t.Run("exports files with their content", func(t *testing.T) {
		tree := seedTestTree(t, Seed{
			SeedDir("docs",
				SeedFile("readme.md", "# hello"),
			),
			SeedFile("root.txt", "top"),
		})

		data, err := tree.ToZipBytes()
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}

		entries := readZipEntries(t, data)
		if got := entries["docs/readme.md"]; got != "# hello" {
			t.Errorf("expected readme content, got %q", got)
		}
		if got := entries["root.txt"]; got != "top" {
			t.Errorf("expected root.txt content, got %q", got)
		}
	})

	t.Run("empty directories get explicit entries", func(t *testing.T) {
		tree := seedTestTree(t, Seed{SeedDir("hollow")})

		data, err := tree.ToZipBytes()
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}

		entries := readZipEntries(t, data)
		if _, ok := entries["hollow/"]; !ok {
			t.Errorf("expected hollow/ entry, got %v", entries)
		}
	})

	t.Run("empty tree exports an empty archive", func(t *testing.T) {
		tree := seedTestTree(t, nil)

		data, err := tree.ToZipBytes()
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		if entries := readZipEntries(t, data); len(entries) != 0 {
			t.Errorf("expected no entries, got %v", entries)
		}
	})
}
