package core

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
)

// ToZipBytes exports the whole tree as a zip archive. File entries carry
// their virtual content; empty directories get an explicit "name/" entry
// so they survive extraction.
func (t *Tree) ToZipBytes() ([]byte, error) {
	var buf bytes.Buffer
	zipWriter := zip.NewWriter(&buf)

	if err := archiveDir(zipWriter, t.root, ""); err != nil {
		zipWriter.Close()
		return nil, err
	}

	if err := zipWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zip writer: %w", err)
	}

	return buf.Bytes(), nil
}

func archiveDir(zw *zip.Writer, d *Dir, basePath string) error {
	for _, child := range d.children {
		archivePath := path.Join(basePath, child.Name())

		switch n := child.(type) {
		case *File:
			w, err := zw.Create(archivePath)
			if err != nil {
				return fmt.Errorf("failed to create zip entry %s: %w", archivePath, err)
			}
			if _, err := io.WriteString(w, n.Content()); err != nil {
				return fmt.Errorf("failed to write zip entry %s: %w", archivePath, err)
			}
		case *Dir:
			if len(n.children) == 0 {
				if _, err := zw.Create(archivePath + "/"); err != nil {
					return fmt.Errorf("failed to create zip entry %s: %w", archivePath, err)
				}
				continue
			}
			if err := archiveDir(zw, n, archivePath); err != nil {
				return err
			}
		}
	}
	return nil
}
