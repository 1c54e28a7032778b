package selfupdate

import (
	"archive/tar"
	"bufio"
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const binaryName = "codequest"

// verifyArchive checks the downloaded archive against its entry in
// checksums.txt (the "sha256  filename" format goreleaser emits).
func verifyArchive(archive []byte, asset string, checksums []byte) error {
	want := ""
	sc := bufio.NewScanner(bytes.NewReader(checksums))
	for sc.Scan() {
		fields := bytes.Fields(sc.Bytes())
		if len(fields) == 2 && string(fields[1]) == asset {
			want = string(fields[0])
			break
		}
	}
	if want == "" {
		return fmt.Errorf("checksums.txt has no entry for %s", asset)
	}

	sum := sha256.Sum256(archive)
	if got := hex.EncodeToString(sum[:]); got != want {
		return fmt.Errorf("%w: want %s, got %s", ErrChecksum, want, got)
	}
	return nil
}

// extractBinary pulls the codequest executable out of a tar.gz archive.
func extractBinary(archive []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil, fmt.Errorf("archive has no %q entry", binaryName)
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == binaryName {
			return io.ReadAll(tr)
		}
	}
}

// install writes the new binary next to the target and renames it into
// place, preserving the target's mode. The rename keeps the swap atomic
// on the same filesystem.
func install(binary []byte, target string) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	staging := filepath.Join(filepath.Dir(target), "."+binaryName+".next")
	if err := os.WriteFile(staging, binary, 0o600); err != nil {
		return fmt.Errorf("stage binary: %w", err)
	}
	if err := os.Chmod(staging, info.Mode()); err != nil {
		_ = os.Remove(staging)
		return fmt.Errorf("chmod staged binary: %w", err)
	}
	if err := os.Rename(staging, target); err != nil {
		_ = os.Remove(staging)
		return fmt.Errorf("replace binary: %w", err)
	}
	return nil
}
