package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetName(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         string
		wantErr      bool
	}{
		{"darwin", "amd64", "codequest_Darwin_all.tar.gz", false},
		{"darwin", "arm64", "codequest_Darwin_all.tar.gz", false},
		{"linux", "amd64", "codequest_Linux_x86_64.tar.gz", false},
		{"linux", "arm64", "codequest_Linux_arm64.tar.gz", false},
		{"linux", "386", "codequest_Linux_i386.tar.gz", false},
		{"linux", "mips", "", true},
		{"windows", "amd64", "", true},
		{"freebsd", "amd64", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := New(withPlatform(tt.goos, tt.goarch)).assetName()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewerThan(t *testing.T) {
	assert.True(t, newerThan("v1.2.0", "v1.1.9"))
	assert.True(t, newerThan("1.2.0", "v1.1.9"), "bare tags still compare")
	assert.False(t, newerThan("v1.2.0", "v1.2.0"))
	assert.False(t, newerThan("v1.2.0", "v1.3.0"))
}

func TestVerifyArchive(t *testing.T) {
	archive := []byte("archive-bytes")
	sum := sha256.Sum256(archive)
	good := hex.EncodeToString(sum[:])

	t.Run("match", func(t *testing.T) {
		sums := fmt.Sprintf("%s  app_Linux_x86_64.tar.gz\n", good)
		assert.NoError(t, verifyArchive(archive, "app_Linux_x86_64.tar.gz", []byte(sums)))
	})

	t.Run("mismatch", func(t *testing.T) {
		sums := fmt.Sprintf("%064d  app_Linux_x86_64.tar.gz\n", 0)
		err := verifyArchive(archive, "app_Linux_x86_64.tar.gz", []byte(sums))
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("asset missing from checksums", func(t *testing.T) {
		err := verifyArchive(archive, "app_Linux_x86_64.tar.gz", []byte("junk\nnot  matching\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no entry")
	})
}

func TestExtractBinary(t *testing.T) {
	content := []byte("#!/bin/sh\necho ok")

	t.Run("found", func(t *testing.T) {
		got, err := extractBinary(packTarGz(t, binaryName, content))
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("nested path matches on base name", func(t *testing.T) {
		got, err := extractBinary(packTarGz(t, "dist/"+binaryName, content))
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("absent", func(t *testing.T) {
		_, err := extractBinary(packTarGz(t, "README.md", content))
		require.Error(t, err)
	})
}

func TestInstall(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, binaryName)
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o755))

	require.NoError(t, install([]byte("new"), target))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm(), "target mode survives the swap")
}

func TestRun(t *testing.T) {
	content := []byte("new-binary")
	// Serve the asset for the platform the updater actually runs on, so
	// the suite passes everywhere releases exist; platforms without a
	// release asset pin a linux one instead.
	platformOpt := withPlatform(runtime.GOOS, runtime.GOARCH)
	asset, err := New(platformOpt).assetName()
	if err != nil {
		platformOpt = withPlatform("linux", "amd64")
		asset, err = New(platformOpt).assetName()
		require.NoError(t, err)
	}
	archive := packTarGz(t, binaryName, content)
	sum := sha256.Sum256(archive)
	sums := fmt.Sprintf("%s  %s\n", hex.EncodeToString(sum[:]), asset)

	newServer := func(t *testing.T, checksums string) *httptest.Server {
		t.Helper()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/repos/" + repoSlug + "/releases/latest":
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
			case "/" + repoSlug + "/releases/download/v2.0.0/" + asset:
				_, _ = w.Write(archive)
			case "/" + repoSlug + "/releases/download/v2.0.0/checksums.txt":
				_, _ = w.Write([]byte(checksums))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		t.Cleanup(srv.Close)
		return srv
	}

	t.Run("full update", func(t *testing.T) {
		srv := newServer(t, sums)
		target := filepath.Join(t.TempDir(), binaryName)
		require.NoError(t, os.WriteFile(target, []byte("old"), 0o755))

		u := New(
			WithEndpoints(srv.URL, srv.URL),
			withExecPath(func() (string, error) { return target, nil }),
			platformOpt,
		)

		var steps []string
		require.NoError(t, u.Run(t.Context(), "v1.0.0", func(s string) { steps = append(steps, s) }))

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, content, got)
		assert.Len(t, steps, 5)
		assert.Contains(t, steps[len(steps)-1], "v2.0.0")
	})

	t.Run("dev build refuses", func(t *testing.T) {
		err := New().Run(t.Context(), devVersion, func(string) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		srv := newServer(t, sums)
		u := New(WithEndpoints(srv.URL, srv.URL), platformOpt)
		err := u.Run(t.Context(), "v2.0.0", func(string) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch aborts", func(t *testing.T) {
		srv := newServer(t, fmt.Sprintf("%064d  %s\n", 0, asset))
		target := filepath.Join(t.TempDir(), binaryName)
		require.NoError(t, os.WriteFile(target, []byte("old"), 0o755))

		u := New(
			WithEndpoints(srv.URL, srv.URL),
			withExecPath(func() (string, error) { return target, nil }),
			platformOpt,
		)
		err := u.Run(t.Context(), "v1.0.0", func(string) {})
		assert.ErrorIs(t, err, ErrChecksum)

		got, readErr := os.ReadFile(target)
		require.NoError(t, readErr)
		assert.Equal(t, []byte("old"), got, "failed update must not touch the binary")
	})

	t.Run("missing asset surfaces the download error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/repos/"+repoSlug+"/releases/latest" {
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		t.Cleanup(srv.Close)

		u := New(WithEndpoints(srv.URL, srv.URL), platformOpt)
		err := u.Run(t.Context(), "v1.0.0", func(string) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

func packTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: name, Size: int64(len(content)), Mode: 0o755}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
