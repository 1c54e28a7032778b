// Package selfupdate replaces the running binary with the latest GitHub
// release. Releases ship as tar.gz archives with a checksums.txt, one
// asset per platform; windows is not a release target.
package selfupdate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"
)

const (
	devVersion   = "(devel)"
	repoSlug     = "lucidbard/codequest"
	githubAPI    = "https://api.github.com"
	githubAssets = "https://github.com"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// Updater checks GitHub releases and swaps the running binary in place.
type Updater struct {
	apiBase   string
	assetBase string
	http      *http.Client
	execPath  func() (string, error)
	platform  func() (goos, goarch string)
}

// Option configures an Updater.
type Option func(*Updater)

// WithEndpoints points the release API and asset downloads at a
// different host. Used in tests.
func WithEndpoints(api, assets string) Option {
	return func(u *Updater) {
		u.apiBase = api
		u.assetBase = assets
	}
}

// WithTimeout bounds each HTTP request the updater makes.
func WithTimeout(d time.Duration) Option {
	return func(u *Updater) { u.http.Timeout = d }
}

func withExecPath(fn func() (string, error)) Option {
	return func(u *Updater) { u.execPath = fn }
}

func withPlatform(goos, goarch string) Option {
	return func(u *Updater) {
		u.platform = func() (string, string) { return goos, goarch }
	}
}

// New creates an Updater for the project's release repository.
func New(opts ...Option) *Updater {
	u := &Updater{
		apiBase:   githubAPI,
		assetBase: githubAssets,
		http:      &http.Client{Timeout: 30 * time.Second},
		execPath:  os.Executable,
		platform:  func() (string, string) { return runtime.GOOS, runtime.GOARCH },
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Run updates the running binary to the latest release: check, download,
// verify, extract, install. Each step is announced through report.
// Development builds refuse to update and an up-to-date binary returns
// ErrAlreadyLatest.
func (u *Updater) Run(ctx context.Context, currentVersion string, report func(string)) error {
	if currentVersion == devVersion {
		return ErrDevBuild
	}

	report("Checking for the latest release...")
	rel, err := u.latest(ctx)
	if err != nil {
		return fmt.Errorf("check latest release: %w", err)
	}
	if !newerThan(rel.Tag, currentVersion) {
		return ErrAlreadyLatest
	}

	asset, err := u.assetName()
	if err != nil {
		return err
	}

	report(fmt.Sprintf("Downloading %s...", rel.Tag))
	archive, err := u.fetch(ctx, u.assetURL(rel.Tag, asset))
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	report("Verifying checksum...")
	sums, err := u.fetch(ctx, u.assetURL(rel.Tag, "checksums.txt"))
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	if err := verifyArchive(archive, asset, sums); err != nil {
		return err
	}

	report("Installing...")
	binary, err := extractBinary(archive)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}
	target, err := u.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if err := install(binary, target); err != nil {
		return fmt.Errorf("install binary: %w", err)
	}

	report(fmt.Sprintf("Updated to %s", rel.Tag))
	return nil
}

// assetName maps the running platform to its release asset. The darwin
// release is a universal binary, so one asset covers both arches.
func (u *Updater) assetName() (string, error) {
	goos, goarch := u.platform()
	switch goos {
	case "darwin":
		return "codequest_Darwin_all.tar.gz", nil
	case "linux":
		arch, ok := map[string]string{"amd64": "x86_64", "arm64": "arm64", "386": "i386"}[goarch]
		if !ok {
			return "", fmt.Errorf("no release asset for linux/%s", goarch)
		}
		return fmt.Sprintf("codequest_Linux_%s.tar.gz", arch), nil
	default:
		return "", fmt.Errorf("no release asset for %s", goos)
	}
}

func (u *Updater) assetURL(tag, name string) string {
	return fmt.Sprintf("%s/%s/releases/download/%s/%s", u.assetBase, repoSlug, tag, name)
}
