package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	// ErrDevBuild is returned when the running binary was not built from
	// a tagged release and has no version to upgrade from.
	ErrDevBuild = errors.New("cannot update a development build")

	// ErrAlreadyLatest is returned when no newer release exists.
	ErrAlreadyLatest = errors.New("already running the latest version")
)

const binaryName = "opsdojo"

// UpdateInput is the input for Update.
type UpdateInput struct {
	// CurrentVersion is the running version, e.g. "v1.2.0".
	CurrentVersion string
	// TargetVersion pins the release tag to install. Empty means latest.
	TargetVersion string
}

// ProgressFunc receives a human-readable line per update stage.
type ProgressFunc func(msg string)

// Update downloads the release archive for this platform, verifies it
// against the release checksum manifest, and swaps the running binary
// in place.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress ProgressFunc) error {
	if progress == nil {
		progress = func(string) {}
	}
	if input.CurrentVersion == "" || input.CurrentVersion == "(devel)" {
		return ErrDevBuild
	}

	target := input.TargetVersion
	if target == "" {
		progress("Checking for updates...")
		result, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
		if err != nil {
			return fmt.Errorf("check latest release: %w", err)
		}
		if !result.UpdateAvailable {
			return ErrAlreadyLatest
		}
		target = result.LatestVersion
	}

	asset, err := releaseAsset(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}

	progress(fmt.Sprintf("Downloading %s %s...", binaryName, target))
	base := fmt.Sprintf("%s/%s/%s/releases/download/%s",
		strings.TrimRight(c.downloadBaseURL, "/"), c.owner, c.repo, target)
	archive, err := c.fetch(ctx, base+"/"+asset)
	if err != nil {
		return fmt.Errorf("download %s: %w", asset, err)
	}
	manifest, err := c.fetch(ctx, base+"/checksums.txt")
	if err != nil {
		return fmt.Errorf("download checksums.txt: %w", err)
	}

	progress("Verifying checksum...")
	want, err := checksumFor(manifest, asset)
	if err != nil {
		return err
	}
	got := sha256.Sum256(archive)
	if hex.EncodeToString(got[:]) != want {
		return fmt.Errorf("checksum mismatch for %s", asset)
	}

	progress("Extracting...")
	binary, err := unpackBinary(archive)
	if err != nil {
		return fmt.Errorf("extract %s: %w", asset, err)
	}

	dest, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	progress(fmt.Sprintf("Installing to %s...", dest))
	if err := replaceExecutable(dest, binary); err != nil {
		return err
	}

	progress(fmt.Sprintf("Updated to %s.", target))
	return nil
}

// releaseAsset maps the build platform to a release archive name. The
// release matrix ships a universal macOS binary and per-arch Linux
// builds.
func releaseAsset(goos, goarch string) (string, error) {
	switch goos {
	case "darwin":
		return binaryName + "_Darwin_all.tar.gz", nil
	case "linux":
		switch goarch {
		case "amd64":
			return binaryName + "_Linux_x86_64.tar.gz", nil
		case "arm64":
			return binaryName + "_Linux_arm64.tar.gz", nil
		}
	}
	return "", fmt.Errorf("no release build for %s/%s", goos, goarch)
}

func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// checksumFor finds the sha256 for asset in a goreleaser-style
// checksums.txt manifest ("<hex>  <filename>" per line).
func checksumFor(manifest []byte, asset string) (string, error) {
	for _, line := range strings.Split(string(manifest), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 && fields[1] == asset {
			return fields[0], nil
		}
	}
	return "", fmt.Errorf("no checksum entry for %s", asset)
}

// unpackBinary pulls the opsdojo binary out of a gzipped tarball.
func unpackBinary(archive []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, err
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == binaryName {
			return io.ReadAll(tr)
		}
	}
	return nil, fmt.Errorf("archive does not contain %s", binaryName)
}

// replaceExecutable writes the new binary next to dest and renames it
// over the old one. Rename within the same directory keeps the swap
// atomic on the filesystems we care about.
func replaceExecutable(dest string, binary []byte) error {
	dir := filepath.Dir(dest)
	tmp, err := os.CreateTemp(dir, "."+binaryName+"-update-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(binary); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, 0o755); err != nil {
		return err
	}
	return os.Rename(tmpPath, dest)
}
