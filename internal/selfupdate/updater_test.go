package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	t.Run("newer release available", func(t *testing.T) {
		srv := releaseServer(t, "v1.3.0")
		defer srv.Close()

		c := NewChecker(WithBaseURL(srv.URL))
		result, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
		assert.Equal(t, "v1.3.0", result.LatestVersion)
	})

	t.Run("already latest", func(t *testing.T) {
		srv := releaseServer(t, "v1.2.0")
		defer srv.Close()

		c := NewChecker(WithBaseURL(srv.URL))
		result, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("dev build never updates", func(t *testing.T) {
		c := NewChecker(WithBaseURL("http://unreachable.invalid"))
		result, err := c.Check(context.Background(), &CheckInput{Version: "(devel)"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewChecker(WithBaseURL(srv.URL))
		_, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
		assert.Error(t, err)
	})
}

func TestReleaseAsset(t *testing.T) {
	tests := []struct {
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{goos: "darwin", goarch: "arm64", want: "opsdojo_Darwin_all.tar.gz"},
		{goos: "darwin", goarch: "amd64", want: "opsdojo_Darwin_all.tar.gz"},
		{goos: "linux", goarch: "amd64", want: "opsdojo_Linux_x86_64.tar.gz"},
		{goos: "linux", goarch: "arm64", want: "opsdojo_Linux_arm64.tar.gz"},
		{goos: "linux", goarch: "riscv64", wantErr: true},
		{goos: "freebsd", goarch: "amd64", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := releaseAsset(tt.goos, tt.goarch)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecksumFor(t *testing.T) {
	manifest := []byte("abc123  opsdojo_Linux_x86_64.tar.gz\ndef456  opsdojo_Darwin_all.tar.gz\n")

	sum, err := checksumFor(manifest, "opsdojo_Darwin_all.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, "def456", sum)

	_, err = checksumFor(manifest, "opsdojo_Windows_x86_64.zip")
	assert.Error(t, err)
}

func TestUnpackBinary(t *testing.T) {
	archive := buildTarGz(t, map[string][]byte{
		"README.md": []byte("docs"),
		"opsdojo":   []byte("binary-bytes"),
	})

	binary, err := unpackBinary(archive)
	require.NoError(t, err)
	assert.Equal(t, []byte("binary-bytes"), binary)

	_, err = unpackBinary(buildTarGz(t, map[string][]byte{"other": []byte("x")}))
	assert.Error(t, err)

	_, err = unpackBinary([]byte("not a gzip stream"))
	assert.Error(t, err)
}

func TestReplaceExecutable(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "opsdojo")
	require.NoError(t, os.WriteFile(dest, []byte("old"), 0o755))

	require.NoError(t, replaceExecutable(dest, []byte("new")))

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestUpdate(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		asset, err := releaseAsset(runtime.GOOS, runtime.GOARCH)
		require.NoError(t, err)

		archive := buildTarGz(t, map[string][]byte{"opsdojo": []byte("v2-binary")})
		sum := sha256.Sum256(archive)
		manifest := fmt.Sprintf("%s  %s\n", hex.EncodeToString(sum[:]), asset)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case strings.HasSuffix(r.URL.Path, "/releases/latest"):
				fmt.Fprintf(w, `{"tag_name": "v2.0.0", "html_url": "https://example.com"}`)
			case strings.HasSuffix(r.URL.Path, "/"+asset):
				_, _ = w.Write(archive)
			case strings.HasSuffix(r.URL.Path, "/checksums.txt"):
				fmt.Fprint(w, manifest)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer srv.Close()

		dest := filepath.Join(t.TempDir(), "opsdojo")
		require.NoError(t, os.WriteFile(dest, []byte("v1-binary"), 0o755))

		c := NewChecker(
			WithBaseURL(srv.URL),
			WithDownloadBaseURL(srv.URL),
			withExecPath(func() (string, error) { return dest, nil }),
		)

		var messages []string
		err = c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(msg string) {
			messages = append(messages, msg)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, []byte("v2-binary"), got)

		require.Len(t, messages, 6)
		assert.Contains(t, messages[0], "Checking")
		assert.Contains(t, messages[5], "Updated to v2.0.0")
	})

	t.Run("dev build", func(t *testing.T) {
		c := NewChecker()
		err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, nil)
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		srv := releaseServer(t, "v1.0.0")
		defer srv.Close()

		c := NewChecker(WithBaseURL(srv.URL))
		err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, nil)
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		asset, err := releaseAsset(runtime.GOOS, runtime.GOARCH)
		require.NoError(t, err)

		archive := buildTarGz(t, map[string][]byte{"opsdojo": []byte("v2-binary")})

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case strings.HasSuffix(r.URL.Path, "/"+asset):
				_, _ = w.Write(archive)
			case strings.HasSuffix(r.URL.Path, "/checksums.txt"):
				fmt.Fprintf(w, "deadbeef  %s\n", asset)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer srv.Close()

		dest := filepath.Join(t.TempDir(), "opsdojo")
		require.NoError(t, os.WriteFile(dest, []byte("v1-binary"), 0o755))

		c := NewChecker(
			WithDownloadBaseURL(srv.URL),
			withExecPath(func() (string, error) { return dest, nil }),
		)
		err = c.Update(context.Background(), &UpdateInput{
			CurrentVersion: "v1.0.0",
			TargetVersion:  "v2.0.0",
		}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "checksum mismatch")

		// The old binary stays untouched after a failed update.
		got, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, []byte("v1-binary"), got)
	})

	t.Run("download failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		c := NewChecker(WithDownloadBaseURL(srv.URL))
		err := c.Update(context.Background(), &UpdateInput{
			CurrentVersion: "v1.0.0",
			TargetVersion:  "v2.0.0",
		}, nil)
		assert.Error(t, err)
	})
}

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"tag_name": %q, "html_url": "https://example.com"}`, tag)
	}))
}

func buildTarGz(t *testing.T, files map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for name, body := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Typeflag: tar.TypeReg,
			Mode:     0o755,
			Size:     int64(len(body)),
		}))
		_, err := tw.Write(body)
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return buf.Bytes()
}
