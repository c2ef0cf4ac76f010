package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name          string
		current       string
		latestTag     string
		wantAvailable bool
	}{
		{"newer release", "v1.0.0", "v1.1.0", true},
		{"same version", "v1.1.0", "v1.1.0", false},
		{"older release", "v2.0.0", "v1.9.0", false},
		{"tag without v prefix", "v1.0.0", "1.2.0", true},
		{"current without v prefix", "1.0.0", "v1.1.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/repos/eduai/eduai/releases/latest", r.URL.Path)
				fmt.Fprintf(w, `{"tag_name": %q}`, tt.latestTag)
			}))
			defer srv.Close()

			c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
			res, err := c.Check(context.Background(), &CheckInput{Version: tt.current})
			require.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, res.UpdateAvailable)
			assert.Equal(t, tt.latestTag, res.LatestVersion)
		})
	}
}

func TestCheckServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}

func TestCheckMissingTag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}

func TestUpdateDevBuild(t *testing.T) {
	c := NewChecker()
	_, err := c.Update(context.Background(), &UpdateInput{Version: "devel"})
	assert.ErrorIs(t, err, ErrDevBuild)

	_, err = c.Update(context.Background(), &UpdateInput{Version: ""})
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestUpdateAlreadyLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name": "v1.0.0"}`))
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
	_, err := c.Update(context.Background(), &UpdateInput{Version: "v1.0.0"})
	assert.ErrorIs(t, err, ErrAlreadyLatest)
}

// makeTarGz builds a gzipped tarball containing a single file.
func makeTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Mode: 0o755,
		Size: int64(len(content)),
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestUpdateEndToEnd(t *testing.T) {
	binary := []byte("#!/bin/sh\necho new version\n")
	asset, err := releaseAsset()
	if err != nil {
		t.Skipf("no release asset for this platform: %v", err)
	}
	archive := makeTarGz(t, "eduai", binary)

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/eduai/eduai/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name": "v2.0.0"}`))
	})
	mux.HandleFunc("/eduai/eduai/releases/download/v2.0.0/"+asset, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(archive)
	})
	mux.HandleFunc("/eduai/eduai/releases/download/v2.0.0/checksums.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "%s  %s\n", hashHex(archive), asset)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	execPath := filepath.Join(t.TempDir(), "eduai")
	require.NoError(t, os.WriteFile(execPath, []byte("old"), 0o755))

	var steps []string
	c := NewChecker(
		WithBaseURLs(srv.URL, srv.URL),
		WithExecPath(func() (string, error) { return execPath, nil }),
	)
	version, err := c.Update(context.Background(), &UpdateInput{
		Version:  "v1.0.0",
		Progress: func(p UpdateProgress) { steps = append(steps, p.Step) },
	})
	require.NoError(t, err)
	assert.Equal(t, "v2.0.0", version)
	assert.NotEmpty(t, steps)

	installed, err := os.ReadFile(execPath)
	require.NoError(t, err)
	assert.Equal(t, binary, installed)
}

func TestUpdateChecksumMismatch(t *testing.T) {
	asset, err := releaseAsset()
	if err != nil {
		t.Skipf("no release asset for this platform: %v", err)
	}
	archive := makeTarGz(t, "eduai", []byte("binary"))

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/eduai/eduai/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name": "v2.0.0"}`))
	})
	mux.HandleFunc("/eduai/eduai/releases/download/v2.0.0/"+asset, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(archive)
	})
	mux.HandleFunc("/eduai/eduai/releases/download/v2.0.0/checksums.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "%064d  %s\n", 0, asset)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
	_, err = c.Update(context.Background(), &UpdateInput{Version: "v1.0.0"})
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestParseChecksums(t *testing.T) {
	sums := parseChecksums([]byte("abc123  eduai_Linux_x86_64.tar.gz\ndef456  eduai_Darwin_all.tar.gz\n\nmalformed line here extra\n"))
	assert.Equal(t, "abc123", sums["eduai_Linux_x86_64.tar.gz"])
	assert.Equal(t, "def456", sums["eduai_Darwin_all.tar.gz"])
	assert.Len(t, sums, 2)
}
