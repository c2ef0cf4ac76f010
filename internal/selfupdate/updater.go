package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	// ErrDevBuild means the running binary has no release version to
	// compare against.
	ErrDevBuild = errors.New("cannot update a development build")

	// ErrAlreadyLatest means no newer release exists.
	ErrAlreadyLatest = errors.New("already running the latest version")

	// ErrChecksum means the downloaded archive failed verification.
	ErrChecksum = errors.New("archive checksum mismatch")
)

// UpdateInput configures an update run.
type UpdateInput struct {
	Version  string
	Progress func(UpdateProgress)
}

// UpdateProgress is a human-readable step notification.
type UpdateProgress struct {
	Step string
}

// Update downloads the latest release, verifies it against the published
// checksums and atomically replaces the running binary. It returns the
// version installed.
func (c *Checker) Update(ctx context.Context, input *UpdateInput) (string, error) {
	report := input.Progress
	if report == nil {
		report = func(UpdateProgress) {}
	}

	if input.Version == "" || strings.Contains(input.Version, "devel") {
		return "", ErrDevBuild
	}

	report(UpdateProgress{Step: "checking for updates"})
	check, err := c.Check(ctx, &CheckInput{Version: input.Version})
	if err != nil {
		return "", err
	}
	if !check.UpdateAvailable {
		return "", ErrAlreadyLatest
	}

	asset, err := releaseAsset()
	if err != nil {
		return "", err
	}

	base := fmt.Sprintf("%s/%s/%s/releases/download/%s",
		strings.TrimRight(c.downloadBaseURL, "/"), c.owner, c.repo, check.LatestVersion)

	report(UpdateProgress{Step: "downloading " + asset})
	archive, err := c.fetch(ctx, base+"/"+asset)
	if err != nil {
		return "", fmt.Errorf("download archive: %w", err)
	}

	report(UpdateProgress{Step: "verifying checksum"})
	sums, err := c.fetch(ctx, base+"/checksums.txt")
	if err != nil {
		return "", fmt.Errorf("download checksums: %w", err)
	}
	if err := verifyChecksum(archive, sums, asset); err != nil {
		return "", err
	}

	report(UpdateProgress{Step: "extracting binary"})
	binary, err := extractBinary(archive, asset)
	if err != nil {
		return "", err
	}

	report(UpdateProgress{Step: "installing"})
	if err := c.replaceBinary(binary); err != nil {
		return "", err
	}

	return check.LatestVersion, nil
}

// releaseAsset names the archive published for this OS and architecture.
func releaseAsset() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		return "eduai_Darwin_all.tar.gz", nil
	case "linux":
		switch runtime.GOARCH {
		case "amd64":
			return "eduai_Linux_x86_64.tar.gz", nil
		case "arm64":
			return "eduai_Linux_arm64.tar.gz", nil
		}
	case "windows":
		switch runtime.GOARCH {
		case "amd64":
			return "eduai_Windows_x86_64.zip", nil
		case "arm64":
			return "eduai_Windows_arm64.zip", nil
		}
	}
	return "", fmt.Errorf("no release asset for %s/%s", runtime.GOOS, runtime.GOARCH)
}

// verifyChecksum checks the archive's sha256 against the checksums file.
func verifyChecksum(archive, sums []byte, asset string) error {
	want, ok := parseChecksums(sums)[asset]
	if !ok {
		return fmt.Errorf("no checksum published for %s", asset)
	}
	if hashHex(archive) != want {
		return ErrChecksum
	}
	return nil
}

// parseChecksums reads "hash  filename" lines into a map.
func parseChecksums(data []byte) map[string]string {
	out := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 {
			out[fields[1]] = fields[0]
		}
	}
	return out
}

func hashHex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// extractBinary pulls the eduai executable out of the release archive.
func extractBinary(archive []byte, asset string) ([]byte, error) {
	if strings.HasSuffix(asset, ".zip") {
		return extractZip(archive, "eduai.exe")
	}
	return extractTarGz(archive, "eduai")
}

func extractTarGz(archive []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read archive: %w", err)
		}
		if filepath.Base(hdr.Name) == name && hdr.Typeflag == tar.TypeReg {
			return io.ReadAll(tr)
		}
	}
	return nil, fmt.Errorf("%s not found in archive", name)
}

func extractZip(archive []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	for _, f := range zr.File {
		if filepath.Base(f.Name) == name {
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("read archive: %w", err)
			}
			defer func() { _ = rc.Close() }()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("%s not found in archive", name)
}

// replaceBinary swaps the running executable for the new one. The new
// binary is written next to the old and renamed over it so the switch is
// atomic on the same filesystem.
func (c *Checker) replaceBinary(binary []byte) error {
	path, err := c.execPath()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}
	path, err = filepath.EvalSymlinks(path)
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	tmp := path + ".new"
	if err := os.WriteFile(tmp, binary, 0o755); err != nil {
		return fmt.Errorf("write new binary: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("install new binary: %w", err)
	}
	return nil
}
