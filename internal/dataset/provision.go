package dataset

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ChocolateDave/ml-notebook/internal/logging"
)

// IsLocalSource reports whether the archive source is a filesystem path
// rather than a URL.
func IsLocalSource(source string) bool {
	return !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://")
}

// Provision makes sure the data directory holds the archive and every
// expected member file. It creates the directory if absent, fetches the
// archive if absent, and extracts only the members missing on disk. A second
// run over a complete directory performs no network or archive work.
func Provision(ctx context.Context, cfg Config) error {
	if _, err := os.Stat(cfg.DataDir); os.IsNotExist(err) {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return fmt.Errorf("error creating data directory: %w", err)
		}
	}

	archivePath := cfg.ArchivePath()
	if _, err := os.Stat(archivePath); os.IsNotExist(err) {
		if err := fetchArchive(ctx, cfg.ArchiveURL, archivePath, cfg.Logger); err != nil {
			return err
		}
	}

	missing := missingMembers(cfg)
	if len(missing) == 0 {
		return nil
	}

	return extractMembers(archivePath, cfg.DataDir, missing, cfg.Logger)
}

func missingMembers(cfg Config) []string {
	var missing []string
	for _, name := range cfg.memberNames() {
		if _, err := os.Stat(filepath.Join(cfg.DataDir, name)); os.IsNotExist(err) {
			missing = append(missing, name)
		}
	}
	return missing
}

func fetchArchive(ctx context.Context, source, dest string, logger *slog.Logger) error {
	b, err := rawArchiveData(ctx, source, logger)
	if err != nil {
		return err
	}

	if err := os.WriteFile(dest, b, 0o644); err != nil {
		return fmt.Errorf("error writing archive to %s: %w", dest, err)
	}
	return nil
}

// rawArchiveData reads the archive bytes from either a URL or a local file path.
func rawArchiveData(ctx context.Context, source string, logger *slog.Logger) ([]byte, error) {
	if IsLocalSource(source) {
		b, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local archive: %w", err)
		}
		return b, nil
	}

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("error building archive request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error downloading archive: %w", err)
	}
	defer resp.Body.Close() // nolint

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s downloading archive", resp.Status)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading archive response: %w", err)
	}

	logging.LogDownload(logger, source, resp.StatusCode, int64(len(b)),
		float64(time.Since(start).Milliseconds()))

	return b, nil
}

func extractMembers(archivePath, dir string, names []string, logger *slog.Logger) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("error opening dataset archive: %w", err)
	}
	defer logging.SafeCloseWithLogging(reader, logger, "close_archive")

	// Member paths inside the archive may carry directory prefixes.
	members := make(map[string]*zip.File, len(reader.File))
	for _, f := range reader.File {
		members[filepath.Base(f.Name)] = f
	}

	for _, name := range names {
		member, ok := members[name]
		if !ok {
			return fmt.Errorf("archive %s has no member %s", archivePath, name)
		}
		if err := extractMember(member, filepath.Join(dir, name), logger); err != nil {
			return err
		}
		logging.LogOperation(logger, "member_extracted", slog.String("member", name))
	}
	return nil
}

func extractMember(member *zip.File, dest string, logger *slog.Logger) (err error) {
	src, err := member.Open()
	if err != nil {
		return fmt.Errorf("error opening archive member %s: %w", member.Name, err)
	}
	defer logging.SafeCloseWithLogging(src, logger, "close_archive_member")

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("error creating member file %s: %w", dest, err)
	}
	defer logging.HandleDeferredError(&err, out.Close, logger, "write member file")

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("error extracting member %s: %w", member.Name, err)
	}
	return nil
}
