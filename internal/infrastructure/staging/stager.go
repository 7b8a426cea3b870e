package staging

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/stylelink/backend/internal/domain/plm"
)

// browserUserAgent is sent when fetching design-tool asset URLs. The asset
// CDN rejects requests without a browser identity.
const browserUserAgent = "Mozilla/5.0 (Windows NT 6.1; WOW64; rv:31.0) Gecko/20100101 Firefox/31.0"

// Workspace is one publish attempt's private staging directory.
type Workspace struct {
	// Path is the workspace directory: <root>/<owner>_<nonce>
	Path string
	// Owner is the PLM account the publish runs under
	Owner string
}

// Stager manages per-attempt staging workspaces under a fixed root.
type Stager struct {
	root       string
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a stager rooted at the given directory
func New(root string, logger *zap.Logger) *Stager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Stager{
		root: root,
		httpClient: &http.Client{
			Timeout: 5 * time.Minute, // render bundles can be large
		},
		logger: logger,
	}
}

// Create builds a fresh workspace for one publish attempt. The nonce keeps
// concurrent publishes by the same owner apart; a stale directory at the same
// path is removed first so the attempt always starts empty.
func (s *Stager) Create(owner string) (*Workspace, error) {
	path := filepath.Join(s.root, fmt.Sprintf("%s_%d", owner, time.Now().UnixNano()))

	if err := os.RemoveAll(path); err != nil {
		return nil, plm.NewLocalError(err)
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, plm.NewLocalError(err)
	}

	s.logger.Debug("Created staging workspace", zap.String("path", path))
	return &Workspace{Path: path, Owner: owner}, nil
}

// StageBytes writes an in-memory upload into the workspace and returns its path.
func (s *Stager) StageBytes(ws *Workspace, name string, data []byte) (string, error) {
	path := filepath.Join(ws.Path, filepath.Base(name))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", plm.NewLocalError(err)
	}
	return path, nil
}

// StageURL downloads a referenced asset into the workspace and returns its path.
func (s *Stager) StageURL(ctx context.Context, ws *Workspace, name, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", plm.NewLocalError(err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", plm.NewLocalError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", plm.NewLocalError(fmt.Errorf("asset download failed: %s returned %d", url, resp.StatusCode))
	}

	path := filepath.Join(ws.Path, filepath.Base(name))
	out, err := os.Create(path)
	if err != nil {
		return "", plm.NewLocalError(err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", plm.NewLocalError(err)
	}
	return path, nil
}

// ExtractRenders unzips a render bundle into a subdirectory named after the
// archive, returning the extracted regular files in archive order.
func (s *Stager) ExtractRenders(ws *Workspace, archivePath string) ([]string, error) {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, plm.NewLocalError(err)
	}
	defer reader.Close()

	base := filepath.Base(archivePath)
	destDir := filepath.Join(ws.Path, strings.TrimSuffix(base, filepath.Ext(base)))
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, plm.NewLocalError(err)
	}

	var extracted []string
	for _, entry := range reader.File {
		dest := filepath.Join(destDir, entry.Name)
		// Reject entries escaping the workspace
		if !strings.HasPrefix(dest, filepath.Clean(destDir)+string(os.PathSeparator)) {
			return nil, plm.NewLocalError(fmt.Errorf("archive entry escapes workspace: %s", entry.Name))
		}

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(dest, 0755); err != nil {
				return nil, plm.NewLocalError(err)
			}
			continue
		}

		if err := extractFile(entry, dest); err != nil {
			return nil, plm.NewLocalError(err)
		}
		extracted = append(extracted, dest)
	}

	s.logger.Debug("Extracted render bundle",
		zap.String("archive", archivePath),
		zap.Int("files", len(extracted)))
	return extracted, nil
}

func extractFile(entry *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	in, err := entry.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

// Teardown removes the workspace. Safe to call more than once and when
// nothing was staged.
func (s *Stager) Teardown(ws *Workspace) {
	if ws == nil || ws.Path == "" {
		return
	}
	if err := os.RemoveAll(ws.Path); err != nil {
		s.logger.Warn("Failed to remove staging workspace",
			zap.String("path", ws.Path),
			zap.Error(err))
		return
	}
	s.logger.Debug("Removed staging workspace", zap.String("path", ws.Path))
}
