package output

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"
)

const (
	// ArtifactName is the file name of the terminal-mode document
	ArtifactName = "tonetint_output.html"

	// DownloadsDir is the directory under the user's home holding the artifact
	DownloadsDir = "Downloads"

	filePerm = 0o644
)

// ErrNoHome is returned when the artifact location cannot be resolved
var ErrNoHome = errors.New("home directory not available")

// ArtifactPath returns <home>/Downloads/tonetint_output.html
func ArtifactPath(home string) (string, error) {
	if home == "" {
		return "", ErrNoHome
	}
	return filepath.Join(home, DownloadsDir, ArtifactName), nil
}

// DefaultArtifactPath resolves the artifact path for the current user
func DefaultArtifactPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoHome, err)
	}
	return ArtifactPath(home)
}

// Writer persists rendered documents
type Writer struct {
	fs afero.Fs
}

// NewWriter creates a writer over fs. A nil fs writes to the OS file system.
func NewWriter(fs afero.Fs) *Writer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Writer{fs: fs}
}

// Save writes content to path, replacing any previous file. The parent
// directory must already exist.
func (w *Writer) Save(path, content string) error {
	f, err := w.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// Opener shows a saved file to the user
type Opener interface {
	Open(ctx context.Context, path string) error
}

// OpenerFunc adapts a function to the Opener interface
type OpenerFunc func(ctx context.Context, path string) error

func (f OpenerFunc) Open(ctx context.Context, path string) error {
	return f(ctx, path)
}

// BrowserOpener opens files in the default browser of the platform
type BrowserOpener struct {
	goos string
}

// NewBrowserOpener creates an opener for the running platform
func NewBrowserOpener() *BrowserOpener {
	return &BrowserOpener{goos: runtime.GOOS}
}

// Command returns the command that opens target on the opener's platform
func (b *BrowserOpener) Command(ctx context.Context, target string) *exec.Cmd {
	switch b.goos {
	case "windows":
		return exec.CommandContext(ctx, "cmd", "/c", "start", "", target)
	case "darwin":
		return exec.CommandContext(ctx, "open", target)
	default:
		return exec.CommandContext(ctx, "xdg-open", target)
	}
}

// Open launches the browser without waiting for it to exit
func (b *BrowserOpener) Open(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	if err := b.Command(ctx, "file://"+filepath.ToSlash(abs)).Start(); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}
