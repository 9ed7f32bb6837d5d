package obsidian

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Opener implements ports.ObsidianOpener
type Opener struct {
	journalPath string
	vaultName   string
}

// NewOpener creates a new Obsidian opener for the given journal path.
// The journal directory is assumed to be (inside) an Obsidian vault named
// after its base directory.
func NewOpener(journalPath string) *Opener {
	return &Opener{
		journalPath: journalPath,
		vaultName:   filepath.Base(journalPath),
	}
}

// OpenFile opens an entry in Obsidian using the obsidian:// URI scheme
func (o *Opener) OpenFile(filePath string) error {
	uri, err := o.BuildURI(filePath)
	if err != nil {
		return err
	}
	return o.openURI(uri)
}

// BuildURI constructs the obsidian:// URI for a given entry path
func (o *Opener) BuildURI(filePath string) (string, error) {
	relPath, err := filepath.Rel(o.journalPath, filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get relative path: %w", err)
	}

	if strings.HasPrefix(relPath, "..") {
		return "", fmt.Errorf("file is outside the journal: %s", filePath)
	}

	// Obsidian expects forward slashes in paths
	relPath = filepath.ToSlash(relPath)

	uri := fmt.Sprintf("obsidian://open?vault=%s&file=%s",
		url.QueryEscape(o.vaultName),
		url.QueryEscape(relPath),
	)

	return uri, nil
}

func (o *Opener) openURI(uri string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "linux":
		cmd = exec.Command("xdg-open", uri)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", uri)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return cmd.Run()
}
