package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolver finds import targets on the local filesystem.
type Resolver struct {
	homeDir func() (string, error)
}

// NewResolver creates a Resolver that expands "~" with os.UserHomeDir.
func NewResolver() *Resolver {
	return &Resolver{homeDir: os.UserHomeDir}
}

// Resolve returns the absolute path of target as imported from baseDir.
// An empty baseDir means the working directory.
func (r *Resolver) Resolve(target, baseDir string) (string, error) {
	if target == "" {
		return "", fmt.Errorf("empty target: %w", ErrFileNotFound)
	}

	baseDir, err := absDir(baseDir)
	if err != nil {
		return "", err
	}

	if !IsPath(target) {
		return FindUpward(baseDir, target)
	}

	path, err := r.expandHome(target)
	if err != nil {
		return "", err
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	if !isFile(path) {
		return "", fmt.Errorf("%q: %w", path, ErrFileNotFound)
	}

	return filepath.Clean(path), nil
}

func (r *Resolver) expandHome(target string) (string, error) {
	if target != "~" && !strings.HasPrefix(target, "~/") && !strings.HasPrefix(target, "~"+string(filepath.Separator)) {
		return target, nil
	}

	home, err := r.homeDir()
	if err != nil {
		return "", fmt.Errorf("expanding %q: %w", target, err)
	}

	return filepath.Join(home, target[1:]), nil
}

// IsPath reports whether target names a path rather than a bare file name:
// it contains a path separator or starts with "~".
func IsPath(target string) bool {
	return strings.HasPrefix(target, "~") ||
		strings.ContainsRune(target, '/') ||
		strings.ContainsRune(target, filepath.Separator)
}

// FindUpward looks for a file called name in dir and then in each ancestor
// of dir, up to the filesystem root.
func FindUpward(dir, name string) (string, error) {
	dir, err := absDir(dir)
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, name)
		if isFile(candidate) {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("unable to find file %s: %w", name, ErrFileNotFound)
		}

		dir = parent
	}
}

func absDir(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory %q: %w", dir, err)
	}

	return abs, nil
}

func isFile(path string) bool {
	stat, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !stat.IsDir()
}
