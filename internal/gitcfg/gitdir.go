package gitcfg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FindGitDir walks up from dir looking for the enclosing repository's git
// directory. It returns "" (and no error) when dir is not inside a
// repository. A GIT_DIR environment override takes precedence, matching
// git's own behavior.
func FindGitDir(dir string) (string, error) {
	if env := os.Getenv("GIT_DIR"); env != "" {
		return env, nil
	}

	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = cwd
	}

	currentDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	for {
		dotGit := filepath.Join(currentDir, ".git")
		fileInfo, err := os.Stat(dotGit)
		// No error means the path exists.
		if err == nil {
			if fileInfo.IsDir() {
				return dotGit, nil
			}
			// A .git file points at the real git directory (worktrees,
			// submodules).
			return readGitDirPointer(dotGit)
		} else if !os.IsNotExist(err) {
			// Return any error that's not "file not found" (like permission issues).
			return "", fmt.Errorf("error checking for .git at %s: %w", currentDir, err)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached the filesystem root without finding a repository.
			return "", nil
		}
		currentDir = parentDir
	}
}

// readGitDirPointer resolves a "gitdir: <path>" pointer file.
func readGitDirPointer(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	line := strings.TrimSpace(string(data))
	target, ok := strings.CutPrefix(line, "gitdir:")
	if !ok {
		return "", fmt.Errorf("%s is not a git directory pointer", path)
	}

	target = strings.TrimSpace(target)
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return filepath.Clean(target), nil
}
