package app

import (
	"os"
	"path/filepath"

	"github.com/aurceive/d2-crafting-cost/internal/config"
)

// FindRoot returns the nearest directory (cwd or a parent) holding the default config file.
// Without one the calculator still runs on defaults, rooted at cwd.
func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findRootFrom(cwd), nil
}

func findRootFrom(start string) string {
	dir := start
	for i := 0; i < 10; i++ {
		candidate := filepath.Join(dir, config.DefaultConfigName)
		if _, err := os.Stat(candidate); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return start
}

func resolvePath(appRoot, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(appRoot, p)
}
