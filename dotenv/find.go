package dotenv

import (
	"os"
	"path/filepath"
)

// Find returns the path of the first file called name in the working
// directory or one of its parents. Names with a directory part, and names
// found nowhere, are returned unchanged.
func Find(name string) string {
	name = cleanFilename(name)
	if !isBareName(name) {
		return name
	}
	wd, err := os.Getwd()
	if err != nil {
		return name
	}
	path, ok := findFrom(wd, name)
	if !ok || filepath.Dir(path) == wd {
		return name
	}
	return path
}

// Resolve returns the file name refers to relative to dir. A bare name is
// looked up in dir and then each parent; anything else, or a bare name found
// nowhere, is joined with dir.
func Resolve(dir, name string) string {
	name = cleanFilename(name)
	if dir == "" {
		return Find(name)
	}
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	if isBareName(name) {
		if path, ok := findFrom(dir, name); ok {
			return path
		}
	}
	return filepath.Join(dir, name)
}

func isBareName(name string) bool {
	return name != "" && !filepath.IsAbs(name) && filepath.Base(name) == name
}

func findFrom(dir, name string) (string, bool) {
	for {
		path := filepath.Join(dir, name)
		if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
			return path, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
