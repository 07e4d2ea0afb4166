package pp

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolver is the standard Opener: it searches CurrentDir (quoted form
// only), then the user paths, then the system paths. CurrentDir stays
// the same for nested includes; it is not the directory of the file
// that holds the #include. Policy beyond that — and whether includes happen at all —
// stays with the caller.
type Resolver struct {
	UserPaths   []string
	SystemPaths []string
	// CurrentDir is the directory of the unit being preprocessed;
	// quoted includes try it first.
	CurrentDir string
}

// NewResolver creates a resolver rooted at the directory of filename.
func NewResolver(filename string) *Resolver {
	return &Resolver{CurrentDir: filepath.Dir(filename)}
}

// AddUserPath appends a -I style search directory.
func (r *Resolver) AddUserPath(dir string) {
	r.UserPaths = append(r.UserPaths, dir)
}

// AddSystemPath appends an -isystem style search directory.
func (r *Resolver) AddSystemPath(dir string) {
	r.SystemPaths = append(r.SystemPaths, dir)
}

// Resolve returns the path of the first existing candidate for name.
func (r *Resolver) Resolve(name string, angled bool) (string, error) {
	var candidates []string
	if !angled && r.CurrentDir != "" {
		candidates = append(candidates, filepath.Join(r.CurrentDir, name))
	}
	for _, dir := range r.UserPaths {
		candidates = append(candidates, filepath.Join(dir, name))
	}
	for _, dir := range r.SystemPaths {
		candidates = append(candidates, filepath.Join(dir, name))
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("%s: no such file in any search path", name)
}

// Open implements Opener: resolve, then read.
func (r *Resolver) Open(name string, angled bool) (string, string, error) {
	path, err := r.Resolve(name, angled)
	if err != nil {
		return "", "", err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(content), path, nil
}
