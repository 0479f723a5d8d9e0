// Package assets resolves asset paths and reports load failures.
//
// Load failures are never fatal: callers log them with Report and keep
// whatever default the graphics library provides.
package assets

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrAssetLoad matches every *LoadError via errors.Is.
var ErrAssetLoad = errors.New("asset load failed")

// Kind names the type of asset.
type Kind string

const (
	KindFont    Kind = "font"
	KindTexture Kind = "texture"
)

// LoadError describes one asset that could not be loaded.
type LoadError struct {
	Kind Kind
	Name string // What the asset is for, e.g. "sky background"
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("problem loading %s %s (%s): %v", e.Name, e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is reports whether target is ErrAssetLoad.
func (e *LoadError) Is(target error) bool { return target == ErrAssetLoad }

// Resolve joins root and rel. Backslash separators in rel are accepted.
func Resolve(root, rel string) string {
	rel = filepath.FromSlash(strings.ReplaceAll(rel, `\`, "/"))
	if root == "" || filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(root, rel)
}

// Locate resolves an asset and checks that it is a readable regular file.
func Locate(kind Kind, name, root, rel string) (string, error) {
	path := Resolve(root, rel)
	if rel == "" {
		return path, &LoadError{Kind: kind, Name: name, Path: path, Err: errors.New("no path configured")}
	}
	info, err := os.Stat(path)
	if err != nil {
		return path, &LoadError{Kind: kind, Name: name, Path: path, Err: err}
	}
	if info.IsDir() {
		return path, &LoadError{Kind: kind, Name: name, Path: path, Err: errors.New("is a directory")}
	}
	return path, nil
}

// Failed wraps a decoder-level failure for an asset that was located.
func Failed(kind Kind, name, path string) error {
	return &LoadError{Kind: kind, Name: name, Path: path, Err: errors.New("could not decode")}
}

// Report logs a load failure. Other errors are logged as-is.
func Report(err error) {
	if err == nil {
		return
	}
	var le *LoadError
	if errors.As(err, &le) {
		slog.Warn("asset_load_failed",
			"kind", string(le.Kind),
			"name", le.Name,
			"path", le.Path,
			"error", le.Err,
		)
		return
	}
	slog.Warn("asset_load_failed", "error", err)
}
