package catalog

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/specwave/spec-core/internal/spec"
)

// DefaultPatterns matches the spec documents the file contributor loads
// when no patterns are configured.
var DefaultPatterns = []string{"**/*.yaml", "**/*.yml"}

// FileContributor loads device specifications from YAML documents on disk.
// Each configured directory is searched with the glob patterns; every
// matching file may hold one or more YAML documents, each decoding to a
// single DeviceSpec.
//
// A file that cannot be read or decoded is skipped with a warning so one
// broken document does not block the rest of the directory. Validation of
// the decoded specs is left to the discovery loader.
type FileContributor struct {
	dirs     []string
	patterns []string
	logger   spec.Logger
}

// NewFileContributor creates a file contributor over the given directories.
// Directories that do not exist are skipped at load time.
func NewFileContributor(dirs []string, patterns []string) *FileContributor {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	return &FileContributor{
		dirs:     dirs,
		patterns: patterns,
		logger:   spec.NopLogger(),
	}
}

// SetLogger sets the logger for the contributor.
func (c *FileContributor) SetLogger(logger spec.Logger) {
	c.logger = logger
}

// Name identifies the contributor in discovery reports.
func (c *FileContributor) Name() string { return "files" }

// Specs loads all spec documents matching the configured patterns.
func (c *FileContributor) Specs() ([]*spec.DeviceSpec, error) {
	var specs []*spec.DeviceSpec
	for _, dir := range c.dirs {
		if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
			c.logger.Debug("spec directory does not exist, skipping", "dir", dir)
			continue
		}

		files, err := c.matchFiles(dir)
		if err != nil {
			return nil, fmt.Errorf("%w: matching spec files in %s: %w", spec.ErrContributorFailure, dir, err)
		}

		for _, file := range files {
			loaded, err := loadSpecFile(file)
			if err != nil {
				c.logger.Warn("skipping unreadable spec file", "file", file, "error", err)
				continue
			}
			specs = append(specs, loaded...)
		}
	}
	return specs, nil
}

// matchFiles resolves the glob patterns under one directory, deduplicating
// files matched by more than one pattern.
func (c *FileContributor) matchFiles(dir string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	for _, pattern := range c.patterns {
		matches, err := doublestar.Glob(os.DirFS(dir), pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			full := filepath.Join(dir, match)
			if _, ok := seen[full]; ok {
				continue
			}
			seen[full] = struct{}{}
			files = append(files, full)
		}
	}
	return files, nil
}

// loadSpecFile decodes every YAML document in a file into DeviceSpecs.
func loadSpecFile(path string) ([]*spec.DeviceSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck // Read-only file

	var specs []*spec.DeviceSpec
	decoder := yaml.NewDecoder(f)
	for {
		var s spec.DeviceSpec
		if err := decoder.Decode(&s); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		specs = append(specs, &s)
	}
	return specs, nil
}
