/*
File: scanner.go
Description: Recursive enumeration of .json files under a root directory.
A single unreadable entry is skipped rather than aborting the walk, so one
bad subtree cannot sink a whole scan.
*/

package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// FileScanner finds candidate files for probing.
type FileScanner struct {
	logger *logrus.Logger
}

// NewFileScanner creates a scanner. The logger may be nil.
func NewFileScanner(logger *logrus.Logger) *FileScanner {
	return &FileScanner{logger: logger}
}

// FindJSONFiles walks root recursively and returns every file whose name ends
// in .json. WalkDir visits entries in lexical order, so the result is
// deterministic for a given filesystem snapshot.
func (s *FileScanner) FindJSONFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if s.logger != nil {
				s.logger.WithFields(logrus.Fields{
					"path":  path,
					"error": err.Error(),
				}).Warn("Skipping unreadable entry")
			}
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		if strings.HasSuffix(entry.Name(), ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return files, nil
}
