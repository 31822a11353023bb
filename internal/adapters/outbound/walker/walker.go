package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/gdnkit/gdnkit/internal/domain"
)

var skipDirs = map[string]bool{
	".git":   true,
	"target": true,
}

// FileWalker implements domain.SourceWalker by walking the filesystem,
// honouring .gitignore rules the way the build tooling itself does.
type FileWalker struct {
	exclude map[string]bool
}

// New creates a FileWalker with optional extra directory names to skip.
func New(excludePaths ...string) *FileWalker {
	exclude := make(map[string]bool, len(excludePaths))
	for _, p := range excludePaths {
		exclude[strings.TrimSuffix(p, "/")] = true
	}
	return &FileWalker{exclude: exclude}
}

// Walk returns all .rs files under root in lexical walk order.
func (w *FileWalker) Walk(root string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrWalk, root, err)
	}

	patterns, err := gitignore.ReadPatterns(osfs.New(absRoot), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: reading ignore rules under %s: %v", domain.ErrWalk, absRoot, err)
	}
	matcher := gitignore.NewMatcher(patterns)

	var files []string

	err = filepath.WalkDir(absRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(absRoot, path)
		if relErr != nil || rel == "." {
			return nil
		}
		split := strings.Split(filepath.ToSlash(rel), "/")

		if d.IsDir() {
			if skipDirs[d.Name()] || w.exclude[d.Name()] || matcher.Match(split, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if matcher.Match(split, false) {
			return nil
		}

		if strings.HasSuffix(d.Name(), ".rs") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrWalk, absRoot, err)
	}

	return files, nil
}
