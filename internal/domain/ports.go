package domain

// SourceWalker lists candidate source files under a root, honouring
// ignore rules.
type SourceWalker interface {
	Walk(root string) ([]string, error)
}

// SyntaxParser reads one source file and lexes it into a token tree.
type SyntaxParser interface {
	ParseFile(path string) (*SyntaxFile, error)
}

// ResourceStore abstracts the filesystem operations generation needs.
type ResourceStore interface {
	Exists(path string) bool
	WriteFile(path string, data []byte) error
	MkdirAll(path string) error
}

// ConfigLoader reads a project's .gdnkit.yaml, returning a zero
// FileConfig when the file is absent.
type ConfigLoader interface {
	Load(projectPath string) (FileConfig, error)
}
