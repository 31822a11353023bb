package domain

// DescriptorResult records the outcome for one class descriptor file.
type DescriptorResult struct {
	Class   string `json:"class"`
	Path    string `json:"path"`
	Written bool   `json:"written"` // false: an existing file was left untouched
}

// GenerateReport summarizes one generation run.
type GenerateReport struct {
	Manifest        string             `json:"manifest"`
	ManifestWritten bool               `json:"manifest_written"`
	Descriptors     []DescriptorResult `json:"descriptors"`
}
