package application

import (
	"github.com/gdnkit/gdnkit/internal/domain"
)

// ScanService orchestrates the scan pipeline: walk -> parse -> match ->
// aggregate.
type ScanService struct {
	walker domain.SourceWalker
	parser domain.SyntaxParser
}

func NewScanService(walker domain.SourceWalker, parser domain.SyntaxParser) *ScanService {
	return &ScanService{walker: walker, parser: parser}
}

// ScanProject walks root for source files and scans them.
func (s *ScanService) ScanProject(root string) (domain.ClassSet, error) {
	files, err := s.walker.Walk(root)
	if err != nil {
		return nil, err
	}
	return s.ScanFiles(files)
}

// ScanFiles scans the given source files. Read and parse failures abort
// the scan; structural errors in derive payloads are collected across
// all files and returned as one composite error. The result is either a
// complete class set or an error, never a partial set.
func (s *ScanService) ScanFiles(paths []string) (domain.ClassSet, error) {
	classes := make(domain.ClassSet)
	var structural []*domain.StructuralError

	for _, path := range paths {
		file, err := s.parser.ParseFile(path)
		if err != nil {
			return nil, err
		}

		found, errs := domain.FindClasses(file)
		classes.Merge(found)
		structural = append(structural, errs...)
	}

	if err := domain.CombineStructural(structural); err != nil {
		return nil, err
	}
	return classes, nil
}
