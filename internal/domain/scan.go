package domain

// Marker is the derive identifier that opts a declaration into plugin
// registration.
const Marker = "NativeClass"

// ClassSet is the set of declaration names discovered by a scan.
type ClassSet map[string]struct{}

// Add inserts a name. Duplicates collapse silently.
func (s ClassSet) Add(name string) { s[name] = struct{}{} }

// Has reports whether the set contains name.
func (s ClassSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Merge unions other into s.
func (s ClassSet) Merge(other ClassSet) {
	for name := range other {
		s[name] = struct{}{}
	}
}

// attr is a parsed outer attribute: `#[path(tokens...)]`.
type attr struct {
	path   string
	tokens []Token // everything after the path identifier
}

// FindClasses walks the token tree of one file and returns the names of
// struct and enum declarations whose derive list contains the marker,
// along with any structural errors found in derive payloads. Traversal
// descends into every brace group, so declarations nested in modules,
// impl blocks or function bodies are found regardless of depth.
func FindClasses(file *SyntaxFile) (ClassSet, []*StructuralError) {
	classes := make(ClassSet)
	var errs []*StructuralError
	findInTokens(file.Path, file.Tokens, classes, &errs)
	return classes, errs
}

func findInTokens(path string, toks []Token, classes ClassSet, errs *[]*StructuralError) {
	var pending []attr

	for i := 0; i < len(toks); i++ {
		t := toks[i]

		switch {
		case t.IsPunct("#"):
			// `#![...]` is an inner attribute; it never attaches to a
			// following declaration.
			if i+1 < len(toks) && toks[i+1].IsPunct("!") {
				if i+2 < len(toks) && toks[i+2].Kind == TokenGroup && toks[i+2].Delim == DelimBracket {
					i += 2
					continue
				}
			}
			if i+1 < len(toks) && toks[i+1].Kind == TokenGroup && toks[i+1].Delim == DelimBracket {
				pending = append(pending, parseAttr(toks[i+1]))
				i++
			}

		case t.IsIdent("struct") || t.IsIdent("enum"):
			if i+1 < len(toks) && toks[i+1].Kind == TokenIdent {
				name := toks[i+1].Text
				matched, declErr := derivesMarker(path, pending)
				if declErr != nil {
					*errs = append(*errs, declErr)
				} else if matched {
					classes.Add(name)
				}
				i++
			}
			pending = nil

		case t.Kind == TokenGroup && t.Delim == DelimBrace:
			// Module, impl or function body: nested declarations carry
			// their own attributes.
			findInTokens(path, t.Inner, classes, errs)
			pending = nil

		case t.IsPunct(";"):
			pending = nil
		}
	}
}

// parseAttr extracts the path and payload tokens from the bracket group
// of an outer attribute.
func parseAttr(group Token) attr {
	a := attr{}
	inner := group.Inner
	if len(inner) > 0 && inner[0].Kind == TokenIdent {
		a.path = inner[0].Text
		a.tokens = inner[1:]
	} else {
		a.tokens = inner
	}
	return a
}

// derivesMarker reports whether any derive attribute in attrs carries the
// marker identifier. A derive payload that is not a parenthesized token
// group is a structural error; the first such error is returned and the
// declaration is not registered.
func derivesMarker(path string, attrs []attr) (bool, *StructuralError) {
	matched := false

	for _, a := range attrs {
		if a.path != "derive" {
			continue
		}

		for _, t := range a.tokens {
			if t.Kind != TokenGroup || t.Delim != DelimParen {
				return false, &StructuralError{
					Path: path,
					Line: t.Line,
					Msg:  "unexpected token in derive attribute",
				}
			}

			for _, inner := range t.Inner {
				if inner.IsIdent(Marker) {
					matched = true
				}
			}
		}
	}

	return matched, nil
}
