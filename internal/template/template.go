package template

import (
	"fmt"
	"regexp"
)

var refRe = regexp.MustCompile(`\{\{\s*(paths|inputs)\.([A-Za-z0-9_\-]+)\s*\}\}`)

// Context holds available values for template resolution.
type Context struct {
	Inputs map[string]string
	Paths  map[string]string // well-known folders, see internal/paths
}

// Ref is one {{namespace.name}} occurrence.
type Ref struct {
	Namespace string
	Name      string
}

// Refs lists every reference in s, in order of appearance.
func Refs(s string) []Ref {
	var refs []Ref
	for _, m := range refRe.FindAllStringSubmatch(s, -1) {
		refs = append(refs, Ref{Namespace: m[1], Name: m[2]})
	}
	return refs
}

// maxDepth bounds how far input values may nest references.
const maxDepth = 8

// Resolve replaces all {{paths.X}} and {{inputs.Y}} in s. Input values may
// themselves hold references; they are expanded until none remain.
func Resolve(s string, ctx *Context) (string, error) {
	out := s
	for i := 0; i < maxDepth; i++ {
		if !refRe.MatchString(out) {
			return out, nil
		}
		next, err := resolveOnce(out, ctx)
		if err != nil {
			return "", err
		}
		out = next
	}
	if refRe.MatchString(out) {
		return "", fmt.Errorf("references in %q nest deeper than %d levels or form a cycle", s, maxDepth)
	}
	return out, nil
}

func resolveOnce(s string, ctx *Context) (string, error) {
	var resolveErr error
	result := refRe.ReplaceAllStringFunc(s, func(match string) string {
		m := refRe.FindStringSubmatch(match)
		ns, name := m[1], m[2]
		var (
			val string
			ok  bool
		)
		switch ns {
		case "paths":
			val, ok = ctx.Paths[name]
		case "inputs":
			val, ok = ctx.Inputs[name]
		}
		if !ok {
			if resolveErr == nil {
				resolveErr = fmt.Errorf("unresolved %s reference %q", ns, name)
			}
			return match
		}
		return val
	})
	if resolveErr != nil {
		return "", resolveErr
	}
	return result, nil
}
