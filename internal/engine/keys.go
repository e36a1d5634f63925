package engine

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks decomposes to NFD, strips combining marks, and recomposes, so
// that "Café" and "Cafe" normalize identically.
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeName derives the normalized form of an entity's natural name for
// cache keying. Two names that normalize identically are treated as the same
// destination entity, even if their surface forms differ.
func normalizeName(name string) string {
	folded, _, err := transform.String(foldMarks, name)
	if err != nil {
		// A name the transformer chokes on is still usable as-is
		folded = name
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	pendingSep := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		} else {
			pendingSep = true
		}
	}
	return b.String()
}

// Cache keys are scoped by entity kind, and additionally by parent scope
// where two parents can own same-named children.

func userKey() string {
	return "user"
}

func workspaceKey(name string) string {
	return "workspace_" + normalizeName(name)
}

func clientKey(name string) string {
	return "client_" + normalizeName(name)
}

func projectKey(workspaceID, name string) string {
	return "prj_" + workspaceID + "_" + normalizeName(name)
}

func taskKey(projectID, name string) string {
	return "task_" + projectID + "_" + normalizeName(name)
}
