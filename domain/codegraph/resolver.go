package codegraph

import "strings"

// Extensions tried when an import specifier omits one, in match order
var resolveExts = []string{".ts", ".tsx", ".js", ".jsx"}

// Resolve maps an import specifier found in sourcePath to one of the
// known file paths. Relative specifiers are resolved by textual segment
// arithmetic on the source path; "@/" alias specifiers match by
// substring containment because the alias root is unknown here; bare
// package specifiers never resolve. A miss is a normal miss and Resolve
// never errors.
func Resolve(sourcePath, specifier string, known []string) (string, bool) {
	switch {
	case strings.HasPrefix(specifier, "./"), strings.HasPrefix(specifier, "../"):
		return matchExact(joinRelative(sourcePath, specifier), known)
	case strings.HasPrefix(specifier, "@/"):
		return matchContains(strings.TrimPrefix(specifier, "@/"), known)
	default:
		return "", false
	}
}

// joinRelative applies a ./ or ../ specifier to sourcePath by pure
// segment arithmetic, no filesystem access. The source file's own name
// counts as the first segment dropped: ./ drops just the name, and N
// leading ../ segments drop N segments of the full path (name
// included), clamped at the root.
func joinRelative(sourcePath, specifier string) string {
	rest := specifier
	ups := 0
	for strings.HasPrefix(rest, "../") {
		ups++
		rest = rest[len("../"):]
	}
	rest = strings.TrimPrefix(rest, "./")
	if ups == 0 {
		ups = 1
	}

	segments := strings.Split(sourcePath, "/")
	if ups > len(segments) {
		ups = len(segments)
	}
	segments = segments[:len(segments)-ups]

	if len(segments) == 0 {
		return rest
	}
	return strings.Join(segments, "/") + "/" + rest
}

// matchExact tries the normalized path against every known path: exact
// first, then with each extension appended, then as a directory index.
// First match wins, in slice order.
func matchExact(normalized string, known []string) (string, bool) {
	for _, p := range known {
		if p == normalized {
			return p, true
		}
	}
	for _, ext := range resolveExts {
		withExt := normalized + ext
		for _, p := range known {
			if p == withExt {
				return p, true
			}
		}
	}
	for _, ext := range resolveExts {
		index := normalized + "/index" + ext
		for _, p := range known {
			if p == index {
				return p, true
			}
		}
	}
	return "", false
}

// matchContains is the alias variant: substring containment against the
// same extension/index candidates. Intentionally looser than matchExact.
func matchContains(stripped string, known []string) (string, bool) {
	candidates := make([]string, 0, 1+2*len(resolveExts))
	candidates = append(candidates, stripped)
	for _, ext := range resolveExts {
		candidates = append(candidates, stripped+ext)
	}
	for _, ext := range resolveExts {
		candidates = append(candidates, stripped+"/index"+ext)
	}

	for _, c := range candidates {
		for _, p := range known {
			if strings.Contains(p, c) {
				return p, true
			}
		}
	}
	return "", false
}
