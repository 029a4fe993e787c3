package codegraph

import (
	"regexp"
	"strings"
)

// Directory names recognized as architectural domains, checked as
// "/<name>/" substrings in rule order.
var knownDomainDirs = []string{
	"models", "services", "repositories", "controllers", "views",
	"components", "utils", "hooks", "contexts", "providers",
}

var (
	// DDD-style prefix: a path segment literally named domain/<X>
	domainSegmentRe = regexp.MustCompile(`(?i)domain/([^/]+)`)
	// CapitalizedWord followed by a role suffix in the filename
	roleFileRe = regexp.MustCompile(`^([A-Z][a-zA-Z]*?)(Model|Service|Repository|Controller|View|Component)\b`)
)

// Classify maps a file path to a coarse domain label. This is a
// best-effort heuristic: ambiguous or unfamiliar layouts fall into
// "other" without error. Rule order, first match wins:
//
//  1. a "domain/<X>" path segment yields X
//  2. a known directory name yields that name
//  3. a "SomethingService"-style filename yields the leading word
//  4. "other"
func Classify(path string) string {
	if m := domainSegmentRe.FindStringSubmatch(path); m != nil {
		return strings.ToLower(m[1])
	}

	for _, dir := range knownDomainDirs {
		if strings.Contains(path, "/"+dir+"/") {
			return dir
		}
	}

	base := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		base = path[i+1:]
	}
	if m := roleFileRe.FindStringSubmatch(base); m != nil {
		return strings.ToLower(m[1])
	}

	return "other"
}
