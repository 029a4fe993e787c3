package codegraph

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

// Layout spacing: one column per domain group, nodes stacked within it
const (
	columnSpacing = 280.0
	rowSpacing    = 110.0
	columnTopY    = 60.0
)

// A file modified within this window of the build is flagged recent
const recentWindow = time.Hour

var (
	// ES-module imports: `import ... from '<spec>'` and bare `import '<spec>'`
	importRe = regexp.MustCompile(`import\s+(?:[\w*\s{},$]+\s+from\s+)?['"]([^'"]+)['"]`)
	// CommonJS requires: `require('<spec>')`
	requireRe = regexp.MustCompile(`require\(\s*['"]([^'"]+)['"]\s*\)`)
)

// Build produces the dependency graph for a file set: one node per
// file, one edge per resolved import statement, positioned by a
// deterministic domain-grouped layout. Build never fails; unresolved
// specifiers are dropped silently and repeated calls on the same input
// produce the same graph.
func Build(files map[string]File) Graph {
	return buildAt(files, time.Now())
}

func buildAt(files map[string]File, now time.Time) Graph {
	// Map iteration order is random; sort paths so grouping, layout and
	// edge ids come out the same on every build.
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	nodes := make([]Node, 0, len(files))
	nodeIndex := make(map[string]int, len(files))
	groupOrder := []string{}
	groups := make(map[string][]string)

	for _, path := range paths {
		f := files[path]
		domain := Classify(path)
		if _, seen := groups[domain]; !seen {
			groupOrder = append(groupOrder, domain)
		}
		groups[domain] = append(groups[domain], path)

		nodeIndex[path] = len(nodes)
		nodes = append(nodes, Node{
			ID:        path,
			Label:     basename(path),
			Domain:    domain,
			IsRecent:  now.Sub(f.Modified) < recentWindow,
			Streaming: f.Streaming,
		})
	}

	edges := scanEdges(paths, files)
	layoutByDomain(nodes, nodeIndex, groupOrder, groups)

	return Graph{Nodes: nodes, Edges: edges}
}

// scanEdges runs the two regex passes over every file and resolves each
// matched specifier against the known path set.
func scanEdges(paths []string, files map[string]File) []Edge {
	edges := []Edge{}
	for _, source := range paths {
		content := files[source].Content

		for i, m := range importRe.FindAllStringSubmatch(content, -1) {
			if target, ok := Resolve(source, m[1], paths); ok {
				edges = append(edges, Edge{
					ID:     fmt.Sprintf("imp-%s-%s-%d", source, target, i),
					Source: source,
					Target: target,
					Kind:   EdgeImport,
				})
			}
		}

		for i, m := range requireRe.FindAllStringSubmatch(content, -1) {
			if target, ok := Resolve(source, m[1], paths); ok {
				edges = append(edges, Edge{
					ID:     fmt.Sprintf("req-%s-%s-%d", source, target, i),
					Source: source,
					Target: target,
					Kind:   EdgeRequire,
					Dashed: true,
				})
			}
		}
	}
	return edges
}

// layoutByDomain assigns each domain group a column in first-seen order
// and stacks the group's nodes vertically in insertion order.
func layoutByDomain(nodes []Node, nodeIndex map[string]int, groupOrder []string, groups map[string][]string) {
	for col, domain := range groupOrder {
		for row, path := range groups[domain] {
			n := &nodes[nodeIndex[path]]
			n.DomainGroup = domain
			n.Position = Position{
				X: float64(col) * columnSpacing,
				Y: columnTopY + float64(row)*rowSpacing,
			}
		}
	}
}

func basename(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}
