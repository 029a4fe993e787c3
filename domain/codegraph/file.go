// Package codegraph builds a file dependency graph from an in-memory
// set of source files. Imports are discovered by regex matching over
// import/require statements, an intentional approximation rather than
// a real module resolver.
package codegraph

import "time"

// File is a source file known to the graph builder. Files are keyed by
// path; paths are unique identifiers within one build.
type File struct {
	Path      string    `json:"path"`
	Content   string    `json:"content"`
	Modified  time.Time `json:"modified"`
	Created   time.Time `json:"created"`
	Streaming bool      `json:"streaming,omitempty"`
}

// Position is a 2D canvas coordinate assigned by the layout step
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is one file in the rendered dependency graph
type Node struct {
	ID          string   `json:"id"` // file path
	Label       string   `json:"label"`
	Domain      string   `json:"domain"`
	DomainGroup string   `json:"domainGroup"`
	IsRecent    bool     `json:"isRecent"`
	Streaming   bool     `json:"streaming,omitempty"`
	Position    Position `json:"position"`
}

// EdgeKind distinguishes ES-module imports from CommonJS requires
type EdgeKind string

const (
	EdgeImport  EdgeKind = "import"
	EdgeRequire EdgeKind = "require"
)

// Edge is one import statement resolved to a known file. Multiple
// edges between the same pair are allowed, one per statement.
type Edge struct {
	ID     string   `json:"id"`
	Source string   `json:"source"`
	Target string   `json:"target"`
	Kind   EdgeKind `json:"kind"`
	Dashed bool     `json:"dashed,omitempty"` // require edges render dashed
}

// Graph is the full rendered dependency graph
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}
