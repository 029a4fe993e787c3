package board

// ConnectionKind describes what an accepted user-drawn link means
type ConnectionKind int

const (
	// ConnectionRejected means the link must not be created
	ConnectionRejected ConnectionKind = iota
	// ConnectionVisual means the link is drawn but records no dependency
	// (idea to root task, group to its own child)
	ConnectionVisual
	// ConnectionDependency means the source becomes a dependency of the
	// target
	ConnectionDependency
)

// ValidateConnection applies the edge-creation policy for user-drawn
// links:
//
//   - idea -> task: accepted only when the target is a root-level task
//   - group -> task: accepted only when the task's parent is that group
//   - root task -> root task: accepted, recorded as a dependency
//   - siblings sharing the same parent: rejected
//
// Every other combination is rejected silently.
func ValidateConnection(tasks []Task, sourceID, targetID string) ConnectionKind {
	if sourceID == targetID {
		return ConnectionRejected
	}

	target, ok := FindTask(tasks, targetID)
	if !ok {
		return ConnectionRejected
	}

	if sourceID == IdeaNodeID {
		if target.IsRoot() {
			return ConnectionVisual
		}
		return ConnectionRejected
	}

	source, ok := FindTask(tasks, sourceID)
	if !ok {
		return ConnectionRejected
	}

	if source.IsGroup() {
		if target.ParentID == source.ID {
			return ConnectionVisual
		}
		return ConnectionRejected
	}

	// Siblings inside the same group never link to each other.
	if source.ParentID != "" && source.ParentID == target.ParentID {
		return ConnectionRejected
	}

	if source.IsRoot() && target.IsRoot() {
		return ConnectionDependency
	}

	return ConnectionRejected
}

// Connect validates a user-drawn link and, when it carries dependency
// semantics, records it. The returned bool reports whether the link was
// accepted at all; rejected links leave the collection untouched in
// value.
func Connect(tasks []Task, sourceID, targetID string) ([]Task, bool) {
	switch ValidateConnection(tasks, sourceID, targetID) {
	case ConnectionDependency:
		out, _ := AddDependency(tasks, sourceID, targetID)
		return out, true
	case ConnectionVisual:
		return CloneTasks(tasks), true
	default:
		return CloneTasks(tasks), false
	}
}
