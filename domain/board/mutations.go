package board

// TaskUpdate carries the optional field replacements applied by
// UpdateTask. Nil fields are left untouched.
type TaskUpdate struct {
	Title        *string
	Description  *string
	Category     *Category
	Status       *Status
	Dependencies *[]string
	ParentID     *string
}

// AddTask appends a task to a new copy of the collection
func AddTask(tasks []Task, t Task) []Task {
	out := CloneTasks(tasks)
	if t.Dependencies == nil {
		t.Dependencies = []string{}
	}
	return append(out, t.Clone())
}

// UpdateTask replaces fields of the matching task and reports whether
// the id was found. The input slice is never mutated.
func UpdateTask(tasks []Task, id string, upd TaskUpdate) ([]Task, bool) {
	out := CloneTasks(tasks)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if upd.Title != nil {
			out[i].Title = *upd.Title
		}
		if upd.Description != nil {
			out[i].Description = *upd.Description
		}
		if upd.Category != nil {
			out[i].Category = *upd.Category
		}
		if upd.Status != nil {
			out[i].Status = *upd.Status
		}
		if upd.Dependencies != nil {
			deps := make([]string, len(*upd.Dependencies))
			copy(deps, *upd.Dependencies)
			out[i].Dependencies = deps
		}
		if upd.ParentID != nil {
			out[i].ParentID = *upd.ParentID
		}
		return out, true
	}
	return out, false
}

// UpdateStatus replaces the matching task's status. When the id does
// not exist the returned collection is value-equal to the input.
func UpdateStatus(tasks []Task, id string, status Status) []Task {
	out := CloneTasks(tasks)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = status
			break
		}
	}
	return out
}

// DeleteTask removes the task with the given id together with its
// direct children (tasks whose ParentID equals the deleted id, one
// level only), and strips every removed id from the remaining tasks'
// dependency lists. Reports whether the id existed.
func DeleteTask(tasks []Task, id string) ([]Task, bool) {
	if _, ok := FindTask(tasks, id); !ok {
		return CloneTasks(tasks), false
	}

	removed := map[string]bool{id: true}
	for _, t := range tasks {
		if t.ParentID == id {
			removed[t.ID] = true
		}
	}

	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if removed[t.ID] {
			continue
		}
		kept := t.Clone()
		kept.Dependencies = stripIDs(kept.Dependencies, removed)
		out = append(out, kept)
	}
	return out, true
}

// UpdatePosition moves the matching task to a new canvas position and
// reports whether the id was found.
func UpdatePosition(tasks []Task, id string, pos Position) ([]Task, bool) {
	out := CloneTasks(tasks)
	for i := range out {
		if out[i].ID == id {
			p := pos
			out[i].Position = &p
			return out, true
		}
	}
	return out, false
}

// PositionUpdate pairs a task id with its new position for batch moves
type PositionUpdate struct {
	ID       string   `json:"id"`
	Position Position `json:"position"`
}

// UpdatePositions applies a batch of position updates. Unknown ids are
// skipped silently; the count of applied updates is returned.
func UpdatePositions(tasks []Task, updates []PositionUpdate) ([]Task, int) {
	out := CloneTasks(tasks)
	applied := 0
	for _, u := range updates {
		for i := range out {
			if out[i].ID == u.ID {
				p := u.Position
				out[i].Position = &p
				applied++
				break
			}
		}
	}
	return out, applied
}

// AddDependency records source as a dependency of target. Duplicate
// dependencies are not added twice.
func AddDependency(tasks []Task, sourceID, targetID string) ([]Task, bool) {
	out := CloneTasks(tasks)
	for i := range out {
		if out[i].ID != targetID {
			continue
		}
		for _, d := range out[i].Dependencies {
			if d == sourceID {
				return out, true
			}
		}
		out[i].Dependencies = append(out[i].Dependencies, sourceID)
		return out, true
	}
	return out, false
}

func stripIDs(deps []string, removed map[string]bool) []string {
	if len(deps) == 0 {
		return deps
	}
	out := make([]string, 0, len(deps))
	for _, d := range deps {
		if !removed[d] {
			out = append(out, d)
		}
	}
	return out
}
