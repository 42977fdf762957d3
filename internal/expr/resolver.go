package expr

// Resolve orders assignments so that each target is computed after the
// targets it references. An assignment's dependencies are the
// identifiers in its right-hand side that are also assignment targets
// in the same batch; self-references and input variables do not count.
//
// Scheduling is an iterative fixed point: each pass appends every
// remaining assignment whose dependencies are all ordered, keeping
// original order among ties. When a pass makes no progress the
// remaining assignments are appended in their original order and the
// result is returned as-is. Cyclic or forward-referencing batches
// therefore still produce a usable ordering instead of an error; the
// generated code may read a not-yet-computed variable, which is an
// accepted limitation.
func Resolve(assignments []Assignment) []Assignment {
	targets := make(map[string]struct{}, len(assignments))
	for _, a := range assignments {
		targets[a.Target] = struct{}{}
	}

	deps := make([][]string, len(assignments))
	for i, a := range assignments {
		for _, name := range Identifiers(a.RHS) {
			if name == a.Target {
				continue
			}
			if _, ok := targets[name]; ok {
				deps[i] = append(deps[i], name)
			}
		}
	}

	ordered := make([]Assignment, 0, len(assignments))
	done := make(map[string]struct{}, len(assignments))
	remaining := make([]int, len(assignments))
	for i := range assignments {
		remaining[i] = i
	}

	for len(remaining) > 0 {
		progress := false
		var deferred []int
		for _, i := range remaining {
			if satisfied(deps[i], done) {
				ordered = append(ordered, assignments[i])
				done[assignments[i].Target] = struct{}{}
				progress = true
			} else {
				deferred = append(deferred, i)
			}
		}
		if !progress {
			for _, i := range deferred {
				ordered = append(ordered, assignments[i])
			}
			break
		}
		remaining = deferred
	}
	return ordered
}

// satisfied reports whether every dependency is already ordered.
func satisfied(deps []string, done map[string]struct{}) bool {
	for _, dep := range deps {
		if _, ok := done[dep]; !ok {
			return false
		}
	}
	return true
}
