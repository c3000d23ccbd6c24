package xmlmerge

// Predicate identifies elements that are subject to replacement during a
// merge. Elements it rejects are never moved, cloned, or reordered.
type Predicate func(*Element) bool

// ByName returns a Predicate matching elements whose local name equals
// any of the given names.
func ByName(names ...string) Predicate {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return func(e *Element) bool {
		_, ok := set[e.Name.Local]
		return ok
	}
}

// Merge folds the matching properties of patch into doc, mutating doc in
// place. Groups are the direct children of doc's root whose local name
// equals group; for the patch, every direct child of the root counts as a
// group (fragments are parsed into a synthetic envelope, see
// ParseFragment). The walk visits the properties of every source group
// in original order:
//
//   - the first property matched by the predicate is replaced in place
//     with all matching properties from the patch, in patch order;
//   - every later match is removed, so exactly one declaration survives;
//   - non-matching properties keep their original position and group.
//
// A patch with no matching properties therefore deletes the setting from
// doc. A doc with no matching properties is left unchanged; the merge
// does not insert at a new position without an existing anchor.
//
// Merge reports whether doc was modified.
func Merge(doc, patch *Document, group string, match Predicate) bool {
	if doc == nil || doc.Root == nil {
		return false
	}

	var replacement []*Element
	if patch != nil && patch.Root != nil {
		for _, g := range patch.Root.Children {
			for _, p := range g.Children {
				if match(p) {
					replacement = append(replacement, p)
				}
			}
		}
	}

	changed := false
	replaced := false
	for _, g := range doc.Root.Children {
		if g.Name.Local != group {
			continue
		}
		kept := make([]*Element, 0, len(g.Children))
		for _, p := range g.Children {
			if !match(p) {
				kept = append(kept, p)
				continue
			}
			changed = true
			if !replaced {
				kept = append(kept, replacement...)
				replaced = true
			}
		}
		g.Children = kept
	}
	return changed
}

// MergeText is the text-to-text form of Merge: it parses source as a
// complete document and fragment as a partial snippet, merges, and
// serializes the result. The returned bool reports whether the merge
// modified the document.
func MergeText(source, fragment, group string, match Predicate) (string, bool, error) {
	doc, err := ParseString(source)
	if err != nil {
		return "", false, err
	}
	patch, err := ParseFragment(fragment)
	if err != nil {
		return "", false, err
	}
	changed := Merge(doc, patch, group, match)
	return doc.String(), changed, nil
}
