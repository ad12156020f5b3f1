package categorical

// Mapping is a bijection between a set of category strings and the
// contiguous integer range [0, Len()). Labels are assigned in the order
// categories are supplied to New, so mapping construction is deterministic.
//
// Mapping is immutable after construction: there is no Insert/Remove. Share
// a single *Mapping across every traversal/constraint model instance that
// needs the same category space (see spec §9, "Design Notes").
type Mapping struct {
	labels     map[string]int64
	categories []string
}

// New builds a Mapping from categories, assigning label i to categories[i].
// Returns ErrDuplicateCategory if any value repeats. An empty input produces
// an empty, valid Mapping.
func New(categories []string) (*Mapping, error) {
	labels := make(map[string]int64, len(categories))
	cats := make([]string, len(categories))
	for i, c := range categories {
		if _, ok := labels[c]; ok {
			return nil, ErrDuplicateCategory
		}
		labels[c] = int64(i)
		cats[i] = c
	}
	return &Mapping{labels: labels, categories: cats}, nil
}

// Label returns the integer label for name, or (Unset, false) if name is
// not present in the mapping.
func (m *Mapping) Label(name string) (int64, bool) {
	l, ok := m.labels[name]
	if !ok {
		return Unset, false
	}
	return l, true
}

// Category returns the category name for label, or ("", false) if label is
// out of range.
func (m *Mapping) Category(label int64) (string, bool) {
	if label < 0 || int(label) >= len(m.categories) {
		return "", false
	}
	return m.categories[label], true
}

// Len returns the number of categories held by this Mapping.
func (m *Mapping) Len() int { return len(m.categories) }

// IsEmpty reports whether this Mapping holds no categories.
func (m *Mapping) IsEmpty() bool { return len(m.categories) == 0 }

// Categories returns a copy of the ordered category list, categories[label] == name.
func (m *Mapping) Categories() []string {
	out := make([]string, len(m.categories))
	copy(out, m.categories)
	return out
}
