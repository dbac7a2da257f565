package vexysvgo

// Attr is a single attribute on an Element. Name comparisons are
// case-sensitive (SVG/XML attribute names are case-sensitive), including
// for prefixed names such as xmlns:* and xlink:*.
type Attr struct {
	Name  string
	Value StringValue
}

// AttrList is an ordered, append-friendly list of attributes. Order is
// significant (it affects stringifier output and gzip compressibility) and
// is preserved by any operation that does not explicitly reorder.
type AttrList struct {
	items []Attr
}

// Len returns the number of attributes.
func (l *AttrList) Len() int { return len(l.items) }

// At returns the attribute at position i.
func (l *AttrList) At(i int) Attr { return l.items[i] }

// All returns a read-only view of the attribute list, in order.
func (l *AttrList) All() []Attr { return l.items }

// Index returns the position of the named attribute, or -1.
func (l *AttrList) Index(name string) int {
	for i := range l.items {
		if l.items[i].Name == name {
			return i
		}
	}
	return -1
}

// Get returns the attribute value and whether it was present.
func (l *AttrList) Get(name string) (string, bool) {
	if i := l.Index(name); i >= 0 {
		return l.items[i].Value.String(), true
	}
	return "", false
}

// GetDefault returns the attribute value or a default if absent.
func (l *AttrList) GetDefault(name, def string) string {
	if v, ok := l.Get(name); ok {
		return v
	}
	return def
}

// Has reports whether the named attribute is present.
func (l *AttrList) Has(name string) bool { return l.Index(name) >= 0 }

// Set assigns a value to an attribute, preserving its existing position if
// present, or appending it at the end if not. This is the mutation every
// non-reordering plugin must use to satisfy the attribute-order invariant.
func (l *AttrList) Set(name, value string) {
	if i := l.Index(name); i >= 0 {
		l.items[i].Value.Set(value)
		return
	}
	l.items = append(l.items, Attr{Name: name, Value: Owned(value)})
}

// SetBorrowed is like Set but stores a borrowed value; used only by the
// parser.
func (l *AttrList) SetBorrowed(name string, value []byte) {
	l.items = append(l.items, Attr{Name: name, Value: Borrowed(value)})
}

// Remove deletes the named attribute, if present, preserving the relative
// order of the remainder.
func (l *AttrList) Remove(name string) bool {
	i := l.Index(name)
	if i < 0 {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return true
}

// RemoveIf deletes every attribute for which drop returns true.
func (l *AttrList) RemoveIf(drop func(Attr) bool) {
	out := l.items[:0]
	for _, a := range l.items {
		if !drop(a) {
			out = append(out, a)
		}
	}
	l.items = out
}

// SortBy reorders the attribute list in place according to less. Only the
// sortAttrs family of plugins may call this — every other plugin must
// preserve relative order.
func (l *AttrList) SortBy(less func(a, b Attr) bool) {
	// Simple insertion sort: attribute lists are short (single digits to low
	// tens of entries), so this avoids pulling in sort.Slice's reflection-ish
	// interface overhead for the common case while remaining stable.
	for i := 1; i < len(l.items); i++ {
		for j := i; j > 0 && less(l.items[j], l.items[j-1]); j-- {
			l.items[j], l.items[j-1] = l.items[j-1], l.items[j]
		}
	}
}

// Clone returns a deep copy with owned string values, safe to mutate
// independently of the source.
func (l *AttrList) Clone() AttrList {
	out := AttrList{items: make([]Attr, len(l.items))}
	for i, a := range l.items {
		out.items[i] = Attr{Name: a.Name, Value: Owned(a.Value.String())}
	}
	return out
}

// Equal reports whether two attribute lists have the same set of
// name/value pairs, ignoring order (used by mergePaths to compare
// presentation attributes modulo "d").
func (l *AttrList) Equal(other *AttrList, ignore ...string) bool {
	skip := func(name string) bool {
		for _, s := range ignore {
			if s == name {
				return true
			}
		}
		return false
	}
	count := 0
	for _, a := range l.items {
		if skip(a.Name) {
			continue
		}
		v, ok := other.Get(a.Name)
		if !ok || v != a.Value.String() {
			return false
		}
		count++
	}
	otherCount := 0
	for _, a := range other.items {
		if !skip(a.Name) {
			otherCount++
		}
	}
	return count == otherCount
}
