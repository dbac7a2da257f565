package vexysvgo

// StringValue holds either a slice borrowed from the parser's input buffer
// or an owned, independently allocated string. Read-only traversal never
// copies; the first write to a given value escalates it to owned.
//
// The zero value is an empty owned string.
type StringValue struct {
	borrowed []byte
	owned    string
	isOwned  bool
}

// Borrowed wraps a slice of the original parse buffer without copying it.
// Callers must not mutate buf after it is borrowed.
func Borrowed(buf []byte) StringValue {
	return StringValue{borrowed: buf}
}

// Owned wraps an independently allocated string.
func Owned(s string) StringValue {
	return StringValue{owned: s, isOwned: true}
}

// String returns the value's content. Both variants are read without a copy
// beyond what byte-to-string conversion requires.
func (v StringValue) String() string {
	if v.isOwned {
		return v.owned
	}
	return string(v.borrowed)
}

// IsBorrowed reports whether the value still aliases the original parse
// buffer rather than an owned allocation.
func (v StringValue) IsBorrowed() bool {
	return !v.isOwned
}

// Set replaces the content, always escalating to owned.
func (v *StringValue) Set(s string) {
	v.owned = s
	v.isOwned = true
	v.borrowed = nil
}

// Len returns the length of the string in bytes without materializing an
// owned copy.
func (v StringValue) Len() int {
	if v.isOwned {
		return len(v.owned)
	}
	return len(v.borrowed)
}
