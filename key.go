package jsonschema

import (
	"strconv"

	"github.com/kaptinlin/jsonpointer"
)

// SegmentKind tags whether a Key segment names an object member or indexes
// an array.
type SegmentKind int

const (
	SegmentIdentifier SegmentKind = iota
	SegmentIndex
)

// Segment is one step of a Key: either a named object member or a numeric
// array index.
type Segment struct {
	Kind SegmentKind
	Name string
	Idx  int
}

func identifierSegment(name string) Segment {
	return Segment{Kind: SegmentIdentifier, Name: name}
}

func indexSegment(idx int) Segment {
	return Segment{Kind: SegmentIndex, Idx: idx}
}

// Key is a path into a JSON value: an ordered stack of segments, each an
// object-member name or an array index. The zero value is the empty path,
// denoting the root.
type Key struct {
	segments []Segment
}

// Push returns a copy of k with name appended as an identifier segment. Key
// values are never mutated in place; every push/pop returns a new Key so
// callers can safely hold on to a Key while continuing to extend another
// copy of it (this is what lets Annotation values outlive the traversal
// frame that produced their path, per §9).
func (k Key) Push(name string) Key {
	return k.pushSegment(identifierSegment(name))
}

// PushIndex returns a copy of k with idx appended as an index segment.
func (k Key) PushIndex(idx int) Key {
	return k.pushSegment(indexSegment(idx))
}

func (k Key) pushSegment(s Segment) Key {
	next := make([]Segment, len(k.segments)+1)
	copy(next, k.segments)
	next[len(k.segments)] = s
	return Key{segments: next}
}

// Pop returns a copy of k with its last segment removed. Popping an empty
// Key returns an empty Key.
func (k Key) Pop() Key {
	if len(k.segments) == 0 {
		return k
	}
	return Key{segments: append([]Segment(nil), k.segments[:len(k.segments)-1]...)}
}

// Len reports the number of segments in k.
func (k Key) Len() int {
	return len(k.segments)
}

// Segments returns the path's segments in order. The returned slice must not
// be mutated by the caller.
func (k Key) Segments() []Segment {
	return k.segments
}

// Equal reports whether two Keys denote the same path.
func (k Key) Equal(other Key) bool {
	if len(k.segments) != len(other.segments) {
		return false
	}
	for i, s := range k.segments {
		o := other.segments[i]
		if s.Kind != o.Kind || s.Name != o.Name || s.Idx != o.Idx {
			return false
		}
	}
	return true
}

// Cursor walks an existing Key for navigation without mutating it: a cursor
// starts at the root of the path it was built from and Descend/Ascend move
// an independent read position over the same backing segments.
type Cursor struct {
	segments []Segment
	pos      int
}

// Cursor returns a read-only cursor positioned at the root of k.
func (k Key) Cursor() Cursor {
	return Cursor{segments: k.segments}
}

// Descend advances the cursor one segment and returns it, or ok=false at the
// end of the path.
func (c Cursor) Descend() (Segment, Cursor, bool) {
	if c.pos >= len(c.segments) {
		return Segment{}, c, false
	}
	return c.segments[c.pos], Cursor{segments: c.segments, pos: c.pos + 1}, true
}

// Ascend moves the cursor back one segment, or is a no-op at the root.
func (c Cursor) Ascend() Cursor {
	if c.pos == 0 {
		return c
	}
	return Cursor{segments: c.segments, pos: c.pos - 1}
}

// Get traverses json one segment at a time along k, returning the value
// found at the path or ok=false if any segment does not resolve (an object
// missing the named member, an array index out of range, or a segment kind
// that does not match the value's shape).
func (k Key) Get(json *Json) (*Json, bool) {
	current := json
	for _, seg := range k.segments {
		if current == nil {
			return nil, false
		}
		switch seg.Kind {
		case SegmentIdentifier:
			if current.Kind != JsonObject {
				return nil, false
			}
			val, ok := current.object.get(seg.Name)
			if !ok {
				return nil, false
			}
			current = val
		case SegmentIndex:
			if current.Kind != JsonArray || seg.Idx < 0 || seg.Idx >= len(current.Array) {
				return nil, false
			}
			current = &current.Array[seg.Idx]
		}
	}
	return current, true
}

// String renders k as an RFC 6901 JSON Pointer, built with
// github.com/kaptinlin/jsonpointer's Format so '~' and '/' in member names
// are escaped as "~0" and "~1" (§12.3).
func (k Key) String() string {
	if len(k.segments) == 0 {
		return ""
	}
	parts := make([]string, len(k.segments))
	for i, seg := range k.segments {
		switch seg.Kind {
		case SegmentIdentifier:
			parts[i] = seg.Name
		case SegmentIndex:
			parts[i] = strconv.Itoa(seg.Idx)
		}
	}
	return jsonpointer.Format(parts...)
}

// ParsePointer parses an RFC 6901 JSON Pointer string into a Key. Numeric
// segments are not distinguished from identifier segments by this parse
// alone (a JSON Pointer does not carry that distinction); callers that need
// Index segments for array navigation should use Key.Get against a known
// Json shape instead, or construct a Key directly with PushIndex.
func ParsePointer(pointer string) Key {
	segments := jsonpointer.Parse(pointer)
	k := Key{}
	for _, s := range segments {
		k = k.Push(s)
	}
	return k
}
