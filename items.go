package jsonschema

// validateItems checks the array instance's elements from the start index
// onward against an ItemsSchema RootSchema's sub-schema (§4.4). The start
// index is the count carried by the most recent PrefixItemsLen annotation
// at the same path, found by scanning the annotation bus backward (0 if no
// such annotation exists) — this is the cross-keyword coordination the flat
// annotation bus exists to support (§9).
func (v *Validator) validateItems(f *frame, path Key, root *RootSchema, instance *Json) bool {
	if instance.Kind != JsonArray {
		f.emit(Annotation{Path: path, Kind: ArrayErrorKind, ArrayReason: NotArray})
		return false
	}

	start := prefixItemsLenAt(*f.annotations, path)

	success := true
	for i := start; i < len(instance.Array); i++ {
		if !v.validateSchema(f, path.PushIndex(i), root.Sub, &instance.Array[i]) {
			success = false
		}
	}
	return success
}

// prefixItemsLenAt scans annotations backward for the most recent
// PrefixItemsLen entry at path, returning its count or 0 if none is found.
func prefixItemsLenAt(annotations []Annotation, path Key) int {
	for i := len(annotations) - 1; i >= 0; i-- {
		a := annotations[i]
		if a.Kind == PrefixItemsLenKind && a.Path.Equal(path) {
			return a.PrefixItemsLen
		}
	}
	return 0
}
