package jsonschema

// validateContains checks whether at least one array element satisfies a
// Contains RootSchema's sub-schema (§4.4). Sub-schema annotations produced
// while probing every element remain in the annotation bus regardless of
// whether that element ultimately satisfied the schema (annotations are an
// audit log, not a short-circuited result).
//
// minContains/maxContains are not implemented (§9's open question): the
// compiler retains them verbatim in Unknowns, unenforced.
func (v *Validator) validateContains(f *frame, path Key, root *RootSchema, instance *Json) bool {
	if instance.Kind != JsonArray {
		f.emit(Annotation{Path: path, Kind: ArrayErrorKind, ArrayReason: NotArray})
		return false
	}

	found := false
	for i := range instance.Array {
		if v.validateSchema(f, path.PushIndex(i), root.Sub, &instance.Array[i]) {
			found = true
		}
	}

	if !found {
		f.emit(Annotation{Path: path, Kind: ArrayErrorKind, ArrayReason: DoesNotContain})
	}
	return found
}
