package jsonschema

// validatePrefixItems checks each leading array element against its
// per-index sub-schema (§4.4), then unconditionally emits the informational
// PrefixItemsLen annotation so a sibling Items node at the same path knows
// where to resume.
func (v *Validator) validatePrefixItems(f *frame, path Key, root *RootSchema, instance *Json) bool {
	if instance.Kind != JsonArray {
		f.emit(Annotation{Path: path, Kind: ArrayErrorKind, ArrayReason: NotArray})
		return false
	}

	success := true
	for i, sub := range root.PrefixItems {
		if i < len(instance.Array) {
			if !v.validateSchema(f, path.PushIndex(i), sub, &instance.Array[i]) {
				success = false
			}
		} else {
			f.emit(Annotation{Path: path.PushIndex(i), Kind: ArrayErrorKind, ArrayReason: PrefixItemMissing})
			success = false
		}
	}

	f.emit(Annotation{Path: path, Kind: PrefixItemsLenKind, PrefixItemsLen: len(root.PrefixItems)})
	return success
}
