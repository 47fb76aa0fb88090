package jsonschema

// validateRef delegates to the $defs entry a $ref resolved to, at the same
// path (§4.4). Every RefSchema RootSchema produced by the Compiler already
// carries a resolved Ref (an unresolvable local $ref is a compile-time
// RefNotFound error, and a non-local $ref never becomes a RefSchema node at
// all — §4.3); a nil Ref here only happens against a JsonSchema tree
// assembled by hand rather than through Compile, so this guards against a
// nil dereference instead of panicking on it.
func (v *Validator) validateRef(f *frame, path Key, root *RootSchema, instance *Json) bool {
	if root.Ref == nil {
		f.emit(Annotation{Path: path, Kind: RefErrorKind, RefReason: RefUnresolved, RefTarget: root.RefName})
		return false
	}
	return v.validateSchema(f, path, root.Ref, instance)
}
