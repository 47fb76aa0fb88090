package jsonschema

// validateNot succeeds iff the wrapped sub-schema fails against the
// instance (§4.4). Annotations produced by the inner schema during the
// probe are retained in the bus regardless of outcome — the bus is an
// audit log, not a result.
func (v *Validator) validateNot(f *frame, path Key, root *RootSchema, instance *Json) bool {
	if !v.validateSchema(f, path, root.Logic.Schema, instance) {
		return true
	}
	f.emit(Annotation{Path: path, Kind: LogicErrorKind, SchemaRef: root, LogicReason: NotIs})
	return false
}
