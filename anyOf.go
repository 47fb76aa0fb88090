package jsonschema

// validateAnyOf succeeds iff at least one sub-schema succeeds against the
// same instance at the same path (§4.4). Every sub-schema is still
// attempted, so the bus records each one's outcome.
func (v *Validator) validateAnyOf(f *frame, path Key, root *RootSchema, instance *Json) bool {
	success := false
	for _, sub := range root.Logic.Schemas {
		if v.validateSchema(f, path, sub, instance) {
			success = true
		}
	}
	if !success {
		f.emit(Annotation{Path: path, Kind: LogicErrorKind, SchemaRef: root, LogicReason: AnyOfMissing})
	}
	return success
}
