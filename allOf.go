package jsonschema

// validateAllOf succeeds iff every sub-schema succeeds against the same
// instance at the same path (§4.4). All sub-schemas are attempted; none
// short-circuits the others.
func (v *Validator) validateAllOf(f *frame, path Key, root *RootSchema, instance *Json) bool {
	success := true
	for _, sub := range root.Logic.Schemas {
		if !v.validateSchema(f, path, sub, instance) {
			success = false
		}
	}
	if !success {
		f.emit(Annotation{Path: path, Kind: LogicErrorKind, SchemaRef: root, LogicReason: AllOfMissing})
	}
	return success
}
