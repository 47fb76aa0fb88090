package jsonschema

// validateOneOf succeeds iff exactly one sub-schema succeeds against the
// same instance at the same path (§4.4): zero successes emits OneOfMissing,
// more than one emits OneOfMoreThanOne.
func (v *Validator) validateOneOf(f *frame, path Key, root *RootSchema, instance *Json) bool {
	successes := 0
	for _, sub := range root.Logic.Schemas {
		if v.validateSchema(f, path, sub, instance) {
			successes++
		}
	}
	switch {
	case successes == 1:
		return true
	case successes == 0:
		f.emit(Annotation{Path: path, Kind: LogicErrorKind, SchemaRef: root, LogicReason: OneOfMissing})
	default:
		f.emit(Annotation{Path: path, Kind: LogicErrorKind, SchemaRef: root, LogicReason: OneOfMoreThanOne})
	}
	return false
}
