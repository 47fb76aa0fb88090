package jsonschema

// validateEnum checks the instance's value against an Enum RootSchema's
// list of allowed values (§4.4): success iff the instance structurally
// equals at least one of them.
func (v *Validator) validateEnum(f *frame, path Key, root *RootSchema, instance *Json) bool {
	for _, allowed := range root.EnumValues {
		if instance.Equal(allowed) {
			return true
		}
	}
	f.emit(Annotation{Path: path, Kind: EnumErrorKind, EnumValues: root.EnumValues})
	return false
}
