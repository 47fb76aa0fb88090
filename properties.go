package jsonschema

// validateProperties checks each Property in a PropertiesSchema RootSchema
// against the instance (§4.4). Properties do not short-circuit: every one
// is attempted regardless of earlier failures, so the annotation bus
// reflects the outcome of each named member.
func (v *Validator) validateProperties(f *frame, path Key, root *RootSchema, instance *Json) bool {
	success := true
	for _, prop := range root.Properties {
		if instance.Kind != JsonObject {
			f.emit(Annotation{
				Path:           path,
				Kind:           PropertyErrorKind,
				SchemaRef:      root,
				PropertyName:   prop.Name,
				PropertyReason: PropertyIncorrectType,
			})
			success = false
			continue
		}

		memberValue, exists := instance.ObjectGet(prop.Name)
		memberPath := path.Push(prop.Name)

		if !exists {
			f.emit(Annotation{
				Path:           path,
				Kind:           PropertyErrorKind,
				SchemaRef:      root,
				PropertyName:   prop.Name,
				PropertyReason: PropertyMissing,
			})
			if prop.Required {
				success = false
			}
			continue
		}

		propOK := true
		for _, sub := range prop.Schemas {
			if !v.validateSchema(f, memberPath, sub, memberValue) {
				propOK = false
			}
		}
		if !propOK {
			f.emit(Annotation{
				Path:           path,
				Kind:           PropertyErrorKind,
				SchemaRef:      root,
				PropertyName:   prop.Name,
				PropertyReason: PropertySchemaFailed,
			})
			success = false
		}
	}
	return success
}
