package jsonschema

// Validator walks a compiled JsonSchema against an instance Json, producing
// an ordered Annotation bus (§4.4). The zero value is not usable; build one
// with NewValidator.
type Validator struct {
	opts ValidatorOptions
}

// NewValidator builds a Validator with the given options applied over the
// defaults (MaxDepth defaultMaxDepth, no logger).
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{opts: defaultValidatorOptions()}
	for _, o := range opts {
		o(&v.opts)
	}
	return v
}

// frame carries the per-call state threaded through the traversal: the
// annotation bus being built, the current recursion depth, and a sticky
// resource-limit error that short-circuits the rest of the walk once set.
type frame struct {
	annotations *[]Annotation
	depth       int
	limitErr    error
}

// Validate walks schema against instance, returning whether every applicator
// succeeded and the full ordered Annotation bus produced along the way
// (§4.4). Annotations appear in the exact pre-order of the traversal.
//
// The error return is reserved for ErrRecursionLimitExceeded (§11): a
// resource-exhaustion condition from an unbounded $ref cycle, not a content
// judgment about the instance, so it is surfaced out-of-band rather than as
// an annotation. Every other outcome — including every validation failure —
// returns a nil error; validation itself never fails with an out-of-band
// error (§7).
func (v *Validator) Validate(schema *JsonSchema, instance *Json) (bool, []Annotation, error) {
	var annotations []Annotation
	f := &frame{annotations: &annotations}
	v.opts.logf("validating instance against %d root schema(s)", len(schema.Roots))
	ok := v.validateSchema(f, Key{}, schema, instance)
	if f.limitErr != nil {
		return false, annotations, f.limitErr
	}
	return ok, annotations, nil
}

func (f *frame) emit(a Annotation) {
	*f.annotations = append(*f.annotations, a)
}

// validateSchema validates instance against every RootSchema in schema.Roots
// in order (§4.4's JsonSchema container contract): success iff every one
// succeeds. All roots are attempted; none short-circuits the others, so the
// annotation bus reflects every applicator's outcome.
//
// Every recursive descent — not just through Ref — passes through here, so
// this is also where the recursion-depth cap from §5/§11 is enforced: a
// non-cyclic schema of ordinary depth never approaches MaxDepth, but a $ref
// cycle through $defs would recurse unboundedly without it.
func (v *Validator) validateSchema(f *frame, path Key, schema *JsonSchema, instance *Json) bool {
	if f.limitErr != nil {
		return false
	}
	f.depth++
	defer func() { f.depth-- }()
	if f.depth > v.opts.maxDepth {
		v.opts.warnf("recursion depth %d exceeded MaxDepth %d at %s, likely an unbounded $ref cycle", f.depth, v.opts.maxDepth, path.String())
		f.limitErr = ErrRecursionLimitExceeded
		return false
	}

	success := true
	for i := range schema.Roots {
		if !v.validateRoot(f, path, &schema.Roots[i], instance) {
			success = false
		}
	}
	return success
}

func (v *Validator) validateRoot(f *frame, path Key, root *RootSchema, instance *Json) bool {
	switch root.Kind {
	case PrimitiveSchema:
		return v.validatePrimitive(f, path, root, instance)
	case TypeSchema:
		return v.validateType(f, path, root, instance)
	case EnumSchema:
		return v.validateEnum(f, path, root, instance)
	case PropertiesSchema:
		return v.validateProperties(f, path, root, instance)
	case ItemsSchema:
		return v.validateItems(f, path, root, instance)
	case PrefixItemsSchema:
		return v.validatePrefixItems(f, path, root, instance)
	case ContainsSchema:
		return v.validateContains(f, path, root, instance)
	case LogicSchema:
		return v.validateLogic(f, path, root, instance)
	case RefSchema:
		return v.validateRef(f, path, root, instance)
	default:
		return true
	}
}

func (v *Validator) validatePrimitive(f *frame, path Key, root *RootSchema, instance *Json) bool {
	if instance.Equal(*root.Primitive) {
		return true
	}
	f.emit(Annotation{Path: path, Kind: Unequal, SchemaRef: root})
	return false
}

func (v *Validator) validateType(f *frame, path Key, root *RootSchema, instance *Json) bool {
	if matchesType(root.Types, instance) {
		return true
	}
	f.emit(Annotation{Path: path, Kind: TypeErrorKind, SchemaRef: root, Actual: classify(instance)})
	return false
}

func (v *Validator) validateLogic(f *frame, path Key, root *RootSchema, instance *Json) bool {
	switch root.Logic.Kind {
	case AllOfApplier:
		return v.validateAllOf(f, path, root, instance)
	case AnyOfApplier:
		return v.validateAnyOf(f, path, root, instance)
	case OneOfApplier:
		return v.validateOneOf(f, path, root, instance)
	case NotApplier:
		return v.validateNot(f, path, root, instance)
	default:
		return true
	}
}
