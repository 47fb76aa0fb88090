package jsonschema

import "fmt"

// Compiler transforms a parsed Json schema document into a JsonSchema tree
// (§4.3). The zero value is not usable; build one with NewCompiler, which
// applies options on top of the defaults.
type Compiler struct {
	opts CompilerOptions
}

// NewCompiler builds a Compiler with the given options applied over the
// defaults.
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{opts: defaultCompilerOptions()}
	for _, o := range opts {
		o(&c.opts)
	}
	return c
}

// CompileJSON lexes and parses src, then compiles the result.
func (c *Compiler) CompileJSON(src string) (*JsonSchema, error) {
	doc, err := ParseString(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaCompilation, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaCompilation, ErrEmptyDocument)
	}
	schema, err := c.Compile(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaCompilation, err)
	}
	return schema, nil
}

// Compile transforms doc into a JsonSchema (§4.3). A non-object doc is
// compiled as a Primitive root schema wrapping doc by reference: an instance
// passes only if it structurally equals doc (so the schema true accepts only
// the value true).
func (c *Compiler) Compile(doc *Json) (*JsonSchema, error) {
	return c.compileAt(Key{}, doc, nil)
}

// compileAt compiles doc into a JsonSchema at path. docRoot is the schema a
// bare "#/$defs/<name>" $ref resolves against, regardless of how deeply
// nested the $ref itself is (a JSON Pointer is always read from the
// document root, not from whichever subschema happens to contain it); the
// first call passes nil, which compileAt replaces with the schema it is
// about to build, so every deeper call shares that same root.
func (c *Compiler) compileAt(path Key, doc *Json, docRoot *JsonSchema) (*JsonSchema, error) {
	c.opts.logf("compiling schema at %s", path.String())

	if doc.Kind != JsonObject {
		return &JsonSchema{
			Roots: []RootSchema{{Kind: PrimitiveSchema, Primitive: doc}},
		}, nil
	}

	schema := &JsonSchema{Unknowns: map[string]Json{}}
	if docRoot == nil {
		docRoot = schema
	}

	if idVal, ok := doc.ObjectGet("$id"); ok {
		if idVal.Kind != JsonString {
			return nil, &SchemaParseError{Path: path.Push("$id"), Kind: InvalidUri}
		}
		schema.Id = FromString(idVal.Str)
	}

	if vocabVal, ok := doc.ObjectGet("$vocabulary"); ok {
		vocab, err := compileVocabulary(path.Push("$vocabulary"), vocabVal)
		if err != nil {
			return nil, err
		}
		schema.Vocabulary = vocab
	}

	// $defs is compiled in two passes: first allocate a placeholder
	// *JsonSchema for every entry so a $ref appearing anywhere in the
	// document (including inside a sibling $defs entry) resolves to a
	// stable pointer, then fill each placeholder's body in place. This is
	// what lets $ref cycles through $defs exist as ordinary Go pointers
	// rather than requiring an arena of indices (§9's alternative strategy,
	// restated for a garbage-collected language).
	var defsOrder []string
	if defsVal, ok := doc.ObjectGet("$defs"); ok {
		if defsVal.Kind != JsonObject {
			return nil, &SchemaParseError{Path: path.Push("$defs"), Kind: NotObject}
		}
		schema.Defs = make(map[string]*JsonSchema, defsVal.ObjectLen())
		for _, name := range defsVal.ObjectKeys() {
			schema.Defs[name] = &JsonSchema{}
			defsOrder = append(defsOrder, name)
		}
		for _, name := range defsOrder {
			entry, _ := defsVal.ObjectGet(name)
			compiled, err := c.compileAt(path.Push("$defs").Push(name), entry, docRoot)
			if err != nil {
				return nil, err
			}
			*schema.Defs[name] = *compiled
		}
	}

	for _, key := range doc.ObjectKeys() {
		switch key {
		case "$id", "$vocabulary", "$defs", "properties", "required":
			// properties/required are merged into one RootSchema below,
			// after $defs so $ref inside a property schema already sees a
			// fully populated Defs map.
			continue
		case "allOf", "anyOf", "oneOf":
			root, err := c.compileLogicList(path, key, doc, docRoot)
			if err != nil {
				return nil, err
			}
			schema.Roots = append(schema.Roots, root)
		case "not":
			val, _ := doc.ObjectGet("not")
			sub, err := c.compileAt(path.Push("not"), val, docRoot)
			if err != nil {
				return nil, err
			}
			schema.Roots = append(schema.Roots, RootSchema{
				Kind:  LogicSchema,
				Logic: LogicApplier{Kind: NotApplier, Schema: sub},
			})
		case "enum":
			val, _ := doc.ObjectGet("enum")
			if val.Kind != JsonArray {
				return nil, &SchemaParseError{Path: path.Push("enum"), Kind: NotArray}
			}
			schema.Roots = append(schema.Roots, RootSchema{Kind: EnumSchema, EnumValues: val.Array})
		case "type":
			root, err := compileType(path, doc)
			if err != nil {
				return nil, err
			}
			schema.Roots = append(schema.Roots, root)
		case "items":
			val, _ := doc.ObjectGet("items")
			sub, err := c.compileAt(path.Push("items"), val, docRoot)
			if err != nil {
				return nil, err
			}
			schema.Roots = append(schema.Roots, RootSchema{Kind: ItemsSchema, Sub: sub})
		case "prefixItems":
			val, _ := doc.ObjectGet("prefixItems")
			if val.Kind != JsonArray {
				return nil, &SchemaParseError{Path: path.Push("prefixItems"), Kind: NotArray}
			}
			subs := make([]*JsonSchema, len(val.Array))
			for i := range val.Array {
				sub, err := c.compileAt(path.Push("prefixItems").PushIndex(i), &val.Array[i], docRoot)
				if err != nil {
					return nil, err
				}
				subs[i] = sub
			}
			schema.Roots = append(schema.Roots, RootSchema{Kind: PrefixItemsSchema, PrefixItems: subs})
		case "contains":
			val, _ := doc.ObjectGet("contains")
			sub, err := c.compileAt(path.Push("contains"), val, docRoot)
			if err != nil {
				return nil, err
			}
			schema.Roots = append(schema.Roots, RootSchema{Kind: ContainsSchema, Sub: sub})
		case "$ref":
			root, err := c.compileRef(path, doc, docRoot)
			if err != nil {
				return nil, err
			}
			if root == nil {
				// A non-local $ref (remote URI, bare fragment, $anchor) is
				// out of scope (§1); treat it like any other unrecognized
				// keyword rather than a runtime-deferred failure.
				val, _ := doc.ObjectGet("$ref")
				schema.Unknowns["$ref"] = *val
				continue
			}
			schema.Roots = append(schema.Roots, *root)
		default:
			val, _ := doc.ObjectGet(key)
			schema.Unknowns[key] = *val
		}
	}

	if _, hasProps := doc.ObjectGet("properties"); hasProps {
		root, err := c.compileProperties(path, doc, docRoot)
		if err != nil {
			return nil, err
		}
		schema.Roots = append(schema.Roots, root)
	} else if reqVal, hasReq := doc.ObjectGet("required"); hasReq {
		if reqVal.Kind != JsonArray {
			return nil, &SchemaParseError{Path: path.Push("required"), Kind: NotArray}
		}
		// required with no properties keyword: every named member is still
		// mandatory. Property.Schemas must stay non-empty, so anchor each
		// on an always-succeeding empty JsonSchema.
		trueSchema := &JsonSchema{}
		props := make([]Property, len(reqVal.Array))
		for i, nameVal := range reqVal.Array {
			props[i] = Property{Name: nameVal.Str, Required: true, Schemas: []*JsonSchema{trueSchema}}
		}
		schema.Roots = append(schema.Roots, RootSchema{Kind: PropertiesSchema, Properties: props})
	}

	return schema, nil
}

func compileVocabulary(path Key, val *Json) (map[string]bool, error) {
	if val.Kind != JsonObject {
		return nil, &SchemaParseError{Path: path, Kind: IllegalVocabularyType}
	}
	vocab := make(map[string]bool, val.ObjectLen())
	for _, uri := range val.ObjectKeys() {
		entry, _ := val.ObjectGet(uri)
		if entry.Kind != JsonBoolean {
			return nil, &SchemaParseError{Path: path.Push(uri), Kind: VocabularyNotBool}
		}
		vocab[uri] = entry.Boolean
	}
	return vocab, nil
}

func (c *Compiler) compileLogicList(path Key, key string, doc *Json, docRoot *JsonSchema) (RootSchema, error) {
	val, _ := doc.ObjectGet(key)
	if val.Kind != JsonArray {
		return RootSchema{}, &SchemaParseError{Path: path.Push(key), Kind: NotArray}
	}
	if len(val.Array) == 0 {
		return RootSchema{}, &SchemaParseError{Path: path.Push(key), Kind: ArrayEmpty}
	}
	subs := make([]*JsonSchema, len(val.Array))
	for i := range val.Array {
		sub, err := c.compileAt(path.Push(key).PushIndex(i), &val.Array[i], docRoot)
		if err != nil {
			return RootSchema{}, err
		}
		subs[i] = sub
	}
	var kind LogicApplierKind
	switch key {
	case "allOf":
		kind = AllOfApplier
	case "anyOf":
		kind = AnyOfApplier
	case "oneOf":
		kind = OneOfApplier
	}
	return RootSchema{Kind: LogicSchema, Logic: LogicApplier{Kind: kind, Schemas: subs}}, nil
}

func (c *Compiler) compileProperties(path Key, doc *Json, docRoot *JsonSchema) (RootSchema, error) {
	propsVal, _ := doc.ObjectGet("properties")
	if propsVal.Kind != JsonObject {
		return RootSchema{}, &SchemaParseError{Path: path.Push("properties"), Kind: NotObject}
	}

	required := map[string]bool{}
	var requiredOrder []string
	if reqVal, ok := doc.ObjectGet("required"); ok {
		if reqVal.Kind != JsonArray {
			return RootSchema{}, &SchemaParseError{Path: path.Push("required"), Kind: NotArray}
		}
		for _, nameVal := range reqVal.Array {
			if !required[nameVal.Str] {
				requiredOrder = append(requiredOrder, nameVal.Str)
			}
			required[nameVal.Str] = true
		}
	}

	props := make([]Property, 0, propsVal.ObjectLen())
	seen := map[string]bool{}
	for _, name := range propsVal.ObjectKeys() {
		val, _ := propsVal.ObjectGet(name)
		sub, err := c.compileAt(path.Push("properties").Push(name), val, docRoot)
		if err != nil {
			return RootSchema{}, err
		}
		props = append(props, Property{
			Name:     name,
			Required: required[name],
			Schemas:  []*JsonSchema{sub},
		})
		seen[name] = true
	}
	// required names absent from properties still need enforcing, anchored
	// on the always-succeeding empty schema.
	trueSchema := &JsonSchema{}
	for _, name := range requiredOrder {
		if seen[name] {
			continue
		}
		props = append(props, Property{Name: name, Required: true, Schemas: []*JsonSchema{trueSchema}})
		seen[name] = true
	}

	return RootSchema{Kind: PropertiesSchema, Properties: props}, nil
}

// compileRef resolves a local "#/$defs/<name>" $ref against docRoot, the
// outermost schema currently being compiled (§4.3). A non-string $ref
// signals RefNotString; a local $ref naming a nonexistent $defs entry
// signals RefNotFound once the two-pass $defs compile has finished
// allocating every placeholder, so a forward or cyclic reference between
// $defs siblings still resolves correctly. A non-local $ref (remote URI,
// bare fragment, $anchor) is out of scope per §1 — compileRef reports it by
// returning a nil *RootSchema so the caller files it under Unknowns instead
// of guessing at a resolution it cannot perform.
func (c *Compiler) compileRef(path Key, doc *Json, docRoot *JsonSchema) (*RootSchema, error) {
	val, _ := doc.ObjectGet("$ref")
	refPath := path.Push("$ref")
	if val.Kind != JsonString {
		return nil, &SchemaParseError{Path: refPath, Kind: RefNotString}
	}
	name, ok := localDefsRefName(val.Str)
	if !ok {
		return nil, nil
	}
	target, ok := docRoot.Defs[name]
	if !ok {
		return nil, &SchemaParseError{Path: refPath, Kind: RefNotFound}
	}
	return &RootSchema{Kind: RefSchema, Ref: target, RefName: name}, nil
}

// localDefsRefName recognizes exactly the "#/$defs/<name>" pointer form;
// any other $ref string (remote URIs, "#/" root refs, $anchor names) yields
// ok=false, and compileAt files it under Unknowns rather than guessing.
func localDefsRefName(ref string) (string, bool) {
	const prefix = "#/$defs/"
	if len(ref) <= len(prefix) || ref[:len(prefix)] != prefix {
		return "", false
	}
	return ref[len(prefix):], true
}
