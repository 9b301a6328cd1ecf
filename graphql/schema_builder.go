/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

import (
	"fmt"
	"sync"
)

// SchemaConfig contains the definitions from which a Schema is built.
type SchemaConfig struct {
	// Types lists the definitions of all named types in the schema, in order. Definitions refer to
	// each other by name (see TypeRef) so the order doesn't affect the built schema. Built-in
	// scalar types (Int, Float, String, Boolean and ID) are predefined in every schema and must not
	// be listed.
	Types []TypeDefinition

	// Query optionally names the Object type that serves as the query root operation type. Root
	// operation types are only meaningful to schemas handed to an execution engine; a schema used as
	// a plain type registry can leave all of them unset.
	//
	// Reference: https://facebook.github.io/graphql/June2018/#sec-Root-Operation-Types
	Query string

	// Mutation optionally names the Object type that serves as the mutation root operation type.
	Mutation string

	// Subscription optionally names the Object type that serves as the subscription root operation
	// type.
	Subscription string
}

// typeRefResolver resolves a TypeRef into a Type during type finalization. path tags the type
// system element whose definition contains the reference and appears in resolution errors.
type typeRefResolver func(ref TypeRef, path TypePath) (Type, error)

// typeCreator builds one named type from its definition in two steps. LoadDataAndNew checks the
// reference-free parts of the definition and creates a "semi-initialized" type instance so the
// builder can register it by name. Finalize then resolves the type references in the definition
// and completes the instance. Splitting the two steps is what permits definitions to refer to each
// other in any order, including cyclically.
type typeCreator interface {
	// Name returns the name declared by the definition.
	Name() string

	// LoadDataAndNew loads data from the definition and creates a semi-initialized type instance.
	LoadDataAndNew() (Type, error)

	// Finalize completes the type instance created by LoadDataAndNew, appending every resolution
	// failure to errs.
	Finalize(resolver typeRefResolver, errs *Errors)
}

func newCreatorFor(def TypeDefinition) (typeCreator, error) {
	switch def := def.(type) {
	case *ScalarConfig:
		return &scalarCreator{config: def}, nil
	case *ObjectConfig:
		return &objectCreator{config: def}, nil
	case *InterfaceConfig:
		return &interfaceCreator{config: def}, nil
	case *UnionConfig:
		return &unionCreator{config: def}, nil
	case *EnumConfig:
		return &enumCreator{config: def}, nil
	case *InputObjectConfig:
		return &inputObjectCreator{config: def}, nil
	case nil:
		return nil, NewError("Must provide a non-nil type definition.")
	}
	return nil, NewError(fmt.Sprintf("Cannot build type from definition: unsupported type definition %T.", def))
}

//===-----------------------------------------------------------------------------------------===//
// Creators for each kind of named type
//===-----------------------------------------------------------------------------------------===//

// scalarCreator builds a Scalar. Scalar definitions carry no type references so all the work
// happens in LoadDataAndNew.
type scalarCreator struct {
	config *ScalarConfig
	scalar *Scalar
}

var _ typeCreator = (*scalarCreator)(nil)

// Name implements typeCreator.
func (c *scalarCreator) Name() string {
	return c.config.Name
}

// LoadDataAndNew implements typeCreator.
func (c *scalarCreator) LoadDataAndNew() (Type, error) {
	scalar, err := NewScalar(c.config)
	if err != nil {
		return nil, err
	}
	c.scalar = scalar
	return scalar, nil
}

// Finalize implements typeCreator.
func (c *scalarCreator) Finalize(resolver typeRefResolver, errs *Errors) {}

// enumCreator builds an Enum. Like scalars, enum definitions carry no type references.
type enumCreator struct {
	config *EnumConfig
	enum   *Enum
}

var _ typeCreator = (*enumCreator)(nil)

// Name implements typeCreator.
func (c *enumCreator) Name() string {
	return c.config.Name
}

// LoadDataAndNew implements typeCreator.
func (c *enumCreator) LoadDataAndNew() (Type, error) {
	enum, err := NewEnum(c.config)
	if err != nil {
		return nil, err
	}
	c.enum = enum
	return enum, nil
}

// Finalize implements typeCreator.
func (c *enumCreator) Finalize(resolver typeRefResolver, errs *Errors) {}

// objectCreator builds an Object.
type objectCreator struct {
	config *ObjectConfig
	object *Object

	// resolvedInterfaces contains the types that the declared interface names resolved to, in
	// declaration order. It keeps the types that are not interfaces, which the object itself
	// doesn't record, so the validator can report them.
	resolvedInterfaces []Type
}

var _ typeCreator = (*objectCreator)(nil)

// Name implements typeCreator.
func (c *objectCreator) Name() string {
	return c.config.Name
}

// LoadDataAndNew implements typeCreator.
func (c *objectCreator) LoadDataAndNew() (Type, error) {
	config := c.config
	if config == nil {
		return nil, NewError("Must provide configuration for Object.")
	}
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Object.")
	}

	c.object = &Object{
		name:        config.Name,
		description: config.Description,
		isTypeOf:    config.IsTypeOf,
	}
	return c.object, nil
}

// Finalize implements typeCreator.
func (c *objectCreator) Finalize(resolver typeRefResolver, errs *Errors) {
	var (
		object = c.object
		config = c.config
	)

	if n := len(config.Interfaces); n > 0 {
		path := NewTypePath(object.name)
		c.resolvedInterfaces = make([]Type, 0, n)
		object.interfaces = make([]*Interface, 0, n)
		for _, name := range config.Interfaces {
			t, err := resolver(NamedOf(name), path)
			if err != nil {
				errs.Append(err)
				continue
			}
			c.resolvedInterfaces = append(c.resolvedInterfaces, t)
			if iface, ok := t.(*Interface); ok {
				object.interfaces = append(object.interfaces, iface)
			}
		}
	}

	object.fields = buildFields(config.Fields, object.name, resolver, errs)
}

// interfaceCreator builds an Interface.
type interfaceCreator struct {
	config *InterfaceConfig
	iface  *Interface
}

var _ typeCreator = (*interfaceCreator)(nil)

// Name implements typeCreator.
func (c *interfaceCreator) Name() string {
	return c.config.Name
}

// LoadDataAndNew implements typeCreator.
func (c *interfaceCreator) LoadDataAndNew() (Type, error) {
	config := c.config
	if config == nil {
		return nil, NewError("Must provide configuration for Interface.")
	}
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Interface.")
	}

	c.iface = &Interface{
		name:        config.Name,
		description: config.Description,
	}
	return c.iface, nil
}

// Finalize implements typeCreator.
func (c *interfaceCreator) Finalize(resolver typeRefResolver, errs *Errors) {
	c.iface.fields = buildFields(c.config.Fields, c.iface.name, resolver, errs)
}

// unionCreator builds a Union.
type unionCreator struct {
	config *UnionConfig
	union  *Union

	// resolvedMembers contains the types that the declared member names resolved to, in declaration
	// order. It keeps the types that are not objects, which the union itself doesn't record, so the
	// validator can report them.
	resolvedMembers []Type
}

var _ typeCreator = (*unionCreator)(nil)

// Name implements typeCreator.
func (c *unionCreator) Name() string {
	return c.config.Name
}

// LoadDataAndNew implements typeCreator.
func (c *unionCreator) LoadDataAndNew() (Type, error) {
	config := c.config
	if config == nil {
		return nil, NewError("Must provide configuration for Union.")
	}
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Union.")
	}

	c.union = &Union{
		name:         config.Name,
		description:  config.Description,
		typeResolver: config.TypeResolver,
	}
	return c.union, nil
}

// Finalize implements typeCreator.
func (c *unionCreator) Finalize(resolver typeRefResolver, errs *Errors) {
	var (
		union = c.union
		n     = len(c.config.PossibleTypes)
	)
	if n == 0 {
		return
	}

	path := NewTypePath(union.name)
	c.resolvedMembers = make([]Type, 0, n)
	union.possibleTypes = make(PossibleTypeSet, 0, n)
	for _, name := range c.config.PossibleTypes {
		t, err := resolver(NamedOf(name), path)
		if err != nil {
			errs.Append(err)
			continue
		}
		c.resolvedMembers = append(c.resolvedMembers, t)
		if object, ok := t.(*Object); ok {
			union.possibleTypes = append(union.possibleTypes, object)
		}
	}
}

// inputObjectCreator builds an InputObject.
type inputObjectCreator struct {
	config      *InputObjectConfig
	inputObject *InputObject
}

var _ typeCreator = (*inputObjectCreator)(nil)

// Name implements typeCreator.
func (c *inputObjectCreator) Name() string {
	return c.config.Name
}

// LoadDataAndNew implements typeCreator.
func (c *inputObjectCreator) LoadDataAndNew() (Type, error) {
	config := c.config
	if config == nil {
		return nil, NewError("Must provide configuration for InputObject.")
	}
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for InputObject.")
	}

	c.inputObject = &InputObject{
		name:        config.Name,
		description: config.Description,
	}
	return c.inputObject, nil
}

// Finalize implements typeCreator.
func (c *inputObjectCreator) Finalize(resolver typeRefResolver, errs *Errors) {
	var (
		inputObject = c.inputObject
		configs     = c.config.Fields
	)

	fields := make(InputFieldList, 0, len(configs))
	for i := range configs {
		config := &configs[i]
		field := &InputField{
			name:         config.Name,
			description:  config.Description,
			defaultValue: config.DefaultValue,
		}

		path := NewTypePath(inputObject.name, config.Name)
		if config.Type == nil {
			errs.Emplace(
				fmt.Sprintf("Must provide type for input field %s.%s.", inputObject.name, config.Name),
				path)
		} else {
			t, err := resolver(config.Type, path)
			if err != nil {
				errs.Append(err)
			} else {
				field.ttype = t
			}
		}
		fields = append(fields, field)
	}
	inputObject.fields = fields
}

// buildFields resolves field definitions for an Object or Interface type. ownerName tags the type
// paths in resolution errors.
func buildFields(configs []FieldConfig, ownerName string, resolver typeRefResolver, errs *Errors) FieldList {
	fields := make(FieldList, 0, len(configs))
	for i := range configs {
		config := &configs[i]
		field := &Field{
			name:        config.Name,
			description: config.Description,
			deprecation: config.Deprecation,
		}

		fieldPath := NewTypePath(ownerName, config.Name)
		if config.Type == nil {
			errs.Emplace(
				fmt.Sprintf("Must provide type for field %s.%s.", ownerName, config.Name),
				fieldPath)
		} else {
			t, err := resolver(config.Type, fieldPath)
			if err != nil {
				errs.Append(err)
			} else {
				field.ttype = t
			}
		}

		if n := len(config.Args); n > 0 {
			field.args = make([]Argument, 0, n)
			for j := range config.Args {
				argConfig := &config.Args[j]
				arg := Argument{
					name:         argConfig.Name,
					description:  argConfig.Description,
					defaultValue: argConfig.DefaultValue,
				}

				argPath := NewTypePath(ownerName, config.Name, argConfig.Name)
				if argConfig.Type == nil {
					errs.Emplace(
						fmt.Sprintf("Must provide type for argument %s.%s(%s:).", ownerName, config.Name, argConfig.Name),
						argPath)
				} else {
					t, err := resolver(argConfig.Type, argPath)
					if err != nil {
						errs.Append(err)
					} else {
						arg.ttype = t
					}
				}
				field.args = append(field.args, arg)
			}
		}

		fields = append(fields, field)
	}
	return fields
}

//===-----------------------------------------------------------------------------------------===//
// SchemaBuilder
//===-----------------------------------------------------------------------------------------===//

// SchemaBuilder builds a Schema from a SchemaConfig. Building runs in two passes over the
// definitions followed by a validation pass:
//
//  1. Every definition is registered in the schema's type map by name after its reference-free
//     parts have been checked. Definitions whose name is already taken are reported with
//     ErrKindDuplicateName.
//
//  2. The type references in every definition are resolved against the type map. References to
//     names the map doesn't contain are reported with ErrKindUnknownType.
//
//  3. The resolved schema is validated as a whole. Every rule violation is reported with
//     ErrKindValidation (see ValidationRule).
//
// Each pass collects all errors it finds before the build stops, so a single Build reports every
// duplicate name, every unresolvable reference, or every rule violation rather than the first one.
type SchemaBuilder struct {
	config   SchemaConfig
	schema   *Schema
	creators []typeCreator

	once sync.Once
	errs Errors
}

// NewSchemaBuilder creates a SchemaBuilder that will build a Schema from the given config. The
// config is copied; changes made to it after this call have no effect on the built schema.
func NewSchemaBuilder(config *SchemaConfig) *SchemaBuilder {
	var builderConfig SchemaConfig
	if config != nil {
		builderConfig = *config
		builderConfig.Types = make([]TypeDefinition, len(config.Types))
		copy(builderConfig.Types, config.Types)
	}

	return &SchemaBuilder{
		config: builderConfig,
		schema: &Schema{
			implementations: map[string]PossibleTypeSet{},
		},
	}
}

// Schema returns the schema under construction. The handle is valid immediately; until Build has
// completed successfully the schema reports ErrKindNotReady for queries made on it.
func (builder *SchemaBuilder) Schema() *Schema {
	return builder.schema
}

// Build builds and validates the schema. It is idempotent; the build runs once and subsequent
// calls return the same result. The returned schema is non-nil even when errors occurred, in
// which case it is in the Failed state and reports ErrKindNotReady for queries.
func (builder *SchemaBuilder) Build() (*Schema, Errors) {
	builder.once.Do(builder.build)
	return builder.schema, builder.errs
}

func (builder *SchemaBuilder) build() {
	var (
		schema = builder.schema
		errs   = &builder.errs
	)

	// Built-in scalar types are predefined in every schema ahead of the config's definitions, so a
	// definition taking one of their names is a duplicate.
	builtins := []*Scalar{Int(), Float(), String(), Boolean(), ID()}
	typeMap := TypeMap{types: make(map[string]Type, len(builder.config.Types)+len(builtins))}
	for _, scalar := range builtins {
		typeMap.types[scalar.Name()] = scalar
	}
	schema.typeMap = typeMap

	// First pass: create a semi-initialized instance for every definition and register it by name.
	// The first definition wins a name; later definitions with the same name are reported and
	// dropped.
	creators := make([]typeCreator, 0, len(builder.config.Types))
	for _, def := range builder.config.Types {
		creator, err := newCreatorFor(def)
		if err != nil {
			errs.Append(err)
			continue
		}

		t, err := creator.LoadDataAndNew()
		if err != nil {
			errs.Append(err)
			continue
		}

		name := creator.Name()
		if _, exists := typeMap.types[name]; exists {
			errs.Emplace(
				fmt.Sprintf(`Schema must contain unique named types but contains multiple types named "%s".`, name),
				NewTypePath(name), ErrKindDuplicateName)
			continue
		}
		typeMap.types[name] = t
		creators = append(creators, creator)
	}
	builder.creators = creators

	if errs.HaveOccurred() {
		schema.state.Store(SchemaStateFailed)
		return
	}

	// Second pass: resolve the type references in every definition against the registered names.
	resolver := typeRefResolver(builder.resolveRef)
	for _, creator := range creators {
		creator.Finalize(resolver, errs)
	}

	// Resolve root operation types. A root name that refers to a type that is not an Object is
	// kept out of the schema here and reported by the validator.
	if name := builder.config.Query; len(name) != 0 {
		if t := builder.resolveRootType(name, "query", errs); t != nil {
			schema.query, _ = t.(*Object)
		}
	}
	if name := builder.config.Mutation; len(name) != 0 {
		if t := builder.resolveRootType(name, "mutation", errs); t != nil {
			schema.mutation, _ = t.(*Object)
		}
	}
	if name := builder.config.Subscription; len(name) != 0 {
		if t := builder.resolveRootType(name, "subscription", errs); t != nil {
			schema.subscription, _ = t.(*Object)
		}
	}

	if errs.HaveOccurred() {
		schema.state.Store(SchemaStateFailed)
		return
	}

	// Keep track of the Object types implementing each Interface. Objects are visited in
	// lexicographic name order so each set comes out deterministic.
	for _, name := range typeMap.TypeNames() {
		if object, ok := typeMap.types[name].(*Object); ok {
			for _, iface := range object.Interfaces() {
				schema.implementations[iface.Name()] = append(schema.implementations[iface.Name()], object)
			}
		}
	}

	// Validation pass: check every rule on the resolved schema, collecting all violations.
	errs.AppendErrors(validateSchema(builder))
	if errs.HaveOccurred() {
		schema.state.Store(SchemaStateFailed)
		return
	}

	schema.state.Store(SchemaStateValidated)
}

// resolveRef implements typeRefResolver on the builder's type map.
func (builder *SchemaBuilder) resolveRef(ref TypeRef, path TypePath) (Type, error) {
	switch ref := ref.(type) {
	case namedTypeRef:
		t := builder.schema.typeMap.Lookup(ref.name)
		if t == nil {
			return nil, NewError(
				fmt.Sprintf(`Unknown type "%s".%s`, ref.name, didYouMean("", builder.schema.typeMap.suggestNames(ref.name))),
				path.Clone(), ErrKindUnknownType)
		}
		return t, nil

	case listTypeRef:
		elementType, err := builder.resolveRef(ref.elementRef, path)
		if err != nil {
			return nil, err
		}
		return NewListOfType(elementType)

	case nonNullTypeRef:
		innerType, err := builder.resolveRef(ref.innerRef, path)
		if err != nil {
			return nil, err
		}
		nonNullType, err := NewNonNullOfType(innerType)
		if err != nil {
			// The only possible failure here is wrapping a non-null type in another non-null.
			if e, ok := err.(*Error); ok {
				e.Path = path.Clone()
				e.Rule = RuleNoDoubleNonNull
				e.Kind = ErrKindValidation
			}
			return nil, err
		}
		return nonNullType, nil

	case nil:
		return nil, NewError("Must provide a type reference.", path.Clone())
	}
	return nil, NewError(fmt.Sprintf("Cannot resolve type reference: unsupported reference %T.", ref), path.Clone())
}

// resolveRootType finds the named root operation type in the type map. operation tags the type
// path in the error reported for an unknown name.
func (builder *SchemaBuilder) resolveRootType(name string, operation string, errs *Errors) Type {
	t := builder.schema.typeMap.Lookup(name)
	if t == nil {
		errs.Emplace(
			fmt.Sprintf(`Unknown type "%s".%s`, name, didYouMean("", builder.schema.typeMap.suggestNames(name))),
			NewTypePath("schema", operation), ErrKindUnknownType)
		return nil
	}
	return t
}

// NewSchema builds and validates a Schema from the given config. On failure, the returned Errors
// collects everything that the failing pass found wrong with the config (see SchemaBuilder) and
// the returned schema is in the Failed state.
func NewSchema(config *SchemaConfig) (*Schema, Errors) {
	return NewSchemaBuilder(config).Build()
}

// MustNewSchema is a panic-on-fail version of NewSchema.
func MustNewSchema(config *SchemaConfig) *Schema {
	schema, errs := NewSchema(config)
	if errs.HaveOccurred() {
		panic(errs)
	}
	return schema
}
