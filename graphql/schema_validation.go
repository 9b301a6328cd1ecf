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
	"regexp"
	"strings"
)

// ValidationRule identifies the schema validation rule that an error with ErrKindValidation was
// reported by. It lets callers group or filter violations without parsing messages.
type ValidationRule string

// Rules checked when a schema is validated
const (
	// Names of types, fields, arguments, enum values and input fields must be of the form
	// /^[_a-zA-Z][_a-zA-Z0-9]*$/ and must not begin with "__".
	RuleValidNames ValidationRule = "valid-names"

	// Object, Interface and InputObject types must define at least one field; Enum types at least
	// one value; Union types at least one member.
	RuleFieldsNonEmpty ValidationRule = "fields-non-empty"

	// A type may not define two fields with the same name; a field may not define two arguments
	// with the same name.
	RuleUniqueFieldNames ValidationRule = "unique-field-names"

	// An Enum type may not define two values with the same name.
	RuleUniqueEnumValueNames ValidationRule = "unique-enum-value-names"

	// Fields of Object and Interface types must yield output types.
	RuleOutputTypePosition ValidationRule = "output-type-position"

	// Field arguments and InputObject fields must accept input types.
	RuleInputTypePosition ValidationRule = "input-type-position"

	// An Object type must provide every field of every interface it implements, with compatible
	// types and arguments.
	RuleObjectImplementsInterface ValidationRule = "object-implements-interface"

	// Union member types must be Object types and may appear only once.
	RuleUnionMembersAreObjects ValidationRule = "union-members-are-objects"

	// A non-null type may not wrap another non-null type.
	RuleNoDoubleNonNull ValidationRule = "no-double-non-null"

	// Root operation types are optional but must be Object types when provided.
	RuleRootTypes ValidationRule = "root-types"
)

// nameRegexp matches names permitted for type system elements.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Names
var nameRegexp = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]*$`)

// schemaValidationContext collects rule violations found while validating a schema.
type schemaValidationContext struct {
	schema *Schema
	errs   Errors
}

// validateSchema checks every rule on the schema built by the given builder, after its type
// references have resolved. It returns all violations rather than stopping at the first one.
func validateSchema(builder *SchemaBuilder) Errors {
	ctx := &schemaValidationContext{
		schema: builder.schema,
	}

	ctx.validateRootTypes(&builder.config)

	for _, creator := range builder.creators {
		switch creator := creator.(type) {
		case *scalarCreator:
			ctx.checkName(creator.scalar.Name(), NewTypePath(creator.scalar.Name()))
		case *enumCreator:
			ctx.validateEnum(creator.enum)
		case *objectCreator:
			ctx.validateObject(creator.object, creator.resolvedInterfaces)
		case *interfaceCreator:
			ctx.validateInterface(creator.iface)
		case *unionCreator:
			ctx.validateUnion(creator.union, creator.resolvedMembers)
		case *inputObjectCreator:
			ctx.validateInputObject(creator.inputObject)
		}
	}

	return ctx.errs
}

// report records one rule violation.
func (ctx *schemaValidationContext) report(rule ValidationRule, path TypePath, message string) {
	ctx.errs.Emplace(message, rule, path, ErrKindValidation)
}

// checkName verifies that the name of a type system element has the permitted form.
func (ctx *schemaValidationContext) checkName(name string, path TypePath) {
	if strings.HasPrefix(name, "__") {
		ctx.report(RuleValidNames, path,
			fmt.Sprintf(`Name "%s" must not begin with "__", which is reserved by GraphQL introspection.`, name))
		return
	}
	if !nameRegexp.MatchString(name) {
		ctx.report(RuleValidNames, path,
			fmt.Sprintf(`Names must match /^[_a-zA-Z][_a-zA-Z0-9]*$/ but "%s" does not.`, name))
	}
}

// validateRootTypes verifies that every provided root operation type is an Object type. Root
// operation types are optional; the registry is also used without them.
func (ctx *schemaValidationContext) validateRootTypes(config *SchemaConfig) {
	schema := ctx.schema

	if len(config.Query) != 0 && schema.query == nil {
		// The name resolved to something other than an Object type; unknown names already failed
		// the build during reference resolution.
		ctx.report(RuleRootTypes, NewTypePath("schema", "query"),
			fmt.Sprintf("Query root type must be Object type but got: %s.", schema.typeMap.Lookup(config.Query)))
	}

	if len(config.Mutation) != 0 && schema.mutation == nil {
		ctx.report(RuleRootTypes, NewTypePath("schema", "mutation"),
			fmt.Sprintf("Mutation root type must be Object type if provided but got: %s.", schema.typeMap.Lookup(config.Mutation)))
	}

	if len(config.Subscription) != 0 && schema.subscription == nil {
		ctx.report(RuleRootTypes, NewTypePath("schema", "subscription"),
			fmt.Sprintf("Subscription root type must be Object type if provided but got: %s.", schema.typeMap.Lookup(config.Subscription)))
	}
}

// validateFields checks the fields shared rules between Object and Interface types: at least one
// field, unique field and argument names of valid form, output types in field positions and input
// types in argument positions.
func (ctx *schemaValidationContext) validateFields(typeName string, fields FieldList) {
	if len(fields) == 0 {
		ctx.report(RuleFieldsNonEmpty, NewTypePath(typeName),
			fmt.Sprintf("Type %s must define one or more fields.", typeName))
		return
	}

	seen := make(map[string]bool, len(fields))
	for _, field := range fields {
		path := NewTypePath(typeName, field.Name())

		if seen[field.Name()] {
			ctx.report(RuleUniqueFieldNames, path,
				fmt.Sprintf("Type %s can only define field %s once.", typeName, field.Name()))
			continue
		}
		seen[field.Name()] = true

		ctx.checkName(field.Name(), path)

		if fieldType := field.Type(); fieldType != nil && !IsOutputType(fieldType) {
			ctx.report(RuleOutputTypePosition, path,
				fmt.Sprintf("The type of %s.%s must be Output Type but got: %s.", typeName, field.Name(), fieldType))
		}

		args := field.Args()
		seenArgs := make(map[string]bool, len(args))
		for i := range args {
			arg := &args[i]
			argPath := NewTypePath(typeName, field.Name(), arg.Name())

			if seenArgs[arg.Name()] {
				ctx.report(RuleUniqueFieldNames, argPath,
					fmt.Sprintf("Field %s.%s can only define argument %s once.", typeName, field.Name(), arg.Name()))
				continue
			}
			seenArgs[arg.Name()] = true

			ctx.checkName(arg.Name(), argPath)

			if argType := arg.Type(); argType != nil && !IsInputType(argType) {
				ctx.report(RuleInputTypePosition, argPath,
					fmt.Sprintf("The type of %s.%s(%s:) must be Input Type but got: %s.", typeName, field.Name(), arg.Name(), argType))
			}
		}
	}
}

func (ctx *schemaValidationContext) validateObject(object *Object, resolvedInterfaces []Type) {
	ctx.checkName(object.Name(), NewTypePath(object.Name()))
	ctx.validateFields(object.Name(), object.Fields())

	// The implements list may only name Interface types.
	for _, t := range resolvedInterfaces {
		if _, ok := t.(*Interface); !ok {
			ctx.report(RuleObjectImplementsInterface, NewTypePath(object.Name()),
				fmt.Sprintf("Type %s must only implement Interface types, it cannot implement %s.", object.Name(), t))
		}
	}

	seen := make(map[*Interface]bool, len(object.Interfaces()))
	for _, iface := range object.Interfaces() {
		if seen[iface] {
			ctx.report(RuleObjectImplementsInterface, NewTypePath(object.Name()),
				fmt.Sprintf("Type %s can only implement %s once.", object.Name(), iface.Name()))
			continue
		}
		seen[iface] = true
		ctx.validateObjectImplementsInterface(object, iface)
	}
}

// validateObjectImplementsInterface verifies that the object provides every field the interface
// declares, with a compatible type and with every declared argument.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Objects
func (ctx *schemaValidationContext) validateObjectImplementsInterface(object *Object, iface *Interface) {
	for _, ifaceField := range iface.Fields() {
		objectField := object.Field(ifaceField.Name())
		path := NewTypePath(object.Name(), ifaceField.Name())

		// The object must include a field of the same name for every field defined in the interface.
		if objectField == nil {
			ctx.report(RuleObjectImplementsInterface, path,
				fmt.Sprintf("Interface field %s.%s expected but %s does not provide it.",
					iface.Name(), ifaceField.Name(), object.Name()))
			continue
		}

		// The object field must be of a type which is equal to or a subtype of the interface field.
		if !IsTypeSubTypeOf(ctx.schema, objectField.Type(), ifaceField.Type()) {
			ctx.report(RuleObjectImplementsInterface, path,
				fmt.Sprintf("Interface field %s.%s expects type %s but %s.%s is type %s.",
					iface.Name(), ifaceField.Name(), ifaceField.Type(),
					object.Name(), objectField.Name(), objectField.Type()))
		}

		// The object field must include an argument of the same name and type for every argument
		// defined in the interface field.
		ifaceArgs := ifaceField.Args()
		for i := range ifaceArgs {
			ifaceArg := &ifaceArgs[i]
			argPath := NewTypePath(object.Name(), ifaceField.Name(), ifaceArg.Name())

			objectArg := objectField.Argument(ifaceArg.Name())
			if objectArg == nil {
				ctx.report(RuleObjectImplementsInterface, argPath,
					fmt.Sprintf("Interface field argument %s.%s(%s:) expected but %s.%s does not provide it.",
						iface.Name(), ifaceField.Name(), ifaceArg.Name(), object.Name(), objectField.Name()))
				continue
			}

			if !IsEqualType(ifaceArg.Type(), objectArg.Type()) {
				ctx.report(RuleObjectImplementsInterface, argPath,
					fmt.Sprintf("Interface field argument %s.%s(%s:) expects type %s but %s.%s(%s:) is type %s.",
						iface.Name(), ifaceField.Name(), ifaceArg.Name(), ifaceArg.Type(),
						object.Name(), objectField.Name(), objectArg.Name(), objectArg.Type()))
			}
		}

		// The object field may not declare additional required arguments.
		objectArgs := objectField.Args()
		for i := range objectArgs {
			objectArg := &objectArgs[i]
			if ifaceField.Argument(objectArg.Name()) == nil && IsRequiredArgument(objectArg) {
				ctx.report(RuleObjectImplementsInterface,
					NewTypePath(object.Name(), objectField.Name(), objectArg.Name()),
					fmt.Sprintf("Object field %s.%s includes required argument %s that is missing from the Interface field %s.%s.",
						object.Name(), objectField.Name(), objectArg.Name(), iface.Name(), ifaceField.Name()))
			}
		}
	}
}

func (ctx *schemaValidationContext) validateInterface(iface *Interface) {
	ctx.checkName(iface.Name(), NewTypePath(iface.Name()))
	ctx.validateFields(iface.Name(), iface.Fields())
}

func (ctx *schemaValidationContext) validateUnion(union *Union, resolvedMembers []Type) {
	path := NewTypePath(union.Name())
	ctx.checkName(union.Name(), path)

	if len(resolvedMembers) == 0 {
		ctx.report(RuleFieldsNonEmpty, path,
			fmt.Sprintf("Union type %s must define one or more member types.", union.Name()))
		return
	}

	seen := make(map[*Object]bool, len(resolvedMembers))
	for _, t := range resolvedMembers {
		object, ok := t.(*Object)
		if !ok {
			ctx.report(RuleUnionMembersAreObjects, path,
				fmt.Sprintf("Union type %s can only include Object types, it cannot include %s.", union.Name(), t))
			continue
		}
		if seen[object] {
			ctx.report(RuleUnionMembersAreObjects, path,
				fmt.Sprintf("Union type %s can only include type %s once.", union.Name(), object.Name()))
			continue
		}
		seen[object] = true
	}
}

func (ctx *schemaValidationContext) validateEnum(enum *Enum) {
	ctx.checkName(enum.Name(), NewTypePath(enum.Name()))

	values := enum.Values()
	if len(values) == 0 {
		ctx.report(RuleFieldsNonEmpty, NewTypePath(enum.Name()),
			fmt.Sprintf("Enum type %s must define one or more values.", enum.Name()))
		return
	}

	for _, value := range values {
		path := NewTypePath(enum.Name(), value.Name())
		switch value.Name() {
		case "true", "false", "null":
			ctx.report(RuleValidNames, path,
				fmt.Sprintf("Enum type %s cannot include value: %s.", enum.Name(), value.Name()))
		default:
			ctx.checkName(value.Name(), path)
		}
	}
}

func (ctx *schemaValidationContext) validateInputObject(inputObject *InputObject) {
	ctx.checkName(inputObject.Name(), NewTypePath(inputObject.Name()))

	fields := inputObject.Fields()
	if len(fields) == 0 {
		ctx.report(RuleFieldsNonEmpty, NewTypePath(inputObject.Name()),
			fmt.Sprintf("Input Object type %s must define one or more fields.", inputObject.Name()))
		return
	}

	seen := make(map[string]bool, len(fields))
	for _, field := range fields {
		path := NewTypePath(inputObject.Name(), field.Name())

		if seen[field.Name()] {
			ctx.report(RuleUniqueFieldNames, path,
				fmt.Sprintf("Type %s can only define field %s once.", inputObject.Name(), field.Name()))
			continue
		}
		seen[field.Name()] = true

		ctx.checkName(field.Name(), path)

		if fieldType := field.Type(); fieldType != nil && !IsInputType(fieldType) {
			ctx.report(RuleInputTypePosition, path,
				fmt.Sprintf("The type of %s.%s must be Input Type but got: %s.", inputObject.Name(), field.Name(), fieldType))
		}
	}
}
