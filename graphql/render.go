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
	"sort"
	"strconv"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

//===-----------------------------------------------------------------------------------------===//
// Literal AST nodes in GraphQL notation (for error messages)
//===-----------------------------------------------------------------------------------------===//

// literalKindName names the kind of a literal AST node the way error messages refer to it.
func literalKindName(kind ast.ValueKind) string {
	switch kind {
	case ast.Variable:
		return "Variable"
	case ast.IntValue:
		return "IntValue"
	case ast.FloatValue:
		return "FloatValue"
	case ast.StringValue:
		return "StringValue"
	case ast.BlockValue:
		return "BlockValue"
	case ast.BooleanValue:
		return "BooleanValue"
	case ast.NullValue:
		return "NullValue"
	case ast.EnumValue:
		return "EnumValue"
	case ast.ListValue:
		return "ListValue"
	case ast.ObjectValue:
		return "ObjectValue"
	}
	return "Unknown"
}

// renderLiteral prints a literal AST node in GraphQL notation.
func renderLiteral(value *ast.Value) string {
	if value == nil {
		return "null"
	}

	switch value.Kind {
	case ast.Variable:
		return "$" + value.Raw

	case ast.IntValue, ast.FloatValue, ast.BooleanValue, ast.EnumValue:
		return value.Raw

	case ast.StringValue:
		return strconv.Quote(value.Raw)

	case ast.BlockValue:
		return `"""` + value.Raw + `"""`

	case ast.NullValue:
		return "null"

	case ast.ListValue:
		parts := make([]string, len(value.Children))
		for i, child := range value.Children {
			parts[i] = renderLiteral(child.Value)
		}
		return "[" + strings.Join(parts, ", ") + "]"

	case ast.ObjectValue:
		parts := make([]string, len(value.Children))
		for i, child := range value.Children {
			parts[i] = child.Name + ": " + renderLiteral(child.Value)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}

	return value.Raw
}

//===-----------------------------------------------------------------------------------------===//
// Go values in GraphQL notation (for default values)
//===-----------------------------------------------------------------------------------------===//

// renderValue prints a Go value in GraphQL value notation. Map keys are sorted so the result is
// deterministic.
func renderValue(value interface{}) string {
	if value == nil {
		return "null"
	}

	switch value := value.(type) {
	case string:
		return strconv.Quote(value)

	case bool:
		return strconv.FormatBool(value)

	case int:
		return strconv.Itoa(value)

	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", value)

	case float32:
		return strconv.FormatFloat(float64(value), 'g', -1, 32)

	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64)

	case []interface{}:
		parts := make([]string, len(value))
		for i, item := range value {
			parts[i] = renderValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"

	case map[string]interface{}:
		names := make([]string, 0, len(value))
		for name := range value {
			names = append(names, name)
		}
		sort.Strings(names)
		parts := make([]string, len(names))
		for i, name := range names {
			parts[i] = name + ": " + renderValue(value[name])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}

	return fmt.Sprint(value)
}

// renderDefaultValue prints the Go value given as an argument or input field default in GraphQL
// value notation. The type decides how the value reads: a default for an Enum-typed input renders
// as the matching value name, unquoted.
func renderDefaultValue(value interface{}, t Type) string {
	if enum, ok := NamedTypeOf(t).(*Enum); ok && value != nil {
		if name, err := enum.CoerceResultValue(value); err == nil {
			if s, ok := name.(string); ok {
				return s
			}
		}
	}
	return renderValue(value)
}

//===-----------------------------------------------------------------------------------------===//
// Schema in schema definition language
//===-----------------------------------------------------------------------------------------===//

// isBuiltInType returns true for the predefined scalar types which every schema contains without
// declaring.
func isBuiltInType(t Type) bool {
	switch t {
	case intTypeInstance, floatTypeInstance, stringTypeInstance, booleanTypeInstance, idTypeInstance:
		return true
	}
	return false
}

// RenderSDL prints a validated schema in the schema definition language. Types print in
// lexicographic name order and built-in scalars are omitted, so the same schema always renders to
// the same text. The schema must be in the Validated state.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Type-System
func RenderSDL(schema *Schema) (string, error) {
	if schema.state.Load() != SchemaStateValidated {
		return "", schema.notReadyError("RenderSDL")
	}

	var b strings.Builder

	// The schema block is omitted when every root operation type uses its conventional name and
	// can be inferred back from the rendered text.
	if !sdlUsesCommonRootNames(schema) {
		b.WriteString("schema {\n")
		if query := schema.Query(); query != nil {
			b.WriteString("  query: ")
			b.WriteString(query.Name())
			b.WriteString("\n")
		}
		if mutation := schema.Mutation(); mutation != nil {
			b.WriteString("  mutation: ")
			b.WriteString(mutation.Name())
			b.WriteString("\n")
		}
		if subscription := schema.Subscription(); subscription != nil {
			b.WriteString("  subscription: ")
			b.WriteString(subscription.Name())
			b.WriteString("\n")
		}
		b.WriteString("}\n\n")
	}

	typeMap := schema.TypeMap()
	for _, name := range typeMap.TypeNames() {
		t := typeMap.Lookup(name)
		if isBuiltInType(t) {
			continue
		}
		switch t := t.(type) {
		case *Scalar:
			renderScalarType(&b, t)
		case *Object:
			renderObjectType(&b, t)
		case *Interface:
			renderInterfaceType(&b, t)
		case *Union:
			renderUnionType(&b, t)
		case *Enum:
			renderEnumType(&b, t)
		case *InputObject:
			renderInputObjectType(&b, t)
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

func sdlUsesCommonRootNames(schema *Schema) bool {
	if query := schema.Query(); query != nil && query.Name() != "Query" {
		return false
	}
	if mutation := schema.Mutation(); mutation != nil && mutation.Name() != "Mutation" {
		return false
	}
	if subscription := schema.Subscription(); subscription != nil && subscription.Name() != "Subscription" {
		return false
	}
	return true
}

// renderDescription prints a description as a block string. Only the block quote itself needs
// escaping inside a block string.
func renderDescription(b *strings.Builder, description string, indent string) {
	if len(description) == 0 {
		return
	}
	b.WriteString(indent)
	b.WriteString(`"""`)
	b.WriteString("\n")
	for _, line := range strings.Split(description, "\n") {
		b.WriteString(indent)
		b.WriteString(strings.Replace(line, `"""`, `\"""`, -1))
		b.WriteString("\n")
	}
	b.WriteString(indent)
	b.WriteString(`"""`)
	b.WriteString("\n")
}

func renderDeprecation(b *strings.Builder, deprecation *Deprecation) {
	if !deprecation.Defined() {
		return
	}
	b.WriteString(" @deprecated")
	if len(deprecation.Reason) != 0 {
		b.WriteString("(reason: ")
		b.WriteString(strconv.Quote(deprecation.Reason))
		b.WriteString(")")
	}
}

func renderScalarType(b *strings.Builder, scalar *Scalar) {
	renderDescription(b, scalar.Description(), "")
	b.WriteString("scalar ")
	b.WriteString(scalar.Name())
	b.WriteString("\n\n")
}

func renderObjectType(b *strings.Builder, object *Object) {
	renderDescription(b, object.Description(), "")
	b.WriteString("type ")
	b.WriteString(object.Name())
	if interfaces := object.Interfaces(); len(interfaces) > 0 {
		b.WriteString(" implements ")
		for i, iface := range interfaces {
			if i > 0 {
				b.WriteString(" & ")
			}
			b.WriteString(iface.Name())
		}
	}
	b.WriteString(" {\n")
	for _, field := range object.Fields() {
		renderFieldDefinition(b, field)
	}
	b.WriteString("}\n\n")
}

func renderInterfaceType(b *strings.Builder, iface *Interface) {
	renderDescription(b, iface.Description(), "")
	b.WriteString("interface ")
	b.WriteString(iface.Name())
	b.WriteString(" {\n")
	for _, field := range iface.Fields() {
		renderFieldDefinition(b, field)
	}
	b.WriteString("}\n\n")
}

func renderUnionType(b *strings.Builder, union *Union) {
	renderDescription(b, union.Description(), "")
	b.WriteString("union ")
	b.WriteString(union.Name())
	b.WriteString(" = ")
	for i, object := range union.PossibleTypes() {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(object.Name())
	}
	b.WriteString("\n\n")
}

func renderEnumType(b *strings.Builder, enum *Enum) {
	renderDescription(b, enum.Description(), "")
	b.WriteString("enum ")
	b.WriteString(enum.Name())
	b.WriteString(" {\n")
	for _, value := range enum.Values() {
		renderDescription(b, value.Description(), "  ")
		b.WriteString("  ")
		b.WriteString(value.Name())
		renderDeprecation(b, value.Deprecation())
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
}

func renderInputObjectType(b *strings.Builder, inputObject *InputObject) {
	renderDescription(b, inputObject.Description(), "")
	b.WriteString("input ")
	b.WriteString(inputObject.Name())
	b.WriteString(" {\n")
	for _, field := range inputObject.Fields() {
		renderDescription(b, field.Description(), "  ")
		b.WriteString("  ")
		b.WriteString(field.Name())
		b.WriteString(": ")
		b.WriteString(field.Type().String())
		if field.HasDefaultValue() {
			b.WriteString(" = ")
			b.WriteString(renderDefaultValue(field.DefaultValue(), field.Type()))
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
}

func renderFieldDefinition(b *strings.Builder, field *Field) {
	renderDescription(b, field.Description(), "  ")
	b.WriteString("  ")
	b.WriteString(field.Name())
	if args := field.Args(); len(args) > 0 {
		b.WriteString("(")
		for i := range args {
			arg := &args[i]
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.Name())
			b.WriteString(": ")
			b.WriteString(arg.Type().String())
			if arg.HasDefaultValue() {
				b.WriteString(" = ")
				b.WriteString(renderDefaultValue(arg.DefaultValue(), arg.Type()))
			}
		}
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(field.Type().String())
	renderDeprecation(b, field.Deprecation())
	b.WriteString("\n")
}
