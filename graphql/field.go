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

// FieldConfig describes one field when defining an Object or Interface type. Fields are given as
// an ordered list; the order is preserved in the built type and duplicated names are rejected when
// the schema is validated.
type FieldConfig struct {
	// Name of the field
	Name string

	// Description of the field
	Description string

	// Type of value yielded by the field, given as a ref to be resolved when the schema is built.
	// Must resolve to an output type.
	Type TypeRef

	// Args is an ordered list of arguments accepted by the field.
	Args []ArgumentConfig

	// Deprecation is non-nil when the field is tagged as deprecated.
	Deprecation *Deprecation
}

// argumentNilValueType is a special type for NilArgumentDefaultValue.
type argumentNilValueType int

// NilArgumentDefaultValue is a value that has a special meaning when it is given to the
// DefaultValue in ArgumentConfig. It sets the argument with default value of "null". This is
// required because we cannot use "nil" (untyped) to indicate the same thing; a nil DefaultValue in
// ArgumentConfig means "no default value".
const NilArgumentDefaultValue argumentNilValueType = 0

// ArgumentConfig describes one argument accepted by a field.
type ArgumentConfig struct {
	// Name of the argument
	Name string

	// Description of the argument
	Description string

	// Type of the value that can be given to the argument, given as a ref to be resolved when the
	// schema is built. Must resolve to an input type.
	Type TypeRef

	// DefaultValue specifies the value to be assigned to the argument when no value is provided.
	// Use NilArgumentDefaultValue to set the default to "null"; leaving this nil means the argument
	// has no default.
	DefaultValue interface{}
}

// Field represents a field in an Object or Interface type after its type refs have been resolved.
//
// Reference: https://facebook.github.io/graphql/June2018/#FieldDefinition
type Field struct {
	name        string
	description string
	ttype       Type
	args        []Argument
	deprecation *Deprecation
}

// Name of the field
func (f *Field) Name() string {
	return f.name
}

// Description of the field
func (f *Field) Description() string {
	return f.description
}

// Type of value yielded by the field
func (f *Field) Type() Type {
	return f.ttype
}

// Args returns the arguments accepted by the field in the order they were defined.
func (f *Field) Args() []Argument {
	return f.args
}

// Argument finds the argument with the given name or returns nil if there's no such one.
func (f *Field) Argument(name string) *Argument {
	for i := range f.args {
		if f.args[i].name == name {
			return &f.args[i]
		}
	}
	return nil
}

// Deprecation is non-nil when the field is tagged as deprecated.
func (f *Field) Deprecation() *Deprecation {
	return f.deprecation
}

// IsDeprecated returns true if the field is tagged as deprecated.
func (f *Field) IsDeprecated() bool {
	return f.deprecation.Defined()
}

// FieldList is an ordered list of fields in an Object or Interface type.
type FieldList []*Field

// Lookup finds the field with the given name or returns nil if there's no such one.
func (l FieldList) Lookup(name string) *Field {
	for _, f := range l {
		if f.name == name {
			return f
		}
	}
	return nil
}

// Argument represents an argument of a field after its type ref has been resolved.
//
// Reference: https://facebook.github.io/graphql/June2018/#InputValueDefinition
type Argument struct {
	name         string
	description  string
	ttype        Type
	defaultValue interface{}
}

// Name of the argument
func (arg *Argument) Name() string {
	return arg.name
}

// Description of the argument
func (arg *Argument) Description() string {
	return arg.description
}

// Type of the value that can be given to the argument
func (arg *Argument) Type() Type {
	return arg.ttype
}

// HasDefaultValue returns true if the argument has a default value.
func (arg *Argument) HasDefaultValue() bool {
	return arg.defaultValue != nil
}

// DefaultValue returns the default value of the argument. The distinction between a "null" default
// and no default is made by HasDefaultValue.
func (arg *Argument) DefaultValue() interface{} {
	if arg.defaultValue == NilArgumentDefaultValue {
		return nil
	}
	return arg.defaultValue
}

// IsRequiredArgument returns true if a value must be provided for the argument: its type is
// non-null and it has no default.
//
// Reference: https://facebook.github.io/graphql/draft/#sec-Required-Arguments
func IsRequiredArgument(arg *Argument) bool {
	return IsNonNullType(arg.Type()) && !arg.HasDefaultValue()
}

// MockArgument creates an Argument object. This is only used in the tests to create an Argument for
// comparing with one in Type instances. We never use this to create an Argument.
func MockArgument(name string, description string, t Type, defaultValue interface{}) Argument {
	return Argument{
		name:         name,
		description:  description,
		ttype:        t,
		defaultValue: defaultValue,
	}
}
