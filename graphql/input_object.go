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

// InputFieldConfig provides definition of a field when defining an InputObject type.
type InputFieldConfig struct {
	// Name of the defining field
	Name string

	// Description of the field
	Description string

	// Type of value yielded by the field, given as a reference to be resolved when the enclosing
	// schema is built. It must refer to an input type.
	Type TypeRef

	// DefaultValue specified the value to be assigned to the field when no input is provided.
	DefaultValue interface{}
}

// InputObjectConfig provides specification to define an InputObject type. It is given to
// SchemaConfig.Types for creating an InputObject.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Input-Objects
type InputObjectConfig struct {
	ThisIsTypeDefinition

	// Name of the defining InputObject
	Name string

	// Description for the InputObject type
	Description string

	// Fields to be defined in the InputObject type, in order
	Fields []InputFieldConfig
}

var _ TypeDefinition = (*InputObjectConfig)(nil)

// inputFieldNilValueType is a special type for NilInputFieldDefaultValue.
type inputFieldNilValueType int

// NilInputFieldDefaultValue is a value that has a special meaning when it is given to the
// DefaultValue in InputFieldConfig. It sets the default value of the field to "nil". This is not
// the same as setting DefaultValue to "nil" or not giving it a value, either of which means
// there's no default value. The constant has an internal type, therefore there's no way to create
// one outside the package.
const NilInputFieldDefaultValue inputFieldNilValueType = 0

// InputField defines a field in an InputObject type.
type InputField struct {
	name         string
	description  string
	ttype        Type
	defaultValue interface{}
}

// Name of the field
func (f *InputField) Name() string {
	return f.name
}

// Description of the field
func (f *InputField) Description() string {
	return f.description
}

// Type of value yielded by the field
func (f *InputField) Type() Type {
	return f.ttype
}

// HasDefaultValue returns true if the input field has a default value. It is useful to distinguish
// a default value that was explicitly set to nil from an unset one.
func (f *InputField) HasDefaultValue() bool {
	return f.defaultValue != nil
}

// DefaultValue returns the value to be assigned when the field was not provided in the input.
func (f *InputField) DefaultValue() interface{} {
	// Deal with NilInputFieldDefaultValue specially.
	if _, ok := f.defaultValue.(inputFieldNilValueType); ok {
		return nil
	}
	return f.defaultValue
}

// IsRequiredInputField returns true if the field must be provided in the input. That is, it yields
// a non-null type and has no default value.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Input-Object-Required-Fields
func IsRequiredInputField(field *InputField) bool {
	return IsNonNullType(field.Type()) && !field.HasDefaultValue()
}

// InputFieldList is the list of fields defined in an InputObject type, in definition order.
type InputFieldList []*InputField

// Lookup finds the field with the given name or returns nil if there's no such one. When the list
// contains more than one field with the name, the first one is returned.
func (fields InputFieldList) Lookup(name string) *InputField {
	for _, field := range fields {
		if field.Name() == name {
			return field
		}
	}
	return nil
}

// InputObject Type Definition
//
// An input object defines a structured collection of fields which may be supplied to a field
// argument.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Input-Objects
type InputObject struct {
	name        string
	description string
	fields      InputFieldList
}

var _ Type = (*InputObject)(nil)

// graphqlType implements Type.
func (*InputObject) graphqlType() {}

// String implements Type.
func (o *InputObject) String() string {
	return o.name
}

// Name implements TypeWithName.
func (o *InputObject) Name() string {
	return o.name
}

// Description implements TypeWithDescription.
func (o *InputObject) Description() string {
	return o.description
}

// Fields returns the fields defined in this InputObject type, in definition order.
func (o *InputObject) Fields() InputFieldList {
	return o.fields
}

// Field finds the field with the given name or returns nil if there's no such one.
func (o *InputObject) Field(name string) *InputField {
	return o.fields.Lookup(name)
}
