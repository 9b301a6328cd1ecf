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

	"github.com/vektah/gqlparser/v2/ast"
)

// ScalarResultCoercer coerces result value into a value represented in the Scalar type. Please read
// "Result Coercion" in [0] to provide appropriate implementation.
//
// [0]: https://facebook.github.io/graphql/June2018/#sec-Scalars
type ScalarResultCoercer interface {
	// CoerceResultValue coerces the given value to be returned as the result of a field with the
	// type.
	CoerceResultValue(value interface{}) (interface{}, error)
}

// CoerceScalarResultFunc is an adapter to allow the use of ordinary functions as
// ScalarResultCoercer.
type CoerceScalarResultFunc func(value interface{}) (interface{}, error)

// CoerceResultValue calls f(value).
func (f CoerceScalarResultFunc) CoerceResultValue(value interface{}) (interface{}, error) {
	return f(value)
}

// CoerceScalarResultFunc implements ScalarResultCoercer.
var _ ScalarResultCoercer = (CoerceScalarResultFunc)(nil)

// ScalarInputCoercer coerces input values into a value represented in the Scalar type. Please read
// "Input Coercion" in [0] to provide appropriate implementation.
//
// [0]: https://facebook.github.io/graphql/June2018/#sec-Scalars
type ScalarInputCoercer interface {
	// CoerceVariableValue coerces a scalar value supplied as a variable [0].
	//
	// [0]: https://facebook.github.io/graphql/June2018/#CoerceVariableValues()
	CoerceVariableValue(value interface{}) (interface{}, error)

	// CoerceLiteralValue coerces a scalar value written literally, such as an argument default [0].
	//
	// [0]: https://facebook.github.io/graphql/June2018/#CoerceArgumentValues()
	CoerceLiteralValue(value *ast.Value) (interface{}, error)
}

// ScalarInputCoercerFuncs is an adapter to create a ScalarInputCoercer from function values.
type ScalarInputCoercerFuncs struct {
	CoerceVariableValueFunc func(value interface{}) (interface{}, error)
	CoerceLiteralValueFunc  func(value *ast.Value) (interface{}, error)
}

// CoerceVariableValue calls f.CoerceVariableValueFunc(value).
func (f ScalarInputCoercerFuncs) CoerceVariableValue(value interface{}) (interface{}, error) {
	return f.CoerceVariableValueFunc(value)
}

// CoerceLiteralValue calls f.CoerceLiteralValueFunc(value).
func (f ScalarInputCoercerFuncs) CoerceLiteralValue(value *ast.Value) (interface{}, error) {
	return f.CoerceLiteralValueFunc(value)
}

// ScalarInputCoercerFuncs implements ScalarInputCoercer.
var _ ScalarInputCoercer = ScalarInputCoercerFuncs{}

// defaultScalarInputCoercer is used for scalar that doesn't provide coercer for processing input
// values.
type defaultScalarInputCoercer struct {
	scalar *Scalar
}

var _ ScalarInputCoercer = (*defaultScalarInputCoercer)(nil)

// CoerceVariableValue implements ScalarInputCoercer.
func (coercer *defaultScalarInputCoercer) CoerceVariableValue(value interface{}) (interface{}, error) {
	return value, nil
}

// CoerceLiteralValue implements ScalarInputCoercer.
func (coercer *defaultScalarInputCoercer) CoerceLiteralValue(value *ast.Value) (interface{}, error) {
	return nil, NewError(fmt.Sprintf("coercer for the input type %s was not provided", coercer.scalar.Name()))
}

// ScalarConfig provides specification to define a scalar type. It is given to SchemaConfig.Types
// (or to NewScalar for a scalar used standalone) for creating a Scalar.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Scalars
type ScalarConfig struct {
	ThisIsTypeDefinition

	// Name of the scalar type
	Name string

	// Description of the scalar type
	Description string

	// ResultCoercer serializes internal values for inclusion in a result
	ResultCoercer ScalarResultCoercer

	// InputCoercer parses input values given to fields of the scalar type (optional)
	InputCoercer ScalarInputCoercer
}

var _ TypeDefinition = (*ScalarConfig)(nil)

// Scalar Type Definition
//
// The leaf values of any request and input values to arguments are Scalars (or Enums) and are
// defined with a name and a series of functions used to parse input from variables or literals and
// to ensure validity.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Scalars
type Scalar struct {
	name          string
	description   string
	resultCoercer ScalarResultCoercer
	inputCoercer  ScalarInputCoercer
}

var (
	_ Type     = (*Scalar)(nil)
	_ LeafType = (*Scalar)(nil)
)

// NewScalar defines a scalar type from a ScalarConfig.
func NewScalar(config *ScalarConfig) (*Scalar, error) {
	if config == nil {
		return nil, NewError("Must provide configuration for Scalar.")
	}

	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Scalar.")
	}

	if config.ResultCoercer == nil {
		return nil, NewError(fmt.Sprintf(
			`%v must provide ResultCoercer. If this custom Scalar is also used as an input type, `+
				`ensure InputCoercer is also provided.`, config.Name))
	}

	scalar := &Scalar{
		name:          config.Name,
		description:   config.Description,
		resultCoercer: config.ResultCoercer,
	}

	if config.InputCoercer != nil {
		scalar.inputCoercer = config.InputCoercer
	} else {
		scalar.inputCoercer = &defaultScalarInputCoercer{scalar}
	}

	return scalar, nil
}

// MustNewScalar is a panic-on-fail version of NewScalar.
func MustNewScalar(config *ScalarConfig) *Scalar {
	scalar, err := NewScalar(config)
	if err != nil {
		panic(err)
	}
	return scalar
}

// graphqlType implements Type.
func (*Scalar) graphqlType() {}

// graphqlLeafType implements LeafType.
func (*Scalar) graphqlLeafType() {}

// String implements Type.
func (s *Scalar) String() string {
	return s.name
}

// Name implements TypeWithName.
func (s *Scalar) Name() string {
	return s.name
}

// Description implements TypeWithDescription.
func (s *Scalar) Description() string {
	return s.description
}

// CoerceResultValue implements LeafType.
func (s *Scalar) CoerceResultValue(value interface{}) (interface{}, error) {
	return s.resultCoercer.CoerceResultValue(value)
}

// CoerceVariableValue coerces a value supplied as a variable into an eligible Go value for the
// scalar.
func (s *Scalar) CoerceVariableValue(value interface{}) (interface{}, error) {
	return s.inputCoercer.CoerceVariableValue(value)
}

// CoerceLiteralValue coerces a literal value (such as an argument default) into an eligible Go
// value for the scalar.
func (s *Scalar) CoerceLiteralValue(value *ast.Value) (interface{}, error) {
	return s.inputCoercer.CoerceLiteralValue(value)
}
