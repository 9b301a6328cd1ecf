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
	"errors"
	"fmt"
	"reflect"

	"github.com/vektah/gqlparser/v2/ast"
)

// EnumResultCoercer coerces a result value into an enum value defined in the subject Enum type.
type EnumResultCoercer interface {
	// Coerce finds the enum value that corresponds to the given result value.
	Coerce(value interface{}) (*EnumValue, error)
}

// EnumResultCoercerFactory creates an EnumResultCoercer for a given Enum type. The factory is
// provided to EnumConfig and is invoked when the Enum is being defined.
type EnumResultCoercerFactory interface {
	// Create is given the Enum under definition and returns a coercer to use for coercing its result
	// values.
	Create(enum *Enum) (EnumResultCoercer, error)
}

// CreateEnumResultCoercerFunc is an adapter to allow the use of ordinary functions as
// EnumResultCoercerFactory.
type CreateEnumResultCoercerFunc func(enum *Enum) (EnumResultCoercer, error)

// Create calls f(enum).
func (f CreateEnumResultCoercerFunc) Create(enum *Enum) (EnumResultCoercer, error) {
	return f(enum)
}

// CreateEnumResultCoercerFunc implements EnumResultCoercerFactory.
var _ EnumResultCoercerFactory = (CreateEnumResultCoercerFunc)(nil)

// DefaultEnumResultCoercerLookupStrategy specifies how the default EnumResultCoercer searches the
// enum value for a given result value.
type DefaultEnumResultCoercerLookupStrategy uint

// Enumeration of DefaultEnumResultCoercerLookupStrategy
const (
	// Search the enum value whose name matches the result value. This is the default.
	DefaultEnumResultCoercerLookupByName DefaultEnumResultCoercerLookupStrategy = iota

	// Search the enum value whose internal value matches the result value.
	DefaultEnumResultCoercerLookupByValue

	// The same as DefaultEnumResultCoercerLookupByValue excepts when the result value is a pointer,
	// it is dereferenced before searching.
	DefaultEnumResultCoercerLookupByValueDeref
)

// defaultEnumResultCoercerLookupByValueFactory creates a defaultEnumResultCoercerLookupByValue.
type defaultEnumResultCoercerLookupByValueFactory struct {
	deref bool
}

var _ EnumResultCoercerFactory = defaultEnumResultCoercerLookupByValueFactory{}

// Create implements EnumResultCoercerFactory.
func (factory defaultEnumResultCoercerLookupByValueFactory) Create(enum *Enum) (EnumResultCoercer, error) {
	// Build a map from internal values to the enum values to speed up the lookup.
	values := enum.Values()
	valueMap := make(map[interface{}]*EnumValue, len(values))
	for _, value := range values {
		valueMap[value.Value()] = value
	}

	return defaultEnumResultCoercerLookupByValue{
		enum:     enum,
		deref:    factory.deref,
		valueMap: valueMap,
	}, nil
}

// defaultEnumResultCoercerLookupByValue implements an EnumResultCoercer which looks up the enum
// value whose internal value matches the result value.
type defaultEnumResultCoercerLookupByValue struct {
	// The subject enum
	enum *Enum

	// If the value presents a pointer, deref specifies whether the coercer should take the value
	// from the pointer for searching valueMap.
	deref bool

	// valueMap maps enum value's internal value to the enum value.
	valueMap map[interface{}]*EnumValue
}

var errNoSuchEnumForValue = errors.New("no enum value matches the value")

// Coerce implements EnumResultCoercer.
func (coercer defaultEnumResultCoercerLookupByValue) Coerce(value interface{}) (*EnumValue, error) {
	if coercer.deref {
		v := reflect.ValueOf(value)
		if v.Kind() == reflect.Ptr {
			if !v.IsNil() {
				value = v.Elem().Interface()
			}
		}
	}

	enumValue, exists := coercer.valueMap[value]
	if !exists {
		return nil, NewDefaultResultCoercionError(coercer.enum.Name(), value, errNoSuchEnumForValue)
	}
	return enumValue, nil
}

// defaultEnumResultCoercerLookupByName implements an EnumResultCoercer which expects a string-like
// result value and will return the enum value whose name matches the value.
type defaultEnumResultCoercerLookupByName struct {
	// The subject enum
	enum *Enum
}

func newDefaultEnumResultCoercerLookupByName(enum *Enum) (EnumResultCoercer, error) {
	return defaultEnumResultCoercerLookupByName{enum}, nil
}

var errNoSuchEnumForName = errors.New("no enum value matches the name")

// Coerce implements EnumResultCoercer.
func (coercer defaultEnumResultCoercerLookupByName) Coerce(value interface{}) (*EnumValue, error) {
	enum := coercer.enum
	// Quick path for a string.
	name, ok := value.(string)
	if !ok {
		// Maybe value is some type that aliases a string.
		v := reflect.ValueOf(value)
		if v.Kind() != reflect.String {
			// We have no idea.
			return nil, NewDefaultResultCoercionError(coercer.enum.Name(), value,
				fmt.Errorf("unexpected result type `%T`", value))
		}
		// Retrieve the string value.
		name = v.String()
	}

	// Find the value.
	if value := enum.Value(name); value != nil {
		return value, nil
	}

	// Return nil result with an error.
	return nil, NewDefaultResultCoercionError(coercer.enum.Name(), value, errNoSuchEnumForName)
}

// DefaultEnumResultCoercerFactory exposes factory to create a default EnumResultCoercer with the
// given lookup strategy.
func DefaultEnumResultCoercerFactory(lookupStrategy DefaultEnumResultCoercerLookupStrategy) EnumResultCoercerFactory {
	switch lookupStrategy {
	case DefaultEnumResultCoercerLookupByName:
		return CreateEnumResultCoercerFunc(newDefaultEnumResultCoercerLookupByName)

	case DefaultEnumResultCoercerLookupByValue:
		return defaultEnumResultCoercerLookupByValueFactory{
			deref: false,
		}

	case DefaultEnumResultCoercerLookupByValueDeref:
		return defaultEnumResultCoercerLookupByValueFactory{
			deref: true,
		}
	}

	panic(fmt.Sprintf("unknown lookup strategy %v", lookupStrategy))
}

// enumNilValueType is a special type for NilEnumInternalValue.
type enumNilValueType int

// NilEnumInternalValue is a value that has a special meaning when it is given to the Value in
// EnumValueConfig. It sets the enum value with "nil" internal value. This is required because we
// cannot use "nil" (untyped) to indicate the same thing; a nil Value in EnumValueConfig means
// "use the enum value's name as its internal value".
const NilEnumInternalValue enumNilValueType = 0

// EnumValueConfig describes one value when defining an Enum type. Values are given as an ordered
// list; the order is preserved in the built type and duplicated names are rejected when the enum
// is defined.
type EnumValueConfig struct {
	// Name of the enum value
	Name string

	// Description of the enum value
	Description string

	// Value assigns an internal value for the enum value to be used when it is read from input. If
	// unspecified (i.e., nil), the name of the enum value is used. To set the internal value to nil,
	// specify NilEnumInternalValue.
	Value interface{}

	// Deprecation is non-nil when the value is tagged as deprecated.
	Deprecation *Deprecation
}

// EnumConfig provides specification to define an Enum type. It is given to SchemaConfig.Types (or
// to NewEnum for an enum used standalone) for creating an Enum.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Enums
type EnumConfig struct {
	ThisIsTypeDefinition

	// Name of the defining Enum
	Name string

	// Description for the Enum type
	Description string

	// Values to be defined in the enum, in order
	Values []EnumValueConfig

	// ResultCoercerFactory creates the coercer for serializing result values. If unspecified, the
	// coercer that looks up enum values by name is used.
	ResultCoercerFactory EnumResultCoercerFactory
}

var _ TypeDefinition = (*EnumConfig)(nil)

// EnumValue provides definition for a value in an Enum type.
//
// Reference: https://facebook.github.io/graphql/June2018/#EnumValue
type EnumValue struct {
	name        string
	description string
	value       interface{}
	deprecation *Deprecation
}

// Name of the enum value
func (v *EnumValue) Name() string {
	return v.name
}

// Description of the enum value
func (v *EnumValue) Description() string {
	return v.description
}

// Value returns the internal value to be used when the enum value is read from input.
func (v *EnumValue) Value() interface{} {
	return v.value
}

// Deprecation is non-nil when the value is tagged as deprecated.
func (v *EnumValue) Deprecation() *Deprecation {
	return v.deprecation
}

// IsDeprecated returns true if the value is tagged as deprecated.
func (v *EnumValue) IsDeprecated() bool {
	return v.deprecation.Defined()
}

// Enum Type Definition
//
// Some leaf values of requests and input values are Enums. GraphQL serializes Enum values as
// strings, however internally Enums can be represented by any kind of type, often integers.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Enums
type Enum struct {
	name          string
	description   string
	values        []*EnumValue
	nameMap       map[string]*EnumValue
	resultCoercer EnumResultCoercer
}

var (
	_ Type     = (*Enum)(nil)
	_ LeafType = (*Enum)(nil)
)

// NewEnum defines an enum type from an EnumConfig.
func NewEnum(config *EnumConfig) (*Enum, error) {
	if config == nil {
		return nil, NewError("Must provide configuration for Enum.")
	}

	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Enum.")
	}

	enum := &Enum{
		name:        config.Name,
		description: config.Description,
		values:      make([]*EnumValue, 0, len(config.Values)),
		nameMap:     make(map[string]*EnumValue, len(config.Values)),
	}

	for _, valueConfig := range config.Values {
		value := &EnumValue{
			name:        valueConfig.Name,
			description: valueConfig.Description,
			deprecation: valueConfig.Deprecation,
		}

		// Assign the internal value.
		switch internal := valueConfig.Value; internal {
		case nil:
			// Default to the name of the enum value.
			value.value = valueConfig.Name
		case NilEnumInternalValue:
			value.value = nil
		default:
			value.value = internal
		}

		if _, exists := enum.nameMap[valueConfig.Name]; exists {
			return nil, NewError(
				fmt.Sprintf("Enum type %s can include value %s only once.", config.Name, valueConfig.Name),
				NewTypePath(config.Name, valueConfig.Name),
				RuleUniqueEnumValueNames,
				ErrKindValidation)
		}

		enum.values = append(enum.values, value)
		enum.nameMap[valueConfig.Name] = value
	}

	// Create the result coercer.
	factory := config.ResultCoercerFactory
	if factory == nil {
		factory = DefaultEnumResultCoercerFactory(DefaultEnumResultCoercerLookupByName)
	}

	resultCoercer, err := factory.Create(enum)
	if err != nil {
		return nil, WrapErrorf(err, "failed to initialize result coercer for Enum %s", config.Name)
	}
	enum.resultCoercer = resultCoercer

	return enum, nil
}

// MustNewEnum is a panic-on-fail version of NewEnum.
func MustNewEnum(config *EnumConfig) *Enum {
	enum, err := NewEnum(config)
	if err != nil {
		panic(err)
	}
	return enum
}

// graphqlType implements Type.
func (*Enum) graphqlType() {}

// graphqlLeafType implements LeafType.
func (*Enum) graphqlLeafType() {}

// String implements Type.
func (e *Enum) String() string {
	return e.name
}

// Name implements TypeWithName.
func (e *Enum) Name() string {
	return e.name
}

// Description implements TypeWithDescription.
func (e *Enum) Description() string {
	return e.description
}

// Values returns all enum values defined in this Enum type in the order they were defined.
func (e *Enum) Values() []*EnumValue {
	return e.values
}

// Value finds the enum value with the given name or returns nil if there's no such one.
func (e *Enum) Value(name string) *EnumValue {
	return e.nameMap[name]
}

// CoerceResultValue implements LeafType. Enum values are serialized with their names.
func (e *Enum) CoerceResultValue(value interface{}) (interface{}, error) {
	enumValue, err := e.resultCoercer.Coerce(value)
	if err != nil {
		return nil, err
	}
	return enumValue.Name(), nil
}

// CoerceVariableValue coerces a value supplied as a variable into the internal value of the enum
// value it names.
func (e *Enum) CoerceVariableValue(value interface{}) (interface{}, error) {
	name, ok := value.(string)
	if !ok {
		// Maybe value is some type that aliases a string.
		v := reflect.ValueOf(value)
		if value == nil || v.Kind() != reflect.String {
			return nil, NewCoercionError(`Enum "%s" cannot represent non-string value: %s.`,
				e.name, inspectEnumInput(value))
		}
		name = v.String()
	}

	if enumValue := e.Value(name); enumValue != nil {
		return enumValue.Value(), nil
	}

	return nil, NewCoercionError(`Value "%s" does not exist in "%s" enum.%s`,
		name, e.name, didYouMean("the enum value ", e.suggestValueNames(name)))
}

// CoerceLiteralValue coerces a literal value (such as an argument default) into the internal value
// of the enum value it names. Only enum literals are accepted; in particular, a string literal
// carrying the name of an enum value is rejected.
func (e *Enum) CoerceLiteralValue(value *ast.Value) (interface{}, error) {
	if value.Kind != ast.EnumValue {
		return nil, NewCoercionError(`Enum "%s" cannot represent non-enum value: %s.%s`,
			e.name, renderLiteral(value), didYouMean("the enum value ", e.suggestValueNames(value.Raw)))
	}

	if enumValue := e.Value(value.Raw); enumValue != nil {
		return enumValue.Value(), nil
	}

	return nil, NewCoercionError(`Value "%s" does not exist in "%s" enum.%s`,
		value.Raw, e.name, didYouMean("the enum value ", e.suggestValueNames(value.Raw)))
}

// suggestValueNames returns the names of defined enum values that are lexically close to the given
// input.
func (e *Enum) suggestValueNames(input string) []string {
	names := make([]string, len(e.values))
	for i, value := range e.values {
		names[i] = value.Name()
	}
	return suggestionList(input, names)
}

// inspectEnumInput renders a variable value for inclusion in an error message.
func inspectEnumInput(value interface{}) string {
	if value == nil {
		return "null"
	}
	return fmt.Sprintf("%v", value)
}
