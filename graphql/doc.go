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

// Package graphql implements the GraphQL type system as a registry that an execution engine can
// query. It builds a schema from type definitions, validates every structural rule the type
// system imposes, and answers type lookup, possible-type and subtype questions on the validated
// result. Query execution, request parsing and the parsing of schema definition language text are
// deliberately outside its scope.
//
// Definitions and the two-pass build
//
// Each named type kind has a definition config (ScalarConfig, ObjectConfig, InterfaceConfig,
// UnionConfig, EnumConfig, InputObjectConfig). Definitions refer to other types purely by name
// through TypeRef values (NamedOf, ListOf, NonNullOf), so mutually recursive and self-referential
// schemas need no lazy thunks: SchemaBuilder first registers every definition's name, then
// resolves all references against the registered names, then validates the resolved schema as a
// whole. Each pass collects everything it finds wrong before the build stops.
//
// A Schema moves through the states Building, Validated and Failed. Query operations (Type,
// PossibleTypes, IsSubTypeOf, TypeFromAST, the introspection snapshot and SDL rendering) require
// Validated and return an error of ErrKindNotReady in any other state. A Validated schema is
// immutable and safe for unsynchronized concurrent reads.
//
// Coercion
//
// Scalar and Enum types are the leaves of a GraphQL result tree. They carry three coercion
// capabilities: CoerceResultValue for values produced by the server, CoerceVariableValue for
// values supplied through variables, and CoerceLiteralValue for values written as literals in a
// parsed document (ast.Value nodes from github.com/vektah/gqlparser/v2/ast). The built-in Int,
// Float, String, Boolean and ID scalars implement the coercion rules of the specification; custom
// scalars provide their own coercers, usually on top of typeutil.CoercionHelperBase.
package graphql
