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

package graphql_test

import (
	"github.com/botobag/leto/graphql"
	"github.com/botobag/leto/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type unsupportedDefinition struct {
	graphql.ThisIsTypeDefinition
}

var _ = Describe("SchemaBuilder", func() {
	It("builds an empty schema from a nil config", func() {
		schema, errs := graphql.NewSchemaBuilder(nil).Build()
		Expect(errs.HaveOccurred()).Should(BeFalse())
		Expect(schema.State()).Should(Equal(graphql.SchemaStateValidated))
		Expect(schema.TypeMap().Size()).Should(Equal(5))
	})

	It("resolves forward references between definitions", func() {
		schema := graphql.MustNewSchema(&graphql.SchemaConfig{
			Types: []graphql.TypeDefinition{
				// Refers to Photo before the definition appears.
				&graphql.UnionConfig{
					Name:          "SearchResult",
					PossibleTypes: []string{"Photo"},
				},
				&graphql.ObjectConfig{
					Name: "Photo",
					Fields: []graphql.FieldConfig{
						{Name: "width", Type: graphql.NamedOf("Int")},
					},
				},
			},
		})

		var (
			searchResult = schema.TypeMap().Lookup("SearchResult").(*graphql.Union)
			photo        = schema.TypeMap().Lookup("Photo").(*graphql.Object)
		)
		Expect(searchResult.PossibleTypes()).Should(Equal(graphql.PossibleTypeSet{photo}))
	})

	It("resolves cyclic references between definitions", func() {
		schema := graphql.MustNewSchema(&graphql.SchemaConfig{
			Types: []graphql.TypeDefinition{
				&graphql.ObjectConfig{
					Name: "Human",
					Fields: []graphql.FieldConfig{
						{Name: "name", Type: graphql.NamedOf("String")},
						{Name: "friends", Type: graphql.ListOfNamed("Human")},
						{Name: "pet", Type: graphql.NamedOf("Droid")},
					},
				},
				&graphql.ObjectConfig{
					Name: "Droid",
					Fields: []graphql.FieldConfig{
						{Name: "owner", Type: graphql.NamedOf("Human")},
					},
				},
			},
		})

		var (
			human = schema.TypeMap().Lookup("Human").(*graphql.Object)
			droid = schema.TypeMap().Lookup("Droid").(*graphql.Object)
		)
		Expect(human.Field("friends").Type()).Should(Equal(graphql.MustNewListOfType(human)))
		Expect(human.Field("pet").Type()).Should(Equal(droid))
		Expect(droid.Field("owner").Type()).Should(Equal(human))
	})

	Describe("queries made before Build has completed", func() {
		var schema *graphql.Schema

		BeforeEach(func() {
			builder := graphql.NewSchemaBuilder(&graphql.SchemaConfig{
				Types: []graphql.TypeDefinition{
					&graphql.ObjectConfig{
						Name: "Query",
						Fields: []graphql.FieldConfig{
							{Name: "hello", Type: graphql.NamedOf("String")},
						},
					},
				},
				Query: "Query",
			})
			schema = builder.Schema()
		})

		It("reports the schema as building", func() {
			Expect(schema.State()).Should(Equal(graphql.SchemaStateBuilding))
			Expect(schema.State().String()).Should(Equal("Building"))
		})

		It("rejects type lookups", func() {
			_, err := schema.Type("Query")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual("Schema is not ready (state: Building)."),
				testutil.OpIs("Schema.Type"),
				testutil.KindIs(graphql.ErrKindNotReady),
			))
		})

		It("rejects possible type queries", func() {
			iface := graphql.MustNewSchema(&graphql.SchemaConfig{
				Types: []graphql.TypeDefinition{
					&graphql.InterfaceConfig{
						Name: "Iface",
						Fields: []graphql.FieldConfig{
							{Name: "f", Type: graphql.NamedOf("String")},
						},
					},
				},
			}).TypeMap().Lookup("Iface").(*graphql.Interface)

			_, err := schema.PossibleTypes(iface)
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual("Schema is not ready (state: Building)."),
				testutil.OpIs("Schema.PossibleTypes"),
				testutil.KindIs(graphql.ErrKindNotReady),
			))

			_, err = schema.IsSubTypeOf(graphql.Int(), graphql.Int())
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.MessageEqual("Schema is not ready (state: Building)."),
				testutil.OpIs("Schema.IsSubTypeOf"),
				testutil.KindIs(graphql.ErrKindNotReady),
			))
		})

		It("exposes no types and no root operation types", func() {
			Expect(schema.TypeMap().Size()).Should(Equal(0))
			Expect(schema.Query()).Should(BeNil())
			Expect(schema.Mutation()).Should(BeNil())
			Expect(schema.Subscription()).Should(BeNil())
		})
	})

	It("answers queries made after Build on the handle obtained before it", func() {
		builder := graphql.NewSchemaBuilder(&graphql.SchemaConfig{
			Types: []graphql.TypeDefinition{
				&graphql.ObjectConfig{
					Name: "Query",
					Fields: []graphql.FieldConfig{
						{Name: "hello", Type: graphql.NamedOf("String")},
					},
				},
			},
			Query: "Query",
		})
		schema := builder.Schema()

		built, errs := builder.Build()
		Expect(errs.HaveOccurred()).Should(BeFalse())
		Expect(built).Should(BeIdenticalTo(schema))

		Expect(schema.State()).Should(Equal(graphql.SchemaStateValidated))
		Expect(schema.Type("Query")).Should(Equal(schema.Query()))
	})

	It("builds only once", func() {
		builder := graphql.NewSchemaBuilder(&graphql.SchemaConfig{})
		schema1, errs1 := builder.Build()
		schema2, errs2 := builder.Build()
		Expect(schema1).Should(BeIdenticalTo(schema2))
		Expect(errs1).Should(Equal(errs2))
	})

	It("leaves a failed schema in the failed state", func() {
		builder := graphql.NewSchemaBuilder(&graphql.SchemaConfig{
			Types: []graphql.TypeDefinition{
				&graphql.ObjectConfig{
					Name: "BadObject",
					Fields: []graphql.FieldConfig{
						{Name: "f", Type: graphql.NamedOf("MissingType")},
					},
				},
			},
		})

		schema, errs := builder.Build()
		Expect(errs.HaveOccurred()).Should(BeTrue())
		Expect(schema.State()).Should(Equal(graphql.SchemaStateFailed))

		_, err := schema.Type("BadObject")
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("Schema is not ready (state: Failed)."),
			testutil.KindIs(graphql.ErrKindNotReady),
		))
	})

	Describe("reference resolution errors", func() {
		It("reports unknown type names with suggestions", func() {
			_, errs := graphql.NewSchema(&graphql.SchemaConfig{
				Types: []graphql.TypeDefinition{
					&graphql.ObjectConfig{
						Name: "Query",
						Fields: []graphql.FieldConfig{
							{Name: "name", Type: graphql.NamedOf("Strin")},
						},
					},
				},
			})
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(
					testutil.MessageEqual(`Unknown type "Strin". Did you mean "String"?`),
					testutil.PathEqual(graphql.NewTypePath("Query", "name")),
					testutil.KindIs(graphql.ErrKindUnknownType),
				),
			))
		})

		It("reports every unresolvable reference in one build", func() {
			_, errs := graphql.NewSchema(&graphql.SchemaConfig{
				Types: []graphql.TypeDefinition{
					&graphql.ObjectConfig{
						Name: "Query",
						Fields: []graphql.FieldConfig{
							{
								Name: "a",
								Type: graphql.NamedOf("TypeA"),
							},
							{
								Name: "b",
								Type: graphql.NamedOf("String"),
								Args: []graphql.ArgumentConfig{
									{Name: "input", Type: graphql.NamedOf("TypeB")},
								},
							},
						},
					},
				},
			})
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(
					testutil.MessageEqual(`Unknown type "TypeA".`),
					testutil.PathEqual(graphql.NewTypePath("Query", "a")),
					testutil.KindIs(graphql.ErrKindUnknownType),
				),
				testutil.MatchGraphQLError(
					testutil.MessageEqual(`Unknown type "TypeB".`),
					testutil.PathEqual(graphql.NewTypePath("Query", "b", "input")),
					testutil.KindIs(graphql.ErrKindUnknownType),
				),
			))
		})

		It("rejects a field definition without a type", func() {
			_, errs := graphql.NewSchema(&graphql.SchemaConfig{
				Types: []graphql.TypeDefinition{
					&graphql.ObjectConfig{
						Name: "Query",
						Fields: []graphql.FieldConfig{
							{Name: "name"},
						},
					},
				},
			})
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(
					testutil.MessageEqual("Must provide type for field Query.name."),
					testutil.PathEqual(graphql.NewTypePath("Query", "name")),
				),
			))
		})

		It("rejects an argument definition without a type", func() {
			_, errs := graphql.NewSchema(&graphql.SchemaConfig{
				Types: []graphql.TypeDefinition{
					&graphql.ObjectConfig{
						Name: "Query",
						Fields: []graphql.FieldConfig{
							{
								Name: "name",
								Type: graphql.NamedOf("String"),
								Args: []graphql.ArgumentConfig{
									{Name: "style"},
								},
							},
						},
					},
				},
			})
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(
					testutil.MessageEqual("Must provide type for argument Query.name(style:)."),
					testutil.PathEqual(graphql.NewTypePath("Query", "name", "style")),
				),
			))
		})

		It("rejects an input field definition without a type", func() {
			_, errs := graphql.NewSchema(&graphql.SchemaConfig{
				Types: []graphql.TypeDefinition{
					&graphql.InputObjectConfig{
						Name: "Point",
						Fields: []graphql.InputFieldConfig{
							{Name: "x"},
						},
					},
				},
			})
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(
					testutil.MessageEqual("Must provide type for input field Point.x."),
					testutil.PathEqual(graphql.NewTypePath("Point", "x")),
				),
			))
		})

		It("rejects a non-null type wrapping another non-null type", func() {
			_, errs := graphql.NewSchema(&graphql.SchemaConfig{
				Types: []graphql.TypeDefinition{
					&graphql.ObjectConfig{
						Name: "BadObject",
						Fields: []graphql.FieldConfig{
							{
								Name: "field",
								Type: graphql.NonNullOf(graphql.NonNullOfNamed("String")),
							},
						},
					},
				},
			})
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(
					testutil.MessageEqual("Expected a nullable type for NonNull but got an String!."),
					testutil.PathEqual(graphql.NewTypePath("BadObject", "field")),
					testutil.RuleIs(graphql.RuleNoDoubleNonNull),
					testutil.KindIs(graphql.ErrKindValidation),
				),
			))
		})
	})

	Describe("root operation types", func() {
		It("reports a root type name the schema does not define", func() {
			_, errs := graphql.NewSchema(&graphql.SchemaConfig{
				Types: []graphql.TypeDefinition{
					&graphql.ObjectConfig{
						Name: "Query",
						Fields: []graphql.FieldConfig{
							{Name: "hello", Type: graphql.NamedOf("String")},
						},
					},
				},
				Query:    "Query",
				Mutation: "Mutatio",
			})
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(
					testutil.MessageEqual(`Unknown type "Mutatio".`),
					testutil.PathEqual(graphql.NewTypePath("schema", "mutation")),
					testutil.KindIs(graphql.ErrKindUnknownType),
				),
			))
		})
	})

	Describe("definitions the builder cannot process", func() {
		It("rejects a nil definition", func() {
			_, errs := graphql.NewSchema(&graphql.SchemaConfig{
				Types: []graphql.TypeDefinition{nil},
			})
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(
					testutil.MessageEqual("Must provide a non-nil type definition."),
				),
			))
		})

		It("rejects a definition of an unsupported kind", func() {
			_, errs := graphql.NewSchema(&graphql.SchemaConfig{
				Types: []graphql.TypeDefinition{&unsupportedDefinition{}},
			})
			Expect(errs).Should(testutil.ConsistOfGraphQLErrors(
				testutil.MatchGraphQLError(
					testutil.MessageContainSubstring("unsupported type definition"),
				),
			))
		})
	})
})
