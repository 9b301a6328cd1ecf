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
	"fmt"

	"github.com/botobag/leto/graphql"
	"github.com/botobag/leto/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/vektah/gqlparser/v2/ast"
)

var _ = Describe("Enum", func() {

	// graphql-js/src/type/__tests__/definition-test.js
	It("defines an enum type with deprecated value", func() {
		enumTypeWithDeprecatedValue, err := graphql.NewEnum(&graphql.EnumConfig{
			Name: "EnumWithDeprecatedValue",
			Values: []graphql.EnumValueConfig{
				{
					Name: "foo",
					Deprecation: &graphql.Deprecation{
						Reason: "Just because",
					},
				},
			},
		})

		Expect(err).ShouldNot(HaveOccurred())
		Expect(enumTypeWithDeprecatedValue).ShouldNot(BeNil())

		enumValues := enumTypeWithDeprecatedValue.Values()
		Expect(len(enumValues)).Should(Equal(1))

		enumValue := enumValues[0]
		Expect(enumValue.Name()).Should(Equal("foo"))
		Expect(enumValue.Description()).Should(BeEmpty())
		Expect(enumValue.IsDeprecated()).Should(BeTrue())
		Expect(enumValue.Deprecation()).ShouldNot(BeNil())
		Expect(enumValue.Deprecation().Reason).Should(Equal("Just because"))
		Expect(enumValue.Value()).Should(Equal("foo"))
	})

	It("defines an enum type with a value of `null`", func() {
		enumTypeWithNullishValue, err := graphql.NewEnum(&graphql.EnumConfig{
			Name: "EnumTypeWithNullishValue",
			Values: []graphql.EnumValueConfig{
				{
					Name:  "NULL",
					Value: graphql.NilEnumInternalValue,
				},
			},
		})

		Expect(err).ShouldNot(HaveOccurred())
		Expect(enumTypeWithNullishValue).ShouldNot(BeNil())

		enumValues := enumTypeWithNullishValue.Values()
		Expect(len(enumValues)).Should(Equal(1))

		enumValue := enumValues[0]
		Expect(enumValue.Name()).Should(Equal("NULL"))
		Expect(enumValue.Description()).Should(BeEmpty())
		Expect(enumValue.IsDeprecated()).Should(BeFalse())
		Expect(enumValue.Deprecation()).Should(BeNil())
		Expect(enumValue.Value()).Should(BeNil())
	})

	It("preserves the order in which values are defined", func() {
		enum, err := graphql.NewEnum(&graphql.EnumConfig{
			Name: "Episode",
			Values: []graphql.EnumValueConfig{
				{Name: "NEWHOPE"},
				{Name: "EMPIRE"},
				{Name: "JEDI"},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())

		values := enum.Values()
		Expect(values).Should(HaveLen(3))
		Expect(values[0].Name()).Should(Equal("NEWHOPE"))
		Expect(values[1].Name()).Should(Equal("EMPIRE"))
		Expect(values[2].Name()).Should(Equal("JEDI"))

		Expect(enum.Value("EMPIRE")).Should(Equal(values[1]))
		Expect(enum.Value("FORCE_AWAKENS")).Should(BeNil())
	})

	It("rejects an enum type that includes a value more than once", func() {
		_, err := graphql.NewEnum(&graphql.EnumConfig{
			Name: "Episode",
			Values: []graphql.EnumValueConfig{
				{Name: "NEWHOPE"},
				{Name: "NEWHOPE"},
			},
		})
		Expect(err).Should(testutil.MatchGraphQLError(
			testutil.MessageEqual("Enum type Episode can include value NEWHOPE only once."),
			testutil.PathEqual(graphql.NewTypePath("Episode", "NEWHOPE")),
			testutil.RuleIs(graphql.RuleUniqueEnumValueNames),
			testutil.KindIs(graphql.ErrKindValidation),
		))
	})

	// graphql-js/src/type/__tests__/enumType-test.js
	Describe("coercion", func() {
		var episodeEnum *graphql.Enum

		episodeValues := []graphql.EnumValueConfig{
			{Name: "NEWHOPE", Value: 4},
			{Name: "EMPIRE", Value: 5},
			{Name: "JEDI", Value: 6},
		}

		BeforeEach(func() {
			episodeEnum = graphql.MustNewEnum(&graphql.EnumConfig{
				Name:   "Episode",
				Values: episodeValues,
			})
		})

		It("serializes result values by name", func() {
			Expect(episodeEnum.CoerceResultValue("JEDI")).Should(Equal("JEDI"))

			var err error
			_, err = episodeEnum.CoerceResultValue("FORCE_AWAKENS")
			Expect(err).Should(MatchCoercionError(
				`Episode cannot represent "FORCE_AWAKENS": no enum value matches the name`))

			_, err = episodeEnum.CoerceResultValue(6)
			Expect(err).Should(MatchCoercionError(
				"Episode cannot represent 6: unexpected result type `int`"))
		})

		It("serializes result values by internal value", func() {
			enum := graphql.MustNewEnum(&graphql.EnumConfig{
				Name:                 "Episode",
				Values:               episodeValues,
				ResultCoercerFactory: graphql.DefaultEnumResultCoercerFactory(graphql.DefaultEnumResultCoercerLookupByValue),
			})

			Expect(enum.CoerceResultValue(6)).Should(Equal("JEDI"))

			_, err := enum.CoerceResultValue("JEDI")
			Expect(err).Should(MatchCoercionError(
				`Episode cannot represent "JEDI": no enum value matches the value`))
		})

		It("serializes result values by dereferenced internal value", func() {
			enum := graphql.MustNewEnum(&graphql.EnumConfig{
				Name:                 "Episode",
				Values:               episodeValues,
				ResultCoercerFactory: graphql.DefaultEnumResultCoercerFactory(graphql.DefaultEnumResultCoercerLookupByValueDeref),
			})

			value := 6
			Expect(enum.CoerceResultValue(&value)).Should(Equal("JEDI"))
			Expect(enum.CoerceResultValue(4)).Should(Equal("NEWHOPE"))
		})

		It("coerces variable values to the internal value", func() {
			Expect(episodeEnum.CoerceVariableValue("NEWHOPE")).Should(Equal(4))
			Expect(episodeEnum.CoerceVariableValue("JEDI")).Should(Equal(6))
		})

		It("does not coerce non-string variable values", func() {
			var err error
			_, err = episodeEnum.CoerceVariableValue(4)
			Expect(err).Should(MatchCoercionError(
				`Enum "Episode" cannot represent non-string value: 4.`))

			_, err = episodeEnum.CoerceVariableValue(nil)
			Expect(err).Should(MatchCoercionError(
				`Enum "Episode" cannot represent non-string value: null.`))
		})

		It("suggests defined values for a misspelled variable value", func() {
			_, err := episodeEnum.CoerceVariableValue("JEDII")
			Expect(err).Should(MatchCoercionError(
				`Value "JEDII" does not exist in "Episode" enum. Did you mean the enum value "JEDI"?`))
		})

		It("coerces enum literals to the internal value", func() {
			Expect(episodeEnum.CoerceLiteralValue(literal(ast.EnumValue, "JEDI"))).Should(Equal(6))
		})

		It("does not coerce string literals", func() {
			_, err := episodeEnum.CoerceLiteralValue(literal(ast.StringValue, "JEDI"))
			Expect(err).Should(MatchCoercionError(
				`Enum "Episode" cannot represent non-enum value: "JEDI". Did you mean the enum value "JEDI"?`))
		})

		It("does not coerce numeric literals", func() {
			_, err := episodeEnum.CoerceLiteralValue(literal(ast.IntValue, "6"))
			Expect(err).Should(MatchCoercionError(
				`Enum "Episode" cannot represent non-enum value: 6.`))
		})

		It("suggests defined values for a misspelled enum literal", func() {
			_, err := episodeEnum.CoerceLiteralValue(literal(ast.EnumValue, "JEDII"))
			Expect(err).Should(MatchCoercionError(
				`Value "JEDII" does not exist in "Episode" enum. Did you mean the enum value "JEDI"?`))
		})
	})

	It("stringifies to type name", func() {
		enumType, err := graphql.NewEnum(&graphql.EnumConfig{
			Name: "Enum",
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(fmt.Sprintf("%s", enumType)).Should(Equal("Enum"))
		Expect(fmt.Sprintf("%v", enumType)).Should(Equal("Enum"))
	})

	It("rejects creating type without name", func() {
		_, err := graphql.NewEnum(&graphql.EnumConfig{
			Name: "",
		})
		Expect(err).Should(MatchError("Must provide name for Enum."))

		Expect(func() {
			graphql.MustNewEnum(&graphql.EnumConfig{})
		}).Should(Panic())
	})

	It("rejects creating type without configuration", func() {
		_, err := graphql.NewEnum(nil)
		Expect(err).Should(MatchError("Must provide configuration for Enum."))
	})
})
