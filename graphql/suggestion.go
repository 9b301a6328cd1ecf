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
	"github.com/botobag/leto/internal/util"
)

// maxSuggestions caps the number of alternatives offered in a "Did you mean" message.
const maxSuggestions = 5

// suggestionList returns names in options that are lexically close to input, ordered by
// similarity.
func suggestionList(input string, options []string) []string {
	return util.SuggestionList(input, options)
}

// didYouMean formats a "Did you mean" message from a list of suggested names. It returns an empty
// string when there are no suggestions, otherwise the message has a leading space so it can be
// appended to the main error message directly. subMessage, when non-empty, is inserted between
// "Did you mean" and the suggestions (e.g., "the enum value ").
func didYouMean(subMessage string, suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	return " Did you mean " + subMessage + util.OrList(suggestions, maxSuggestions, true /*quoted*/) + "?"
}
