// Package matcher scores meals against a set of on-hand ingredients.
//
// Matching is deliberately loose: a meal ingredient counts as available when
// it equals a user ingredient, contains one, or is contained in one, after
// both sides are trimmed and lowercased. "chicken" therefore covers
// "chicken breast", and "salt" is covered by "unsalted butter".
package matcher
