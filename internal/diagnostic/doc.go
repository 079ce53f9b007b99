// Package diagnostic collects the problems found while checking a recipe.
//
// Errors stop generation; warnings describe input that is accepted but
// probably not what the author meant, such as field names that are cut off
// by a smaller field count.
package diagnostic
