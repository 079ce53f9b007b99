package common

// Fit returns a new slice of exactly n elements: the leading elements of s,
// followed by pad(i) for every index i that s does not cover. The input
// slice is never modified or aliased. A negative n is treated as zero.
func Fit[S ~[]E, E any](s S, n int, pad func(i int) E) S {
	n = max(n, 0)

	res := make(S, n)
	copied := copy(res, s)

	for i := copied; i < n; i++ {
		res[i] = pad(i)
	}

	return res
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}
