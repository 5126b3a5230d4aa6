// Package slices implements predicate driven search and filtering
// over slices of any element type.
//
// None of the functions retain the slice or the predicate after
// returning. Callers must not mutate the slice concurrently.
package slices

import (
	xslices "golang.org/x/exp/slices"
)

// Pred reports whether e satisfies some condition.
type Pred[E any] func(e E) bool

// Find returns the index of the first element satisfying test,
// or len(s) if there is none.
func Find[S ~[]E, E any](s S, test func(e E) bool) int {
	i := xslices.IndexFunc([]E(s), test)
	if i < 0 {
		return len(s)
	}

	return i
}

// FindPtr is like Find but returns a pointer to the matching element
// which can be used to modify it in place. Nil is returned if nothing
// matches. The pointer is valid until s is resliced or appended to.
func FindPtr[S ~[]E, E any](s S, test func(e E) bool) *E {
	i := Find(s, test)
	if i == len(s) {
		return nil
	}

	return &s[i]
}

// Contains reports whether Find would locate a match.
func Contains[S ~[]E, E any](s S, test func(e E) bool) bool {
	return Find(s, test) != len(s)
}

// Filter returns a new slice holding the elements of s satisfying test,
// in their original order. s itself is left untouched.
func Filter[S ~[]E, E any](s S, test func(e E) bool) S {
	r := make(S, 0)
	for _, e := range s {
		if test(e) {
			r = append(r, e)
		}
	}

	return r
}

// Remove deletes the elements satisfying test from s in place and
// returns the shortened slice. Remaining elements keep their order.
// Vacated slots are zeroed, so s must not be used after this.
func Remove[S ~[]E, E any](s S, test func(e E) bool) S {
	n := 0
	for _, e := range s {
		if !test(e) {
			s[n] = e
			n++
		}
	}
	zero(s[n:])

	return s[:n]
}

func zero[E any](s []E) {
	var z E
	for i := range s {
		s[i] = z
	}
}
