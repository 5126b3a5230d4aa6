// Package predicate builds single argument predicates out of other
// predicates and multi-argument functions. The results plug directly
// into the functions of the slices package.
package predicate

func Not[E any](p func(e E) bool) func(e E) bool {
	return func(e E) bool {
		return !p(e)
	}
}

// And is satisfied when every one of ps is. And() is always true.
func And[E any](ps ...func(e E) bool) func(e E) bool {
	return func(e E) bool {
		for _, p := range ps {
			if !p(e) {
				return false
			}
		}

		return true
	}
}

// Or is satisfied when any of ps is. Or() is always false.
func Or[E any](ps ...func(e E) bool) func(e E) bool {
	return func(e E) bool {
		for _, p := range ps {
			if p(e) {
				return true
			}
		}

		return false
	}
}

// Bind fixes the first argument of f.
func Bind[A, E any](f func(a A, e E) bool, a A) func(e E) bool {
	return func(e E) bool {
		return f(a, e)
	}
}

// Bind2 fixes the first two arguments of f.
func Bind2[A, B, E any](f func(a A, b B, e E) bool, a A, b B) func(e E) bool {
	return func(e E) bool {
		return f(a, b, e)
	}
}

// BindLast fixes the last argument of f. Combined with a method
// expression it turns a query method taking a parameter into a
// predicate, e.g. BindLast(Item.IsGreater, 3).
func BindLast[E, A any](f func(e E, a A) bool, a A) func(e E) bool {
	return func(e E) bool {
		return f(e, a)
	}
}
