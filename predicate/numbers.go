package predicate

import (
	"golang.org/x/exp/constraints"
)

func IsEven[N constraints.Integer](n N) bool {
	return n%2 == 0
}

func IsOdd[N constraints.Integer](n N) bool {
	return n%2 != 0
}

// IsGreater reports whether n > base. Bind it to get a predicate.
func IsGreater[N constraints.Ordered](base, n N) bool {
	return n > base
}

func IsLess[N constraints.Ordered](base, n N) bool {
	return n < base
}

// IsGreaterThanSum reports whether c > a+b.
func IsGreaterThanSum[N constraints.Integer | constraints.Float](a, b, c N) bool {
	return c > a+b
}

// Greater returns a predicate satisfied by values above base.
func Greater[N constraints.Ordered](base N) func(n N) bool {
	return Bind(IsGreater[N], base)
}

// Less returns a predicate satisfied by values below base.
func Less[N constraints.Ordered](base N) func(n N) bool {
	return Bind(IsLess[N], base)
}

// GreaterThanSum returns a predicate satisfied by values above a+b.
func GreaterThanSum[N constraints.Integer | constraints.Float](a, b N) func(c N) bool {
	return Bind2(IsGreaterThanSum[N], a, b)
}
