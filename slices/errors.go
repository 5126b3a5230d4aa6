package slices

// FindErr is Find for predicates that can fail. The first error
// returned by test stops the scan and is returned as is.
func FindErr[S ~[]E, E any](s S, test func(e E) (bool, error)) (int, error) {
	for i, e := range s {
		ok, err := test(e)
		if err != nil {
			return len(s), err
		}
		if ok {
			return i, nil
		}
	}

	return len(s), nil
}

// ContainsErr reports whether FindErr would locate a match.
func ContainsErr[S ~[]E, E any](s S, test func(e E) (bool, error)) (bool, error) {
	i, err := FindErr(s, test)
	if err != nil {
		return false, err
	}

	return i != len(s), nil
}

// FilterErr is Filter for predicates that can fail. Nothing is
// returned but the error if test fails.
func FilterErr[S ~[]E, E any](s S, test func(e E) (bool, error)) (S, error) {
	r := make(S, 0)
	for _, e := range s {
		ok, err := test(e)
		if err != nil {
			return nil, err
		}
		if ok {
			r = append(r, e)
		}
	}

	return r, nil
}

// RemoveErr is Remove for predicates that can fail. On error the
// returned slice holds the survivors found so far followed by every
// element not yet examined, starting with the one test failed on.
// Nothing that should have been kept is lost, but removal up to
// that point has already happened.
func RemoveErr[S ~[]E, E any](s S, test func(e E) (bool, error)) (S, error) {
	n := 0
	for i, e := range s {
		rm, err := test(e)
		if err != nil {
			n += copy(s[n:], s[i:])
			zero(s[n:])
			return s[:n], err
		}
		if !rm {
			s[n] = e
			n++
		}
	}
	zero(s[n:])

	return s[:n], nil
}
