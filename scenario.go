package main

import (
	"fmt"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/vchimishuk/algutil/predicate"
	"github.com/vchimishuk/algutil/slices"
	xslices "golang.org/x/exp/slices"
)

type Op string

const (
	OpFind   Op = "find"
	OpExists Op = "exists"
	OpCopy   Op = "copy"
	OpRemove Op = "remove"
)

// End is how a failed find is reported and expected.
const End = "end"

type Scenario struct {
	Name string
	Op   Op
	Test slices.Pred[int]
	// Index for find, true/false for exists and a space separated
	// list of numbers for copy and remove.
	Want string
}

type Result struct {
	Scenario *Scenario
	Got      string
	OK       bool
}

// Run applies the scenario to a private copy of numbers.
func (s *Scenario) Run(numbers []int) (*Result, error) {
	nums := append([]int(nil), numbers...)
	r := &Result{Scenario: s}

	switch s.Op {
	case OpFind:
		i := slices.Find(nums, s.Test)
		if i == len(nums) {
			r.Got = End
		} else {
			r.Got = strconv.Itoa(i)
		}
		r.OK = r.Got == strings.TrimSpace(s.Want)
	case OpExists:
		want, err := strconv.ParseBool(strings.TrimSpace(s.Want))
		if err != nil {
			return nil, errtrace.Wrap(
				fmt.Errorf("scenario `%s`: %w", s.Name, err))
		}
		got := slices.Contains(nums, s.Test)
		r.Got = strconv.FormatBool(got)
		r.OK = got == want
	case OpCopy, OpRemove:
		want, err := parseNumbers(s.Want)
		if err != nil {
			return nil, errtrace.Wrap(
				fmt.Errorf("scenario `%s`: %w", s.Name, err))
		}
		var got []int
		if s.Op == OpCopy {
			got = slices.Filter(nums, s.Test)
		} else {
			got = slices.Remove(nums, s.Test)
		}
		r.Got = formatNumbers(got)
		r.OK = xslices.Equal(got, want)
	default:
		return nil, errtrace.Errorf("scenario `%s`: unknown operation `%s`",
			s.Name, s.Op)
	}

	return r, nil
}

var predicates = map[string]func(arg int) slices.Pred[int]{
	"even": func(int) slices.Pred[int] {
		return predicate.IsEven[int]
	},
	"odd": func(int) slices.Pred[int] {
		return predicate.IsOdd[int]
	},
	"gt": func(arg int) slices.Pred[int] {
		return predicate.Greater(arg)
	},
	"lt": func(arg int) slices.Pred[int] {
		return predicate.Less(arg)
	},
}

// parsePredicate understands "NAME [ARG]" optionally prefixed with
// "!" to negate it, e.g. "even", "gt 6" or "!gt 5". arg is bound when
// the predicate string carries no argument of its own.
func parsePredicate(s string, arg int) (slices.Pred[int], error) {
	s = strings.TrimSpace(s)
	negate := strings.HasPrefix(s, "!")
	if negate {
		s = strings.TrimSpace(s[1:])
	}

	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return nil, errtrace.Errorf("malformed predicate `%s`", s)
	}
	mk, ok := predicates[fields[0]]
	if !ok {
		return nil, errtrace.Errorf("unknown predicate `%s`", fields[0])
	}
	if len(fields) == 2 {
		a, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errtrace.Wrap(
				fmt.Errorf("predicate `%s` argument: %w", s, err))
		}
		arg = a
	}

	p := mk(arg)
	if negate {
		p = predicate.Not(p)
	}

	return p, nil
}

func parseNumbers(s string) ([]int, error) {
	nums := []int{}
	for _, f := range strings.Fields(s) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		nums = append(nums, n)
	}

	return nums, nil
}

func formatNumbers(nums []int) string {
	var b strings.Builder
	for i, n := range nums {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(n))
	}

	return b.String()
}

func defaultNumbers() []int {
	var nums []int
	for i := 1; i < 10; i++ {
		nums = append(nums, i)
	}

	return nums
}

func defaultScenarios() []*Scenario {
	return []*Scenario{
		{"exists even", OpExists, predicate.IsEven[int], "true"},
		{"find even", OpFind, predicate.IsEven[int], "1"},
		{"find > 9", OpFind, predicate.Greater(9), End},
		{"copy even", OpCopy, predicate.IsEven[int], "2 4 6 8"},
		{"copy > 6", OpCopy, predicate.Bind(predicate.IsGreater[int], 6),
			"7 8 9"},
		{"copy !even", OpCopy, predicate.Not(predicate.IsEven[int]),
			"1 3 5 7 9"},
		{"copy > 3+4", OpCopy,
			predicate.Bind2(predicate.IsGreaterThanSum[int], 3, 4),
			"8 9"},
		{"copy !(> 5)", OpCopy, predicate.Not(predicate.Greater(5)),
			"1 2 3 4 5"},
		{"remove even", OpRemove, predicate.IsEven[int], "1 3 5 7 9"},
	}
}
