package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/ib-77/ropair/pkg/rop"
	"github.com/ib-77/ropair/pkg/rop/core"
	"github.com/ib-77/ropair/pkg/rop/lite"
)

var ErrEmptyInput = errors.New("empty input")

type entry struct {
	Index int
	Raw   string
}

type parsed struct {
	Index int
	Value int
}

// ParseError keeps the position of the input that failed so pairs can be
// put back in order once the value side is absent.
type ParseError struct {
	Index int
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("input %d (%q): %v", e.Index, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseEntry(_ context.Context, in entry) (parsed, error) {
	raw := strings.TrimSpace(in.Raw)
	if raw == "" {
		return parsed{}, &ParseError{Index: in.Index, Input: in.Raw, Err: ErrEmptyInput}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return parsed{}, &ParseError{Index: in.Index, Input: in.Raw, Err: err}
	}
	return parsed{Index: in.Index, Value: n}, nil
}

// parseAll runs inputs through a lite pipeline and returns one pair per
// input, in input order.
func parseAll(ctx context.Context, inputs []string, workers int) []rop.Pair[parsed] {
	entries := make([]entry, len(inputs))
	for i, raw := range inputs {
		entries[i] = entry{Index: i, Raw: raw}
	}

	pairs := core.FromChanMany(ctx,
		lite.Pairs(ctx,
			lite.Turnout(ctx,
				core.ToChanManyResults(ctx, entries),
				lite.Try(parseEntry),
				max(workers, 1))))

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairIndex(pairs[i]) < pairIndex(pairs[j])
	})
	return pairs
}

func pairIndex(p rop.Pair[parsed]) int {
	err, v := p.Unpack()
	if err == nil {
		return v.Index
	}
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr.Index
	}
	return -1
}

func render(w io.Writer, inputs []string, pairs []rop.Pair[parsed]) error {
	for _, p := range pairs {
		i := pairIndex(p)
		raw := ""
		if i >= 0 && i < len(inputs) {
			raw = inputs[i]
		}

		var werr error
		if err, v := p.Unpack(); err == nil {
			_, werr = fmt.Fprintf(w, "%q\terr=<nil>\tvalue=%d\n", raw, v.Value)
		} else {
			_, werr = fmt.Fprintf(w, "%q\terr=%v\tvalue=<absent>\n", raw, cause(err))
		}
		if werr != nil {
			return werr
		}
	}
	return nil
}

func cause(err error) error {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr.Err
	}
	return err
}
