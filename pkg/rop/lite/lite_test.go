package lite

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropair/pkg/rop"
	"github.com/ib-77/ropair/pkg/rop/core"
	"github.com/ib-77/ropair/pkg/rop/mass"
)

func TestRun_MultipleWorkers(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	double := Map(func(_ context.Context, v int) int { return v * 2 })
	out := core.FromChanMany(ctx, Run(ctx, core.ToChanManyResults(ctx, []int{1, 2, 3, 4, 5}), double, 3))

	got := make([]int, 0, len(out))
	for _, r := range out {
		require.True(t, r.IsSuccess())
		got = append(got, r.Result())
	}
	sort.Ints(got)
	assert.Equal(t, []int{2, 4, 6, 8, 10}, got)
}

func TestTurnout_WorkerOptionOverridesLines(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	ctx = core.WithWorkerOptions(ctx, 1)

	toString := Map(func(_ context.Context, v int) string { return strconv.Itoa(v) })
	out := core.FromChanMany(ctx, Turnout(ctx, core.ToChanManyResults(ctx, []int{1, 2, 3}), toString, 8))

	// a single worker keeps input order
	vals := make([]string, 0, len(out))
	for _, r := range out {
		vals = append(vals, r.Result())
	}
	assert.Equal(t, []string{"1", "2", "3"}, vals)
}

func TestPairs_SingleLineKeepsOrder(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	parse := Try(func(_ context.Context, s string) (int, error) { return strconv.Atoi(s) })
	pairs := core.FromChanMany(ctx,
		Pairs(ctx,
			Turnout(ctx, core.ToChanManyResults(ctx, []string{"1", "x", "3"}), parse, 1)))

	require.Len(t, pairs, 3)

	err, v := pairs[0].Unpack()
	assert.NoError(t, err)
	assert.Equal(t, 1, v)

	err, v = pairs[1].Unpack()
	assert.Error(t, err)
	assert.Zero(t, v)
	assert.False(t, pairs[1].HasValue())

	err, v = pairs[2].Unpack()
	assert.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestPairs_ExactlyOneSide(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	odd := errors.New("odd")
	evenOnly := Switch(func(_ context.Context, v int) rop.Result[int] {
		if v%2 != 0 {
			return rop.Fail[int](odd)
		}
		return rop.Success(v)
	})

	pairs := core.FromChanMany(ctx,
		Pairs(ctx, Run(ctx, core.ToChanManyResults(ctx, []int{1, 2, 3, 4, 5, 6}), evenOnly, 3)))

	require.Len(t, pairs, 6)
	failures := 0
	for _, p := range pairs {
		if p.Err() != nil {
			failures++
			assert.Same(t, odd, p.Err())
			assert.False(t, p.HasValue())
			continue
		}
		v, ok := p.Value()
		assert.True(t, ok)
		assert.Zero(t, v%2)
	}
	assert.Equal(t, 3, failures)
}

func TestPairs_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pairs := core.FromChanMany(context.Background(),
		Pairs(ctx, core.ToChanManyResults(ctx, []int{1, 2, 3})))

	assert.Empty(t, pairs)
}

func TestValidate_InvalidInputs(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	nonEmpty := Validate(func(_ context.Context, s string) (bool, string) {
		return s != "", "empty"
	})
	out := core.FromChanMany(ctx, Run(ctx, core.ToChanManyResults(ctx, []string{"", "a", ""}), nonEmpty, 1))

	require.Len(t, out, 3)
	assert.EqualError(t, out[0].Err(), "empty")
	assert.True(t, out[1].IsSuccess())
	assert.EqualError(t, out[2].Err(), "empty")
}

func TestFinally_Labels(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	handlers := mass.FinallyHandlers[int, string]{
		OnSuccess: func(_ context.Context, v int) string { return fmt.Sprintf("val:%d", v) },
		OnError:   func(_ context.Context, err error) string { return "err" },
		OnCancel:  func(_ context.Context, err error) string { return "cancel" },
	}

	parse := Try(func(_ context.Context, s string) (int, error) { return strconv.Atoi(s) })
	out := core.FromChanMany(ctx,
		Finally(ctx, Turnout(ctx, core.ToChanManyResults(ctx, []string{"1", "bad"}), parse, 1), handlers))

	assert.Equal(t, []string{"val:1", "err"}, out)
}

// URL pipeline that never leaves the process.
func TestURLPipeline(t *testing.T) {
	t.Parallel()

	urls := []string{
		"https://www.example.com",
		"https://www.test.org",
		"https://www.google.com",
		"https://www.micros---oft.com",
		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	ctx := context.Background()
	pairs := core.FromChanMany(ctx,
		Pairs(ctx,
			Turnout(ctx,
				Turnout(ctx,
					Run(ctx, core.ToChanManyResults(ctx, urls), Validate(validateURL), 2),
					Try(fetchTitle), 2),
				Switch(titleLength), 2)))

	assert.Len(t, pairs, len(urls))

	invalid := 0
	for _, p := range pairs {
		if err, n := p.Unpack(); err != nil {
			invalid++
		} else {
			assert.Greater(t, n, 0)
		}
	}
	assert.Equal(t, 2, invalid)
}

func fetchTitle(ctx context.Context, url string) (string, error) {
	if valid, msg := validateURL(ctx, url); !valid {
		return "", errors.New(msg)
	}
	return "Mock Page Title for " + url, nil
}

func validateURL(_ context.Context, url string) (bool, string) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return false, "URL must start with http:// or https://"
	}
	return true, ""
}

func titleLength(_ context.Context, title string) rop.Result[int] {
	return rop.Success(len(title))
}
