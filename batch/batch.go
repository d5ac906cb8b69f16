package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lexidiff/baseline"
	"github.com/katalvlaran/lexidiff/diff"
	"github.com/katalvlaran/lexidiff/internal/logging"
	"github.com/katalvlaran/lexidiff/termgraph"
)

// Sentinel errors for batch evaluation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("batch: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("batch: invalid option supplied")
)

// Pair is one unit of work: the two seeds to differentiate.
type Pair struct {
	A string
	B string
}

// Outcome is the full evaluation of one pair. When Err is non-nil the
// remaining fields are zero.
type Outcome struct {
	Pair Pair

	// Cap is the termination level Great discovered.
	Cap int

	// Weak and Strong are the per-policy run results under Cap.
	Weak   *diff.Result
	Strong *diff.Result

	// Distance is the unweighted shortest-path baseline between the seeds,
	// or -1 when no definition path connects them.
	Distance int

	// Err records a per-pair failure (e.g. blank seed).
	Err error
}

// Option configures Evaluate via functional arguments.
type Option func(*options)

type options struct {
	workers int
	ceiling int
	logger  *slog.Logger
	reg     prometheus.Registerer
	err     error
}

func defaultBatchOptions() options {
	return options{
		workers: runtime.GOMAXPROCS(0),
		ceiling: diff.DefaultMaxLevel,
		logger:  logging.NewNop(),
	}
}

// WithWorkers sets the worker-pool size (default GOMAXPROCS).
// A non-positive count is an ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.workers = n
	}
}

// WithCeiling caps the Great run itself — the defensive bound against
// vocabularies whose cancellation never converges (default
// diff.DefaultMaxLevel). Negative values are an ErrOptionViolation.
func WithCeiling(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Ceiling cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.ceiling = n
	}
}

// WithLogger routes per-pair progress to the given structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRegisterer registers batch metrics (run counts, exhaustions, run
// duration) with the given Prometheus registerer.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.reg = reg
	}
}

// Evaluate runs every pair through Great, both Run policies and the
// baseline distance, sharing g read-only across workers. Outcomes are
// returned in input order. Returns ErrGraphNil or ErrOptionViolation for
// invalid arguments, or the context error when cancelled mid-batch.
func Evaluate(ctx context.Context, g *termgraph.Graph, pairs []Pair, opts ...Option) ([]Outcome, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultBatchOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	m := newMetrics(o.reg)

	out := make([]Outcome, len(pairs))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < o.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				out[idx] = evalPair(g, pairs[idx], &o, m)
			}
		}()
	}

	var cancelled error
feed:
	for idx := range pairs {
		select {
		case <-ctx.Done():
			cancelled = ctx.Err()
			break feed
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	if cancelled != nil {
		return nil, cancelled
	}

	return out, nil
}

// evalPair is the per-pair pipeline: cap discovery, both policies, baseline.
func evalPair(g *termgraph.Graph, p Pair, o *options, m *metrics) Outcome {
	started := time.Now()

	gd, err := diff.Great(g, p.A, p.B, diff.WithMaxLevel(o.ceiling))
	if err != nil {
		o.logger.Warn("pair rejected", "a", p.A, "b", p.B, "error", err)
		return Outcome{Pair: p, Err: err}
	}

	res := Outcome{Pair: p, Cap: gd.Level}
	for _, policy := range []diff.Policy{diff.Weak, diff.Strong} {
		r, runErr := diff.Run(g, p.A, p.B, policy, diff.WithMaxLevel(gd.Level))
		if runErr != nil {
			o.logger.Warn("run failed", "a", p.A, "b", p.B, "policy", policy.String(), "error", runErr)
			return Outcome{Pair: p, Err: runErr}
		}
		m.observeRun(policy, r)
		if policy == diff.Weak {
			res.Weak = r
		} else {
			res.Strong = r
		}
	}

	if hops, _, distErr := baseline.Distance(g, p.A, p.B); distErr == nil {
		res.Distance = hops
	} else {
		res.Distance = -1
	}

	m.observeDuration(time.Since(started))
	o.logger.Debug("pair evaluated",
		"a", p.A, "b", p.B,
		"cap", res.Cap,
		"weak_score", res.Weak.Score,
		"strong_score", res.Strong.Score,
		"distance", res.Distance,
	)

	return res
}
