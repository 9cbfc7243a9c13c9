package scenario

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Option configures Generate.
type Option func(*genOptions)

type genOptions struct {
	seed     int64
	workers  int
	reporter Reporter
}

// WithSeed pins the random stream. 0 (the default) reseeds from the clock.
func WithSeed(seed int64) Option {
	return func(o *genOptions) { o.seed = seed }
}

// WithWorkers bounds the number of cardinalities generated at once;
// n <= 0 uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *genOptions) { o.workers = n }
}

// WithReporter attaches a progress observer.
func WithReporter(r Reporter) Option {
	return func(o *genOptions) { o.reporter = r }
}

// progress serializes Reporter calls across workers.
type progress struct {
	mu    sync.Mutex
	r     Reporter
	done  int
	total int
}

func (p *progress) add(n int, phase string) {
	if p.r == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done += n
	p.r.Report(p.done, p.total, phase)
}

// checkEvery is how many scenarios a worker emits between context checks.
const checkEvery = 4096

// Generate materializes the population described by plan.
//
// Implementation:
//   - Stage 1: resolve the seed and allocate one bucket per cardinality.
//   - Stage 2: run one errgroup task per k (bounded by WithWorkers); each
//     fills only its own bucket.
//   - Stage 3: concatenate buckets in k order.
//
// Errors:
//   - ErrInvalidParameter for a plan not produced by NewPlan.
//   - ctx.Err() on cancellation.
//
// Complexity: O(Size·FailMin) time and space.
func Generate(ctx context.Context, plan Plan, opts ...Option) (*Population, error) {
	o := genOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if plan.Mode != Exhaustive && plan.Mode != Random {
		return nil, fmt.Errorf("Generate: mode %v: %w", plan.Mode, ErrInvalidParameter)
	}
	workers := o.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	pop := &Population{Mode: plan.Mode}
	if plan.Mode == Random {
		pop.Seed = resolveSeed(o.seed)
	}
	prog := &progress{r: o.reporter, total: plan.Size}

	buckets := make([][]Scenario, plan.FailMin+1)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for k := 1; k <= plan.FailMin; k++ {
		if plan.Mode == Exhaustive && k > plan.BranchCount {
			break
		}
		k := k
		g.Go(func() error {
			var err error
			if plan.Mode == Exhaustive {
				buckets[k], err = combinations(gctx, plan.BranchCount, k)
			} else {
				buckets[k], err = draws(gctx, streamRNG(pop.Seed, k), plan.BranchCount, k, plan.PerCardinality)
			}
			if err != nil {
				return err
			}
			prog.add(len(buckets[k]), fmt.Sprintf("%s k=%d", plan.Mode, k))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pop.Scenarios = make([]Scenario, 0, plan.Size)
	for _, b := range buckets {
		pop.Scenarios = append(pop.Scenarios, b...)
	}

	return pop, nil
}

// combinations enumerates every k-subset of [0,n) in lexicographic order.
func combinations(ctx context.Context, n, k int) ([]Scenario, error) {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	var out []Scenario
	for {
		if len(out)%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		out = append(out, append(Scenario(nil), idx...))

		// Advance the rightmost index that still has room.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out, nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// draws produces count scenarios of k independent uniform draws over [0,n),
// sorted with repeats removed.
func draws(ctx context.Context, rng *rand.Rand, n, k, count int) ([]Scenario, error) {
	out := make([]Scenario, 0, count)
	for c := 0; c < count; c++ {
		if c%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		s := make(Scenario, k)
		for i := range s {
			s[i] = rng.Intn(n)
		}
		out = append(out, dedupe(s))
	}

	return out, nil
}

func dedupe(s Scenario) Scenario {
	sort.Ints(s)
	w := 1
	for r := 1; r < len(s); r++ {
		if s[r] != s[w-1] {
			s[w] = s[r]
			w++
		}
	}

	return s[:w]
}
