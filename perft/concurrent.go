package perft

import (
	"context"
	"fmt"
	"time"

	"github.com/talyrond/chesscore"
	"golang.org/x/sync/errgroup"
)

// RunSuiteConcurrent is the concurrent counterpart to [RunSuite]. It fans
// out one goroutine per depth case, bounded by workers (a value <= 0 means
// unbounded), and waits for them through errgroup. Every record's FEN is
// parsed before any goroutine starts; the first parse failure is returned
// at once and no perft work is run. Workers that start after ctx is
// cancelled return ctx's error, which is returned to the caller.
//
// This is the only place in the repository that mutates shared state
// across goroutines: each worker takes its own copy of the root
// BoardState before calling the single-threaded [Count], so the
// MoveGenerator's precomputed tables are the only state genuinely shared,
// and they are read-only after construction.
func RunSuiteConcurrent(ctx context.Context, gen *chess.MoveGenerator, records []Record, workers int) ([]CaseResult, error) {
	type job struct {
		index int
		fen   string
		state chess.BoardState
		dc    DepthCase
	}

	var jobs []job
	for _, rec := range records {
		state, err := chess.ParseFEN(rec.FEN)
		if err != nil {
			return nil, fmt.Errorf("perft: bad FEN %q: %w", rec.FEN, err)
		}
		for _, dc := range rec.Cases {
			jobs = append(jobs, job{index: len(jobs), fen: rec.FEN, state: state, dc: dc})
		}
	}

	results := make([]CaseResult, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for _, j := range jobs {
		j := j
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			start := time.Now()
			got := Count(gen, j.state, j.dc.Depth)

			// Each goroutine owns a disjoint index, so no lock is needed.
			results[j.index] = CaseResult{
				FEN:     j.fen,
				Depth:   j.dc.Depth,
				Want:    j.dc.Nodes,
				Got:     got,
				Elapsed: time.Since(start),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
