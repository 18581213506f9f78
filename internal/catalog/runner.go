package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KromDaniel/concepts/internal/demo"
	"github.com/KromDaniel/concepts/internal/logging"
)

// Runner executes topics and writes their output in the order given.
type Runner struct {
	// Parallel is the number of topics rendered at once; values below 1
	// mean one at a time.
	Parallel int
	Settings demo.Settings
	Logger   *logging.Logger

	// Header, when set, is written before each topic's output.
	Header func(Topic) string
	// Notes, when set, is written between the header and the output.
	Notes func(Topic) (string, error)
}

// Run executes topics. Each topic renders into its own buffer and the
// buffers are written in order, so the output does not depend on
// Parallel. Solo topics run one by one after all the others.
//
// On failure the output of the topics before the first failing one, in
// the order given, is still written and that topic's error is returned.
func (r *Runner) Run(ctx context.Context, w io.Writer, topics []Topic) error {
	logger := r.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	ctx = logging.WithContext(demo.WithSettings(ctx, r.Settings), logger)

	var shared, solo []Topic
	for _, t := range topics {
		if t.Solo {
			solo = append(solo, t)
		} else {
			shared = append(shared, t)
		}
	}

	if err := r.runBatch(ctx, w, shared, max(r.Parallel, 1)); err != nil {
		return err
	}
	return r.runBatch(ctx, w, solo, 1)
}

// runBatch renders topics with at most limit at once. After a failure,
// topics later in the list that have not started are skipped; earlier ones
// always finish so their output can be written.
func (r *Runner) runBatch(ctx context.Context, w io.Writer, topics []Topic, limit int) error {
	bufs := make([]bytes.Buffer, len(topics))
	errs := make([]error, len(topics))

	var (
		mu     sync.Mutex
		failed = len(topics) // lowest failing index so far
	)
	var g errgroup.Group
	g.SetLimit(limit)
	for i, t := range topics {
		g.Go(func() error {
			mu.Lock()
			skip := i > failed
			mu.Unlock()
			if skip {
				return nil
			}
			if err := r.render(ctx, &bufs[i], t); err != nil {
				errs[i] = err
				mu.Lock()
				failed = min(failed, i)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	for i := range topics {
		if errs[i] != nil {
			return fmt.Errorf("topic %s: %w", topics[i].Name, errs[i])
		}
		if _, err := bufs[i].WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) render(ctx context.Context, w io.Writer, t Topic) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logger := logging.FromContext(ctx)
	logger.Section(t.Name)

	if r.Header != nil {
		if _, err := io.WriteString(w, r.Header(t)); err != nil {
			return err
		}
	}
	if r.Notes != nil {
		notes, err := r.Notes(t)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, notes); err != nil {
			return err
		}
	}

	start := time.Now()
	err := t.Run(ctx, w)
	logger.Debug("topic finished", "topic", t.Name, "elapsed", time.Since(start), "err", err)
	return err
}
