package tableset

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/runetab/errs"
	"github.com/arloliu/runetab/internal/collision"
	"github.com/arloliu/runetab/internal/hash"
	"github.com/arloliu/runetab/rangeset"
	"github.com/arloliu/runetab/section"
	"github.com/arloliu/runetab/skiplist"
)

// Builder collects named range sets and encodes them into a Set.
//
// A Builder is not safe for concurrent use; Build itself encodes tables in
// parallel.
type Builder struct {
	cfg     *config
	tracker *collision.Tracker
	ranges  map[string][]rangeset.Range
}

// NewBuilder creates a Builder.
func NewBuilder(opts ...Option) (*Builder, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Builder{
		cfg:     cfg,
		tracker: collision.NewTracker(),
		ranges:  make(map[string][]rangeset.Range),
	}, nil
}

// Add registers ranges under name. The ranges are copied.
//
// Names must be non-empty, at most 255 bytes and unique within the builder,
// and their ids must not collide. Malformed ranges are reported here rather
// than at Build time.
func (b *Builder) Add(name string, ranges []rangeset.Range) error {
	if name == "" || len(name) > section.MaxTableNameLen || strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: %q", errs.ErrInvalidTableName, name)
	}
	if b.tracker.Count() >= section.MaxTableCount {
		return errs.ErrTooManyTables
	}
	if err := rangeset.Validate(ranges); err != nil {
		return fmt.Errorf("table %q: %w", name, err)
	}
	if err := b.tracker.Track(name, hash.ID(name)); err != nil {
		return err
	}

	b.ranges[name] = slices.Clone(ranges)

	return nil
}

// Len returns the number of registered tables.
func (b *Builder) Len() int {
	return b.tracker.Count()
}

// Build encodes every registered range set.
//
// Tables are encoded concurrently, bounded by WithConcurrency. The first
// encoding error cancels the remaining work and is returned wrapped with the
// table name. The resulting Set is ordered by name regardless of Add order.
func (b *Builder) Build(ctx context.Context) (*Set, error) {
	names := slices.Clone(b.tracker.Names())
	slices.Sort(names)

	tables := make([]*skiplist.Table, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.cfg.concurrency)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			table, err := skiplist.Encode(b.ranges[name])
			if err != nil {
				return fmt.Errorf("table %q: %w", name, err)
			}
			tables[i] = table

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return newSet(names, tables), nil
}

// Encode builds the set and serializes it with the builder's options.
func (b *Builder) Encode(ctx context.Context) ([]byte, error) {
	set, err := b.Build(ctx)
	if err != nil {
		return nil, err
	}

	return marshal(set, b.cfg)
}
