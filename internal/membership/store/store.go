// Package store unions membership rows from the user and feature datasets behind one read contract.
package store

import (
	"context"
	"log"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"

	"tenant-core/internal/membership/domain"
	"tenant-core/internal/membership/repository"
)

const instrumentationName = "tenant-core/internal/membership/store"

// Conflict describes two rows for the same (user, organization) read from different datasets
// that disagree on role or status.
type Conflict struct {
	UserID string
	OrgID  string
	Winner *domain.Row
	Loser  *domain.Row
}

// ConflictReporter receives dataset conflicts. Implementations must not block; they are called
// on the request path after the merge.
type ConflictReporter interface {
	ReportConflict(ctx context.Context, c Conflict)
}

// Store lists a user's memberships across both datasets. It never returns an error: a dataset
// that fails or times out contributes no rows.
type Store struct {
	sources  []source
	timeout  time.Duration
	reporters []ConflictReporter

	failures  metric.Int64Counter
	conflicts metric.Int64Counter
}

type source struct {
	name domain.Source
	repo repository.Repository
}

// Option configures a Store.
type Option func(*Store)

// WithQueryTimeout bounds each dataset query. Zero leaves only the caller's deadline.
func WithQueryTimeout(d time.Duration) Option {
	return func(s *Store) { s.timeout = d }
}

// WithConflictReporter adds receivers for cross-dataset conflicts in addition to the warning log.
// Nil reporters are ignored; the option may be given more than once.
func WithConflictReporter(rs ...ConflictReporter) Option {
	return func(s *Store) {
		for _, r := range rs {
			if r != nil {
				s.reporters = append(s.reporters, r)
			}
		}
	}
}

// New returns a Store over the user and feature datasets. Either repository may be nil when that
// dataset is not configured; it then contributes nothing.
func New(userRepo, featureRepo repository.Repository, opts ...Option) *Store {
	s := &Store{}
	if userRepo != nil {
		s.sources = append(s.sources, source{name: domain.SourceUser, repo: userRepo})
	}
	if featureRepo != nil {
		s.sources = append(s.sources, source{name: domain.SourceFeature, repo: featureRepo})
	}
	for _, opt := range opts {
		opt(s)
	}
	meter := otel.Meter(instrumentationName)
	s.failures, _ = meter.Int64Counter("tenant.membership.store.failures",
		metric.WithDescription("Dataset queries that failed or timed out and were treated as empty"))
	s.conflicts, _ = meter.Int64Counter("tenant.membership.store.conflicts",
		metric.WithDescription("Cross-dataset duplicate memberships with conflicting role or status"))
	return s
}

// ListMembershipsForUser returns every membership row of userID across both datasets, at most one
// per organization, in creation order. Unknown or empty user ids yield an empty list.
func (s *Store) ListMembershipsForUser(ctx context.Context, userID string) []*domain.Row {
	if userID == "" || len(s.sources) == 0 {
		return []*domain.Row{}
	}
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "membership.store.list")
	defer span.End()

	results := make([][]*domain.Row, len(s.sources))
	var g errgroup.Group
	for i, src := range s.sources {
		g.Go(func() error {
			results[i] = s.query(ctx, src, userID)
			return nil
		})
	}
	_ = g.Wait()

	merged, conflicts := Merge(results...)
	for _, c := range conflicts {
		log.Printf("membership store: conflicting rows for user %s org %s: %s %s/%s (updated %s) over %s %s/%s (updated %s)",
			c.UserID, c.OrgID,
			c.Winner.Source, c.Winner.Role, c.Winner.Status, c.Winner.UpdatedAt.Format(time.RFC3339),
			c.Loser.Source, c.Loser.Role, c.Loser.Status, c.Loser.UpdatedAt.Format(time.RFC3339))
		if s.conflicts != nil {
			s.conflicts.Add(ctx, 1)
		}
		for _, r := range s.reporters {
			r.ReportConflict(ctx, c)
		}
	}
	span.SetAttributes(attribute.Int("membership.rows", len(merged)), attribute.Int("membership.conflicts", len(conflicts)))
	return merged
}

func (s *Store) query(ctx context.Context, src source, userID string) []*domain.Row {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	rows, err := src.repo.ListRowsByUser(ctx, userID)
	if err != nil {
		log.Printf("membership store: %s dataset query for user %s failed: %v", src.name, userID, err)
		if s.failures != nil {
			s.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("dataset", string(src.name))))
		}
		return nil
	}
	for _, r := range rows {
		r.Source = src.name
	}
	return rows
}

// Merge unions row lists, keeping one row per organization id. The winner of a duplicate is the
// most recently updated row; on equal timestamps the more restrictive row wins. The result is
// ordered by creation time, ties kept in input order. Conflicts lists duplicates from different
// datasets whose role or status differ.
func Merge(lists ...[]*domain.Row) ([]*domain.Row, []Conflict) {
	out := make([]*domain.Row, 0)
	pos := make(map[string]int)
	var conflicts []Conflict
	for _, list := range lists {
		for _, row := range list {
			if row == nil {
				continue
			}
			i, seen := pos[row.OrgID]
			if !seen {
				pos[row.OrgID] = len(out)
				out = append(out, row)
				continue
			}
			prev := out[i]
			winner, loser := prefer(prev, row)
			out[i] = winner
			if prev.Source != row.Source && (prev.Role != row.Role || prev.Status != row.Status) {
				conflicts = append(conflicts, Conflict{UserID: row.UserID, OrgID: row.OrgID, Winner: winner, Loser: loser})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, conflicts
}

func prefer(a, b *domain.Row) (winner, loser *domain.Row) {
	switch {
	case a.UpdatedAt.After(b.UpdatedAt):
		return a, b
	case b.UpdatedAt.After(a.UpdatedAt):
		return b, a
	case b.MoreRestrictiveThan(a):
		return b, a
	default:
		return a, b
	}
}
