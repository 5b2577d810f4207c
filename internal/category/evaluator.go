package category

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/charliearlie/football-iq/internal/names"
)

// ErrPlayerNotFound is returned by Lookup implementations when the player
// id is absent from the identity store.
var ErrPlayerNotFound = errors.New("player not found")

// Lookup is the external data collaborator the evaluator queries.
// Nationalities returns ISO codes; PlayerStats returns the cached
// statistics map (trophy counts, goal counts, ...).
type Lookup interface {
	ClubHistory(ctx context.Context, playerID string) ([]string, error)
	Nationalities(ctx context.Context, playerID string) ([]string, error)
	PlayerStats(ctx context.Context, playerID string) (map[string]int, error)
}

// Evaluator resolves category predicates for a player. Lookup failures
// and unresolvable labels evaluate to false rather than propagate.
type Evaluator struct {
	lookup Lookup
	logger *slog.Logger
}

func NewEvaluator(lookup Lookup, logger *slog.Logger) *Evaluator {
	return &Evaluator{lookup: lookup, logger: logger}
}

// Matches reports whether the player satisfies the category. It never
// returns an error for gameplay: unknown labels and lookup failures are
// logged and evaluate false. ErrPlayerNotFound is surfaced so callers
// can distinguish "absent" from "found but no match".
func (e *Evaluator) Matches(ctx context.Context, playerID string, cat Category) (bool, error) {
	switch cat.Kind {
	case KindClub:
		clubs, err := e.lookup.ClubHistory(ctx, playerID)
		if err != nil {
			return false, e.lookupErr("club history", playerID, err)
		}
		want := names.Normalize(cat.Label)
		for _, c := range clubs {
			if names.Normalize(c) == want {
				return true, nil
			}
		}
		return false, nil

	case KindNation:
		code, ok := CountryCode(cat.Label)
		if !ok {
			e.logger.Warn("unknown country name", "label", cat.Label)
			return false, nil
		}
		nations, err := e.lookup.Nationalities(ctx, playerID)
		if err != nil {
			return false, e.lookupErr("nationalities", playerID, err)
		}
		for _, n := range nations {
			if n == code {
				return true, nil
			}
		}
		return false, nil

	case KindTrophy:
		key, ok := TrophyStatKey(cat.Label)
		if !ok {
			e.logger.Warn("unknown trophy label", "label", cat.Label)
			return false, nil
		}
		stats, err := e.lookup.PlayerStats(ctx, playerID)
		if err != nil {
			return false, e.lookupErr("stats", playerID, err)
		}
		return stats[key] > 0, nil

	case KindStat:
		threshold, key, ok := ParseStatExpression(cat.Label)
		if !ok {
			e.logger.Warn("unparseable stat expression", "label", cat.Label)
			return false, nil
		}
		stats, err := e.lookup.PlayerStats(ctx, playerID)
		if err != nil {
			return false, e.lookupErr("stats", playerID, err)
		}
		return stats[key] >= threshold, nil

	default:
		e.logger.Warn("unknown category kind", "kind", string(cat.Kind))
		return false, nil
	}
}

// lookupErr keeps ErrPlayerNotFound flowing to the caller and swallows
// everything else as a logged non-match.
func (e *Evaluator) lookupErr(what, playerID string, err error) error {
	if errors.Is(err, ErrPlayerNotFound) {
		return err
	}
	e.logger.Warn("category lookup failed", "lookup", what, "player_id", playerID, "error", err)
	return nil
}

// ValidateCell checks a player against a cell's row and column categories.
// Both predicates must hold. The two checks are independent and run
// concurrently. An unknown player yields Valid=false with no criteria.
func (e *Evaluator) ValidateCell(ctx context.Context, playerID string, row, col Category) CellValidation {
	var rowOK, colOK bool
	var rowErr, colErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rowOK, rowErr = e.Matches(gctx, playerID, row)
		return nil
	})
	g.Go(func() error {
		colOK, colErr = e.Matches(gctx, playerID, col)
		return nil
	})
	_ = g.Wait()

	if errors.Is(rowErr, ErrPlayerNotFound) || errors.Is(colErr, ErrPlayerNotFound) {
		return CellValidation{Valid: false}
	}

	return CellValidation{
		Valid:   rowOK && colOK,
		Matched: &MatchedCriteria{Row: rowOK, Col: colOK},
	}
}
