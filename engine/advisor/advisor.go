// Package advisor picks the computer player's move: it enumerates every one-ply
// successor configuration, ranks them by captures and exposure, and commits the first.
package advisor

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"checkers-local/checkers"
	"checkers-local/obslog"
	"checkers-local/types"
)

// Ranking names the ordering applied to candidate configurations.
type Ranking string

const (
	// RankPairwise is the full pairwise swap pass: index 0 afterwards is the choice.
	RankPairwise Ranking = "pairwise"
	// RankStable sorts by opponent pieces, then danger, keeping generation order on ties.
	RankStable Ranking = "stable"
)

// ParseRanking validates a ranking name. The empty string selects RankPairwise.
func ParseRanking(s string) (Ranking, error) {
	switch Ranking(s) {
	case "", RankPairwise:
		return RankPairwise, nil
	case RankStable:
		return RankStable, nil
	}
	return "", fmt.Errorf("unknown ranking %q", s)
}

// MoveAdvisor plays for the computer on a game it does not own.
type MoveAdvisor struct {
	game     *checkers.GameState
	ranking  Ranking
	occupied []types.Position
	log      *zap.Logger
}

// Option configures a MoveAdvisor.
type Option func(*MoveAdvisor)

// WithRanking selects the candidate ordering.
func WithRanking(r Ranking) Option {
	return func(a *MoveAdvisor) { a.ranking = r }
}

// WithLogger sets the logger for decisions.
func WithLogger(l *zap.Logger) Option {
	return func(a *MoveAdvisor) { a.log = l }
}

// New creates an advisor for game.
func New(game *checkers.GameState, opts ...Option) *MoveAdvisor {
	a := &MoveAdvisor{
		game:    game,
		ranking: RankPairwise,
		log:     obslog.L(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// refresh records where the computer's pieces currently stand.
func (a *MoveAdvisor) refresh() {
	a.occupied = a.occupied[:0]
	for sq := 0; sq < types.NumSquares; sq++ {
		pos := types.PositionAt(sq)
		pc, ok := a.game.Get(pos)
		if ok && pc.Owner == checkers.Computer {
			a.occupied = append(a.occupied, pos)
		}
	}
}

// Move commits the best successor of the current game. It returns false, leaving the
// game and its history untouched, when the computer has no legal move.
func (a *MoveAdvisor) Move() bool {
	a.refresh()
	candidates := a.game.Successors()
	ranked := a.Rank(candidates)
	if len(ranked) == 0 {
		a.log.Info("advisor_no_move", zap.String("game_id", a.game.ID()), zap.Int("pieces", len(a.occupied)))
		return false
	}
	best := ranked[0]
	fields := []zap.Field{
		zap.String("game_id", a.game.ID()),
		zap.Int("candidates", len(candidates)),
		zap.Int("p1", best.P1Pieces()),
		zap.Int("danger", CountPiecesInDanger(best)),
		zap.String("ranking", string(a.ranking)),
	}
	if m, ok := best.LastMove(); ok {
		fields = append(fields, zap.Stringer("from", m.From), zap.Stringer("to", m.To), zap.Stringer("outcome", m.Outcome))
	}
	a.log.Debug("advisor_move", fields...)
	a.game.Commit(best)
	return true
}

// Rank orders configs with the advisor's ranking and returns them; the input slice is
// reordered in place.
func (a *MoveAdvisor) Rank(configs []*checkers.GameState) []*checkers.GameState {
	scored := score(configs)
	if a.ranking == RankStable {
		rankStable(scored)
	} else {
		rankPairwise(scored)
	}
	for i := range scored {
		configs[i] = scored[i].config
	}
	return configs
}

// scored caches the two ranking keys of a configuration.
type scored struct {
	config *checkers.GameState
	p1     int
	danger int
}

func score(configs []*checkers.GameState) []scored {
	out := make([]scored, len(configs))
	for i, c := range configs {
		out[i] = scored{config: c, p1: c.P1Pieces(), danger: CountPiecesInDanger(c)}
	}
	return out
}

// rankPairwise visits every ordered pair (i, k) and swaps when i leaves the opponent
// fewer pieces than k, or else exposes fewer pieces than k. Neither key is a total
// order on its own, so the result depends on input order.
func rankPairwise(s []scored) {
	for i := range s {
		for k := range s {
			if s[i].p1 < s[k].p1 {
				s[i], s[k] = s[k], s[i]
			} else if s[i].danger < s[k].danger {
				s[i], s[k] = s[k], s[i]
			}
		}
	}
}

func rankStable(s []scored) {
	slices.SortStableFunc(s, func(x, y scored) int {
		if x.p1 != y.p1 {
			return x.p1 - y.p1
		}
		return x.danger - y.danger
	})
}
