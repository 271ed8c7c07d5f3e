package round

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mcrae/bullscows/internal/dependencies/clock"
	"github.com/mcrae/bullscows/internal/model"
	"github.com/mcrae/bullscows/internal/services/guess"
)

// CancelToken is the in-band input that abandons a round. Matching is
// case-insensitive.
const CancelToken = "q"

// SecretSource produces the secret for a round
type SecretSource interface {
	Generate(numDigits int) (string, error)
}

// Round is the state of one game round. It is created in the awaiting
// state and reaches exactly one of the terminal states (won, cancelled).
type Round struct {
	ID        model.RoundID
	NumDigits int
	State     model.RoundState
	Attempts  int
	StartedAt time.Time

	secret string
}

// Result is the feedback for one submitted input
type Result struct {
	State model.RoundState

	// Rejected is true when the input was not a well-formed guess;
	// the attempt counter is not consumed.
	Rejected bool

	// Score is set for every accepted guess
	Score model.Score

	// Outcome is set only when this input won the round
	Outcome *model.RoundOutcome
}

// Controller drives the round state machine. The interactive loop that
// feeds it lives in the session flow; the controller itself never
// blocks on input.
type Controller struct {
	secrets SecretSource
	clock   clock.Clock
	logger  *slog.Logger
}

// NewController creates a new round Controller
func NewController(secrets SecretSource, clock clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		secrets: secrets,
		clock:   clock,
		logger:  logger,
	}
}

// Start generates a secret and begins a new round
func (c *Controller) Start(numDigits int) (*Round, error) {
	secret, err := c.secrets.Generate(numDigits)
	if err != nil {
		return nil, err
	}

	round := &Round{
		ID:        model.RoundID(uuid.NewString()),
		NumDigits: numDigits,
		State:     model.RoundStateAwaitingInput,
		StartedAt: c.clock.Now(),
		secret:    secret,
	}

	c.logger.Info("round started",
		slog.String("round_id", string(round.ID)),
		slog.Int("num_digits", numDigits),
	)

	return round, nil
}

// Submit feeds one input event to the round. Inputs are expected to be
// whitespace-trimmed already. A cancel token moves the round to
// cancelled with no outcome; a malformed guess is rejected without
// consuming an attempt; a correct guess wins the round and yields its
// outcome. Submitting to a finished round is an error.
func (c *Controller) Submit(round *Round, input string) (*Result, error) {
	if round.State != model.RoundStateAwaitingInput {
		return nil, model.ErrRoundFinished
	}

	if strings.EqualFold(input, CancelToken) {
		round.State = model.RoundStateCancelled
		c.logger.Info("round cancelled",
			slog.String("round_id", string(round.ID)),
			slog.Int("attempts", round.Attempts),
		)
		return &Result{State: model.RoundStateCancelled}, nil
	}

	if !guess.IsValid(input, round.NumDigits) {
		return &Result{State: model.RoundStateAwaitingInput, Rejected: true}, nil
	}

	round.Attempts++
	score := guess.Evaluate(round.secret, input)

	if score.Bulls == round.NumDigits {
		round.State = model.RoundStateWon
		outcome := &model.RoundOutcome{
			Attempts: round.Attempts,
			Duration: c.clock.Now().Sub(round.StartedAt),
		}

		c.logger.Info("round won",
			slog.String("round_id", string(round.ID)),
			slog.Int("attempts", outcome.Attempts),
			slog.Float64("duration_seconds", outcome.Duration.Seconds()),
		)

		return &Result{State: model.RoundStateWon, Score: score, Outcome: outcome}, nil
	}

	return &Result{State: model.RoundStateAwaitingInput, Score: score}, nil
}
