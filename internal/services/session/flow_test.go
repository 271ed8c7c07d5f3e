package session

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcrae/bullscows/internal/dependencies/mocks"
	"github.com/mcrae/bullscows/internal/model"
	"github.com/mcrae/bullscows/internal/services/account"
	"github.com/mcrae/bullscows/internal/services/round"
	"github.com/mcrae/bullscows/internal/services/stats"
	"github.com/mcrae/bullscows/internal/storage/memory"
	"github.com/mcrae/bullscows/internal/testutil"
)

// fixedSecret always deals the same secret so scripts can win on demand
type fixedSecret struct {
	secret string
}

func (f fixedSecret) Generate(numDigits int) (string, error) {
	return f.secret, nil
}

type FlowSuite struct {
	suite.Suite
	storage  *memory.Storage
	clock    *mocks.MockClock
	accounts *account.Service
	stats    *stats.Service
	rounds   *round.Controller
	ctx      context.Context
}

func TestFlowSuite(t *testing.T) {
	suite.Run(t, new(FlowSuite))
}

func (s *FlowSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.accounts = account.New(s.storage, testutil.NopLogger())
	s.stats = stats.New(s.storage, s.clock, testutil.NopLogger())
	s.rounds = round.NewController(fixedSecret{secret: "1234"}, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

// run scripts a full session and returns everything it printed
func (s *FlowSuite) run(input string) string {
	var out bytes.Buffer
	flow := NewFlow(s.accounts, s.stats, s.rounds, strings.NewReader(input), &out, testutil.NopLogger(), 0)
	s.Require().NoError(flow.Run(s.ctx))
	return out.String()
}

func (s *FlowSuite) TestGuestWinLeavesNoStats() {
	out := s.run("3\n1\n2\n1234\n3\n4\n")

	s.Contains(out, "Welcome, guest!")
	s.Contains(out, "A 4-digit secret number has been generated!")
	s.Contains(out, "Congratulations! You guessed the number in 1 attempts")
	s.Contains(out, "Goodbye!")

	records, err := s.storage.GetStats(s.ctx, model.GuestUsername)
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *FlowSuite) TestInvalidGuessIsRejectedThenWinCountsOneAttempt() {
	out := s.run("3\n1\n2\nabc\n1234\n3\n4\n")

	s.Equal(1, strings.Count(out, "Invalid guess. Try again."))
	s.Contains(out, "Congratulations! You guessed the number in 1 attempts")
}

func (s *FlowSuite) TestWrongGuessShowsBullsAndCows() {
	out := s.run("3\n1\n2\n1243\nq\n3\n4\n")

	s.Contains(out, "2 Bulls, 2 Cows")
	s.Contains(out, "Thanks for playing!")
}

func (s *FlowSuite) TestSignUpLogInPlayAndViewStats() {
	out := s.run("2\nplayer01\npass123\n" + // sign up
		"1\nplayer01\npass123\n" + // log in
		"1\n2\n1234\n" + // play a medium round and win
		"2\n" + // view statistics
		"3\n4\n") // log out, quit

	s.Contains(out, "Registration successful.")
	s.Contains(out, "Login successful.")
	s.Contains(out, "Welcome, player01!")
	s.Contains(out, "Statistics for the last 30 days (1 games):")
	s.Contains(out, "- 1 attempts, 0.00 seconds")

	records, err := s.storage.GetStats(s.ctx, "player01")
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(1, records[0].Attempts)
}

func (s *FlowSuite) TestCancelledRoundIsNotRecorded() {
	out := s.run("2\nplayer01\npass123\n" +
		"1\nplayer01\npass123\n" +
		"1\n2\nq\n" + // quit mid-round
		"3\n4\n")

	s.Contains(out, "Thanks for playing!")

	records, err := s.storage.GetStats(s.ctx, "player01")
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *FlowSuite) TestLogInFailureReturnsToMenu() {
	out := s.run("1\nplayer01\nwrong99\n4\n")

	s.Contains(out, "Invalid username or password.")
	s.Contains(out, "Goodbye!")
}

func (s *FlowSuite) TestSignUpValidationMessages() {
	out := s.run("2\nbob\npass123\n" +
		"2\nplayer01\npassword\n" +
		"4\n")

	s.Contains(out, "Username must be at least 6 characters long")
	s.Contains(out, "Password must be at least 6 characters long and include a number")
}

func (s *FlowSuite) TestGuestStatisticsAreBlocked() {
	out := s.run("3\n2\n3\n4\n")

	s.Contains(out, "Statistics are not available for guests.")
}

func (s *FlowSuite) TestEmptyHistoryHintsToPlayFirst() {
	out := s.run("2\nplayer01\npass123\n" +
		"1\nplayer01\npass123\n" +
		"2\n3\n4\n")

	s.Contains(out, "No statistics available. Play a game first!")
}

func (s *FlowSuite) TestDifficultySelection() {
	out := s.run("3\n1\n1\nq\n3\n4\n")

	s.Contains(out, "Difficulty set to Easy (3 digits).")
	s.Contains(out, "A 3-digit secret number has been generated!")
}

func (s *FlowSuite) TestUnknownDifficultyChoiceKeepsCurrent() {
	out := s.run("3\n1\nx\nq\n3\n4\n")

	s.Contains(out, "Invalid choice. Keeping current difficulty.")
	s.Contains(out, "A 4-digit secret number has been generated!")
}

func (s *FlowSuite) TestDifficultyBackOutReturnsToMenu() {
	out := s.run("3\n1\nq\n3\n4\n")

	s.Contains(out, "Returning to the main menu.")
	s.NotContains(out, "secret number has been generated")
}

func (s *FlowSuite) TestInvalidMenuChoice() {
	out := s.run("x\n4\n")

	s.Contains(out, "Invalid choice. Try again.")
}

func (s *FlowSuite) TestEndOfInputEndsSessionCleanly() {
	out := s.run("")

	s.Contains(out, "Welcome to Bulls and Cows!")
}
