// Package session implements the interactive menu navigation around the
// game core: login/signup, difficulty selection, the round loop, and the
// statistics view. All input and output goes through an injected reader
// and writer so the whole flow can be scripted in tests.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mcrae/bullscows/internal/model"
	"github.com/mcrae/bullscows/internal/services/account"
	"github.com/mcrae/bullscows/internal/services/round"
	"github.com/mcrae/bullscows/internal/services/stats"
)

// statsWindowDays is the window the statistics view currently shows.
// The underlying query supports arbitrary windows (see the stats
// subcommand); this is just the menu's choice.
const statsWindowDays = 30

const rule = "========================================"
const thinRule = "________________________________________"

// Flow runs the interactive session: a top-level menu for identity
// selection and a per-player menu for playing rounds and viewing
// statistics.
type Flow struct {
	accounts *account.Service
	stats    *stats.Service
	rounds   *round.Controller

	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger

	difficulty int
}

// NewFlow creates a session Flow reading from in and writing to out.
// defaultDigits is the starting difficulty; zero means medium.
func NewFlow(
	accounts *account.Service,
	stats *stats.Service,
	rounds *round.Controller,
	in io.Reader,
	out io.Writer,
	logger *slog.Logger,
	defaultDigits int,
) *Flow {
	if defaultDigits == 0 {
		defaultDigits = model.DigitsMedium
	}
	return &Flow{
		accounts:   accounts,
		stats:      stats,
		rounds:     rounds,
		in:         bufio.NewScanner(in),
		out:        out,
		logger:     logger,
		difficulty: defaultDigits,
	}
}

// Run drives the top-level menu until the player quits or input ends
func (f *Flow) Run(ctx context.Context) error {
	f.printf("\n%s\n", rule)
	f.printf("Welcome to Bulls and Cows!\n")
	f.printf("%s\n", rule)

	for {
		f.printf("\n1. Log in\n2. Sign up\n3. Play as guest\n4. Quit\n")

		choice, err := f.prompt("Enter your choice: ")
		if err != nil {
			return f.finish(err)
		}

		switch choice {
		case "1":
			if err := f.logIn(ctx); err != nil {
				return f.finish(err)
			}
		case "2":
			if err := f.signUp(ctx); err != nil {
				return f.finish(err)
			}
		case "3":
			if err := f.playerMenu(ctx, model.GuestUsername); err != nil {
				return f.finish(err)
			}
		case "4":
			f.printf("Goodbye!\n")
			return nil
		default:
			f.printf("Invalid choice. Try again.\n")
		}
	}
}

// logIn prompts for credentials and enters the player menu on success
func (f *Flow) logIn(ctx context.Context) error {
	username, err := f.prompt("Enter username (or 'q' to quit): ")
	if err != nil {
		return err
	}
	if strings.EqualFold(username, round.CancelToken) {
		return nil
	}

	password, err := f.prompt("Enter password: ")
	if err != nil {
		return err
	}

	if err := f.accounts.LogIn(ctx, username, password); err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			f.printf("Invalid username or password.\n")
			return nil
		}
		return err
	}

	f.printf("Login successful.\n")
	return f.playerMenu(ctx, username)
}

// signUp prompts for credentials and registers a new account
func (f *Flow) signUp(ctx context.Context) error {
	username, err := f.prompt("Enter username (or 'q' to quit): ")
	if err != nil {
		return err
	}
	if strings.EqualFold(username, round.CancelToken) {
		return nil
	}

	password, err := f.prompt("Enter password: ")
	if err != nil {
		return err
	}

	switch err := f.accounts.SignUp(ctx, username, password); {
	case err == nil:
		f.printf("Registration successful.\n")
	case errors.Is(err, account.ErrUsernameExists),
		errors.Is(err, account.ErrUsernameTooShort),
		errors.Is(err, account.ErrPasswordTooWeak):
		f.printf("%s\n", capitalize(err.Error()))
	default:
		return err
	}
	return nil
}

// playerMenu drives the per-player menu until logout
func (f *Flow) playerMenu(ctx context.Context, username string) error {
	for {
		f.printf("\n%s\n", rule)
		f.printf("Welcome, %s!\n", username)
		f.printf("1. Play game\n2. View statistics (not available for guests)\n3. Log out\n")
		f.printf("%s\n", rule)

		choice, err := f.prompt("Enter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			selected, err := f.selectDifficulty()
			if err != nil {
				return err
			}
			if !selected {
				continue
			}
			if err := f.playRound(ctx, username); err != nil {
				return err
			}
		case "2":
			if err := f.showStats(ctx, username); err != nil {
				return err
			}
		case "3":
			f.printf("Logging out...\n")
			return nil
		default:
			f.printf("Invalid choice. Try again.\n")
		}
	}
}

// selectDifficulty prompts for a difficulty. It returns false when the
// player backs out; an unrecognized choice keeps the current difficulty
// but still proceeds.
func (f *Flow) selectDifficulty() (bool, error) {
	f.printf("\n%s\n", rule)
	f.printf("Select difficulty:\n")
	f.printf("1. Easy (%d digits)\n", model.DigitsEasy)
	f.printf("2. Medium (%d digits)\n", model.DigitsMedium)
	f.printf("3. Hard (%d digits)\n", model.DigitsHard)
	f.printf("%s\n", rule)

	choice, err := f.prompt("Enter your choice (or 'q' to quit): ")
	if err != nil {
		return false, err
	}

	switch {
	case strings.EqualFold(choice, round.CancelToken):
		f.printf("Returning to the main menu.\n")
		return false, nil
	case choice == "1":
		f.difficulty = model.DigitsEasy
		f.printf("Difficulty set to Easy (%d digits).\n", model.DigitsEasy)
	case choice == "2":
		f.difficulty = model.DigitsMedium
		f.printf("Difficulty set to Medium (%d digits).\n", model.DigitsMedium)
	case choice == "3":
		f.difficulty = model.DigitsHard
		f.printf("Difficulty set to Hard (%d digits).\n", model.DigitsHard)
	default:
		f.printf("Invalid choice. Keeping current difficulty.\n")
	}
	return true, nil
}

// playRound runs one round loop and records the outcome for registered
// players. Cancelled rounds and guest rounds leave no trace.
func (f *Flow) playRound(ctx context.Context, username string) error {
	r, err := f.rounds.Start(f.difficulty)
	if err != nil {
		return err
	}

	f.printf("\n%s\n", rule)
	f.printf("A %d-digit secret number has been generated!\n", r.NumDigits)
	f.printf("%s\n", rule)

	for {
		input, err := f.prompt("\nEnter your guess (or 'q' to quit): ")
		if err != nil {
			// Input ended mid-round; treat it as a cancellation
			if errors.Is(err, io.EOF) {
				_, _ = f.rounds.Submit(r, round.CancelToken)
			}
			return err
		}

		result, err := f.rounds.Submit(r, input)
		if err != nil {
			return err
		}

		if result.Rejected {
			f.printf("Invalid guess. Try again.\n")
			continue
		}

		switch result.State {
		case model.RoundStateCancelled:
			f.printf("Thanks for playing!\n")
			return nil
		case model.RoundStateWon:
			f.printf("\n%s\n", rule)
			f.printf("Congratulations! You guessed the number in %d attempts and %.2f seconds.\n",
				result.Outcome.Attempts, result.Outcome.Duration.Seconds())
			f.printf("%s\n", rule)

			if username != model.GuestUsername {
				return f.stats.RecordOutcome(ctx, username, *result.Outcome)
			}
			return nil
		default:
			f.printf("\n%s\n", thinRule)
			f.printf("%d Bulls, %d Cows\n", result.Score.Bulls, result.Score.Cows)
			f.printf("%s\n", thinRule)
		}
	}
}

// showStats prints the recent statistics listing for a player
func (f *Flow) showStats(ctx context.Context, username string) error {
	if username == model.GuestUsername {
		f.printf("Statistics are not available for guests.\n")
		return nil
	}

	all, err := f.stats.QueryRecent(ctx, username, 0)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		f.printf("No statistics available. Play a game first!\n")
		return nil
	}

	recent, err := f.stats.QueryRecent(ctx, username, statsWindowDays)
	if err != nil {
		return err
	}

	f.printf("Statistics for the last %d days (%d games):\n", statsWindowDays, len(recent))
	for _, record := range recent {
		f.printf("- %d attempts, %.2f seconds\n", record.Attempts, record.Duration)
	}
	return nil
}

// prompt prints msg and reads one whitespace-trimmed line. It returns
// io.EOF when input is exhausted.
func (f *Flow) prompt(msg string) (string, error) {
	f.printf("%s", msg)
	if !f.in.Scan() {
		if err := f.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(f.in.Text()), nil
}

func (f *Flow) printf(format string, args ...any) {
	fmt.Fprintf(f.out, format, args...)
}

// finish maps end-of-input to a clean exit
func (f *Flow) finish(err error) error {
	if errors.Is(err, io.EOF) {
		f.logger.Info("input closed, ending session")
		return nil
	}
	return err
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
