package dial

import (
	"context"
	"log/slog"

	"github.com/mcoot/puzzlesolver/internal/decimal"
	"github.com/mcoot/puzzlesolver/internal/model"
	"github.com/mcoot/puzzlesolver/internal/textinput"
)

// Service simulates the safe dial over a list of rotation commands
type Service struct {
	logger *slog.Logger
}

// New creates a new DialService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// ParseCommand parses a single line into a rotation command.
// ok is false for lines that are not rotations at all; those are no-ops.
// A rotation with a missing or non-digit magnitude is an error.
func ParseCommand(line string) (cmd model.RotationCommand, ok bool, err error) {
	dir, magnitude, ok := splitCommand(line)
	if !ok {
		return model.RotationCommand{}, false, nil
	}

	amount, err := decimal.Parse(magnitude)
	if err != nil {
		return model.RotationCommand{}, true, err
	}

	return model.RotationCommand{Direction: dir, Amount: amount}, true, nil
}

func splitCommand(line string) (model.Direction, string, bool) {
	if line == "" {
		return 0, "", false
	}
	switch dir := model.Direction(line[0]); dir {
	case model.Left, model.Right:
		return dir, line[1:], true
	default:
		return 0, "", false
	}
}

// RotateRight turns the dial towards higher numbers, wrapping past 99 to 0
func RotateRight(position int, amount decimal.Value) int {
	return rotateRight(position, amount.Rem100())
}

// RotateLeft turns the dial towards lower numbers, wrapping past 0 to 99
func RotateLeft(position int, amount decimal.Value) int {
	return rotateLeft(position, amount.Rem100())
}

// Apply returns the position after executing cmd
func Apply(position int, cmd model.RotationCommand) int {
	if cmd.Direction == model.Left {
		return RotateLeft(position, cmd.Amount)
	}
	return RotateRight(position, cmd.Amount)
}

func rotateRight(position, steps int) int {
	return (position + steps) % model.DialSize
}

// rotateLeft takes steps already reduced mod 100. When the dial would pass
// zero, the overshoot is taken off the top of the dial instead.
func rotateLeft(position, steps int) int {
	if steps > position {
		return (model.DialSize - (steps - position)) % model.DialSize
	}
	return (position - steps) % model.DialSize
}

// Solve runs every line of input through the dial and returns the password:
// the number of lines after which the dial rests on zero
func (s *Service) Solve(ctx context.Context, input string) (*model.DialResult, error) {
	result := &model.DialResult{FinalPosition: model.DialStart}

	err := s.walk(ctx, input, func(step model.DialStep) {
		if step.Applied {
			result.Commands++
		} else {
			result.Skipped++
		}
		result.FinalPosition = step.Position
		result.Password = step.Password
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("dial simulated",
		slog.Int("password", result.Password),
		slog.Int("final_position", result.FinalPosition),
		slog.Int("commands", result.Commands),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}

// Trace returns the dial state after every line of input
func (s *Service) Trace(ctx context.Context, input string) ([]model.DialStep, error) {
	var steps []model.DialStep
	err := s.walk(ctx, input, func(step model.DialStep) {
		steps = append(steps, step)
	})
	if err != nil {
		return nil, err
	}
	return steps, nil
}

// walk folds the dial over input, reporting the state after each line
func (s *Service) walk(ctx context.Context, input string, visit func(model.DialStep)) error {
	position := model.DialStart
	password := 0

	for i, line := range textinput.Lines(input) {
		if err := ctx.Err(); err != nil {
			return err
		}

		applied := false
		if dir, magnitude, ok := splitCommand(line); ok {
			steps, err := decimal.ParseMod100(magnitude)
			if err != nil {
				return &model.InputError{Line: i + 1, Text: line, Err: err}
			}
			if dir == model.Left {
				position = rotateLeft(position, steps)
			} else {
				position = rotateRight(position, steps)
			}
			applied = true
		} else {
			s.logger.Debug("skipping unrecognised dial line",
				slog.Int("line", i+1),
				slog.String("text", line),
			)
		}

		if position == 0 {
			password++
		}

		visit(model.DialStep{
			Line:     i + 1,
			Text:     line,
			Applied:  applied,
			Position: position,
			Password: password,
		})
	}

	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Solve(ctx context.Context, input string) (*model.DialResult, error)
	Trace(ctx context.Context, input string) ([]model.DialStep, error)
}

var _ ServiceInterface = (*Service)(nil)
