package dial

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/puzzlesolver/internal/decimal"
	"github.com/mcoot/puzzlesolver/internal/model"
	"github.com/mcoot/puzzlesolver/internal/testutil"
)

const exampleInput = `L68
L30
R48
L5
R60
L55
L1
L99
R14
L82`

type ServiceSuite struct {
	suite.Suite
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(testutil.NopLogger())
	s.ctx = context.Background()
}

// ParseCommand tests

func (s *ServiceSuite) TestParseCommandLeft() {
	cmd, ok, err := ParseCommand("L68")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(model.Left, cmd.Direction)
	s.Equal(decimal.MustParse("68"), cmd.Amount)
}

func (s *ServiceSuite) TestParseCommandRightLargeMagnitude() {
	cmd, ok, err := ParseCommand("R123456789012345678901234567890")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(model.Right, cmd.Direction)
	s.Equal("123456789012345678901234567890", cmd.Amount.String())
}

func (s *ServiceSuite) TestParseCommandUnrecognised() {
	for _, line := range []string{"", "Hello", "l5", "X10", " L5"} {
		_, ok, err := ParseCommand(line)
		s.NoError(err, line)
		s.False(ok, line)
	}
}

func (s *ServiceSuite) TestParseCommandMissingMagnitude() {
	for _, line := range []string{"L", "R"} {
		_, ok, err := ParseCommand(line)
		s.True(ok)
		s.ErrorIs(err, model.ErrMalformedNumber, line)
	}
}

func (s *ServiceSuite) TestParseCommandNonDigitMagnitude() {
	_, _, err := ParseCommand("R1a")
	s.ErrorIs(err, model.ErrMalformedNumber)
}

// Rotation tests

func (s *ServiceSuite) TestRotateRight() {
	s.Equal(5, RotateRight(2, decimal.MustParse("3")))
	s.Equal(3, RotateRight(98, decimal.MustParse("5")))
	s.Equal(0, RotateRight(50, decimal.MustParse("50")))
	s.Equal(50, RotateRight(50, decimal.MustParse("1000")))
}

func (s *ServiceSuite) TestRotateLeft() {
	s.Equal(2, RotateLeft(5, decimal.MustParse("3")))
	s.Equal(98, RotateLeft(3, decimal.MustParse("5")))
	s.Equal(0, RotateLeft(50, decimal.MustParse("50")))
	s.Equal(99, RotateLeft(0, decimal.MustParse("1")))
	s.Equal(0, RotateLeft(0, decimal.MustParse("100")))
}

func (s *ServiceSuite) TestRotateLeftFormulationsAgree() {
	for p := 0; p < model.DialSize; p++ {
		for a := 0; a < 3*model.DialSize; a++ {
			want := (p - a%100 + 100) % 100
			s.Equal(want, RotateLeft(p, decimal.FromUint64(uint64(a))), "p=%d a=%d", p, a)
		}
	}
}

func (s *ServiceSuite) TestRotationInverse() {
	amounts := []decimal.Value{
		decimal.Zero,
		decimal.MustParse("1"),
		decimal.MustParse("99"),
		decimal.MustParse("100"),
		decimal.MustParse("12345"),
		decimal.MustParse(strings.Repeat("9", 150)),
	}
	for p := 0; p < model.DialSize; p++ {
		for _, a := range amounts {
			s.Equal(p, RotateLeft(RotateRight(p, a), a), "p=%d a=%s", p, a)
			s.Equal(p, RotateRight(RotateLeft(p, a), a), "p=%d a=%s", p, a)
		}
	}
}

func (s *ServiceSuite) TestApply() {
	s.Equal(1, Apply(2, model.RotationCommand{Direction: model.Left, Amount: decimal.MustParse("1")}))
	s.Equal(2, Apply(1, model.RotationCommand{Direction: model.Right, Amount: decimal.MustParse("1")}))
}

// Solve tests

func (s *ServiceSuite) TestSolveExample() {
	result, err := s.service.Solve(s.ctx, exampleInput)
	s.Require().NoError(err)

	s.Equal(3, result.Password)
	s.Equal(32, result.FinalPosition)
	s.Equal(10, result.Commands)
	s.Equal(0, result.Skipped)
}

func (s *ServiceSuite) TestSolveIsDeterministic() {
	first, err := s.service.Solve(s.ctx, exampleInput)
	s.Require().NoError(err)

	for i := 0; i < 3; i++ {
		again, err := s.service.Solve(s.ctx, exampleInput)
		s.Require().NoError(err)
		s.Equal(first, again)
	}
}

func (s *ServiceSuite) TestSolveTrailingNewline() {
	result, err := s.service.Solve(s.ctx, exampleInput+"\n")
	s.Require().NoError(err)
	s.Equal(3, result.Password)
}

func (s *ServiceSuite) TestSolveEmptyInput() {
	result, err := s.service.Solve(s.ctx, "")
	s.Require().NoError(err)
	s.Equal(0, result.Password)
	s.Equal(model.DialStart, result.FinalPosition)
}

func (s *ServiceSuite) TestSolveUnrecognisedLineIsNoOp() {
	result, err := s.service.Solve(s.ctx, "L10\nHello\nR10")
	s.Require().NoError(err)
	s.Equal(50, result.FinalPosition)
	s.Equal(2, result.Commands)
	s.Equal(1, result.Skipped)
}

func (s *ServiceSuite) TestSolveNoOpOnZeroStillCounts() {
	// Every line is checked, so resting on zero through a no-op counts again
	result, err := s.service.Solve(s.ctx, "L50\nHello\nR0")
	s.Require().NoError(err)
	s.Equal(3, result.Password)
}

func (s *ServiceSuite) TestSolveHugeMagnitude() {
	// 10^200 is a multiple of 100, so the dial does not move
	huge := "1" + strings.Repeat("0", 200)
	result, err := s.service.Solve(s.ctx, "L"+huge)
	s.Require().NoError(err)
	s.Equal(50, result.FinalPosition)
	s.Equal(0, result.Password)

	result, err = s.service.Solve(s.ctx, "R"+huge+"50")
	s.Require().NoError(err)
	s.Equal(0, result.FinalPosition)
	s.Equal(1, result.Password)
}

func (s *ServiceSuite) TestSolveMissingMagnitudeIsFatal() {
	_, err := s.service.Solve(s.ctx, "L5\nR\nL3")
	s.Require().ErrorIs(err, model.ErrMalformedNumber)

	var inputErr *model.InputError
	s.Require().ErrorAs(err, &inputErr)
	s.Equal(2, inputErr.Line)
	s.Equal("R", inputErr.Text)
}

func (s *ServiceSuite) TestSolveCancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.service.Solve(ctx, exampleInput)
	s.ErrorIs(err, context.Canceled)
}

// Trace tests

func (s *ServiceSuite) TestTraceExample() {
	steps, err := s.service.Trace(s.ctx, exampleInput)
	s.Require().NoError(err)
	s.Require().Len(steps, 10)

	positions := make([]int, len(steps))
	for i, step := range steps {
		positions[i] = step.Position
	}
	s.Equal([]int{82, 52, 0, 95, 55, 0, 99, 0, 14, 32}, positions)
	s.Equal(3, steps[len(steps)-1].Password)
	s.Equal("L68", steps[0].Text)
	s.Equal(1, steps[0].Line)
}

func (s *ServiceSuite) TestTraceMarksNoOps() {
	steps, err := s.service.Trace(s.ctx, "Hello\nR1")
	s.Require().NoError(err)
	s.Require().Len(steps, 2)
	s.False(steps[0].Applied)
	s.Equal(50, steps[0].Position)
	s.True(steps[1].Applied)
	s.Equal(51, steps[1].Position)
}

func (s *ServiceSuite) TestSolveMatchesApplyingParsedCommands() {
	position := model.DialStart
	for _, line := range strings.Split(exampleInput, "\n") {
		cmd, ok, err := ParseCommand(line)
		s.Require().NoError(err)
		s.Require().True(ok)
		position = Apply(position, cmd)
	}

	result, err := s.service.Solve(s.ctx, exampleInput)
	s.Require().NoError(err)
	s.Equal(position, result.FinalPosition)
}
