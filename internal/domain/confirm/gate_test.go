//go:build unit

package confirm_test

import (
	"errors"
	"testing"
	"time"

	"boat-scheduler/internal/domain/confirm"
	"boat-scheduler/internal/pkg/clock"
	"boat-scheduler/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type disarmEvent struct {
	kind   confirm.Kind
	reason confirm.DisarmReason
}

type GateSuite struct {
	suite.Suite
	clock    *clock.MockClock
	gate     *confirm.Gate
	disarms  []disarmEvent
	executed int
}

func TestGateSuite(t *testing.T) {
	suite.Run(t, new(GateSuite))
}

func (s *GateSuite) SetupTest() {
	s.clock = clock.NewMockClock(time.Date(2026, time.January, 1, 9, 0, 0, 0, time.UTC))
	s.disarms = nil
	s.executed = 0
	s.gate = confirm.NewGate(s.clock, confirm.DefaultTimeout, confirm.WithOnDisarm(func(p confirm.Pending, r confirm.DisarmReason) {
		s.disarms = append(s.disarms, disarmEvent{kind: p.Kind, reason: r})
	}))
}

func (s *GateSuite) execute() error {
	s.executed++
	return nil
}

var booking1 = confirm.Target{BookingID: 1}

func (s *GateSuite) TestFirstInvocationArms() {
	outcome, err := s.gate.Invoke(confirm.KindCancel, booking1, s.execute)
	s.Require().NoError(err)

	s.Equal(confirm.OutcomeArmed, outcome)
	s.Equal(0, s.executed)
	p, ok := s.gate.Pending()
	s.Require().True(ok)
	s.Equal(confirm.KindCancel, p.Kind)
	s.Equal(s.clock.Now().Add(3*time.Second), p.ExpiresAt)
	s.Equal(1, s.clock.PendingTimers())
}

func (s *GateSuite) TestSecondInvocationWithinTimeoutExecutes() {
	_, _ = s.gate.Invoke(confirm.KindCancel, booking1, s.execute)
	s.clock.Add(2999 * time.Millisecond)

	outcome, err := s.gate.Invoke(confirm.KindCancel, booking1, s.execute)
	s.Require().NoError(err)

	s.Equal(confirm.OutcomeExecuted, outcome)
	s.Equal(1, s.executed)
	_, armed := s.gate.Pending()
	s.False(armed)
	s.Equal(0, s.clock.PendingTimers())

	s.clock.Add(time.Minute)
	s.Empty(s.disarms, "stopped timer must not fire")
}

func (s *GateSuite) TestExpiryDisarmsSilently() {
	_, _ = s.gate.Invoke(confirm.KindCancel, booking1, s.execute)
	s.clock.Add(confirm.DefaultTimeout)

	_, armed := s.gate.Pending()
	s.False(armed)
	s.Equal([]disarmEvent{{kind: confirm.KindCancel, reason: confirm.ReasonExpired}}, s.disarms)

	outcome, err := s.gate.Invoke(confirm.KindCancel, booking1, s.execute)
	s.Require().NoError(err)
	s.Equal(confirm.OutcomeArmed, outcome, "an invocation after expiry re-arms")
	s.Equal(0, s.executed)
}

func (s *GateSuite) TestDifferentKindReplaces() {
	_, _ = s.gate.Invoke(confirm.KindCancel, booking1, s.execute)

	outcome, err := s.gate.Invoke(confirm.KindRefund, booking1, s.execute)
	s.Require().NoError(err)
	s.Equal(confirm.OutcomeArmed, outcome)
	s.Equal(0, s.executed)

	p, ok := s.gate.Pending()
	s.Require().True(ok)
	s.Equal(confirm.KindRefund, p.Kind)
	s.Equal([]disarmEvent{{kind: confirm.KindCancel, reason: confirm.ReasonReplaced}}, s.disarms)
	s.Equal(1, s.clock.PendingTimers())

	outcome, _ = s.gate.Invoke(confirm.KindRefund, booking1, s.execute)
	s.Equal(confirm.OutcomeExecuted, outcome)
	s.Equal(1, s.executed)
}

func (s *GateSuite) TestDifferentTargetReplaces() {
	_, _ = s.gate.Invoke(confirm.KindCancel, booking1, s.execute)

	outcome, _ := s.gate.Invoke(confirm.KindCancel, confirm.Target{BookingID: 2}, s.execute)
	s.Equal(confirm.OutcomeArmed, outcome)

	outcome, _ = s.gate.Invoke(confirm.KindCancel, booking1, s.execute)
	s.Equal(confirm.OutcomeArmed, outcome)
	s.Equal(0, s.executed)
}

func (s *GateSuite) TestStaleTimerDoesNotDisarmLaterArm() {
	_, _ = s.gate.Invoke(confirm.KindCancel, booking1, s.execute)
	s.clock.Add(2 * time.Second)
	_, _ = s.gate.Invoke(confirm.KindRefund, booking1, s.execute)

	// the first arm would have expired here
	s.clock.Add(1500 * time.Millisecond)
	p, ok := s.gate.Pending()
	s.Require().True(ok)
	s.Equal(confirm.KindRefund, p.Kind)

	outcome, _ := s.gate.Invoke(confirm.KindRefund, booking1, s.execute)
	s.Equal(confirm.OutcomeExecuted, outcome)
}

func (s *GateSuite) TestDisarm() {
	s.False(s.gate.Disarm())

	_, _ = s.gate.Invoke(confirm.KindRemovePassenger, confirm.Target{BookingID: 2, PassengerID: "p1"}, s.execute)
	s.True(s.gate.Disarm())
	s.Equal(0, s.clock.PendingTimers())
	s.Equal([]disarmEvent{{kind: confirm.KindRemovePassenger, reason: confirm.ReasonCleared}}, s.disarms)

	outcome, _ := s.gate.Invoke(confirm.KindRemovePassenger, confirm.Target{BookingID: 2, PassengerID: "p1"}, s.execute)
	s.Equal(confirm.OutcomeArmed, outcome)
}

func (s *GateSuite) TestExecuteErrorStillIdles() {
	boom := errors.New("boom")
	fail := func() error { return boom }

	_, _ = s.gate.Invoke(confirm.KindRefund, booking1, fail)
	outcome, err := s.gate.Invoke(confirm.KindRefund, booking1, fail)

	s.Equal(confirm.OutcomeExecuted, outcome)
	s.ErrorIs(err, boom)
	_, armed := s.gate.Pending()
	s.False(armed)
}

func (s *GateSuite) TestParseKindAndTarget() {
	k, err := confirm.ParseKind(" Refund-Passenger ")
	s.Require().NoError(err)
	s.Equal(confirm.KindRefundPassenger, k)

	_, err = confirm.ParseKind("delete")
	s.ErrorIs(err, confirm.ErrUnknownKind)
	s.True(errs.IsKind(err, errs.KindValidation))

	target, err := confirm.NewTarget(confirm.KindCancel, 4, "p2")
	s.Require().NoError(err)
	s.Equal(confirm.Target{BookingID: 4}, target, "booking-scoped kinds drop the passenger")

	_, err = confirm.NewTarget(confirm.KindRemovePassenger, 4, "")
	s.ErrorIs(err, confirm.ErrMissingPassenger)
	_, err = confirm.NewTarget(confirm.KindCancel, 0, "")
	s.ErrorIs(err, confirm.ErrMissingBooking)
}

func (s *GateSuite) TestDefaultTimeout() {
	s.Equal(confirm.DefaultTimeout, confirm.NewGate(s.clock, 0).Timeout())
}
