package dice_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/sheet-api/internal/clients/chain"
	chainmock "github.com/KirkDiggler/sheet-api/internal/clients/chain/mock"
	"github.com/KirkDiggler/sheet-api/internal/entities/character"
	entdice "github.com/KirkDiggler/sheet-api/internal/entities/dice"
	"github.com/KirkDiggler/sheet-api/internal/errors"
	"github.com/KirkDiggler/sheet-api/internal/notifications"
	"github.com/KirkDiggler/sheet-api/internal/pkg/clock"
	"github.com/KirkDiggler/sheet-api/internal/pkg/idgen"
	"github.com/KirkDiggler/sheet-api/internal/repositories/session"

	dice "github.com/KirkDiggler/sheet-api/internal/orchestrators/dice"
)

const testOwner = "0xplayer"

// notificationRecorder captures notifications across goroutines.
type notificationRecorder struct {
	mu  sync.Mutex
	got []notifications.Notification
}

var _ notifications.Notifier = (*notificationRecorder)(nil)

func (r *notificationRecorder) Notify(_ context.Context, n notifications.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
}

func (r *notificationRecorder) all() []notifications.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notifications.Notification(nil), r.got...)
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockChain *chainmock.MockClient
	repo      session.Repository
	notifier  *notificationRecorder
	service   dice.Service
	ctx       context.Context
	cancel    context.CancelFunc
	events    chan chain.RollEvent
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockChain = chainmock.NewMockClient(s.ctrl)
	s.repo = session.NewInMemory(nil)
	s.notifier = &notificationRecorder{}
	s.events = make(chan chain.RollEvent, 8)
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.service = s.newService(&dice.Config{})
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.cancel()
	s.ctrl.Finish()
}

// newService builds an orchestrator with the suite's collaborators, taking
// only the tuning knobs from cfg.
func (s *OrchestratorTestSuite) newService(cfg *dice.Config) dice.Service {
	svc, err := dice.NewOrchestrator(&dice.Config{
		SessionRepo:    s.repo,
		ChainClient:    s.mockChain,
		Notifier:       s.notifier,
		IDGenerator:    idgen.NewSequential("roll"),
		Clock:          clock.New(),
		LocalRollDelay: cfg.LocalRollDelay,
		ConfirmTimeout: cfg.ConfirmTimeout,
	})
	s.Require().NoError(err)
	return svc
}

func (s *OrchestratorTestSuite) seedSession() {
	_, err := s.repo.Save(s.ctx, session.SaveInput{Session: &session.Session{
		Owner:     testOwner,
		Character: character.Default(),
	}})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) history(kind string) *dice.GetHistoryOutput {
	out, err := s.service.GetHistory(s.ctx, &dice.GetHistoryInput{Owner: testOwner, Kind: kind})
	s.Require().NoError(err)
	return out
}

func (s *OrchestratorTestSuite) TestRollLocalRecordsHistory() {
	s.seedSession()

	out, err := s.service.RollLocal(s.ctx, &dice.RollLocalInput{
		Owner:  testOwner,
		Kind:   "d20",
		Reason: "initiative",
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.Roll)

	s.Assert().Equal(entdice.KindD20, out.Roll.Kind)
	s.Assert().GreaterOrEqual(out.Roll.Result, int32(1))
	s.Assert().LessOrEqual(out.Roll.Result, int32(20))
	s.Assert().Equal("Ralina Biggins", out.Roll.CharacterName)
	s.Assert().Equal("initiative", out.Roll.Reason)

	history := s.history("")
	s.Require().Len(history.Rolls, 1)
	s.Assert().Equal(*out.Roll, history.Rolls[0])
	s.Assert().Equal(dice.StateIdle, history.State)

	got := s.notifier.all()
	s.Require().Len(got, 1)
	s.Assert().Equal(notifications.KindSuccess, got[0].Kind)
	s.Assert().Equal(fmt.Sprintf("Ralina Biggins rolls d20 and gets %d!", out.Roll.Result), got[0].Message)
	s.Assert().Equal(3*time.Second, got[0].Duration)
}

func (s *OrchestratorTestSuite) TestRollLocalWithoutSession() {
	out, err := s.service.RollLocal(s.ctx, &dice.RollLocalInput{Owner: testOwner, Kind: "d4"})
	s.Require().NoError(err)
	s.Assert().Equal("Unknown", out.Roll.CharacterName)

	history := s.history("")
	s.Require().Len(history.Rolls, 1)
}

func (s *OrchestratorTestSuite) TestRollLocalUnknownKind() {
	_, err := s.service.RollLocal(s.ctx, &dice.RollLocalInput{Owner: testOwner, Kind: "d12"})
	s.Require().Error(err)
	s.Assert().True(errors.IsUnsupportedDiceKind(err))
	s.Assert().Empty(s.history("").Rolls)
}

func (s *OrchestratorTestSuite) TestRollLocalCoversAllFaces() {
	s.seedSession()

	seen := make(map[int32]int)
	for i := 0; i < 10000; i++ {
		out, err := s.service.RollLocal(s.ctx, &dice.RollLocalInput{Owner: testOwner, Kind: "d6"})
		s.Require().NoError(err)
		s.Require().GreaterOrEqual(out.Roll.Result, int32(1))
		s.Require().LessOrEqual(out.Roll.Result, int32(6))
		seen[out.Roll.Result]++
	}

	for face := int32(1); face <= 6; face++ {
		s.Assert().Positive(seen[face], "face %d never rolled", face)
	}

	// The history stays bounded no matter how many rolls happen
	s.Assert().Len(s.history("").Rolls, entdice.MaxHistory)
}

func (s *OrchestratorTestSuite) TestRollRemoteLifecycle() {
	s.seedSession()
	s.mockChain.EXPECT().
		SubscribeRollEvents(gomock.Any()).
		Return((<-chan chain.RollEvent)(s.events), nil)
	s.mockChain.EXPECT().
		SubmitRoll(gomock.Any(), testOwner, int32(20), "attack").
		Return(&chain.TxHandle{Hash: "0xtx1"}, nil)

	s.Require().NoError(s.service.Start(s.ctx))

	out, err := s.service.RollRemote(s.ctx, &dice.RollRemoteInput{
		Owner:  testOwner,
		Kind:   "d20",
		Reason: "attack",
	})
	s.Require().NoError(err)
	s.Assert().Equal("0xtx1", out.Tx.Hash)

	// Unresolved: the owner is rolling and cannot start another roll
	s.Assert().Equal(dice.StateRolling, s.history("").State)

	_, err = s.service.RollRemote(s.ctx, &dice.RollRemoteInput{Owner: testOwner, Kind: "d6"})
	s.Assert().True(errors.IsFailedPrecondition(err))
	_, err = s.service.RollLocal(s.ctx, &dice.RollLocalInput{Owner: testOwner, Kind: "d6"})
	s.Assert().True(errors.IsFailedPrecondition(err))

	s.events <- chain.RollEvent{
		Player:   testOwner,
		RollID:   "evt_1",
		KindCode: 20,
		Result:   17,
		Reason:   "attack",
	}

	s.Require().Eventually(func() bool {
		return len(s.history("").Rolls) == 1
	}, time.Second, 5*time.Millisecond)

	history := s.history("")
	s.Assert().Equal(dice.StateIdle, history.State)
	s.Assert().Equal("evt_1", history.Rolls[0].ID)
	s.Assert().Equal(entdice.KindD20, history.Rolls[0].Kind)
	s.Assert().Equal(int32(17), history.Rolls[0].Result)
	s.Assert().Equal("attack", history.Rolls[0].Reason)
	s.Assert().Equal("Ralina Biggins", history.Rolls[0].CharacterName)
}

func (s *OrchestratorTestSuite) TestRollRemoteSubmitFailure() {
	s.mockChain.EXPECT().
		SubmitRoll(gomock.Any(), testOwner, int32(6), "").
		Return(nil, errors.Unavailable("rpc node down"))

	_, err := s.service.RollRemote(s.ctx, &dice.RollRemoteInput{Owner: testOwner, Kind: "d6"})
	s.Require().Error(err)
	s.Assert().True(errors.IsTransactionFailed(err))

	// A failed submission unblocks the owner immediately
	s.Assert().Equal(dice.StateIdle, s.history("").State)

	got := s.notifier.all()
	s.Require().Len(got, 1)
	s.Assert().Equal(notifications.KindError, got[0].Kind)
}

func (s *OrchestratorTestSuite) TestRollEventUnknownCodeFallsBackToD20() {
	s.mockChain.EXPECT().
		SubscribeRollEvents(gomock.Any()).
		Return((<-chan chain.RollEvent)(s.events), nil)

	s.Require().NoError(s.service.Start(s.ctx))

	s.events <- chain.RollEvent{Player: testOwner, RollID: "evt_9", KindCode: 13, Result: 11}

	s.Require().Eventually(func() bool {
		return len(s.history("").Rolls) == 1
	}, time.Second, 5*time.Millisecond)

	s.Assert().Equal(entdice.KindD20, s.history("").Rolls[0].Kind)
}

func (s *OrchestratorTestSuite) TestConfirmTimeoutUnblocksOwner() {
	svc := s.newService(&dice.Config{ConfirmTimeout: 20 * time.Millisecond})
	s.mockChain.EXPECT().
		SubmitRoll(gomock.Any(), testOwner, int32(4), "").
		Return(&chain.TxHandle{Hash: "0xtx2"}, nil)

	_, err := svc.RollRemote(s.ctx, &dice.RollRemoteInput{Owner: testOwner, Kind: "d4"})
	s.Require().NoError(err)

	s.Require().Eventually(func() bool {
		out, err := svc.GetHistory(s.ctx, &dice.GetHistoryInput{Owner: testOwner})
		s.Require().NoError(err)
		return out.State == dice.StateIdle
	}, time.Second, 5*time.Millisecond)
}

func (s *OrchestratorTestSuite) TestGetHistoryFilter() {
	sess := &session.Session{Owner: testOwner, Character: character.Default()}
	sess.Rolls.Add(entdice.Roll{ID: "r1", Kind: entdice.KindD4, Result: 3})
	sess.Rolls.Add(entdice.Roll{ID: "r2", Kind: entdice.KindD6, Result: 5})
	sess.Rolls.Add(entdice.Roll{ID: "r3", Kind: entdice.KindD6, Result: 2})
	_, err := s.repo.Save(s.ctx, session.SaveInput{Session: sess})
	s.Require().NoError(err)

	out := s.history("d6")
	s.Require().Len(out.Rolls, 2)
	s.Assert().Equal("r3", out.Rolls[0].ID)
	s.Assert().Equal("r2", out.Rolls[1].ID)

	s.Assert().Len(s.history("all").Rolls, 3)
	s.Assert().Len(s.history("").Rolls, 3)

	_, err = s.service.GetHistory(s.ctx, &dice.GetHistoryInput{Owner: testOwner, Kind: "d13"})
	s.Assert().True(errors.IsUnsupportedDiceKind(err))
}

func (s *OrchestratorTestSuite) TestGetHistoryNoSession() {
	out := s.history("")
	s.Assert().Empty(out.Rolls)
	s.Assert().Equal(dice.StateIdle, out.State)
}

func (s *OrchestratorTestSuite) TestClearHistoryKeepsCharacter() {
	sess := &session.Session{Owner: testOwner, Character: character.Default()}
	sess.Rolls.Add(entdice.Roll{ID: "r1", Kind: entdice.KindD20, Result: 20})
	_, err := s.repo.Save(s.ctx, session.SaveInput{Session: sess})
	s.Require().NoError(err)

	_, err = s.service.ClearHistory(s.ctx, &dice.ClearHistoryInput{Owner: testOwner})
	s.Require().NoError(err)

	s.Assert().Empty(s.history("").Rolls)

	got, err := s.repo.Get(s.ctx, session.GetInput{Owner: testOwner})
	s.Require().NoError(err)
	s.Assert().NotNil(got.Session.Character)
}

func (s *OrchestratorTestSuite) TestClearHistoryNoSession() {
	_, err := s.service.ClearHistory(s.ctx, &dice.ClearHistoryInput{Owner: testOwner})
	s.Assert().NoError(err)
}
