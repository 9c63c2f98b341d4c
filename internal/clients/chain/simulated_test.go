package chain_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/sheet-api/internal/clients/chain"
	"github.com/KirkDiggler/sheet-api/internal/errors"
	"github.com/KirkDiggler/sheet-api/internal/pkg/clock"
	"github.com/KirkDiggler/sheet-api/internal/pkg/idgen"
)

const testOwner = "0xowner"

type SimulatedTestSuite struct {
	suite.Suite
	client *chain.Simulated
	ctx    context.Context
	cancel context.CancelFunc
}

func TestSimulatedSuite(t *testing.T) {
	suite.Run(t, new(SimulatedTestSuite))
}

func (s *SimulatedTestSuite) SetupTest() {
	client, err := chain.NewSimulated(&chain.SimulatedConfig{
		IDGenerator: idgen.NewSequential("tx"),
		Clock:       clock.New(),
		RollDelay:   5 * time.Millisecond,
	})
	s.Require().NoError(err)

	s.client = client
	s.ctx, s.cancel = context.WithCancel(context.Background())
}

func (s *SimulatedTestSuite) TearDownTest() {
	s.cancel()
}

func (s *SimulatedTestSuite) metadata(name string) *chain.TokenMetadata {
	return &chain.TokenMetadata{Name: name, Race: "Halfling", Gender: "Female", Level: 1, HP: 3}
}

func (s *SimulatedTestSuite) TestMintAndReadBack() {
	balance, err := s.client.BalanceOf(s.ctx, testOwner)
	s.Require().NoError(err)
	s.Assert().Equal(int64(0), balance)

	_, err = s.client.TokenOf(s.ctx, testOwner)
	s.Assert().True(errors.IsNotFound(err))

	tx, err := s.client.Mint(s.ctx, testOwner, s.metadata("Ralina Biggins"))
	s.Require().NoError(err)
	s.Assert().NotEmpty(tx.Hash)

	balance, err = s.client.BalanceOf(s.ctx, testOwner)
	s.Require().NoError(err)
	s.Assert().Equal(int64(1), balance)

	tokenID, err := s.client.TokenOf(s.ctx, testOwner)
	s.Require().NoError(err)

	meta, err := s.client.TokenMetadata(s.ctx, tokenID)
	s.Require().NoError(err)
	s.Assert().Equal("Ralina Biggins", meta.Name)
}

func (s *SimulatedTestSuite) TestSecondMintReverts() {
	_, err := s.client.Mint(s.ctx, testOwner, s.metadata("First"))
	s.Require().NoError(err)

	_, err = s.client.Mint(s.ctx, testOwner, s.metadata("Second"))
	s.Require().Error(err)
	s.Assert().True(errors.IsTransactionFailed(err))
}

func (s *SimulatedTestSuite) TestUpdateTokenMetadata() {
	_, err := s.client.Mint(s.ctx, testOwner, s.metadata("Before"))
	s.Require().NoError(err)

	tokenID, err := s.client.TokenOf(s.ctx, testOwner)
	s.Require().NoError(err)

	_, err = s.client.UpdateTokenMetadata(s.ctx, tokenID, s.metadata("After"))
	s.Require().NoError(err)

	meta, err := s.client.TokenMetadata(s.ctx, tokenID)
	s.Require().NoError(err)
	s.Assert().Equal("After", meta.Name)

	_, err = s.client.UpdateTokenMetadata(s.ctx, "999", s.metadata("Nobody"))
	s.Assert().True(errors.IsTransactionFailed(err))
}

func (s *SimulatedTestSuite) TestMetadataCopies() {
	original := s.metadata("Stable")
	_, err := s.client.Mint(s.ctx, testOwner, original)
	s.Require().NoError(err)

	// Mutating the caller's metadata after mint must not affect the token
	original.Name = "Mutated"

	tokenID, err := s.client.TokenOf(s.ctx, testOwner)
	s.Require().NoError(err)
	meta, err := s.client.TokenMetadata(s.ctx, tokenID)
	s.Require().NoError(err)
	s.Assert().Equal("Stable", meta.Name)
}

func (s *SimulatedTestSuite) TestSubmitRollEmitsEvent() {
	events, err := s.client.SubscribeRollEvents(s.ctx)
	s.Require().NoError(err)

	tx, err := s.client.SubmitRoll(s.ctx, testOwner, 6, "attack")
	s.Require().NoError(err)
	s.Assert().NotEmpty(tx.Hash)

	select {
	case event := <-events:
		s.Assert().Equal(testOwner, event.Player)
		s.Assert().NotEmpty(event.RollID)
		s.Assert().Equal(int32(6), event.KindCode)
		s.Assert().GreaterOrEqual(event.Result, int32(1))
		s.Assert().LessOrEqual(event.Result, int32(6))
		s.Assert().Equal("attack", event.Reason)
	case <-time.After(time.Second):
		s.FailNow("no roll event within a second")
	}
}

func (s *SimulatedTestSuite) TestUnknownKindCodeRollsD20() {
	events, err := s.client.SubscribeRollEvents(s.ctx)
	s.Require().NoError(err)

	_, err = s.client.SubmitRoll(s.ctx, testOwner, 99, "")
	s.Require().NoError(err)

	select {
	case event := <-events:
		s.Assert().Equal(int32(20), event.KindCode)
		s.Assert().GreaterOrEqual(event.Result, int32(1))
		s.Assert().LessOrEqual(event.Result, int32(20))
	case <-time.After(time.Second):
		s.FailNow("no roll event within a second")
	}
}

func (s *SimulatedTestSuite) TestSubscribeClosesOnCancel() {
	events, err := s.client.SubscribeRollEvents(s.ctx)
	s.Require().NoError(err)

	s.cancel()

	select {
	case _, open := <-events:
		s.Assert().False(open)
	case <-time.After(time.Second):
		s.FailNow("channel not closed after cancel")
	}
}
