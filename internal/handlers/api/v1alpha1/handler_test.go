package v1alpha1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/sheet-api/internal/clients/chain"
	"github.com/KirkDiggler/sheet-api/internal/entities/character"
	entdice "github.com/KirkDiggler/sheet-api/internal/entities/dice"
	"github.com/KirkDiggler/sheet-api/internal/errors"
	v1alpha1 "github.com/KirkDiggler/sheet-api/internal/handlers/api/v1alpha1"
	dicesvc "github.com/KirkDiggler/sheet-api/internal/orchestrators/dice"
	dicemock "github.com/KirkDiggler/sheet-api/internal/orchestrators/dice/mock"
	"github.com/KirkDiggler/sheet-api/internal/orchestrators/sheet"
	sheetmock "github.com/KirkDiggler/sheet-api/internal/orchestrators/sheet/mock"
)

const testOwner = "0xowner"

type HandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockSheet *sheetmock.MockService
	mockDice  *dicemock.MockService
	router    *gin.Engine
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.ctrl = gomock.NewController(s.T())
	s.mockSheet = sheetmock.NewMockService(s.ctrl)
	s.mockDice = dicemock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.Config{
		SheetService: s.mockSheet,
		DiceService:  s.mockDice,
	})
	s.Require().NoError(err)

	s.router = gin.New()
	handler.RegisterRoutes(s.router)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) TestGetCharacter() {
	s.mockSheet.EXPECT().
		GetCharacter(gomock.Any(), &sheet.GetCharacterInput{Owner: testOwner}).
		Return(&sheet.GetCharacterOutput{Character: character.Default()}, nil)

	w := s.do(http.MethodGet, "/api/v1alpha1/owners/"+testOwner+"/character", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var got character.Character
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Assert().Equal("Ralina Biggins", got.Name)
	s.Assert().Equal(character.RaceHalfling, got.Race)
}

func (s *HandlerTestSuite) TestGetCharacterNotFound() {
	s.mockSheet.EXPECT().
		GetCharacter(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("no character"))

	w := s.do(http.MethodGet, "/api/v1alpha1/owners/"+testOwner+"/character", nil)
	s.Require().Equal(http.StatusNotFound, w.Code)

	var body map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Assert().Equal("NOT_FOUND", body["code"])
}

func (s *HandlerTestSuite) TestCreateDefault() {
	s.mockSheet.EXPECT().
		CreateDefault(gomock.Any(), &sheet.CreateDefaultInput{Owner: testOwner}).
		Return(&sheet.CreateDefaultOutput{Character: character.Default()}, nil)

	w := s.do(http.MethodPost, "/api/v1alpha1/owners/"+testOwner+"/character/default", nil)
	s.Assert().Equal(http.StatusCreated, w.Code)
}

func (s *HandlerTestSuite) TestCreateDefaultConflict() {
	s.mockSheet.EXPECT().
		CreateDefault(gomock.Any(), gomock.Any()).
		Return(nil, errors.AlreadyExists("already has a character"))

	w := s.do(http.MethodPost, "/api/v1alpha1/owners/"+testOwner+"/character/default", nil)
	s.Assert().Equal(http.StatusConflict, w.Code)
}

func (s *HandlerTestSuite) TestUpdateCharacter() {
	name := "Rosie Took"
	s.mockSheet.EXPECT().
		UpdateCharacter(gomock.Any(), &sheet.UpdateCharacterInput{
			Owner:   testOwner,
			Updates: &character.Updates{Name: &name},
		}).
		DoAndReturn(func(_ any, input *sheet.UpdateCharacterInput) (*sheet.UpdateCharacterOutput, error) {
			c := character.Default()
			c.Name = *input.Updates.Name
			return &sheet.UpdateCharacterOutput{Character: c}, nil
		})

	w := s.do(http.MethodPatch, "/api/v1alpha1/owners/"+testOwner+"/character",
		map[string]string{"name": "Rosie Took"})
	s.Require().Equal(http.StatusOK, w.Code)

	var got character.Character
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Assert().Equal("Rosie Took", got.Name)
}

func (s *HandlerTestSuite) TestUpdateCharacterRejectsUnknownField() {
	// No service expectation: the request must die at the binding layer
	w := s.do(http.MethodPatch, "/api/v1alpha1/owners/"+testOwner+"/character",
		map[string]any{"nmae": "typo"})
	s.Require().Equal(http.StatusBadRequest, w.Code)

	var body map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Assert().Equal("INVALID_ARGUMENT", body["code"])
}

func (s *HandlerTestSuite) TestUpdateStats() {
	str := int32(16)
	s.mockSheet.EXPECT().
		UpdateStats(gomock.Any(), &sheet.UpdateStatsInput{
			Owner: testOwner,
			Stats: &character.StatUpdates{STR: &str},
		}).
		Return(&sheet.UpdateStatsOutput{Character: character.Default()}, nil)

	w := s.do(http.MethodPatch, "/api/v1alpha1/owners/"+testOwner+"/character/stats",
		map[string]int32{"STR": 16})
	s.Assert().Equal(http.StatusOK, w.Code)
}

func (s *HandlerTestSuite) TestReset() {
	s.mockSheet.EXPECT().
		Reset(gomock.Any(), &sheet.ResetInput{Owner: testOwner}).
		Return(&sheet.ResetOutput{}, nil)

	w := s.do(http.MethodDelete, "/api/v1alpha1/owners/"+testOwner+"/session", nil)
	s.Assert().Equal(http.StatusNoContent, w.Code)
}

func (s *HandlerTestSuite) TestMintCharacter() {
	s.mockSheet.EXPECT().
		MintCharacter(gomock.Any(), &sheet.MintCharacterInput{Owner: testOwner}).
		Return(&sheet.MintCharacterOutput{Tx: &chain.TxHandle{Hash: "0xmint"}, Updated: true}, nil)

	w := s.do(http.MethodPost, "/api/v1alpha1/owners/"+testOwner+"/character/mint", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Assert().Equal("0xmint", body["txHash"])
	s.Assert().Equal(true, body["updated"])
}

func (s *HandlerTestSuite) TestMintCharacterChainFailure() {
	s.mockSheet.EXPECT().
		MintCharacter(gomock.Any(), gomock.Any()).
		Return(nil, errors.TransactionFailed("mint reverted"))

	w := s.do(http.MethodPost, "/api/v1alpha1/owners/"+testOwner+"/character/mint", nil)
	s.Assert().Equal(http.StatusBadGateway, w.Code)
}

func (s *HandlerTestSuite) TestListSampleCharacters() {
	s.mockSheet.EXPECT().
		ListSampleCharacters(gomock.Any(), gomock.Any()).
		Return(&sheet.ListSampleCharactersOutput{Characters: []sheet.SampleSummary{
			{ID: 1, Name: "Ralina", Race: character.RaceElf},
		}}, nil)

	w := s.do(http.MethodGet, "/api/v1alpha1/characters", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var got []sheet.SampleSummary
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Require().Len(got, 1)
	s.Assert().Equal("Ralina", got[0].Name)
}

func (s *HandlerTestSuite) TestGetSampleCharacterBadID() {
	w := s.do(http.MethodGet, "/api/v1alpha1/characters/abc", nil)
	s.Assert().Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestRollLocal() {
	s.mockDice.EXPECT().
		RollLocal(gomock.Any(), &dicesvc.RollLocalInput{Owner: testOwner, Kind: "d20", Reason: "attack"}).
		Return(&dicesvc.RollLocalOutput{Roll: &entdice.Roll{
			ID:            "roll_1",
			Kind:          entdice.KindD20,
			Result:        17,
			CharacterName: "Ralina Biggins",
			Reason:        "attack",
		}}, nil)

	w := s.do(http.MethodPost, "/api/v1alpha1/owners/"+testOwner+"/rolls/local",
		map[string]string{"diceType": "d20", "reason": "attack"})
	s.Require().Equal(http.StatusOK, w.Code)

	var got entdice.Roll
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Assert().Equal(entdice.KindD20, got.Kind)
	s.Assert().Equal(int32(17), got.Result)
}

func (s *HandlerTestSuite) TestRollLocalUnsupportedKind() {
	s.mockDice.EXPECT().
		RollLocal(gomock.Any(), gomock.Any()).
		Return(nil, errors.UnsupportedDiceKindf("unsupported dice kind: %q", "d7"))

	w := s.do(http.MethodPost, "/api/v1alpha1/owners/"+testOwner+"/rolls/local",
		map[string]string{"diceType": "d7"})
	s.Require().Equal(http.StatusBadRequest, w.Code)

	var body map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Assert().Equal("UNSUPPORTED_DICE_KIND", body["code"])
}

func (s *HandlerTestSuite) TestRollRemote() {
	s.mockDice.EXPECT().
		RollRemote(gomock.Any(), &dicesvc.RollRemoteInput{Owner: testOwner, Kind: "d6"}).
		Return(&dicesvc.RollRemoteOutput{Tx: &chain.TxHandle{Hash: "0xtx"}}, nil)

	w := s.do(http.MethodPost, "/api/v1alpha1/owners/"+testOwner+"/rolls/remote",
		map[string]string{"diceType": "d6"})
	s.Require().Equal(http.StatusAccepted, w.Code)

	var body map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Assert().Equal("0xtx", body["txHash"])
}

func (s *HandlerTestSuite) TestRollRemoteWhileRolling() {
	s.mockDice.EXPECT().
		RollRemote(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPrecondition("a roll is already in flight"))

	w := s.do(http.MethodPost, "/api/v1alpha1/owners/"+testOwner+"/rolls/remote",
		map[string]string{"diceType": "d6"})
	s.Assert().Equal(http.StatusPreconditionFailed, w.Code)
}

func (s *HandlerTestSuite) TestGetHistoryWithFilter() {
	s.mockDice.EXPECT().
		GetHistory(gomock.Any(), &dicesvc.GetHistoryInput{Owner: testOwner, Kind: "d6"}).
		Return(&dicesvc.GetHistoryOutput{
			Rolls: []entdice.Roll{{ID: "r1", Kind: entdice.KindD6, Result: 4}},
			State: dicesvc.StateIdle,
		}, nil)

	w := s.do(http.MethodGet, "/api/v1alpha1/owners/"+testOwner+"/rolls?kind=d6", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var body struct {
		Rolls []entdice.Roll `json:"rolls"`
		State dicesvc.State  `json:"state"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Require().Len(body.Rolls, 1)
	s.Assert().Equal(entdice.KindD6, body.Rolls[0].Kind)
	s.Assert().Equal(dicesvc.StateIdle, body.State)
}

func (s *HandlerTestSuite) TestClearHistory() {
	s.mockDice.EXPECT().
		ClearHistory(gomock.Any(), &dicesvc.ClearHistoryInput{Owner: testOwner}).
		Return(&dicesvc.ClearHistoryOutput{}, nil)

	w := s.do(http.MethodDelete, "/api/v1alpha1/owners/"+testOwner+"/rolls", nil)
	s.Assert().Equal(http.StatusNoContent, w.Code)
}
