// Package v1alpha1 exposes the character sheet and dice services over
// HTTP. Thin layer: it binds JSON, calls the orchestrators, and maps
// error codes to HTTP statuses. No business rules live here.
package v1alpha1

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/sheet-api/internal/entities/character"
	"github.com/KirkDiggler/sheet-api/internal/errors"
	dicesvc "github.com/KirkDiggler/sheet-api/internal/orchestrators/dice"
	"github.com/KirkDiggler/sheet-api/internal/orchestrators/sheet"
)

// Config holds the dependencies for the API handler
type Config struct {
	SheetService sheet.Service
	DiceService  dicesvc.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SheetService == nil {
		vb.RequiredField("SheetService")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}

	return vb.Build()
}

// Handler serves the v1alpha1 HTTP API
type Handler struct {
	sheetService sheet.Service
	diceService  dicesvc.Service
}

// NewHandler creates a new API handler with the provided dependencies
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		sheetService: cfg.SheetService,
		diceService:  cfg.DiceService,
	}, nil
}

// RegisterRoutes mounts the API under /api/v1alpha1
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	api := router.Group("/api/v1alpha1")
	{
		samples := api.Group("/characters")
		{
			samples.GET("", h.listSampleCharacters)
			samples.GET("/:id", h.getSampleCharacter)
		}

		owner := api.Group("/owners/:owner")
		{
			owner.GET("/character", h.getCharacter)
			owner.PUT("/character", h.setCharacter)
			owner.PATCH("/character", h.updateCharacter)
			owner.PATCH("/character/stats", h.updateStats)
			owner.POST("/character/default", h.createDefault)
			owner.POST("/character/mint", h.mintCharacter)
			owner.POST("/character/sync", h.syncFromToken)
			owner.DELETE("/session", h.reset)

			owner.GET("/rolls", h.getHistory)
			owner.POST("/rolls/local", h.rollLocal)
			owner.POST("/rolls/remote", h.rollRemote)
			owner.DELETE("/rolls", h.clearHistory)
		}
	}
}

// writeError maps a service error onto an HTTP response.
func writeError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
	}
	c.JSON(status, gin.H{
		"code":  code.String(),
		"error": errors.GetMessage(err),
	})
}

// bindStrict decodes the request body rejecting unknown fields, so typos
// in update payloads fail loudly instead of silently doing nothing.
func bindStrict(c *gin.Context, v any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.InvalidArgumentf("invalid request body: %v", err)
	}
	return nil
}

func ownerParam(c *gin.Context) string {
	return c.Param("owner")
}

func (h *Handler) getCharacter(c *gin.Context) {
	out, err := h.sheetService.GetCharacter(c.Request.Context(), &sheet.GetCharacterInput{
		Owner: ownerParam(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out.Character)
}

func (h *Handler) createDefault(c *gin.Context) {
	out, err := h.sheetService.CreateDefault(c.Request.Context(), &sheet.CreateDefaultInput{
		Owner: ownerParam(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out.Character)
}

func (h *Handler) setCharacter(c *gin.Context) {
	var body character.Character
	if err := bindStrict(c, &body); err != nil {
		writeError(c, err)
		return
	}

	out, err := h.sheetService.SetCharacter(c.Request.Context(), &sheet.SetCharacterInput{
		Owner:     ownerParam(c),
		Character: &body,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out.Character)
}

func (h *Handler) updateCharacter(c *gin.Context) {
	var body character.Updates
	if err := bindStrict(c, &body); err != nil {
		writeError(c, err)
		return
	}

	out, err := h.sheetService.UpdateCharacter(c.Request.Context(), &sheet.UpdateCharacterInput{
		Owner:   ownerParam(c),
		Updates: &body,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out.Character)
}

func (h *Handler) updateStats(c *gin.Context) {
	var body character.StatUpdates
	if err := bindStrict(c, &body); err != nil {
		writeError(c, err)
		return
	}

	out, err := h.sheetService.UpdateStats(c.Request.Context(), &sheet.UpdateStatsInput{
		Owner: ownerParam(c),
		Stats: &body,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out.Character)
}

func (h *Handler) reset(c *gin.Context) {
	if _, err := h.sheetService.Reset(c.Request.Context(), &sheet.ResetInput{
		Owner: ownerParam(c),
	}); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type mintResponse struct {
	TxHash  string `json:"txHash"`
	Updated bool   `json:"updated"`
}

func (h *Handler) mintCharacter(c *gin.Context) {
	out, err := h.sheetService.MintCharacter(c.Request.Context(), &sheet.MintCharacterInput{
		Owner: ownerParam(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mintResponse{TxHash: out.Tx.Hash, Updated: out.Updated})
}

func (h *Handler) syncFromToken(c *gin.Context) {
	out, err := h.sheetService.SyncFromToken(c.Request.Context(), &sheet.SyncFromTokenInput{
		Owner: ownerParam(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out.Character)
}

func (h *Handler) listSampleCharacters(c *gin.Context) {
	out, err := h.sheetService.ListSampleCharacters(c.Request.Context(), &sheet.ListSampleCharactersInput{})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out.Characters)
}

func (h *Handler) getSampleCharacter(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		writeError(c, errors.InvalidArgumentf("invalid character id: %s", c.Param("id")))
		return
	}

	out, err := h.sheetService.GetSampleCharacter(c.Request.Context(), &sheet.GetSampleCharacterInput{
		ID: int32(id),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out.Character)
}

type rollRequest struct {
	Kind   string `json:"diceType"`
	Reason string `json:"reason"`
}

func (h *Handler) rollLocal(c *gin.Context) {
	var body rollRequest
	if err := bindStrict(c, &body); err != nil {
		writeError(c, err)
		return
	}

	out, err := h.diceService.RollLocal(c.Request.Context(), &dicesvc.RollLocalInput{
		Owner:  ownerParam(c),
		Kind:   body.Kind,
		Reason: body.Reason,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out.Roll)
}

type rollRemoteResponse struct {
	TxHash string `json:"txHash"`
}

func (h *Handler) rollRemote(c *gin.Context) {
	var body rollRequest
	if err := bindStrict(c, &body); err != nil {
		writeError(c, err)
		return
	}

	out, err := h.diceService.RollRemote(c.Request.Context(), &dicesvc.RollRemoteInput{
		Owner:  ownerParam(c),
		Kind:   body.Kind,
		Reason: body.Reason,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, rollRemoteResponse{TxHash: out.Tx.Hash})
}

func (h *Handler) getHistory(c *gin.Context) {
	out, err := h.diceService.GetHistory(c.Request.Context(), &dicesvc.GetHistoryInput{
		Owner: ownerParam(c),
		Kind:  c.Query("kind"),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"rolls": out.Rolls,
		"state": out.State,
	})
}

func (h *Handler) clearHistory(c *gin.Context) {
	if _, err := h.diceService.ClearHistory(c.Request.Context(), &dicesvc.ClearHistoryInput{
		Owner: ownerParam(c),
	}); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
