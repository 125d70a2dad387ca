package handler

import (
	"net/http"

	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/serializer"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type SimulateHandler struct {
	svc service.AnalysisService
}

func NewSimulateHandler(s service.AnalysisService) *SimulateHandler {
	return &SimulateHandler{svc: s}
}

type SimulateReq struct {
	Scenario string         `json:"scenario" binding:"required" example:"Raise prices 10% on the premium plan"`
	Context  map[string]any `json:"context"`
}

// Simulate godoc
//
//	@Summary		Analyze a scenario
//	@Description	Score a business scenario with the configured language model. When the provider fails and mock fallback is enabled, a deterministic mock analysis marked source=mock is returned instead.
//	@Tags			analysis
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.SimulateReq	true	"Scenario"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	serializer.Response
//	@Failure		500		{object}	serializer.Response
//	@Failure		502		{object}	serializer.Response
//	@Router			/simulate [post]
func (h *SimulateHandler) Simulate(c *gin.Context) {
	req := SimulateReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Analyze(c.Request.Context(), req.Scenario, req.Context)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
