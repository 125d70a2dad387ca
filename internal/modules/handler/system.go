package handler

import (
	"net/http"
	"os"

	"github.com/Shreyaj-Padigala/ProSolve/internal/config"
	"github.com/Shreyaj-Padigala/ProSolve/internal/infra/llm"
	"github.com/Shreyaj-Padigala/ProSolve/internal/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// SystemHandler serves the introspection endpoints.
type SystemHandler struct {
	cfg      *config.Config
	provider llm.Provider
	calls    *metrics.Counter
}

func NewSystemHandler(cfg *config.Config, provider llm.Provider, calls *metrics.Counter) *SystemHandler {
	return &SystemHandler{
		cfg:      cfg,
		provider: provider,
		calls:    calls,
	}
}

type HealthResp struct {
	Status      string `json:"status" example:"ok"`
	LLMProvider string `json:"llm_provider" example:"groq"`
	LLMModel    string `json:"llm_model" example:"llama-3.1-8b-instant"`
	LLMMockMode bool   `json:"llm_mock_mode" example:"false"`
	MockOnFail  bool   `json:"mock_on_fail" example:"true"`
	Timezone    string `json:"timezone" example:"America/Chicago"`
}

// Health godoc
//
//	@Summary	Health check
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	handler.HealthResp
//	@Router		/health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResp{
		Status:      "ok",
		LLMProvider: h.provider.Name(),
		LLMModel:    h.provider.Model(),
		LLMMockMode: llm.IsMock(h.provider),
		MockOnFail:  h.cfg.LLM.MockOnFail,
		Timezone:    h.cfg.Calendar.Timezone,
	})
}

type ConfigResp struct {
	Provider   string `json:"provider" example:"groq"`
	APIBase    string `json:"api_base" example:"https://api.groq.com/openai/v1"`
	Model      string `json:"model" example:"llama-3.1-8b-instant"`
	HasAPIKey  bool   `json:"has_api_key" example:"true"`
	Cwd        string `json:"cwd" example:"/app"`
	Timezone   string `json:"timezone" example:"America/Chicago"`
	MockOnFail bool   `json:"mock_on_fail" example:"true"`
}

// Config godoc
//
//	@Summary		Effective LLM configuration
//	@Description	The API key itself is never returned, only whether one is set.
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	handler.ConfigResp
//	@Router			/config [get]
func (h *SystemHandler) Config(c *gin.Context) {
	cwd, _ := os.Getwd()
	c.JSON(http.StatusOK, ConfigResp{
		Provider:   h.cfg.LLM.Provider,
		APIBase:    h.cfg.LLM.APIBase,
		Model:      h.cfg.LLM.Model,
		HasAPIKey:  h.cfg.LLM.APIKey != "",
		Cwd:        cwd,
		Timezone:   h.cfg.Calendar.Timezone,
		MockOnFail: h.cfg.LLM.MockOnFail,
	})
}

type MetricsResp struct {
	APICalls int64 `json:"api_calls" example:"12"`
}

// Metrics godoc
//
//	@Summary		Analysis call counter
//	@Description	Number of analysis calls since process start
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	handler.MetricsResp
//	@Router			/metrics [get]
func (h *SystemHandler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, MetricsResp{APICalls: h.calls.Load()})
}
