package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/model"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/serializer"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/service"
	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	svc      service.TaskService
	analysis service.AnalysisService
}

func NewTaskHandler(s service.TaskService, analysis service.AnalysisService) *TaskHandler {
	return &TaskHandler{
		svc:      s,
		analysis: analysis,
	}
}

// TaskReq accepts both snake_case and camelCase keys, plus the title/details
// names used by older clients.
type TaskReq struct {
	Name              *string        `json:"name" example:"Open a second store in Austin"`
	Title             *string        `json:"title" swaggerignore:"true"`
	Description       *string        `json:"description" example:"Lease a 2,000 sq ft space downtown"`
	Details           *string        `json:"details" swaggerignore:"true"`
	TargetMarket      *string        `json:"target_market" example:"Young professionals"`
	TargetMarketCamel *string        `json:"targetMarket" swaggerignore:"true"`
	Timeline          *string        `json:"timeline" example:"6 months"`
	Resources         *string        `json:"resources" example:"$250k, 4 staff"`
	Assumptions       []string       `json:"assumptions"`
	AIAnalysis        jsonObject     `json:"ai_analysis" swaggertype:"object"`
	AIAnalysisCamel   jsonObject     `json:"aiAnalysis" swaggerignore:"true"`
	Metadata          jsonObject     `json:"metadata" swaggertype:"object"`
	CreatedAt         *time.Time     `json:"created_at" format:"date-time"`
	CreatedAtCamel    *time.Time     `json:"createdAt" swaggerignore:"true"`
}

func firstString(vals ...*string) *string {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

var objectDecoder = sonic.Config{UseNumber: true}.Froze()

// jsonObject is an opaque JSON object field that records whether its key
// was present, so an explicit null can clear the column on update.
type jsonObject struct {
	set   bool
	value map[string]any
}

func (o *jsonObject) UnmarshalJSON(b []byte) error {
	o.set = true
	o.value = nil
	if string(bytes.TrimSpace(b)) == "null" {
		return nil
	}
	return objectDecoder.Unmarshal(b, &o.value)
}

func firstObject(vals ...jsonObject) jsonObject {
	for _, v := range vals {
		if v.set {
			return v
		}
	}
	return jsonObject{}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r TaskReq) createInput() service.CreateTaskInput {
	createdAt := r.CreatedAt
	if createdAt == nil {
		createdAt = r.CreatedAtCamel
	}
	return service.CreateTaskInput{
		Name:         deref(firstString(r.Name, r.Title)),
		Description:  deref(firstString(r.Description, r.Details)),
		TargetMarket: deref(firstString(r.TargetMarket, r.TargetMarketCamel)),
		Timeline:     deref(r.Timeline),
		Resources:    r.Resources,
		Assumptions:  r.Assumptions,
		AIAnalysis:   firstObject(r.AIAnalysis, r.AIAnalysisCamel).value,
		Metadata:     r.Metadata.value,
		CreatedAt:    createdAt,
	}
}

func (r TaskReq) updateInput() service.UpdateTaskInput {
	in := service.UpdateTaskInput{
		Name:         firstString(r.Name, r.Title),
		Description:  firstString(r.Description, r.Details),
		TargetMarket: firstString(r.TargetMarket, r.TargetMarketCamel),
		Timeline:     r.Timeline,
		Resources:    r.Resources,
	}
	if r.Assumptions != nil {
		in.Assumptions = &r.Assumptions
	}
	// a present key replaces the column; null clears it
	if o := firstObject(r.AIAnalysis, r.AIAnalysisCamel); o.set {
		in.AIAnalysis = &o.value
	}
	if r.Metadata.set {
		in.Metadata = &r.Metadata.value
	}
	return in
}

// scenarioText renders a task as the free text the analysis provider reads.
func scenarioText(in service.CreateTaskInput) string {
	var b strings.Builder
	b.WriteString(in.Name)
	if in.Description != "" {
		b.WriteString(". ")
		b.WriteString(in.Description)
	}
	return b.String()
}

func scenarioContext(in service.CreateTaskInput) map[string]any {
	ctx := map[string]any{}
	if in.TargetMarket != "" {
		ctx["target_market"] = in.TargetMarket
	}
	if in.Timeline != "" {
		ctx["timeline"] = in.Timeline
	}
	if in.Resources != nil && *in.Resources != "" {
		ctx["resources"] = *in.Resources
	}
	if len(in.Assumptions) > 0 {
		ctx["assumptions"] = in.Assumptions
	}
	return ctx
}

// CreateTask godoc
//
//	@Summary		Create task
//	@Description	Create a current task. With analyze=true and no ai_analysis in the body, the scenario is analyzed first and the result is stored with the task.
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			analyze	query		boolean				false	"Run the analysis gateway before saving"	example(false)
//	@Param			payload	body		handler.TaskReq		true	"Task payload"
//	@Success		200		{object}	model.Task
//	@Failure		422		{object}	serializer.Response
//	@Failure		502		{object}	serializer.Response
//	@Router			/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	req := TaskReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, serializer.ValidationErr("invalid task body", err))
		return
	}

	in := req.createInput()
	if strings.TrimSpace(in.Name) == "" {
		c.JSON(http.StatusUnprocessableEntity, serializer.ValidationErr("name is required", nil))
		return
	}

	analyze, _ := strconv.ParseBool(c.Query("analyze"))
	if analyze && in.AIAnalysis == nil {
		result, err := h.analysis.Analyze(c.Request.Context(), scenarioText(in), scenarioContext(in))
		if err != nil {
			writeError(c, err)
			return
		}
		in.AIAnalysis = result
	}

	t, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			c.JSON(http.StatusUnprocessableEntity, serializer.ValidationErr(err.Error(), nil))
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// ListCurrentTasks godoc
//
//	@Summary		List current tasks
//	@Description	Tasks not yet archived into a session, newest first
//	@Tags			task
//	@Produce		json
//	@Success		200	{array}	model.Task
//	@Router			/tasks [get]
func (h *TaskHandler) ListCurrentTasks(c *gin.Context) {
	h.list(c, h.svc.ListCurrent)
}

// ListTodayTasks godoc
//
//	@Summary		List today's tasks
//	@Description	Tasks created during the current civil day of the configured timezone, newest first
//	@Tags			task
//	@Produce		json
//	@Success		200	{array}	model.Task
//	@Router			/tasks/today [get]
func (h *TaskHandler) ListTodayTasks(c *gin.Context) {
	h.list(c, h.svc.ListToday)
}

// ListAllTasks godoc
//
//	@Summary		List all tasks
//	@Description	Every task regardless of session, newest first
//	@Tags			task
//	@Produce		json
//	@Success		200	{array}	model.Task
//	@Router			/scenarios [get]
func (h *TaskHandler) ListAllTasks(c *gin.Context) {
	h.list(c, h.svc.ListAll)
}

func (h *TaskHandler) list(c *gin.Context, fn func(context.Context) ([]model.Task, error)) {
	items, err := fn(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(items))
}

// HistoryResp groups tasks by YYYY-MM-DD civil date.
type HistoryResp struct {
	Groups map[string][]model.Task `json:"groups"`
}

// GetTaskHistory godoc
//
//	@Summary		Task history
//	@Description	All tasks outside today's civil day, grouped by date label
//	@Tags			task
//	@Produce		json
//	@Success		200	{object}	handler.HistoryResp
//	@Router			/tasks/history [get]
func (h *TaskHandler) GetTaskHistory(c *gin.Context) {
	groups, err := h.svc.ListHistory(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if groups == nil {
		groups = map[string][]model.Task{}
	}
	c.JSON(http.StatusOK, HistoryResp{Groups: groups})
}

// UpdateTask godoc
//
//	@Summary		Update task
//	@Description	Partial update; only the supplied fields change. Sending null for ai_analysis or metadata clears it. Never moves a task between current and archived.
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			id		path		integer				true	"Task ID"
//	@Param			payload	body		handler.TaskReq		true	"Fields to change"
//	@Success		200		{object}	model.Task
//	@Failure		400		{object}	serializer.Response
//	@Failure		404		{object}	serializer.Response
//	@Router			/tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	req := TaskReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid task body", err))
		return
	}

	t, err := h.svc.Update(c.Request.Context(), id, req.updateInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

type DeleteTaskResp struct {
	OK        bool `json:"ok" example:"true"`
	DeletedID uint `json:"deleted_id" example:"42"`
}

// DeleteTask godoc
//
//	@Summary		Delete task
//	@Tags			task
//	@Produce		json
//	@Param			id	path		integer	true	"Task ID"
//	@Success		200	{object}	handler.DeleteTaskResp
//	@Failure		404	{object}	serializer.Response
//	@Router			/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, DeleteTaskResp{OK: true, DeletedID: id})
}
