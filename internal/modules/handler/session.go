package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/model"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/serializer"
	"github.com/Shreyaj-Padigala/ProSolve/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	svc   service.SessionService
	tasks service.TaskService
}

func NewSessionHandler(s service.SessionService, tasks service.TaskService) *SessionHandler {
	return &SessionHandler{
		svc:   s,
		tasks: tasks,
	}
}

type SessionReq struct {
	Name *string `json:"name" example:"Q3 planning"`
	Note *string `json:"note" example:"ideas from the offsite"`
}

// bindOptional binds a JSON body that may be absent entirely.
func bindOptional(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// CreateSession godoc
//
//	@Summary		Create session
//	@Description	Create an empty session. The name defaults to "Session YYYY-MM-DD HH:MM" (UTC).
//	@Tags			session
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.SessionReq	false	"Session payload"
//	@Success		200		{object}	model.Session
//	@Failure		400		{object}	serializer.Response
//	@Router			/sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	req := SessionReq{}
	if err := bindOptional(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	s, err := h.svc.Create(c.Request.Context(), service.CreateSessionInput{Name: req.Name, Note: req.Note})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// ArchiveSession godoc
//
//	@Summary		Archive current tasks
//	@Description	Create a session and move every current task into it atomically. With no current tasks the session is created empty.
//	@Tags			session
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.SessionReq	false	"Session payload"
//	@Success		200		{object}	model.Session
//	@Failure		500		{object}	serializer.Response
//	@Router			/sessions/archive [post]
func (h *SessionHandler) ArchiveSession(c *gin.Context) {
	req := SessionReq{}
	if err := bindOptional(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	s, err := h.svc.Archive(c.Request.Context(), service.CreateSessionInput{Name: req.Name, Note: req.Note})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// ListSessions godoc
//
//	@Summary		List sessions
//	@Description	Sessions newest first with their task counts. With group_by=day, returns task history grouped by civil date instead.
//	@Tags			session
//	@Produce		json
//	@Param			group_by	query	string	false	"Set to day for the day-grouped history"	Enums(day)
//	@Success		200			{array}	model.Session
//	@Router			/sessions [get]
func (h *SessionHandler) ListSessions(c *gin.Context) {
	switch c.Query("group_by") {
	case "":
	case "day":
		groups, err := h.tasks.ListHistory(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		if groups == nil {
			groups = map[string][]model.Task{}
		}
		c.JSON(http.StatusOK, HistoryResp{Groups: groups})
		return
	default:
		c.JSON(http.StatusBadRequest, serializer.ParamErr("group_by must be day", nil))
		return
	}

	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(items))
}

// GetSession godoc
//
//	@Summary		Get session
//	@Tags			session
//	@Produce		json
//	@Param			id	path		integer	true	"Session ID"
//	@Success		200	{object}	model.Session
//	@Failure		404	{object}	serializer.Response
//	@Router			/sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	s, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// GetSessionTasks godoc
//
//	@Summary		List tasks of a session or a day
//	@Description	A numeric id lists the tasks archived into that session. A YYYY-MM-DD label lists the tasks created on that civil date.
//	@Tags			session
//	@Produce		json
//	@Param			id	path		string	true	"Session ID or date label"	example(2024-06-01)
//	@Success		200	{array}		model.Task
//	@Failure		400	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/sessions/{id}/tasks [get]
func (h *SessionHandler) GetSessionTasks(c *gin.Context) {
	raw := c.Param("id")

	var (
		items []model.Task
		err   error
	)
	if isDigits(raw) {
		// 0 is well formed; the lookup reports it as unknown
		id, perr := strconv.ParseUint(raw, 10, 64)
		if perr != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid session id", perr))
			return
		}
		items, err = h.tasks.ListForSession(c.Request.Context(), uint(id))
	} else {
		items, err = h.tasks.ListForDayLabel(c.Request.Context(), raw)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orEmpty(items))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
