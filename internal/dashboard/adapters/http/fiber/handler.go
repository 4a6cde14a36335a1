package fiber

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"revenue-dashboard/internal/dashboard/adapters/render"
	"revenue-dashboard/internal/dashboard/core/graph"
	"revenue-dashboard/internal/dashboard/core/ports"
	"revenue-dashboard/internal/dashboard/core/usecase"
	"revenue-dashboard/internal/platform/log"
)

var validate = validator.New()

type DashboardService interface {
	Boards() []*usecase.Board
	OpenSession(dashboard string) (*ports.Session, error)
	Session(dashboard, id string) (*ports.Session, error)
	SetControl(dashboard, id, control string, values []string) ([]graph.ViewState, error)
	View(dashboard, id, view string) (graph.ViewState, error)
}

type DashboardHandler struct {
	svc      DashboardService
	renderer ports.ChartRendererPort
	logger   *log.Logger
}

func NewDashboardHandler(svc DashboardService, renderer ports.ChartRendererPort, logger *log.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, renderer: renderer, logger: logger}
}

// Register mounts every dashboard route on r.
func (h *DashboardHandler) Register(r fiber.Router) {
	r.Get("/healthz", h.Health)
	r.Get("/dashboards", h.ListDashboards)
	r.Post("/dashboards/:dashboard/sessions", h.CreateSession)
	r.Get("/dashboards/:dashboard/sessions/:session", h.GetSession)
	r.Put("/dashboards/:dashboard/sessions/:session/controls/:control", h.SetControl)
	r.Get("/dashboards/:dashboard/sessions/:session/views/:view", h.GetView)
	r.Get("/dashboards/:dashboard/sessions/:session/views/:view/image", h.GetViewImage)
}

// Health godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (h *DashboardHandler) Health(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(HealthResponse{Status: "ok", Dashboards: len(h.svc.Boards())})
}

// ListDashboards godoc
// @Summary List dashboards
// @Description Returns every hosted dashboard with its views and controls
// @Tags Dashboards
// @Produce json
// @Success 200 {array} DashboardResponse
// @Router /dashboards [get]
func (h *DashboardHandler) ListDashboards(c *fiber.Ctx) error {
	boards := h.svc.Boards()
	resp := make([]DashboardResponse, 0, len(boards))

	for _, b := range boards {
		d := DashboardResponse{
			Name:     b.Definition.Name,
			Title:    b.Definition.Title,
			LoadedAt: b.Data.LoadedAt,
			Controls: []ControlResponse{{
				Name:    usecase.ControlSelection,
				Options: nonNil(b.Options),
				Values:  nonNil(b.Defaults),
			}},
			Views: make([]ViewDefinitionResponse, 0, len(b.Definition.Views)),
		}
		for _, v := range b.Definition.Views {
			controls := []string{}
			if v.FilterBy != "" {
				controls = append(controls, v.FilterBy)
			}
			d.Views = append(d.Views, ViewDefinitionResponse{
				Name:     v.Name(),
				Kind:     string(v.Encoding.Kind),
				Title:    v.Encoding.Title,
				Controls: controls,
			})
		}
		resp = append(resp, d)
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// CreateSession godoc
// @Summary Open a dashboard session
// @Description Builds a new graph with default control values and computes every view
// @Tags Sessions
// @Produce json
// @Param dashboard path string true "Dashboard name"
// @Success 201 {object} SessionResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboards/{dashboard}/sessions [post]
func (h *DashboardHandler) CreateSession(c *fiber.Ctx) error {
	sess, err := h.svc.OpenSession(c.Params("dashboard"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(sessionResponse(sess))
}

// GetSession godoc
// @Summary Get a dashboard session
// @Tags Sessions
// @Produce json
// @Param dashboard path string true "Dashboard name"
// @Param session path string true "Session id"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} ErrorResponse
// @Router /dashboards/{dashboard}/sessions/{session} [get]
func (h *DashboardHandler) GetSession(c *fiber.Ctx) error {
	sess, err := h.svc.Session(c.Params("dashboard"), c.Params("session"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(sessionResponse(sess))
}

// SetControl godoc
// @Summary Change a control
// @Description Replaces the control value and recomputes the views depending on it
// @Tags Sessions
// @Accept json
// @Produce json
// @Param dashboard path string true "Dashboard name"
// @Param session path string true "Session id"
// @Param control path string true "Control name"
// @Param body body SetControlRequest true "New selection"
// @Success 200 {object} SetControlResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /dashboards/{dashboard}/sessions/{session}/controls/{control} [put]
func (h *DashboardHandler) SetControl(c *fiber.Ctx) error {
	var req SetControlRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "invalid JSON body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	}

	control := c.Params("control")
	views, err := h.svc.SetControl(c.Params("dashboard"), c.Params("session"), control, req.Values)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(SetControlResponse{
		Control:    control,
		Recomputed: toViewStates(views),
	})
}

// GetView godoc
// @Summary Get a chart description
// @Description Returns the current chart description; the ETag is the view revision
// @Tags Views
// @Produce json
// @Param dashboard path string true "Dashboard name"
// @Param session path string true "Session id"
// @Param view path string true "View name"
// @Success 200 {object} domain.ChartDescription
// @Success 304 "Not Modified"
// @Failure 404 {object} ErrorResponse
// @Router /dashboards/{dashboard}/sessions/{session}/views/{view} [get]
func (h *DashboardHandler) GetView(c *fiber.Ctx) error {
	st, err := h.svc.View(c.Params("dashboard"), c.Params("session"), c.Params("view"))
	if err != nil {
		return h.writeError(c, err)
	}

	etag := strconv.Quote(strconv.FormatUint(st.Revision, 10))
	c.Set(fiber.HeaderETag, etag)
	c.Set("X-View-State", st.State)
	if c.Get(fiber.HeaderIfNoneMatch) == etag {
		return c.SendStatus(http.StatusNotModified)
	}

	return c.Status(http.StatusOK).JSON(st.Output)
}

// GetViewImage godoc
// @Summary Render a view
// @Tags Views
// @Produce png
// @Produce image/svg+xml
// @Param dashboard path string true "Dashboard name"
// @Param session path string true "Session id"
// @Param view path string true "View name"
// @Param format query string false "Image format: png | svg"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboards/{dashboard}/sessions/{session}/views/{view}/image [get]
func (h *DashboardHandler) GetViewImage(c *fiber.Ctx) error {
	format, err := render.ParseFormat(c.Query("format", "png"))
	if err != nil {
		return h.writeError(c, err)
	}

	st, err := h.svc.View(c.Params("dashboard"), c.Params("session"), c.Params("view"))
	if err != nil {
		return h.writeError(c, err)
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, st.Output, format); err != nil {
		return h.writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, render.ContentType(format))
	c.Set(fiber.HeaderETag, strconv.Quote(fmt.Sprintf("%d-%s", st.Revision, format)))
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

func (h *DashboardHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnknownDashboard),
		errors.Is(err, usecase.ErrUnknownSession),
		errors.Is(err, graph.ErrUnknownView),
		errors.Is(err, graph.ErrUnknownControl):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, graph.ErrInvalidSelection),
		errors.Is(err, render.ErrUnsupportedFormat):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	default:
		h.logger.Error("request failed", "path", c.Path(), "error", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func sessionResponse(s *ports.Session) SessionResponse {
	return SessionResponse{
		ID:        s.ID,
		Dashboard: s.Dashboard,
		CreatedAt: s.CreatedAt,
		Controls:  toControls(s.Graph.Controls()),
		Views:     toViewStates(s.Graph.Views()),
	}
}
