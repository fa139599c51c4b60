package apply

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/sngm3741/job-application/web/internal/application"
	"github.com/sngm3741/job-application/web/internal/interfaces/http/common"
	"github.com/sngm3741/job-application/web/internal/metrics"
	"github.com/sngm3741/job-application/web/internal/view"
)

// Renderer turns a named page and its context into a complete HTML body.
type Renderer interface {
	Render(page string, data any) ([]byte, error)
}

// Handler wires the application form endpoints to the submission use-case.
type Handler struct {
	logger      *zap.Logger
	submissions application.SubmissionService
	renderer    Renderer
	metrics     *metrics.Metrics
	debug       bool
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger      *zap.Logger
	Submissions application.SubmissionService
	Renderer    Renderer
	Metrics     *metrics.Metrics
	// Debug exposes internal error text on 500 pages.
	Debug bool
}

// NewHandler constructs the application form handler set.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	m := cfg.Metrics
	if m == nil {
		m = metrics.New(prometheus.NewRegistry())
	}
	return &Handler{
		logger:      logger,
		submissions: cfg.Submissions,
		renderer:    cfg.Renderer,
		metrics:     m,
		debug:       cfg.Debug,
	}
}

// Register mounts the form routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.formHandler())
	r.Post("/", h.submitHandler())
}

// formHandler はリクエスト内容に依存しない静的な応募フォームを返す。
func (h *Handler) formHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.render(w, r, http.StatusOK, view.FormPage, nil) {
			h.metrics.FormViews.Inc()
		}
	}
}

// render は page を描画して status で書き出す。描画に失敗した場合は 500 を返し false を返す。
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) bool {
	start := time.Now()
	body, err := h.renderer.Render(page, data)
	h.metrics.RenderDuration.WithLabelValues(page).Observe(time.Since(start).Seconds())
	if err != nil {
		h.logger.Error("テンプレートの描画に失敗",
			zap.String("page", page),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		message := "The page could not be rendered."
		if h.debug {
			message = err.Error()
		}
		h.renderError(w, http.StatusInternalServerError, message)
		return false
	}

	common.WriteHTML(h.logger, w, status, body)
	return true
}

// renderError writes the error page, falling back to plain text when that fails too.
func (h *Handler) renderError(w http.ResponseWriter, status int, message string) {
	body, err := h.renderer.Render(view.ErrorPage, view.ErrorData(status, http.StatusText(status), message))
	if err != nil {
		h.logger.Error("エラーページの描画に失敗", zap.Int("status", status), zap.Error(err))
		common.WriteText(h.logger, w, status, http.StatusText(status)+": "+message)
		return
	}
	common.WriteHTML(h.logger, w, status, body)
}
