package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/sngm3741/job-application/web/internal/application"
	"github.com/sngm3741/job-application/web/internal/config"
	applyhttp "github.com/sngm3741/job-application/web/internal/interfaces/http/apply"
	"github.com/sngm3741/job-application/web/internal/logger"
	"github.com/sngm3741/job-application/web/internal/metrics"
	"github.com/sngm3741/job-application/web/internal/view"
)

// Server は HTTP サーバーのライフサイクルを管理し、応募フォームのハンドラへ依存注入するコンポジションルート。
// 設定はすべて config.Config から明示的に受け取り、プロセス全体のグローバル状態は持たない。
type Server struct {
	logger            *zap.Logger
	router            chi.Router
	metrics           *metrics.Metrics
	addr              string
	metricsAddr       string
	debug             bool
	displayFormat     string
	readHeaderTimeout time.Duration
	shutdownTimeout   time.Duration
}

// New は Config とロガーを受け取り、ユースケース・レンダラー・ハンドラを組み立てた Server を返す。
func New(cfg config.Config, l *zap.Logger) (*Server, error) {
	if l == nil {
		l = zap.NewNop()
	}

	renderer, err := view.New(view.Options{
		Dir:    cfg.TemplateDir,
		Reload: cfg.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("テンプレートの読み込みに失敗: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	srv := &Server{
		logger:            l,
		metrics:           m,
		addr:              cfg.Addr(),
		metricsAddr:       cfg.MetricsAddr,
		debug:             cfg.Debug,
		displayFormat:     cfg.DisplayFormat.String(),
		readHeaderTimeout: cfg.ReadHeaderTimeout,
		shutdownTimeout:   cfg.ShutdownTimeout,
	}

	applyHandler := applyhttp.NewHandler(applyhttp.Config{
		Logger:      l,
		Submissions: application.NewSubmissionService(cfg.DisplayFormat),
		Renderer:    renderer,
		Metrics:     m,
		Debug:       cfg.Debug,
	})
	srv.router = srv.routes(applyHandler)

	return srv, nil
}

// routes はミドルウェアと応募フォームのルーティングを組み立てる。"/" 以外は chi の既定どおり 404、
// "/" への GET/HEAD/POST 以外は 405 になる。
func (s *Server) routes(applyHandler *applyhttp.Handler) chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logger.RequestLogger(s.logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.GetHead)

	applyHandler.Register(router)
	return router
}

// Handler exposes the application router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// MetricsHandler exposes the Prometheus registry served on the metrics listener.
func (s *Server) MetricsHandler() http.Handler {
	return s.metrics.Handler()
}

// Run は SIGINT/SIGTERM を受け取るまで HTTP サーバーを動かす。
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.ListenAndServe(ctx)
}

// ListenAndServe serves until ctx is done or a listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	servers := []*http.Server{{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: s.readHeaderTimeout,
	}}

	if s.metricsAddr != "" {
		metricsRouter := chi.NewRouter()
		metricsRouter.Use(middleware.Recoverer)
		metricsRouter.Method(http.MethodGet, "/metrics", s.MetricsHandler())
		servers = append(servers, &http.Server{
			Addr:              s.metricsAddr,
			Handler:           metricsRouter,
			ReadHeaderTimeout: s.readHeaderTimeout,
		})
	}

	errChan := make(chan error, len(servers))
	for _, httpServer := range servers {
		httpServer := httpServer
		go func() {
			s.logger.Info("HTTP サーバー起動",
				zap.String("addr", httpServer.Addr),
				zap.String("display_format", s.displayFormat),
				zap.Bool("debug", s.debug),
			)
			errChan <- httpServer.ListenAndServe()
		}()
	}

	return s.waitForShutdown(ctx, errChan, servers)
}

// waitForShutdown は ListenAndServe の終了と ctx のキャンセルを監視し、graceful shutdown を行う。
func (s *Server) waitForShutdown(ctx context.Context, errChan <-chan error, servers []*http.Server) error {
	var runErr error
	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("サーバーが異常終了", zap.Error(err))
			runErr = err
		}
	case <-ctx.Done():
		s.logger.Info("停止要求を受信。サーバー停止処理を開始します。")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	for _, httpServer := range servers {
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("サーバー停止時にエラー", zap.String("addr", httpServer.Addr), zap.Error(err))
		}
	}

	return runErr
}
