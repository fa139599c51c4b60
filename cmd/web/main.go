package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/sngm3741/job-application/web/internal/config"
	"github.com/sngm3741/job-application/web/internal/logger"
	"github.com/sngm3741/job-application/web/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	l, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("ロガーの初期化に失敗: %v", err)
	}
	defer func() { _ = l.Sync() }()

	app, err := server.New(cfg, l)
	if err != nil {
		l.Fatal("サーバーの初期化に失敗", zap.Error(err))
	}
	if err := app.Run(); err != nil {
		l.Fatal("サーバー起動に失敗", zap.Error(err))
	}
}
