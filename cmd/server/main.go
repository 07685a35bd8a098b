package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"hotelops/backend/config"
	"hotelops/backend/internal/api/handler"
	"hotelops/backend/internal/api/router"
	"hotelops/backend/internal/repository"
	"hotelops/backend/internal/service"
	"hotelops/backend/pkg/database"
	"hotelops/backend/pkg/jwt"
	"hotelops/backend/pkg/logger"
	"hotelops/backend/pkg/mail"
	"hotelops/backend/pkg/redis"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("HOTEL_CONFIG"))
	if err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}
	defer logger.Sync()

	if err := database.Migrate(cfg.Database.URL()); err != nil {
		return err
	}
	db, err := database.New(
		cfg.Database.DSN(),
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
		time.Duration(cfg.Database.ConnMaxLifetime)*time.Minute,
		logger.L,
	)
	if err != nil {
		return err
	}

	rdb, err := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return err
	}
	defer rdb.Close()

	jwtMgr := jwt.NewManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTLDefault,
		cfg.Auth.RefreshTokenTTLRemember,
	)
	mailer := mail.NewSMTPSender(
		cfg.Mail.SMTPHost, cfg.Mail.SMTPPort,
		cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.From,
	)

	repos := repository.New(db)
	svcs := service.New(service.Deps{
		Repos:     repos,
		JWT:       jwtMgr,
		Mailer:    mailer,
		Publisher: rdb,
		Revoker:   rdb,
		OTPTTL:    cfg.Auth.OTPTTL,
	})
	handlers := handler.New(svcs, repos.Employee)

	engine := router.Setup(handlers, jwtMgr, rdb, cfg.Server.CORS.AllowOrigins)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L.Info("服务启动", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.L.Info("收到退出信号", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("优雅停机失败: %w", err)
	}
	logger.L.Info("服务已停止")
	return nil
}
