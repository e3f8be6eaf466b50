package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/NinadWalanj/authBackend/internal/db"
	"github.com/NinadWalanj/authBackend/internal/platform/config"
	phttp "github.com/NinadWalanj/authBackend/internal/platform/http"
	"github.com/NinadWalanj/authBackend/internal/platform/notify"
	"github.com/NinadWalanj/authBackend/internal/platform/security"

	authhttp "github.com/NinadWalanj/authBackend/internal/modules/auth/http"
	pgrepo "github.com/NinadWalanj/authBackend/internal/modules/auth/infra/pg"
	redisinfra "github.com/NinadWalanj/authBackend/internal/modules/auth/infra/redis"
	dashhttp "github.com/NinadWalanj/authBackend/internal/modules/dashboard/http"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	if cfg.Env == "development" {
		logger, _ = zap.NewDevelopment()
	}

	dbpool := db.MustOpen(cfg.PGDSN)
	defer dbpool.Close()

	rdb := db.MustOpenRedis(cfg.RedisAddr)
	defer func() { _ = rdb.Close() }()

	mailer := notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	sessions := redisinfra.NewSessionStore(rdb, cfg.SessionTTL)
	cookie := authhttp.CookieOptions{Name: cfg.CookieName, Secure: cfg.CookieSecure, MaxAge: cfg.SessionTTL}

	authModule := authhttp.NewModule(authhttp.Deps{
		Users:        pgrepo.NewUserRepo(dbpool),
		Sessions:     sessions,
		Limiter:      redisinfra.NewLimiter(rdb, "rl", 4, 10*time.Minute),
		TwoFALimiter: redisinfra.NewLimiter(rdb, "2fa_fail", 5, 10*time.Minute),
		LinkGuard:    redisinfra.NewLoginTokenGuard(rdb),
		Tokens:       security.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL),
		TOTP:         security.NewTOTPManager(cfg.TOTPIssuer),
		Mailer:       mailer,
		Log:          logger,
		BackendURL:   cfg.BackendURL,
		ClientURL:    cfg.ClientURL,
		Cookie:       cookie,
	})
	dashModule := dashhttp.NewModule(sessions, cfg.CookieName)

	app := phttp.NewServer(phttp.Options{AppName: "authera", ClientURL: cfg.ClientURL}, authModule, dashModule)

	logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := app.Listen(cfg.HTTPAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
