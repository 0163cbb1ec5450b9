package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/elaibiton11/colman-web-development-assignments/internal/app/server"
	"github.com/elaibiton11/colman-web-development-assignments/internal/config"
	"github.com/elaibiton11/colman-web-development-assignments/internal/delivery/http"
	"github.com/elaibiton11/colman-web-development-assignments/internal/service"
	"github.com/elaibiton11/colman-web-development-assignments/internal/service/auth"
	"github.com/elaibiton11/colman-web-development-assignments/internal/service/comment"
	"github.com/elaibiton11/colman-web-development-assignments/internal/service/post"
	"github.com/elaibiton11/colman-web-development-assignments/internal/service/user"
	"github.com/elaibiton11/colman-web-development-assignments/internal/storage/mongodb"
	"github.com/elaibiton11/colman-web-development-assignments/pkg/logger"
)

func Run(cfg *config.Config) {
	log := logger.New(cfg.Env)
	log.Info("starting", "env", cfg.Env, "port", cfg.HTTPServer.Port)

	store, err := mongodb.New(cfg.Mongo.URI, cfg.Mongo.DBName)
	if err != nil {
		log.FatalErr("error connecting to mongo", err)
	}
	defer store.Close()

	if err := store.EnsureIndexes(context.Background()); err != nil {
		// FatalErr exits the process, so deferred closes never run.
		store.Close()
		log.FatalErr("error ensuring indexes", err)
	}

	userRepo := mongodb.NewUserMongo(store.DB)
	postRepo := mongodb.NewPostMongo(store.DB)
	commentRepo := mongodb.NewCommentMongo(store.DB)

	tokens := auth.NewTokenManager(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	u := service.Collection{
		AuthService:    auth.NewAuthService(log, tokens, userRepo),
		PostService:    post.NewService(log, postRepo),
		CommentService: comment.NewService(log, commentRepo, postRepo),
		UserService:    user.NewService(log, userRepo),
	}

	r := http.InitRoutes(log, u)

	srv := server.New(":"+cfg.HTTPServer.Port, cfg.HTTPServer.Timeout, cfg.HTTPServer.IdleTimeout, r)
	srv.Start()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app signal: " + s.String())
	case err := <-srv.Notify():
		log.ErrorErr("server error", err)
	}

	if err := srv.Shutdown(); err != nil {
		log.ErrorErr("shutdown error", err)
	}
}
