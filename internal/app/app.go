package app

import (
	"fmt"
	"log"

	"github.com/mayasahsra/write-verse-online/internal/auth"
	"github.com/mayasahsra/write-verse-online/internal/cache"
	"github.com/mayasahsra/write-verse-online/internal/config"
	"github.com/mayasahsra/write-verse-online/internal/service"
	"github.com/mayasahsra/write-verse-online/internal/storage"
	"github.com/mayasahsra/write-verse-online/internal/store"
)

type Application struct {
	Config  *config.Config
	Storage *storage.Storage
	Store   *store.Store
	Cache   *cache.Cache
	Auth    auth.Authenticator
	Posts   *service.PostService
}

func Initialize() (*Application, error) {
	cfg := config.Load()

	st, err := storage.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	contentStore := store.New(st)
	postCache := cache.New(cfg)

	return &Application{
		Config:  cfg,
		Storage: st,
		Store:   contentStore,
		Cache:   postCache,
		Auth:    auth.NewMock(st),
		Posts:   service.NewPostService(cfg, contentStore, postCache, st),
	}, nil
}

func (a *Application) Close() {
	if a.Storage != nil {
		if err := a.Storage.Close(); err != nil {
			log.Printf("storage close error: %v", err)
		}
	}
}
