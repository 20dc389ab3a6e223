package main

import (
	"fmt"

	"github.com/dtroode/notekeeper/internal/api/grpc/client"
	"github.com/dtroode/notekeeper/internal/config"
	"github.com/dtroode/notekeeper/internal/keycache"
	"github.com/dtroode/notekeeper/internal/logger"
	"github.com/dtroode/notekeeper/internal/search"
	"github.com/dtroode/notekeeper/internal/service"
)

// app is the client stack shared by the data commands.
type app struct {
	owner   string
	client  *client.Client
	store   *keycache.Store
	notes   *service.Notes
	engine  *search.Engine
	session *search.Session
}

func newApp(cfg *config.ClientConfig, logger *logger.Logger) (*app, error) {
	wrapKey, err := keycache.LoadWrapKey(cfg.DataDir, cfg.WrapKey)
	if err != nil {
		return nil, err
	}

	store, err := keycache.NewStore(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	c, err := client.New(cfg.Addr, client.Options{
		Token:  cfg.Token,
		TLS:    cfg.TLS,
		CAFile: cfg.CAFile,
	}, logger)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	keys := service.NewKeys(c, keycache.New(store, wrapKey), logger)
	notes := service.NewNotes(keys, logger, cfg.DecryptConcurrency)
	builder := search.NewBuilder(notes, logger)
	codec := search.NewIndexCodec(c, keys)
	engine := search.NewEngine(cfg.Owner, c, builder, codec, notes, logger)
	engine.SetStateListener(func(from, to search.State) {
		logger.Debug("search index state changed", "from", from.String(), "to", to.String())
	})

	return &app{
		owner:   cfg.Owner,
		client:  c,
		store:   store,
		notes:   notes,
		engine:  engine,
		session: search.NewSession(engine, cfg.Debounce),
	}, nil
}

func (a *app) Close() {
	a.session.Close()
	a.client.Close()
	a.store.Close()
}
