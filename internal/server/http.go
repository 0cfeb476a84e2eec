package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vkotlyar/account-keeper/internal/config"
	"github.com/vkotlyar/account-keeper/internal/logger"
)

type httpServer struct {
	server *http.Server
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating HTTP server")

	srv := &http.Server{
		Addr:    cfg.HTTPAddress,
		Handler: router,
	}
	if cfg.RequestTimeout > 0 {
		srv.ReadTimeout = cfg.RequestTimeout
		srv.WriteTimeout = cfg.RequestTimeout
	}

	return &httpServer{server: srv}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil {
		fmt.Printf("HTTP server ListenAndServe: %v\n", err)
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); err != nil {
		fmt.Printf("HTTP server Shutdown: %v\n", err)
	}
}
