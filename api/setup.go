package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/sgnl-ai/caep-transmitter-agent/action"
	"github.com/sgnl-ai/caep-transmitter-agent/api/handler"
	"github.com/sgnl-ai/caep-transmitter-agent/api/service"
)

type API struct {
	ApiPort int
	Action  *action.Action
	Logger  *zap.Logger
}

func (api *API) Run() error {
	apiService := service.NewService(api.Action, api.Logger)
	apiHandlers := handler.NewHandlers(apiService, api.Logger)

	router := mux.NewRouter()
	router.HandleFunc("/invoke", apiHandlers.InvokeHandler).Methods("POST")
	router.HandleFunc("/error", apiHandlers.ErrorHandler).Methods("POST")
	router.HandleFunc("/halt", apiHandlers.HaltHandler).Methods("POST")

	srv := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf("0.0.0.0:%d", api.ApiPort),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	api.Logger.Info("Starting HTTP server...", zap.Int("port", api.ApiPort))

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		api.Logger.Error("Failed to start the http server", zap.Error(err))

		return fmt.Errorf("failed to start the http server :%w", err)
	}

	return nil
}
