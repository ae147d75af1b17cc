package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/sgnl-ai/caep-transmitter-agent/action"
	"github.com/sgnl-ai/caep-transmitter-agent/api"
	"github.com/sgnl-ai/caep-transmitter-agent/config"
	"github.com/sgnl-ai/caep-transmitter-agent/resolve"
	"github.com/sgnl-ai/caep-transmitter-agent/transmit"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Cannot initialize Zap logger: %v.", err)
	}

	defer func() {
		if err := logger.Sync(); err != nil {
			log.Printf("Error syncing logger: %v", err)
		}
	}()

	appConfig := config.GetAppConfig()

	httpClient := &http.Client{}

	var resolver resolve.Resolver
	if appConfig.TemplateResolution {
		resolver = resolve.NewTemplate()
	} else {
		resolver = resolve.NewIdentity()
	}

	transmitter := transmit.NewTransmitter(httpClient, logger)

	caepAction := action.New(resolver, transmitter, appConfig.DefaultAddress, appConfig.DefaultUserAgent, logger)

	apiServer := &api.API{
		ApiPort: appConfig.AgentApiPort,
		Action:  caepAction,
		Logger:  logger,
	}

	if err := apiServer.Run(); err != nil {
		logger.Fatal("Agent API server exited", zap.Error(err))
	}
}
