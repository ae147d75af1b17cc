package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/sgnl-ai/caep-transmitter-agent/action"
	"github.com/sgnl-ai/caep-transmitter-agent/transmit"
)

type Service struct {
	action *action.Action
	logger *zap.Logger
}

func NewService(action *action.Action, logger *zap.Logger) *Service {
	return &Service{
		action: action,
		logger: logger,
	}
}

func (s *Service) Invoke(ctx context.Context, req *action.InvokeRequest) (*transmit.Result, error) {
	return s.action.Invoke(ctx, req)
}

func (s *Service) ClassifyError(message string) (*action.Ack, error) {
	return s.action.Error(errors.New(message))
}

func (s *Service) Halt() *action.Ack {
	return s.action.Halt()
}
