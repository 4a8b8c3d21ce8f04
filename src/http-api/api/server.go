package api

import (
	"context"

	"github.com/jack-barr3tt/railchat/src/assistant"
	"github.com/jack-barr3tt/railchat/src/common/completion"
	"github.com/jack-barr3tt/railchat/src/common/rail"
	"github.com/jack-barr3tt/railchat/src/common/utils"
	"go.uber.org/zap"
)

// Pipeline is what the HTTP layer needs from the assistant.
type Pipeline interface {
	HandleRailQuery(ctx context.Context, query string) (*assistant.Answer, error)
}

type APIServer struct {
	Assistant Pipeline
	Logger    *zap.SugaredLogger
}

func NewServer() (*APIServer, error) {
	logger := utils.GetLogger()

	completer, err := completion.NewClient(logger)
	if err != nil {
		logger.Errorw("failed to create completion client", "error", err)
		return nil, err
	}

	railClient := rail.NewClient(logger)

	return &APIServer{
		Assistant: assistant.New(completer, railClient, logger),
		Logger:    logger,
	}, nil
}
