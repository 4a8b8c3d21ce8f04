package assistant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jack-barr3tt/railchat/src/common/completion"
	"github.com/jack-barr3tt/railchat/src/common/rail"
	"github.com/jack-barr3tt/railchat/src/common/types"
	"go.uber.org/zap"
)

// Answer is the end-to-end result of a rail query. RawData is only present
// when the timetable fetch fully succeeded with at least one service.
type Answer struct {
	Response string                 `json:"response"`
	RawData  *types.TimetableResult `json:"raw_data,omitempty"`
}

// Assistant chains the pipeline stages: parse, fetch, synthesize. Station
// misses and empty timetables become friendly answers rather than errors.
type Assistant struct {
	Parser      *Parser
	Fetcher     *Fetcher
	Synthesizer *Synthesizer
	Logger      *zap.SugaredLogger

	// Now supplies the instant relative date/time tokens are resolved against.
	Now func() time.Time
}

func New(completer completion.Completer, railClient *rail.Client, logger *zap.SugaredLogger) *Assistant {
	resolver := NewResolver(railClient, logger)

	return &Assistant{
		Parser:      NewParser(completer, logger),
		Fetcher:     NewFetcher(railClient, resolver, logger),
		Synthesizer: NewSynthesizer(completer, logger),
		Logger:      logger,
		Now:         time.Now,
	}
}

func (a *Assistant) HandleRailQuery(ctx context.Context, rawQuery string) (*Answer, error) {
	query, err := a.Parser.Parse(ctx, rawQuery)
	if err != nil {
		return nil, err
	}

	a.Logger.Infow("parsed rail query",
		"origin", query.Origin,
		"destination", query.Destination,
		"journey_type", query.JourneyType,
		"passengers", query.Passengers,
	)

	result, err := a.Fetcher.Fetch(ctx, query, a.Now())
	if err != nil {
		var notFound *types.StationNotFoundError
		if errors.As(err, &notFound) {
			return &Answer{
				Response: fmt.Sprintf("Sorry, I couldn't find a station matching %q. Could you check the spelling and try again?", notFound.Name),
			}, nil
		}
		return nil, err
	}

	if len(result.Services) == 0 {
		return &Answer{
			Response: fmt.Sprintf("Sorry, I couldn't find any trains from %s to %s around that time.", query.Origin, query.Destination),
		}, nil
	}

	response, err := a.Synthesizer.Synthesize(ctx, result, rawQuery)
	if err != nil {
		return nil, err
	}

	return &Answer{Response: response, RawData: result}, nil
}
