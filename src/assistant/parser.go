package assistant

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/jack-barr3tt/railchat/src/common/completion"
	"github.com/jack-barr3tt/railchat/src/common/types"
	"go.uber.org/zap"
)

const parserSystemPrompt = `You are a UK rail query parser. Convert natural language queries into structured JSON parameters.

Return ONLY a JSON object with these fields:
- origin: string (station name)
- destination: string (station name)
- departure_time: string or null (e.g. "09:30", "morning", "now")
- arrival_time: string or null (e.g. "17:00", "before 6pm")
- date: string or null (e.g. "today", "tomorrow", "2024-12-25", "Friday")
- journey_type: "single" | "return" | "next_available"
- passengers: number (default 1)
- railcard: string or null (e.g. "16-25", "Senior", "Two Together")

Examples:
"next train from London to Manchester" → {"origin": "London", "destination": "Manchester", "departure_time": "now", "date": "today", "journey_type": "next_available", "passengers": 1, "railcard": null}
"return ticket from Leeds to York tomorrow morning" → {"origin": "Leeds", "destination": "York", "departure_time": "morning", "date": "tomorrow", "journey_type": "return", "passengers": 1, "railcard": null}`

// Parser turns a raw natural-language query into a RailQuery via a single
// completion call. Parsing failures are not retried.
type Parser struct {
	Completer completion.Completer
	Logger    *zap.SugaredLogger

	validate *validator.Validate
}

func NewParser(completer completion.Completer, logger *zap.SugaredLogger) *Parser {
	return &Parser{
		Completer: completer,
		Logger:    logger,
		validate:  validator.New(),
	}
}

func (p *Parser) Parse(ctx context.Context, rawQuery string) (types.RailQuery, error) {
	text, err := p.Completer.Complete(ctx, parserSystemPrompt, "Parse this query: "+rawQuery)
	if err != nil {
		return types.RailQuery{}, err
	}

	var query types.RailQuery
	if err := json.Unmarshal([]byte(text), &query); err != nil {
		p.Logger.Warnw("completion output was not valid JSON", "error", err)
		return types.RailQuery{}, &types.ParseError{Raw: text}
	}

	query.ApplyDefaults()

	if err := p.validate.Struct(&query); err != nil {
		p.Logger.Warnw("completion output failed schema validation", "error", err)
		return types.RailQuery{}, &types.ParseError{Raw: text}
	}

	return query, nil
}
