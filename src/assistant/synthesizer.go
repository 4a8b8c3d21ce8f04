package assistant

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jack-barr3tt/railchat/src/common/completion"
	"github.com/jack-barr3tt/railchat/src/common/types"
	"go.uber.org/zap"
)

const formatterSystemPrompt = `You are a helpful UK rail assistant. Format raw train data into clear, conversational responses.

Guidelines:
- Be conversational and friendly
- Include key details: departure/arrival times, journey duration, changes required
- Mention prices if available
- Highlight any important notes (delays, platform changes, etc.)
- Use 12-hour time format (e.g. 2:30pm not 14:30)
- Keep responses concise but informative
- If multiple options, show the best 2-3 choices

Example response format:
"The next train from London to Manchester departs at 2:30pm, arriving at 4:45pm (2h 15m journey). It's direct with no changes required. Advance single tickets from £25.50, or off-peak return from £89.40."`

// Synthesizer turns a TimetableResult back into prose with a second
// completion call. The model's output is passed through verbatim.
type Synthesizer struct {
	Completer completion.Completer
	Logger    *zap.SugaredLogger
}

func NewSynthesizer(completer completion.Completer, logger *zap.SugaredLogger) *Synthesizer {
	return &Synthesizer{Completer: completer, Logger: logger}
}

func (s *Synthesizer) Synthesize(ctx context.Context, result *types.TimetableResult, originalQuery string) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}

	userPrompt := fmt.Sprintf("Original query: %q\n\nRaw rail data:\n%s\n\nPlease format this into a helpful response for the user.", originalQuery, data)

	return s.Completer.Complete(ctx, formatterSystemPrompt, userPrompt)
}
