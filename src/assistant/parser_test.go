package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/jack-barr3tt/railchat/src/common/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// completerFunc adapts a function to the Completer interface for tests.
type completerFunc func(ctx context.Context, system, user string) (string, error)

func (f completerFunc) Complete(ctx context.Context, system, user string) (string, error) {
	return f(ctx, system, user)
}

func fixedCompleter(text string) completerFunc {
	return func(context.Context, string, string) (string, error) {
		return text, nil
	}
}

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func TestParserParse(t *testing.T) {
	parser := NewParser(fixedCompleter(`{"origin": "London", "destination": "Manchester", "departure_time": "now", "date": "today", "journey_type": "next_available", "passengers": 1, "railcard": null}`), testLogger())

	query, err := parser.Parse(context.Background(), "next train from London to Manchester")
	require.NoError(t, err)

	assert.Equal(t, "London", query.Origin)
	assert.Equal(t, "Manchester", query.Destination)
	assert.Equal(t, types.JourneyNextAvailable, query.JourneyType)
	assert.Equal(t, 1, query.Passengers)
	require.NotNil(t, query.DepartureTime)
	assert.Equal(t, "now", *query.DepartureTime)
	assert.Nil(t, query.Railcard)
}

func TestParserAppliesDefaults(t *testing.T) {
	parser := NewParser(fixedCompleter(`{"origin": "Leeds", "destination": "York"}`), testLogger())

	query, err := parser.Parse(context.Background(), "Leeds to York")
	require.NoError(t, err)

	assert.Equal(t, types.JourneySingle, query.JourneyType)
	assert.Equal(t, 1, query.Passengers)
}

func TestParserRejectsNonJSON(t *testing.T) {
	parser := NewParser(fixedCompleter("I'm sorry, I can't help with that."), testLogger())

	_, err := parser.Parse(context.Background(), "next train from London to Manchester")

	var parseErr *types.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Raw, "I'm sorry")
}

func TestParserRejectsMissingOrigin(t *testing.T) {
	parser := NewParser(fixedCompleter(`{"destination": "Manchester"}`), testLogger())

	_, err := parser.Parse(context.Background(), "train to Manchester")

	var parseErr *types.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParserRejectsBadJourneyType(t *testing.T) {
	parser := NewParser(fixedCompleter(`{"origin": "London", "destination": "Manchester", "journey_type": "open_return"}`), testLogger())

	_, err := parser.Parse(context.Background(), "open return London to Manchester")

	var parseErr *types.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParserRejectsBadPassengerCount(t *testing.T) {
	parser := NewParser(fixedCompleter(`{"origin": "London", "destination": "Manchester", "passengers": -2}`), testLogger())

	_, err := parser.Parse(context.Background(), "train for minus two people")

	var parseErr *types.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParserPropagatesUpstreamError(t *testing.T) {
	upstream := &types.UpstreamError{Service: "completion", StatusCode: 529, Body: "overloaded"}
	parser := NewParser(completerFunc(func(context.Context, string, string) (string, error) {
		return "", upstream
	}), testLogger())

	_, err := parser.Parse(context.Background(), "next train from London to Manchester")

	var upstreamErr *types.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, 529, upstreamErr.StatusCode)

	var parseErr *types.ParseError
	assert.False(t, errors.As(err, &parseErr))
}
