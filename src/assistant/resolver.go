package assistant

import (
	"context"

	"github.com/jack-barr3tt/railchat/src/common/rail"
	"github.com/jack-barr3tt/railchat/src/common/types"
	"go.uber.org/zap"
)

// Resolver maps a free-text station name to a canonical station code using
// the first lookup match. It never fails the pipeline: any lookup problem
// leaves the code empty and the caller decides what that means.
type Resolver struct {
	Rail   *rail.Client
	Logger *zap.SugaredLogger
}

func NewResolver(railClient *rail.Client, logger *zap.SugaredLogger) *Resolver {
	return &Resolver{Rail: railClient, Logger: logger}
}

func (r *Resolver) Resolve(ctx context.Context, stationName string) types.ResolvedStation {
	station := types.ResolvedStation{Name: stationName}

	places, err := r.Rail.Places(ctx, stationName)
	if err != nil {
		r.Logger.Warnw("station lookup failed", "station", stationName, "error", err)
		return station
	}

	if len(places.Member) > 0 {
		station.Code = places.Member[0].StationCode
	}

	if !station.Resolved() {
		r.Logger.Warnw("no station match", "station", stationName)
	}

	return station
}
