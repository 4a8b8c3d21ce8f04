package assistant

import (
	"context"
	"sync"
	"time"

	"github.com/jack-barr3tt/railchat/src/common/rail"
	"github.com/jack-barr3tt/railchat/src/common/types"
	"go.uber.org/zap"
)

const maxServices = 3

// Fetcher resolves both ends of a journey, normalizes the requested date and
// time, and reshapes the provider's departure board into a TimetableResult.
type Fetcher struct {
	Rail     *rail.Client
	Resolver *Resolver
	Logger   *zap.SugaredLogger
}

func NewFetcher(railClient *rail.Client, resolver *Resolver, logger *zap.SugaredLogger) *Fetcher {
	return &Fetcher{Rail: railClient, Resolver: resolver, Logger: logger}
}

func (f *Fetcher) Fetch(ctx context.Context, query types.RailQuery, now time.Time) (*types.TimetableResult, error) {
	var origin, destination types.ResolvedStation

	// The two lookups are independent of each other.
	wg := &sync.WaitGroup{}
	wg.Add(2)
	go func() {
		defer wg.Done()
		origin = f.Resolver.Resolve(ctx, query.Origin)
	}()
	go func() {
		defer wg.Done()
		destination = f.Resolver.Resolve(ctx, query.Destination)
	}()
	wg.Wait()

	// Origin is reported first when both are unresolved.
	if !origin.Resolved() {
		return nil, &types.StationNotFoundError{Which: "origin", Name: query.Origin}
	}
	if !destination.Resolved() {
		return nil, &types.StationNotFoundError{Which: "destination", Name: query.Destination}
	}

	normalized := NormalizeDateTime(query.Date, query.DepartureTime, now)

	timetable, err := f.Rail.Timetable(ctx, origin.Code, destination.Code, normalized.Date, normalized.Time)
	if err != nil {
		return nil, err
	}

	f.Logger.Infow("timetable fetched",
		"origin", origin.Code,
		"destination", destination.Code,
		"date", normalized.Date,
		"time", normalized.Time,
		"departures", len(timetable.Departures.All),
	)

	services := make([]types.ServiceEntry, 0, maxServices)
	for _, departure := range timetable.Departures.All {
		if len(services) == maxServices {
			break
		}
		services = append(services, shapeService(departure))
	}

	return &types.TimetableResult{
		QueryInfo: types.QueryInfo{
			Origin:          query.Origin,
			Destination:     query.Destination,
			OriginCode:      origin.Code,
			DestinationCode: destination.Code,
			SearchDate:      normalized.Date,
			SearchTime:      normalized.Time,
		},
		Services: services,
	}, nil
}

// shapeService prefers aimed times and falls back to expected times when the
// provider has no scheduled value.
func shapeService(d types.Departure) types.ServiceEntry {
	entry := types.ServiceEntry{
		DepartureTime:     firstSet(d.AimedDepartureTime, d.ExpectedDepartureTime),
		ArrivalTime:       firstSet(d.AimedArrivalTime, d.ExpectedArrivalTime),
		ExpectedDeparture: d.ExpectedDepartureTime,
		ExpectedArrival:   d.ExpectedArrivalTime,
		Platform:          "TBC",
		Status:            "On time",
	}

	if d.Platform != nil && *d.Platform != "" {
		entry.Platform = *d.Platform
	}
	if d.OperatorName != nil {
		entry.Operator = *d.OperatorName
	}
	if d.Status != nil && *d.Status != "" {
		entry.Status = *d.Status
	}

	return entry
}

func firstSet(values ...*string) *string {
	for _, v := range values {
		if v != nil && *v != "" {
			return v
		}
	}
	return nil
}
