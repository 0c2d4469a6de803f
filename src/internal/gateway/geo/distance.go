package geo

import (
	"context"
	"fmt"

	"foodswipe-order-service/src/pkg/log"

	"googlemaps.github.io/maps"
)

// DistanceMeasurer returns the driving distance in km between two points.
type DistanceMeasurer interface {
	Measure(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (float64, error)
}

type googleDistance struct {
	client *maps.Client
	log    log.Log
}

func NewGoogleDistance(client *maps.Client, logger log.Log) DistanceMeasurer {
	return &googleDistance{client: client, log: logger}
}

func (g *googleDistance) Measure(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (float64, error) {
	req := &maps.DistanceMatrixRequest{
		Origins:      []string{fmt.Sprintf("%f,%f", fromLat, fromLng)},
		Destinations: []string{fmt.Sprintf("%f,%f", toLat, toLng)},
		Mode:         maps.TravelModeDriving,
	}

	resp, err := g.client.DistanceMatrix(ctx, req)
	if err != nil {
		g.log.Error("geo", fmt.Sprintf("distance matrix request failed: %v", err), "Measure", "")
		return 0, err
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("no route between origin and destination")
	}
	element := resp.Rows[0].Elements[0]
	if element.Status != "OK" {
		return 0, fmt.Errorf("distance matrix element status %s", element.Status)
	}

	return float64(element.Distance.Meters) / 1000.0, nil
}
