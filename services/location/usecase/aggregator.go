package usecase

import (
	"sort"
	"sync"
	"time"

	"github.com/buslink/buslink/internal/pkg/models"
	"github.com/buslink/buslink/internal/utils"
)

// geohashPrecision gives roughly 150m cells, coarse enough for
// dashboards without leaking exact passenger positions.
const geohashPrecision = 7

// Aggregator maintains a time-windowed buffer of passenger pings per
// vehicle and computes a derived position estimate with outlier
// rejection and a sample-count confidence score.
//
// Ingest and Derive for the same vehicle are serialized by a
// per-vehicle lock; different vehicles proceed without contention.
type Aggregator struct {
	window            time.Duration
	outlierMeters     float64
	minSamples        int
	confidenceDivisor int
	confidenceCap     float64

	mu      sync.RWMutex
	buffers map[string]*vehicleBuffer
}

// vehicleBuffer holds the pings of one vehicle, ordered by arrival
type vehicleBuffer struct {
	mu    sync.Mutex
	pings []models.PassengerPing
}

// NewAggregator creates an aggregator with the given tunables
func NewAggregator(cfg models.AggregatorConfig) *Aggregator {
	return &Aggregator{
		window:            time.Duration(cfg.WindowSeconds) * time.Second,
		outlierMeters:     cfg.OutlierMeters,
		minSamples:        cfg.MinSamples,
		confidenceDivisor: cfg.ConfidenceDivisor,
		confidenceCap:     cfg.ConfidenceCap,
		buffers:           make(map[string]*vehicleBuffer),
	}
}

// buffer returns the buffer for a vehicle, creating it on first use.
// Buffers are retained once created; an idle vehicle costs one map
// entry.
func (a *Aggregator) buffer(vehicleID string) *vehicleBuffer {
	a.mu.RLock()
	b, ok := a.buffers[vehicleID]
	a.mu.RUnlock()
	if ok {
		return b
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if b, ok = a.buffers[vehicleID]; ok {
		return b
	}
	b = &vehicleBuffer{}
	a.buffers[vehicleID] = b
	return b
}

// Ingest appends a ping to the vehicle's buffer and lazily prunes
// entries older than the window. It accepts any well-typed
// coordinates; plausibility filtering happens at derive time.
func (a *Aggregator) Ingest(vehicleID, userID string, lat, lng float64, now time.Time) {
	b := a.buffer(vehicleID)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.pings = append(b.pings, models.PassengerPing{
		VehicleID: vehicleID,
		UserID:    userID,
		Latitude:  lat,
		Longitude: lng,
		Timestamp: now,
	})
	b.pings = pruneOlderThan(b.pings, now.Add(-a.window))
}

// Derive computes the current best-estimate position for a vehicle.
// It returns false when no estimate is available: unknown vehicle,
// fewer than the minimum samples in the window, or every sample
// rejected as an outlier.
func (a *Aggregator) Derive(vehicleID string, now time.Time) (*models.DerivedLocation, bool) {
	a.mu.RLock()
	b, ok := a.buffers[vehicleID]
	a.mu.RUnlock()
	if !ok {
		return nil, false
	}

	// Snapshot under the per-vehicle lock so a concurrent ingest never
	// tears the sample set, then compute outside it.
	b.mu.Lock()
	b.pings = pruneOlderThan(b.pings, now.Add(-a.window))
	samples := make([]models.PassengerPing, len(b.pings))
	copy(samples, b.pings)
	b.mu.Unlock()

	if len(samples) < a.minSamples {
		return nil, false
	}

	// Arithmetic-mean centroid as the outlier reference point
	var sumLat, sumLng float64
	for _, s := range samples {
		sumLat += s.Latitude
		sumLng += s.Longitude
	}
	centroid := utils.GeoPoint{
		Latitude:  sumLat / float64(len(samples)),
		Longitude: sumLng / float64(len(samples)),
	}

	// Drop samples too far from the centroid. A spoofed or buggy
	// client reporting a wildly wrong position is cut here before the
	// median step absorbs whatever outliers remain.
	valid := samples[:0]
	for _, s := range samples {
		dist := utils.HaversineDistance(centroid, utils.GeoPoint{Latitude: s.Latitude, Longitude: s.Longitude})
		if dist < a.outlierMeters {
			valid = append(valid, s)
		}
	}

	if len(valid) == 0 {
		return nil, false
	}

	// Per-axis medians, computed independently. Not a geometric
	// median; the per-axis simplification is part of the estimate's
	// contract and output values depend on it.
	lats := make([]float64, len(valid))
	lngs := make([]float64, len(valid))
	for i, s := range valid {
		lats[i] = s.Latitude
		lngs[i] = s.Longitude
	}
	sort.Float64s(lats)
	sort.Float64s(lngs)
	medianLat := lats[len(lats)/2]
	medianLng := lngs[len(lngs)/2]

	confidence := float64(len(valid)) / float64(a.confidenceDivisor)
	if confidence > a.confidenceCap {
		confidence = a.confidenceCap
	}

	return &models.DerivedLocation{
		Latitude:     medianLat,
		Longitude:    medianLng,
		Geohash:      utils.EncodeLocation(utils.GeoPoint{Latitude: medianLat, Longitude: medianLng}, geohashPrecision),
		Confidence:   confidence,
		Source:       models.SourcePassengerAggregate,
		SamplesCount: len(valid),
		DerivedAt:    now,
	}, true
}

// pruneOlderThan removes pings at or before the cutoff, preserving order
func pruneOlderThan(pings []models.PassengerPing, cutoff time.Time) []models.PassengerPing {
	kept := pings[:0]
	for _, p := range pings {
		if p.Timestamp.After(cutoff) {
			kept = append(kept, p)
		}
	}
	return kept
}
