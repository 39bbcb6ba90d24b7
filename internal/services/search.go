package services

import (
	"context"
	"errors"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"station-search-service/internal/domain"
	"station-search-service/internal/platform/obs"
	"station-search-service/internal/ports"
)

const (
	// Reference behavior: stations beyond 10 km are dropped.
	defaultRadiusKm = 10.0

	// One large page per search, matching the upstream consumer.
	defaultPageSize = 9999

	// Bound on waiting for the caller's position.
	locateTimeout = 10 * time.Second
)

type SearchRequest struct {
	LocationQuery string
	UseGPS        bool
	Locator       ports.Locator // required when UseGPS is set
	ChargerType   string        // optional substring filter on decoded type labels
	ClientID      string        // optional; scopes the supersede guard to one caller
}

// Searcher runs the station search pipeline: anchor coordinate ->
// legal-district code -> charger fetch -> distance/decoding -> filter ->
// stable sort. Stateless between calls except for the supersede guard:
// within one client, every call gets a monotonically increasing id, a
// newer call cancels the older in-flight one, and a superseded call
// reports domain.ErrSuperseded instead of delivering stale results.
// Calls from different clients (or without a client id) are independent
// and never supersede each other.
type Searcher struct {
	places   ports.PlaceResolver
	regions  ports.RegionCoder
	stations ports.StationSource

	radiusKm float64
	pageSize int

	mu   sync.Mutex
	gens map[string]*generation
}

// Per-client search generation. The entry is dropped once the client's
// last in-flight call finishes, so the map only holds active clients and
// superseded stragglers can never collide with a restarted counter.
type generation struct {
	seq        uint64
	active     int
	cancelPrev context.CancelFunc
}

func NewSearcher(places ports.PlaceResolver, regions ports.RegionCoder, stations ports.StationSource) *Searcher {
	return &Searcher{
		places:   places,
		regions:  regions,
		stations: stations,
		radiusKm: defaultRadiusKm,
		pageSize: defaultPageSize,
		gens:     make(map[string]*generation),
	}
}

// Search returns stations within the radius ordered by ascending distance.
// Every failure kind surfaces as one of the domain sentinel errors; no
// external call is retried.
func (s *Searcher) Search(ctx context.Context, req SearchRequest) (_ []domain.Station, err error) {
	defer obs.Time(ctx, "search.Search")(&err)

	id, ctx, cancel := s.begin(ctx, req.ClientID)
	defer cancel()

	anchor, anchorName, err := s.resolveAnchor(ctx, req)
	if err != nil {
		return nil, err
	}
	log.Printf("search anchor name=%q lat=%.6f lng=%.6f", anchorName, anchor.Lat, anchor.Lng)

	region, err := s.regions.RegionCode(ctx, anchor)
	if err != nil {
		if !errors.Is(err, domain.ErrDistrictNotFound) {
			log.Printf("region coder failed: %v", err)
		}
		return nil, domain.ErrDistrictNotFound
	}

	records, err := s.stations.FetchChargers(ctx, region, 1, s.pageSize)
	if err != nil {
		// Transport failures collapse into the empty-district outcome
		// for the caller; the log line keeps them distinguishable.
		log.Printf("station source failed zcode=%s zscode=%s: %v", region.Province, region.District, err)
		return nil, domain.ErrNoStationsInDistrict
	}
	if len(records) == 0 {
		return nil, domain.ErrNoStationsInDistrict
	}

	ranked := RankStations(anchor, records, req.ChargerType, s.radiusKm)
	if len(ranked) == 0 {
		return nil, domain.ErrNoStationsInRadius
	}

	if s.superseded(req.ClientID, id) {
		return nil, domain.ErrSuperseded
	}

	return ranked, nil
}

func (s *Searcher) resolveAnchor(ctx context.Context, req SearchRequest) (domain.Coordinate, string, error) {
	if req.UseGPS {
		if req.Locator == nil {
			return domain.Coordinate{}, "", domain.ErrLocationUnavailable
		}

		posCtx, cancel := context.WithTimeout(ctx, locateTimeout)
		defer cancel()

		coord, err := req.Locator.CurrentPosition(posCtx)
		if err != nil {
			log.Printf("locator failed: %v", err)
			return domain.Coordinate{}, "", domain.ErrLocationUnavailable
		}
		return coord, "현재 위치", nil
	}

	query := strings.TrimSpace(req.LocationQuery)
	if query == "" {
		return domain.Coordinate{}, "", domain.ErrLocationUnavailable
	}

	place, err := s.places.Resolve(ctx, query)
	if err != nil {
		var pe *domain.ProviderError
		if errors.As(err, &pe) {
			log.Printf("place resolver failed: %v", pe)
		}
		return domain.Coordinate{}, "", domain.ErrPlaceNotFound
	}

	return place.Coordinate, place.Name, nil
}

// RankStations turns raw charger records into the ordered result list:
// records with unparseable coordinates are skipped, distance is computed
// against the anchor, connector type and status are decoded, records
// outside the radius or not matching the type filter are dropped, and the
// rest are sorted ascending by distance. The sort is stable, so records
// at the exact same distance keep the provider's original order.
func RankStations(
	anchor domain.Coordinate,
	records []domain.ChargerRecord,
	typeFilter string,
	radiusKm float64,
) []domain.Station {
	filter := strings.ToLower(strings.TrimSpace(typeFilter))

	out := make([]domain.Station, 0, len(records))
	for _, r := range records {
		lat, errLat := strconv.ParseFloat(r.Lat, 64)
		lng, errLng := strconv.ParseFloat(r.Lng, 64)
		if errLat != nil || errLng != nil {
			continue
		}

		dist := domain.DistanceKm(anchor, domain.Coordinate{Lat: lat, Lng: lng})
		if dist > radiusKm {
			continue
		}

		typeLabel := domain.DecodeChargerType(r.ChargerType)
		if filter != "" && !strings.Contains(strings.ToLower(typeLabel), filter) {
			continue
		}

		out = append(out, domain.Station{
			ID:             r.StationID,
			Name:           r.Name,
			Address:        r.Address,
			ChargerTypes:   []string{typeLabel},
			OperatingHours: r.UseTime,
			Lat:            lat,
			Lng:            lng,
			DistanceKm:     dist,
			Status:         domain.DecodeStatus(r.Status),
			OperatorName:   r.OperatorName,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})

	return out
}

// begin registers a new search generation for the client and cancels the
// client's previous in-flight call, if any. Without a client id there is
// nothing to guard, so the call runs unscoped.
func (s *Searcher) begin(ctx context.Context, clientID string) (uint64, context.Context, context.CancelFunc) {
	if clientID == "" {
		return 0, ctx, func() {}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	gen := s.gens[clientID]
	if gen == nil {
		gen = &generation{}
		s.gens[clientID] = gen
	}
	if gen.cancelPrev != nil {
		gen.cancelPrev()
	}

	gen.seq++
	gen.active++
	id := gen.seq
	ctx, cancel := context.WithCancel(ctx)
	gen.cancelPrev = cancel

	return id, ctx, func() {
		cancel()
		s.release(clientID)
	}
}

// release drops the client's generation entry once its last in-flight
// call has finished.
func (s *Searcher) release(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gen := s.gens[clientID]
	if gen == nil {
		return
	}
	gen.active--
	if gen.active <= 0 {
		delete(s.gens, clientID)
	}
}

func (s *Searcher) superseded(clientID string, id uint64) bool {
	if clientID == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The entry lives as long as any of the client's calls is in flight,
	// so the checking call always finds it.
	gen := s.gens[clientID]
	return gen == nil || gen.seq != id
}
