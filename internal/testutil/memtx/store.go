// Package memtx is an in-memory matchtx.Runner for service tests.
// Transactions are serialized and rolled back on error.
package memtx

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/ports/matchtx"
)

// Store holds offers, requests, drivers and matches.
type Store struct {
	mu sync.Mutex

	Offers   map[int64]domain.Offer
	Requests map[int64]domain.DeliveryRequest
	Drivers  map[int64]domain.Driver
	Matches  map[int64]domain.Match
	Events   []domain.MatchEvent

	// Interleave runs inside CompareAndSetStatus before the compare, with the
	// stored match. Tests use it to emulate a writer that committed first.
	Interleave func(m *domain.Match)
	// Fail makes the named method return the error.
	Fail map[string]error

	nextID int64
}

// New returns an empty store.
func New() *Store {
	return &Store{
		Offers:   map[int64]domain.Offer{},
		Requests: map[int64]domain.DeliveryRequest{},
		Drivers:  map[int64]domain.Driver{},
		Matches:  map[int64]domain.Match{},
		Fail:     map[string]error{},
		nextID:   1000,
	}
}

// AddOffer stores o, assigning an id when it has none.
func (s *Store) AddOffer(o domain.Offer) domain.Offer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == 0 {
		o.ID = s.id()
	}
	if o.Status == "" {
		o.Status = domain.OfferAvailable
	}
	s.Offers[o.ID] = o
	return o
}

// AddRequest stores r, assigning an id when it has none.
func (s *Store) AddRequest(r domain.DeliveryRequest) domain.DeliveryRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == 0 {
		r.ID = s.id()
	}
	if r.Status == "" {
		r.Status = domain.RequestPending
	}
	s.Requests[r.ID] = r
	return r
}

// AddDriver stores d, assigning an id when it has none.
func (s *Store) AddDriver(d domain.Driver) domain.Driver {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.ID == 0 {
		d.ID = s.id()
	}
	if d.Status == "" {
		d.Status = domain.DriverAvailable
	}
	s.Drivers[d.ID] = d
	return d
}

// AddMatch stores m without uniqueness checks.
func (s *Store) AddMatch(m domain.Match) domain.Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == 0 {
		m.ID = s.id()
	}
	s.Matches[m.ID] = m
	return m
}

// View returns the joined view of match id.
func (s *Store) View(id int64) (domain.MatchView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.view(id)
	if v == nil {
		return domain.MatchView{}, false
	}
	return *v, true
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) view(id int64) *domain.MatchView {
	m, ok := s.Matches[id]
	if !ok {
		return nil
	}
	o := s.Offers[m.OfferID]
	r := s.Requests[m.RequestID]
	v := domain.MatchView{
		Match:            m,
		OfferCarrierID:   o.CarrierID,
		RequestCarrierID: r.CarrierID,
		Offer:            o,
		Request:          r,
	}
	if m.DriverID != nil {
		d := s.Drivers[*m.DriverID]
		v.DriverName = d.Name
		v.VehicleNumber = d.VehicleNumber
	}
	return &v
}

// WithTx implements matchtx.Runner.
func (s *Store) WithTx(ctx context.Context, fn func(tx matchtx.Repository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	offers := maps.Clone(s.Offers)
	requests := maps.Clone(s.Requests)
	drivers := maps.Clone(s.Drivers)
	matches := maps.Clone(s.Matches)
	events := slices.Clone(s.Events)
	nextID := s.nextID

	if err := fn(&tx{s: s}); err != nil {
		s.Offers, s.Requests, s.Drivers, s.Matches, s.Events, s.nextID = offers, requests, drivers, matches, events, nextID
		return err
	}
	return ctx.Err()
}

type tx struct {
	s *Store
}

func (t *tx) fail(method string) error {
	return t.s.Fail[method]
}

func (t *tx) GetMatch(_ context.Context, id int64) (*domain.MatchView, error) {
	if err := t.fail("GetMatch"); err != nil {
		return nil, err
	}
	return t.s.view(id), nil
}

func (t *tx) activeConflict(m domain.Match) error {
	if !m.Status.Active() {
		return nil
	}
	for _, other := range t.s.Matches {
		if other.ID == m.ID || !other.Status.Active() {
			continue
		}
		if other.OfferID == m.OfferID || other.RequestID == m.RequestID {
			return fmt.Errorf("%w: offer or request already has an active match", apperr.Conflict)
		}
	}
	return nil
}

func (t *tx) CompareAndSetStatus(_ context.Context, m domain.Match, expected domain.MatchStatus) (bool, error) {
	if err := t.fail("CompareAndSetStatus"); err != nil {
		return false, err
	}
	stored, ok := t.s.Matches[m.ID]
	if !ok {
		return false, nil
	}
	if t.s.Interleave != nil {
		t.s.Interleave(&stored)
		t.s.Matches[m.ID] = stored
	}
	if stored.Status != expected {
		return false, nil
	}
	if err := t.activeConflict(m); err != nil {
		return false, err
	}
	stored.Status = m.Status
	stored.DriverID = m.DriverID
	stored.RejectionReason = m.RejectionReason
	stored.UpdatedAt = time.Now().UTC()
	t.s.Matches[m.ID] = stored
	return true, nil
}

func (t *tx) InsertMatch(_ context.Context, m *domain.Match) error {
	if err := t.fail("InsertMatch"); err != nil {
		return err
	}
	for _, other := range t.s.Matches {
		if other.OfferID == m.OfferID && other.RequestID == m.RequestID {
			return fmt.Errorf("%w: pair already matched", apperr.Conflict)
		}
	}
	if err := t.activeConflict(*m); err != nil {
		return err
	}
	m.ID = t.s.id()
	m.CreatedAt = time.Now().UTC()
	m.UpdatedAt = m.CreatedAt
	t.s.Matches[m.ID] = *m
	return nil
}

func (t *tx) InsertEvent(_ context.Context, e *domain.MatchEvent) error {
	if err := t.fail("InsertEvent"); err != nil {
		return err
	}
	e.ID = t.s.id()
	e.At = time.Now().UTC()
	t.s.Events = append(t.s.Events, *e)
	return nil
}

func (t *tx) SetOfferStatus(_ context.Context, id int64, status domain.OfferStatus) error {
	o, ok := t.s.Offers[id]
	if !ok {
		return apperr.NotFound
	}
	o.Status = status
	t.s.Offers[id] = o
	return nil
}

func (t *tx) SetRequestStatus(_ context.Context, id int64, status domain.RequestStatus) error {
	r, ok := t.s.Requests[id]
	if !ok {
		return apperr.NotFound
	}
	r.Status = status
	t.s.Requests[id] = r
	return nil
}

func (t *tx) SetDriverStatus(_ context.Context, id int64, status domain.DriverStatus) error {
	d, ok := t.s.Drivers[id]
	if !ok {
		return apperr.NotFound
	}
	d.Status = status
	t.s.Drivers[id] = d
	return nil
}

func (t *tx) FindAvailableDriverForUpdate(_ context.Context, carrierID int64) (*domain.Driver, error) {
	if err := t.fail("FindAvailableDriverForUpdate"); err != nil {
		return nil, err
	}
	load := map[int64]int{}
	for _, m := range t.s.Matches {
		if m.DriverID != nil {
			load[*m.DriverID]++
		}
	}
	var best *domain.Driver
	for _, id := range slices.Sorted(maps.Keys(t.s.Drivers)) {
		d := t.s.Drivers[id]
		if d.CarrierID != carrierID || d.Status != domain.DriverAvailable || !d.IsActive {
			continue
		}
		if best == nil || load[d.ID] < load[best.ID] {
			best = &d
		}
	}
	return best, nil
}

func (t *tx) activeOn(offerID, requestID int64) bool {
	for _, m := range t.s.Matches {
		if m.Status.Active() && (m.OfferID == offerID || m.RequestID == requestID) {
			return true
		}
	}
	return false
}

func (t *tx) UnmatchedOffers(context.Context) ([]domain.Offer, error) {
	if err := t.fail("UnmatchedOffers"); err != nil {
		return nil, err
	}
	var out []domain.Offer
	for _, id := range slices.Sorted(maps.Keys(t.s.Offers)) {
		o := t.s.Offers[id]
		if o.Status == domain.OfferAvailable && !t.activeOn(o.ID, -1) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (t *tx) UnmatchedRequests(context.Context) ([]domain.DeliveryRequest, error) {
	if err := t.fail("UnmatchedRequests"); err != nil {
		return nil, err
	}
	var out []domain.DeliveryRequest
	for _, id := range slices.Sorted(maps.Keys(t.s.Requests)) {
		r := t.s.Requests[id]
		if r.Status == domain.RequestPending && !t.activeOn(-1, r.ID) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (t *tx) PairExists(_ context.Context, offerID, requestID int64) (bool, error) {
	for _, m := range t.s.Matches {
		if m.OfferID == offerID && m.RequestID == requestID {
			return true, nil
		}
	}
	return false, nil
}

func (t *tx) UnassignedPending(context.Context) ([]domain.MatchView, error) {
	if err := t.fail("UnassignedPending"); err != nil {
		return nil, err
	}
	ids := slices.Collect(maps.Keys(t.s.Matches))
	slices.SortFunc(ids, func(a, b int64) int {
		if c := t.s.Matches[a].CreatedAt.Compare(t.s.Matches[b].CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	var out []domain.MatchView
	for _, id := range ids {
		m := t.s.Matches[id]
		if m.Status == domain.MatchPending && m.DriverID == nil {
			out = append(out, *t.s.view(id))
		}
	}
	return out, nil
}

func (t *tx) InProgressCount(_ context.Context, driverID, exceptMatchID int64) (int, error) {
	if err := t.fail("InProgressCount"); err != nil {
		return 0, err
	}
	n := 0
	for _, m := range t.s.Matches {
		if m.ID != exceptMatchID && m.Status == domain.MatchInProgress && m.DriverID != nil && *m.DriverID == driverID {
			n++
		}
	}
	return n, nil
}
