package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/lifecycle"
)

type stubListing struct {
	createOfferFn   func(ctx context.Context, actor lifecycle.Actor, o domain.Offer) (domain.Offer, error)
	createRequestFn func(ctx context.Context, actor lifecycle.Actor, r domain.DeliveryRequest) (domain.DeliveryRequest, error)
	listOffersFn    func(ctx context.Context, actor lifecycle.Actor, status string) ([]domain.Offer, error)
	listRequestsFn  func(ctx context.Context, actor lifecycle.Actor, status string) ([]domain.DeliveryRequest, error)
	listCarriersFn  func(ctx context.Context) ([]domain.Carrier, error)
}

func (s *stubListing) CreateOffer(ctx context.Context, actor lifecycle.Actor, o domain.Offer) (domain.Offer, error) {
	if s.createOfferFn == nil {
		panic("CreateOffer not expected in this test")
	}
	return s.createOfferFn(ctx, actor, o)
}

func (s *stubListing) CreateRequest(ctx context.Context, actor lifecycle.Actor, r domain.DeliveryRequest) (domain.DeliveryRequest, error) {
	if s.createRequestFn == nil {
		panic("CreateRequest not expected in this test")
	}
	return s.createRequestFn(ctx, actor, r)
}

func (s *stubListing) ListOffers(ctx context.Context, actor lifecycle.Actor, status string) ([]domain.Offer, error) {
	if s.listOffersFn == nil {
		panic("ListOffers not expected in this test")
	}
	return s.listOffersFn(ctx, actor, status)
}

func (s *stubListing) ListRequests(ctx context.Context, actor lifecycle.Actor, status string) ([]domain.DeliveryRequest, error) {
	if s.listRequestsFn == nil {
		panic("ListRequests not expected in this test")
	}
	return s.listRequestsFn(ctx, actor, status)
}

func (s *stubListing) ListCarriers(ctx context.Context) ([]domain.Carrier, error) {
	if s.listCarriersFn == nil {
		panic("ListCarriers not expected in this test")
	}
	return s.listCarriersFn(ctx)
}

func TestListingHandler_CreateOffer(t *testing.T) {
	t.Parallel()

	uc := &stubListing{createOfferFn: func(_ context.Context, actor lifecycle.Actor, o domain.Offer) (domain.Offer, error) {
		require.Equal(t, carrierActor, actor)
		require.Equal(t, "Busan", o.Origin)
		require.Equal(t, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC), o.DepartureTime)
		require.Equal(t, time.Date(2025, 3, 1, 6, 0, 0, 0, time.UTC), o.ArrivalTime)
		require.True(t, decimal.RequireFromString("350000.5").Equal(o.Price))
		require.Equal(t, 0, o.ContainerCount)
		require.True(t, o.IsEmptyRun)

		o.ID = 11
		o.CarrierID = actor.CarrierID
		o.ContainerCount = 1
		o.Status = domain.OfferAvailable
		o.CreatedAt = testDay
		return o, nil
	}}

	body := `{"origin":"Busan","destination":"Seoul","departure_time":"2025-03-01T09:00",
		"arrival_time":"2025-03-01T15:00:00+09:00","container_type":"40ft","price":"350000.50","is_empty_run":true}`
	rr := httptest.NewRecorder()
	NewListingHandler(nil, uc, Format{Currency: "USD"}).CreateOffer(rr, withActor(newRequest(http.MethodPost, "/api/tolerances", body), carrierActor))

	require.Equal(t, http.StatusCreated, rr.Code)
	resp := decodeBody(t, rr)
	require.Equal(t, true, resp["success"])
	tol := resp["tolerance"].(map[string]any)
	require.Equal(t, "350000.5", tol["price"])
	require.Equal(t, "USD", tol["currency"])
	require.Equal(t, "available", tol["status"])
	require.Equal(t, float64(1), tol["container_count"])
}

func TestListingHandler_CreateOffer_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "missing origin", body: `{"destination":"Seoul","departure_time":"2025-03-01T09:00","arrival_time":"2025-03-01T10:00","container_type":"40ft"}`},
		{name: "missing departure", body: `{"origin":"Busan","destination":"Seoul","arrival_time":"2025-03-01T10:00","container_type":"40ft"}`},
		{name: "negative count", body: `{"origin":"Busan","destination":"Seoul","departure_time":"2025-03-01T09:00","arrival_time":"2025-03-01T10:00","container_type":"40ft","container_count":-1}`},
		{name: "bad time", body: `{"origin":"Busan","destination":"Seoul","departure_time":"soon","arrival_time":"2025-03-01T10:00","container_type":"40ft"}`},
		{name: "bad price", body: `{"origin":"Busan","destination":"Seoul","departure_time":"2025-03-01T09:00","arrival_time":"2025-03-01T10:00","container_type":"40ft","price":"cheap"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			NewListingHandler(nil, &stubListing{}, Format{}).CreateOffer(rr, withActor(newRequest(http.MethodPost, "/api/tolerances", tt.body), carrierActor))
			requireError(t, rr, http.StatusBadRequest, "validation_failure")
		})
	}
}

func TestListingHandler_CreateOffer_DriverRefused(t *testing.T) {
	t.Parallel()

	uc := &stubListing{createOfferFn: func(context.Context, lifecycle.Actor, domain.Offer) (domain.Offer, error) {
		return domain.Offer{}, apperr.Unauthorized
	}}
	body := `{"origin":"Busan","destination":"Seoul","departure_time":"2025-03-01T09:00","arrival_time":"2025-03-01T10:00","container_type":"40ft"}`
	rr := httptest.NewRecorder()
	NewListingHandler(nil, uc, Format{}).CreateOffer(rr, withActor(newRequest(http.MethodPost, "/api/tolerances", body), driverActor))

	requireError(t, rr, http.StatusForbidden, "unauthorized")
}

func TestListingHandler_CreateRequest(t *testing.T) {
	t.Parallel()

	uc := &stubListing{createRequestFn: func(_ context.Context, _ lifecycle.Actor, r domain.DeliveryRequest) (domain.DeliveryRequest, error) {
		require.JSONEq(t, `{"weight_kg":12000,"hazardous":false}`, string(r.CargoDetails))
		require.True(t, decimal.NewFromInt(400000).Equal(r.Budget))
		r.ID = 21
		r.Status = domain.RequestPending
		return r, nil
	}}
	body := `{"origin":"Busan","destination":"Seoul","pickup_time":"2025-03-01T09:00","delivery_time":"2025-03-01T17:00",
		"container_type":"40ft","container_count":1,"budget":400000,"cargo_details":{"weight_kg":12000,"hazardous":false}}`
	rr := httptest.NewRecorder()
	NewListingHandler(nil, uc, Format{}).CreateRequest(rr, withActor(newRequest(http.MethodPost, "/api/delivery-requests", body), carrierActor))

	require.Equal(t, http.StatusCreated, rr.Code)
	dr := decodeBody(t, rr)["delivery_request"].(map[string]any)
	require.Equal(t, "pending", dr["status"])
	require.Equal(t, "400000", dr["budget"])
	require.Equal(t, "KRW", dr["currency"])
}

func TestListingHandler_Lists(t *testing.T) {
	t.Parallel()

	uc := &stubListing{
		listOffersFn: func(_ context.Context, actor lifecycle.Actor, status string) ([]domain.Offer, error) {
			require.Equal(t, driverActor, actor)
			require.Equal(t, "available", status)
			return []domain.Offer{{ID: 1, Status: domain.OfferAvailable}}, nil
		},
		listRequestsFn: func(_ context.Context, _ lifecycle.Actor, status string) ([]domain.DeliveryRequest, error) {
			require.Empty(t, status)
			return nil, nil
		},
	}
	h := NewListingHandler(nil, uc, Format{})

	rr := httptest.NewRecorder()
	h.ListOffers(rr, withActor(newRequest(http.MethodGet, "/api/tolerances?status=%20AVAILABLE", ""), driverActor))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, decodeBody(t, rr)["tolerances"], 1)

	rr = httptest.NewRecorder()
	h.ListRequests(rr, withActor(newRequest(http.MethodGet, "/api/delivery-requests", ""), driverActor))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"delivery_requests":[]}`, rr.Body.String())
}

func TestListingHandler_Carriers(t *testing.T) {
	t.Parallel()

	uc := &stubListing{listCarriersFn: func(context.Context) ([]domain.Carrier, error) {
		return []domain.Carrier{{ID: 10, CompanyName: "Busan Lines", IsActive: true, CreatedAt: testDay}}, nil
	}}
	rr := httptest.NewRecorder()
	NewListingHandler(nil, uc, Format{}).Carriers(rr, newRequest(http.MethodGet, "/api/carriers", ""))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"carriers":[{"id":10,"company_name":"Busan Lines","is_active":true,"created_at":"2025-03-01T09:00:00Z"}]}`, rr.Body.String())
}
