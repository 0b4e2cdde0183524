package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/lifecycle"
)

// stubAdmin embeds adminUsecase so tests only implement what they call.
type stubAdmin struct {
	adminUsecase
	createUserFn func(ctx context.Context, actor lifecycle.Actor, r domain.Registration) (domain.User, error)
	driversFn    func(ctx context.Context, actor lifecycle.Actor, carrierID *int64) ([]domain.Driver, error)
	vehicleFn    func(ctx context.Context, actor lifecycle.Actor, v domain.Vehicle) (domain.Vehicle, error)
	statsFn      func(ctx context.Context, actor lifecycle.Actor) (domain.Statistics, error)
	usersFn      func(ctx context.Context, actor lifecycle.Actor) ([]domain.User, error)
}

func (s *stubAdmin) CreateUser(ctx context.Context, actor lifecycle.Actor, r domain.Registration) (domain.User, error) {
	return s.createUserFn(ctx, actor, r)
}

func (s *stubAdmin) Drivers(ctx context.Context, actor lifecycle.Actor, carrierID *int64) ([]domain.Driver, error) {
	return s.driversFn(ctx, actor, carrierID)
}

func (s *stubAdmin) CreateVehicle(ctx context.Context, actor lifecycle.Actor, v domain.Vehicle) (domain.Vehicle, error) {
	return s.vehicleFn(ctx, actor, v)
}

func (s *stubAdmin) Statistics(ctx context.Context, actor lifecycle.Actor) (domain.Statistics, error) {
	return s.statsFn(ctx, actor)
}

func (s *stubAdmin) Users(ctx context.Context, actor lifecycle.Actor) ([]domain.User, error) {
	return s.usersFn(ctx, actor)
}

func TestAdminHandler_CreateUser_AllowsAdminRole(t *testing.T) {
	t.Parallel()

	uc := &stubAdmin{createUserFn: func(_ context.Context, actor lifecycle.Actor, r domain.Registration) (domain.User, error) {
		require.Equal(t, adminActor, actor)
		require.Equal(t, domain.RoleAdmin, r.Role)
		return domain.User{ID: 9, Username: r.Username, Role: r.Role, IsActive: true}, nil
	}}
	body := `{"username":"root2","email":"root2@example.com","password":"secret1","full_name":"Root","role":"admin"}`
	rr := httptest.NewRecorder()
	NewAdminHandler(nil, uc, Format{}).CreateUser(rr, withActor(newRequest(http.MethodPost, "/api/admin/users", body), adminActor))

	require.Equal(t, http.StatusCreated, rr.Code)
	u := decodeBody(t, rr)["user"].(map[string]any)
	require.Equal(t, "admin", u["role"])
	require.Equal(t, "Administrator", u["role_label"])
	require.Equal(t, "bg-danger", u["role_badge"])
}

func TestAdminHandler_Users_NonAdmin(t *testing.T) {
	t.Parallel()

	uc := &stubAdmin{usersFn: func(context.Context, lifecycle.Actor) ([]domain.User, error) {
		return nil, apperr.Unauthorized
	}}
	rr := httptest.NewRecorder()
	NewAdminHandler(nil, uc, Format{}).Users(rr, withActor(newRequest(http.MethodGet, "/api/admin/users", ""), carrierActor))

	requireError(t, rr, http.StatusForbidden, "unauthorized")
}

func TestAdminHandler_Drivers_CarrierFilter(t *testing.T) {
	t.Parallel()

	uc := &stubAdmin{driversFn: func(_ context.Context, _ lifecycle.Actor, carrierID *int64) ([]domain.Driver, error) {
		require.NotNil(t, carrierID)
		require.Equal(t, int64(10), *carrierID)
		return []domain.Driver{{ID: 7, CarrierID: 10, Name: "Kim", LicenseNumber: "DL-1", Status: domain.DriverBusy, IsActive: true}}, nil
	}}
	h := NewAdminHandler(nil, uc, Format{})

	rr := httptest.NewRecorder()
	h.Drivers(rr, withActor(newRequest(http.MethodGet, "/api/admin/drivers?carrier_id=10", ""), adminActor))
	require.Equal(t, http.StatusOK, rr.Code)
	d := decodeBody(t, rr)["drivers"].([]any)[0].(map[string]any)
	require.Equal(t, "busy", d["status"])
	require.Equal(t, "Busy", d["status_label"])
	require.Equal(t, "bg-warning", d["status_badge"])

	rr = httptest.NewRecorder()
	h.Drivers(rr, withActor(newRequest(http.MethodGet, "/api/admin/drivers?carrier_id=x", ""), adminActor))
	requireError(t, rr, http.StatusBadRequest, "validation_failure")
}

func TestAdminHandler_CreateVehicle(t *testing.T) {
	t.Parallel()

	uc := &stubAdmin{vehicleFn: func(_ context.Context, _ lifecycle.Actor, v domain.Vehicle) (domain.Vehicle, error) {
		require.Equal(t, domain.VehicleMaintenance, v.Status)
		v.ID = 4
		return v, nil
	}}
	h := NewAdminHandler(nil, uc, Format{})

	rr := httptest.NewRecorder()
	body := `{"carrier_id":10,"vehicle_number":"12가3456","vehicle_type":"trailer","status":"maintenance"}`
	h.CreateVehicle(rr, withActor(newRequest(http.MethodPost, "/api/admin/vehicles", body), adminActor))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = httptest.NewRecorder()
	body = `{"carrier_id":10,"vehicle_number":"12가3456","vehicle_type":"trailer","status":"flying"}`
	h.CreateVehicle(rr, withActor(newRequest(http.MethodPost, "/api/admin/vehicles", body), adminActor))
	requireError(t, rr, http.StatusBadRequest, "validation_failure")
}

func TestAdminHandler_Statistics(t *testing.T) {
	t.Parallel()

	uc := &stubAdmin{statsFn: func(context.Context, lifecycle.Actor) (domain.Statistics, error) {
		return domain.Statistics{
			Overview:      domain.Overview{TotalUsers: 5, TotalCarriers: 2, TotalDrivers: 2, ActiveTolerances: 1, PendingRequests: 1, TotalMatches: 3, CompletedMatches: 1},
			Monthly:       domain.Monthly{Tolerances: 1, Requests: 2, Matches: 3},
			MatchStatuses: map[string]int{"completed": 1, "proposed": 2},
			TopCarriers:   []domain.CarrierRank{{Name: "Busan Lines", Matches: 3}},
		}, nil
	}}
	rr := httptest.NewRecorder()
	NewAdminHandler(nil, uc, Format{}).Statistics(rr, withActor(newRequest(http.MethodGet, "/api/admin/statistics", ""), adminActor))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"statistics":{
		"overview":{"total_users":5,"total_carriers":2,"total_drivers":2,"active_tolerances":1,"pending_requests":1,"total_matches":3,"completed_matches":1},
		"monthly":{"tolerances":1,"requests":2,"matches":3},
		"status_breakdown":{"tolerances":{},"delivery_requests":{},"matches":{"completed":1,"proposed":2}},
		"top_carriers":[{"name":"Busan Lines","matches":3}]
	}}`, rr.Body.String())
}
