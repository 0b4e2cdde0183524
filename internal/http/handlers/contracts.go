package handlers

import (
	"context"

	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/lifecycle"
	"freight-matching-platform/internal/service/identity"
	"freight-matching-platform/internal/service/match"
)

type identityUsecase interface {
	Register(ctx context.Context, r domain.Registration) (domain.User, error)
	Login(ctx context.Context, username, password string) (identity.Session, error)
	Logout(ctx context.Context, token string) error
}

type dashboardUsecase interface {
	For(ctx context.Context, actor lifecycle.Actor) (domain.Dashboard, error)
}

type listingUsecase interface {
	CreateOffer(ctx context.Context, actor lifecycle.Actor, o domain.Offer) (domain.Offer, error)
	CreateRequest(ctx context.Context, actor lifecycle.Actor, r domain.DeliveryRequest) (domain.DeliveryRequest, error)
	ListOffers(ctx context.Context, actor lifecycle.Actor, status string) ([]domain.Offer, error)
	ListRequests(ctx context.Context, actor lifecycle.Actor, status string) ([]domain.DeliveryRequest, error)
	ListCarriers(ctx context.Context) ([]domain.Carrier, error)
}

type matchUsecase interface {
	List(ctx context.Context, actor lifecycle.Actor, status string) ([]domain.MatchView, error)
	Get(ctx context.Context, actor lifecycle.Actor, id int64) (domain.MatchView, error)
	Capabilities(ctx context.Context, actor lifecycle.Actor, id int64) (domain.MatchView, lifecycle.ActionSet, error)
	History(ctx context.Context, actor lifecycle.Actor, id int64) ([]domain.MatchEvent, error)
	Transition(ctx context.Context, actor lifecycle.Actor, id int64, action domain.MatchAction, in match.TransitionInput) (domain.MatchView, error)
}

type autoMatchUsecase interface {
	Run(ctx context.Context, actor lifecycle.Actor) (domain.AutoMatchResult, error)
}

type locationUsecase interface {
	Update(ctx context.Context, actor lifecycle.Actor, p domain.LocationPoint) (domain.LocationPoint, error)
	Path(ctx context.Context, actor lifecycle.Actor, matchID int64) ([]domain.LocationPoint, error)
}

type adminUsecase interface {
	Users(ctx context.Context, actor lifecycle.Actor) ([]domain.User, error)
	CreateUser(ctx context.Context, actor lifecycle.Actor, r domain.Registration) (domain.User, error)
	Carriers(ctx context.Context, actor lifecycle.Actor) ([]domain.Carrier, error)
	CreateCarrier(ctx context.Context, actor lifecycle.Actor, c domain.Carrier) (domain.Carrier, error)
	Drivers(ctx context.Context, actor lifecycle.Actor, carrierID *int64) ([]domain.Driver, error)
	CreateDriver(ctx context.Context, actor lifecycle.Actor, d domain.Driver) (domain.Driver, error)
	Vehicles(ctx context.Context, actor lifecycle.Actor) ([]domain.Vehicle, error)
	CreateVehicle(ctx context.Context, actor lifecycle.Actor, v domain.Vehicle) (domain.Vehicle, error)
	Statistics(ctx context.Context, actor lifecycle.Actor) (domain.Statistics, error)
}
