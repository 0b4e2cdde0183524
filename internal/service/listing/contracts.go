//go:generate mockgen -source=contracts.go -destination=listing_mocks_test.go -package=listing_test

package listing

import (
	"context"

	"freight-matching-platform/internal/domain"
)

type listingRepository interface {
	CreateOffer(ctx context.Context, o *domain.Offer) error
	CreateRequest(ctx context.Context, r *domain.DeliveryRequest) error
	ListOffers(ctx context.Context, f domain.ListingFilter) ([]domain.Offer, error)
	ListRequests(ctx context.Context, f domain.ListingFilter) ([]domain.DeliveryRequest, error)
}

type carrierRepository interface {
	ListCarriers(ctx context.Context, activeOnly bool) ([]domain.Carrier, error)
}
