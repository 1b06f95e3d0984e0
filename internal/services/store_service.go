package services

import (
	"context"

	"greenway/internal/models/db_models"
	"greenway/internal/models/request_models"
	"greenway/internal/models/response_models"
	"greenway/internal/repositories"
	"greenway/pkg/utils"
)

type StoreServiceInterface interface {
	ListProducts(ctx context.Context, category string, page, pageSize int) ([]response_models.ProductResponse, error)
	ListFeaturedProducts(ctx context.Context) ([]response_models.ProductResponse, error)
	RedeemProduct(ctx context.Context, accountID string, request request_models.RedeemProductRequest) (*response_models.RedemptionResponse, error)
	ListRedemptions(ctx context.Context, accountID string) ([]response_models.RedemptionResponse, error)
}

type StoreService struct {
	storeRepo repositories.StoreRepository
}

func NewStoreService(storeRepo repositories.StoreRepository) StoreServiceInterface {
	return &StoreService{
		storeRepo: storeRepo,
	}
}

func (s *StoreService) ListProducts(ctx context.Context, category string, page, pageSize int) ([]response_models.ProductResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	products, err := s.storeRepo.ListProducts(ctx, category, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toProductResponses(products), nil
}

func (s *StoreService) ListFeaturedProducts(ctx context.Context) ([]response_models.ProductResponse, error) {
	products, err := s.storeRepo.ListFeaturedProducts(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toProductResponses(products), nil
}

func toProductResponses(products []db_models.Product) []response_models.ProductResponse {
	responses := make([]response_models.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, toProductResponse(&products[i]))
	}
	return responses
}

func (s *StoreService) RedeemProduct(ctx context.Context, accountID string, request request_models.RedeemProductRequest) (*response_models.RedemptionResponse, error) {
	redemption, err := s.storeRepo.RedeemProduct(ctx, accountID, request.ProductID)
	if err != nil {
		switch err {
		case utils.ErrProductNotFound, utils.ErrOutOfStock, utils.ErrInsufficientPoints:
			return nil, err
		default:
			return nil, utils.ErrDatabaseError
		}
	}

	resp := toRedemptionResponse(redemption)
	return &resp, nil
}

func (s *StoreService) ListRedemptions(ctx context.Context, accountID string) ([]response_models.RedemptionResponse, error) {
	redemptions, err := s.storeRepo.ListRedemptions(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.RedemptionResponse, 0, len(redemptions))
	for i := range redemptions {
		responses = append(responses, toRedemptionResponse(&redemptions[i]))
	}
	return responses, nil
}

func toProductResponse(p *db_models.Product) response_models.ProductResponse {
	return response_models.ProductResponse{
		ID:                   p.ID.String(),
		Name:                 p.Name,
		Description:          p.Description,
		PointsCost:           p.PointsCost,
		Category:             p.Category,
		ImageURL:             p.ImageURL,
		Stock:                p.Stock,
		SustainabilityRating: p.SustainabilityRating,
		Featured:             p.Featured,
	}
}

func toRedemptionResponse(r *db_models.Redemption) response_models.RedemptionResponse {
	return response_models.RedemptionResponse{
		ID:          r.ID.String(),
		Product:     toProductResponse(&r.Product),
		PointsSpent: r.PointsSpent,
		RedeemedAt:  r.CreatedAt,
	}
}
