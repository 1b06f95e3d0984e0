package repositories

import (
	"context"
	"errors"

	"greenway/internal/models/db_models"
	"greenway/pkg/utils"

	"gorm.io/gorm"
)

type StoreRepository interface {
	ListProducts(ctx context.Context, category string, page, pageSize int) ([]db_models.Product, error)
	ListFeaturedProducts(ctx context.Context) ([]db_models.Product, error)
	FindProductById(ctx context.Context, id string) (*db_models.Product, error)
	RedeemProduct(ctx context.Context, accountID, productID string) (*db_models.Redemption, error)
	ListRedemptions(ctx context.Context, accountID string) ([]db_models.Redemption, error)
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{
		db: db,
	}
}

func (s *storeRepository) ListProducts(ctx context.Context, category string, page, pageSize int) ([]db_models.Product, error) {
	query := s.db.WithContext(ctx).
		Order("points_cost ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize)
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	var products []db_models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *storeRepository) ListFeaturedProducts(ctx context.Context) ([]db_models.Product, error) {
	var products []db_models.Product
	err := s.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("points_cost ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *storeRepository) FindProductById(ctx context.Context, id string) (*db_models.Product, error) {
	var product db_models.Product
	err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &product, nil
}

// RedeemProduct runs the whole purchase in one transaction: the stock
// decrement and point deduction are conditional updates, so concurrent
// redemptions cannot oversell or overspend.
func (s *storeRepository) RedeemProduct(ctx context.Context, accountID, productID string) (*db_models.Redemption, error) {
	var redemption *db_models.Redemption

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product db_models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrProductNotFound
			}
			return err
		}

		res := tx.Model(&db_models.Product{}).
			Where("id = ? AND stock > 0", productID).
			UpdateColumn("stock", gorm.Expr("stock - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrOutOfStock
		}

		res = tx.Model(&db_models.Account{}).
			Where("id = ? AND green_score >= ?", accountID, product.PointsCost).
			UpdateColumn("green_score", gorm.Expr("green_score - ?", product.PointsCost))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrInsufficientPoints
		}

		redemption = &db_models.Redemption{
			AccountID:   mustParseUUID(accountID),
			ProductID:   product.ID,
			PointsSpent: product.PointsCost,
		}
		return tx.Create(redemption).Error
	})
	if err != nil {
		return nil, err
	}

	redemption.Product = db_models.Product{}
	if p, perr := s.FindProductById(ctx, productID); perr == nil && p != nil {
		redemption.Product = *p
	}
	return redemption, nil
}

func (s *storeRepository) ListRedemptions(ctx context.Context, accountID string) ([]db_models.Redemption, error) {
	var redemptions []db_models.Redemption
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&redemptions).Error
	if err != nil {
		return nil, err
	}
	return redemptions, nil
}
