package services

import (
	"context"
	"errors"

	"greenway/internal/models/db_models"

	"github.com/google/uuid"
)

type fakeAccountRepo struct {
	accounts map[string]*db_models.Account
	byName   map[string]*db_models.Account
	awarded  map[string]int
	failWith error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		accounts: make(map[string]*db_models.Account),
		byName:   make(map[string]*db_models.Account),
		awarded:  make(map[string]int),
	}
}

func (f *fakeAccountRepo) add(account *db_models.Account) {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts[account.ID.String()] = account
	f.byName[account.Username] = account
}

func (f *fakeAccountRepo) InsertTx(account *db_models.Account, ctx context.Context) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.add(account)
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if acc, ok := f.accounts[id]; ok {
		copied := *acc
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByUsername(ctx context.Context, username string) (*db_models.Account, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if acc, ok := f.byName[username]; ok {
		copied := *acc
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeAccountRepo) AddGreenPoints(ctx context.Context, id string, points int) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.awarded[id] += points
	if acc, ok := f.accounts[id]; ok {
		acc.GreenScore += points
	}
	return nil
}

type fakeTripRepo struct {
	trips    map[string]*db_models.Trip
	inserted []*db_models.Trip
	failWith error
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: make(map[string]*db_models.Trip)}
}

func (f *fakeTripRepo) InsertTrip(ctx context.Context, trip *db_models.Trip) error {
	if f.failWith != nil {
		return f.failWith
	}
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	f.trips[trip.ID.String()] = trip
	f.inserted = append(f.inserted, trip)
	return nil
}

func (f *fakeTripRepo) ListByAccount(ctx context.Context, accountID string, page, pageSize int) ([]db_models.Trip, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []db_models.Trip
	for _, trip := range f.inserted {
		if trip.AccountID.String() == accountID {
			out = append(out, *trip)
		}
	}
	return out, nil
}

func (f *fakeTripRepo) FindById(ctx context.Context, id string) (*db_models.Trip, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.trips[id], nil
}

type fakePlannerClient struct {
	response string
	err      error
	calls    int
}

func (f *fakePlannerClient) GenerateTravelPlan(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakePlannerClient) Close() error { return nil }

type fakeGeocoder struct {
	lat, lon float64
	err      error
}

func (f *fakeGeocoder) Geocode(ctx context.Context, query string) (float64, float64, error) {
	if f.err != nil {
		return 0, 0, f.err
	}
	return f.lat, f.lon, nil
}

type fakeStoreRepo struct {
	products    []db_models.Product
	redemptions []db_models.Redemption
	redeemErr   error
	failWith    error
}

func (f *fakeStoreRepo) ListProducts(ctx context.Context, category string, page, pageSize int) ([]db_models.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if category == "" || category == "all" {
		return f.products, nil
	}
	var out []db_models.Product
	for _, p := range f.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStoreRepo) ListFeaturedProducts(ctx context.Context) ([]db_models.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []db_models.Product
	for _, p := range f.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStoreRepo) FindProductById(ctx context.Context, id string) (*db_models.Product, error) {
	for i := range f.products {
		if f.products[i].ID.String() == id {
			return &f.products[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStoreRepo) RedeemProduct(ctx context.Context, accountID, productID string) (*db_models.Redemption, error) {
	if f.redeemErr != nil {
		return nil, f.redeemErr
	}
	product, _ := f.FindProductById(ctx, productID)
	redemption := db_models.Redemption{PointsSpent: product.PointsCost, Product: *product}
	redemption.ID = uuid.New()
	f.redemptions = append(f.redemptions, redemption)
	return &redemption, nil
}

func (f *fakeStoreRepo) ListRedemptions(ctx context.Context, accountID string) ([]db_models.Redemption, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.redemptions, nil
}

var errFakeRepo = errors.New("fake repository failure")
