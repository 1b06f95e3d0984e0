package services

import (
	"context"

	"greenway/internal/models/db_models"
	"greenway/internal/models/request_models"
	"greenway/internal/models/response_models"
	"greenway/internal/repositories"
	"greenway/pkg/utils"
)

type AccountServiceInterface interface {
	Login(request request_models.LoginRequest, ctx context.Context) (*response_models.LoginResponse, error)
	GetProfile(ctx context.Context, accountID string) (*response_models.AccountResponse, error)
	EarnGreenPoints(ctx context.Context, accountID string, request request_models.EarnGreenPointsRequest) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

func (a *AccountService) Login(request request_models.LoginRequest, ctx context.Context) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if !utils.ComparePasswords(account.PasswordHash, request.Password) {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token:   token,
		Account: toAccountResponse(account),
	}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, accountID string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	resp := toAccountResponse(account)
	return &resp, nil
}

func (a *AccountService) EarnGreenPoints(ctx context.Context, accountID string, request request_models.EarnGreenPointsRequest) (*response_models.AccountResponse, error) {
	if request.Points <= 0 {
		return nil, utils.ErrInvalidInput
	}

	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := a.accountRepo.AddGreenPoints(ctx, accountID, request.Points); err != nil {
		return nil, utils.ErrDatabaseError
	}

	account.GreenScore += request.Points
	resp := toAccountResponse(account)
	return &resp, nil
}

func toAccountResponse(account *db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:         account.ID.String(),
		Name:       account.Name,
		Username:   account.Username,
		Email:      account.Email,
		GreenScore: account.GreenScore,
	}
}
