package services

import (
	"context"
	"testing"

	"greenway/internal/models/db_models"
	"greenway/internal/models/request_models"
	"greenway/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAccount(t *testing.T, repo *fakeAccountRepo, username, password string, score int) *db_models.Account {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	account := &db_models.Account{
		Name:         "Test User",
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		GreenScore:   score,
	}
	repo.add(account)
	return account
}

func TestLogin(t *testing.T) {
	repo := newFakeAccountRepo()
	seedAccount(t, repo, "vibhas", "secret123", 756)
	svc := NewAccountService(repo)

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Login(request_models.LoginRequest{Username: "vibhas", Password: "secret123"}, context.Background())

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "vibhas", resp.Account.Username)
		assert.Equal(t, 756, resp.Account.GreenScore)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(request_models.LoginRequest{Username: "vibhas", Password: "nope"}, context.Background())
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(request_models.LoginRequest{Username: "ghost", Password: "secret123"}, context.Background())
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})
}

func TestLoginRepositoryFailure(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.failWith = errFakeRepo
	svc := NewAccountService(repo)

	_, err := svc.Login(request_models.LoginRequest{Username: "vibhas", Password: "x"}, context.Background())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestGetProfile(t *testing.T) {
	repo := newFakeAccountRepo()
	account := seedAccount(t, repo, "hemanth", "secret123", 892)
	svc := NewAccountService(repo)

	resp, err := svc.GetProfile(context.Background(), account.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "hemanth", resp.Username)

	_, err = svc.GetProfile(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestEarnGreenPoints(t *testing.T) {
	repo := newFakeAccountRepo()
	account := seedAccount(t, repo, "sowmya", "secret123", 621)
	svc := NewAccountService(repo)

	resp, err := svc.EarnGreenPoints(context.Background(), account.ID.String(), request_models.EarnGreenPointsRequest{Points: 30, Reason: "cycled to work"})
	require.NoError(t, err)
	assert.Equal(t, 651, resp.GreenScore)

	_, err = svc.EarnGreenPoints(context.Background(), account.ID.String(), request_models.EarnGreenPointsRequest{Points: 0})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
