package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"flashlearn/internal/models/db_models"
	"flashlearn/internal/models/request_models"
	"flashlearn/internal/models/response_models"
	"flashlearn/internal/repositories"
	"flashlearn/pkg/utils"
)

type AccountServiceInterface interface {
	SignUp(ctx context.Context, req request_models.SignUpRequest) error
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
	GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.AccountResponse, error)
}

type accountService struct {
	accountRepo repositories.AccountRepository
	subSvc      SubscriptionServiceInterface
}

func NewAccountService(accountRepo repositories.AccountRepository, subSvc SubscriptionServiceInterface) AccountServiceInterface {
	return &accountService{accountRepo: accountRepo, subSvc: subSvc}
}

func (a *accountService) SignUp(ctx context.Context, req request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	existing, err = a.accountRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return fmt.Errorf("%w: username already taken", utils.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("signup: hash password: %v", err)
		return utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *accountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		log.Printf("login: create token: %v", err)
		return nil, utils.ErrDatabaseError
	}

	premium, err := a.subSvc.IsActive(ctx, account.ID, time.Now())
	if err != nil {
		// Login still succeeds; premium just reads as false.
		log.Printf("login: subscription lookup for %s: %v", account.ID, err)
		premium = false
	}

	return &response_models.LoginResponse{
		Token:     token,
		IsPremium: premium,
	}, nil
}

func (a *accountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	premium, err := a.subSvc.IsActive(ctx, account.ID, time.Now())
	if err != nil {
		premium = false
	}

	return &response_models.AccountResponse{
		ID:        account.ID.String(),
		Username:  account.Username,
		Email:     account.Email,
		IsPremium: premium,
		CreatedAt: utils.FormatRFC3339UTC(utils.FromUnixSecondsUTC(account.CreatedAt)),
	}, nil
}
