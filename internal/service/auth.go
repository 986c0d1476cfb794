package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"handmeup-backend/internal/domain"
	"handmeup-backend/internal/repository"
	"handmeup-backend/internal/security"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

type authService struct {
	accountRepo repository.AccountRepository
	tokens      security.TokenManager
}

func NewAuthService(accountRepo repository.AccountRepository, tokens security.TokenManager) AuthService {
	return &authService{
		accountRepo: accountRepo,
		tokens:      tokens,
	}
}

func (s *authService) SignUp(ctx context.Context, email, password, displayName string) (*domain.Account, string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", "", ErrValidation
	}

	if existing, err := s.accountRepo.GetAccountByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	account := &domain.Account{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: string(hash),
		CreatedOn:    now,
		UpdatedOn:    now,
	}

	if err := s.accountRepo.CreateAccount(ctx, account); err != nil {
		return nil, "", "", err
	}

	// A fresh account gets a profile row immediately so lookups by other
	// users never come back empty.
	profile := &domain.Profile{
		UserID:      account.ID,
		DisplayName: displayName,
	}
	if err := s.accountRepo.UpsertProfile(ctx, profile); err != nil {
		return nil, "", "", err
	}

	access, refresh, err := s.generateTokens(account)
	return account, access, refresh, err
}

func (s *authService) SignIn(ctx context.Context, email, password string) (*domain.Account, string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	account, err := s.accountRepo.GetAccountByEmail(ctx, email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	access, refresh, err := s.generateTokens(account)
	return account, access, refresh, err
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil {
		return "", "", err
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", security.ErrWrongTokenType
	}

	account, err := s.accountRepo.GetAccountByID(ctx, claims.AccountID)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}

	return s.generateTokens(account)
}

func (s *authService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, ErrNotFound
	}
	return account, nil
}

func (s *authService) generateTokens(account *domain.Account) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(account.ID, account.Email)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(account.ID, account.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
