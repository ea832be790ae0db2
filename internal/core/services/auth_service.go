package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/askelio/askelio-backend/internal/core/domain"
	portssvc "github.com/askelio/askelio-backend/internal/core/ports/services"
	"github.com/askelio/askelio-backend/internal/dto"
	"github.com/askelio/askelio-backend/internal/platform/config"
	"github.com/askelio/askelio-backend/internal/utils"
)

type authService struct {
	BaseService
	cfg        *config.Config
	userSvc    portssvc.UserSvcFacade
	accountSvc portssvc.AccountSvcFacade
	creditSvc  portssvc.CreditLedgerSvc
}

// NewAuthService creates the registration and login service.
func NewAuthService(cfg *config.Config, userSvc portssvc.UserSvcFacade, accountSvc portssvc.AccountSvcFacade, creditSvc portssvc.CreditLedgerSvc) portssvc.AuthSvcFacade {
	return &authService{
		cfg:        cfg,
		userSvc:    userSvc,
		accountSvc: accountSvc,
		creditSvc:  creditSvc,
	}
}

// Register creates the user, opens their personal credit account and applies
// the signup bonus when configured, then issues a token.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	user, err := s.userSvc.CreateUser(ctx, dto.CreateUserRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	account, err := s.accountSvc.CreateAccount(ctx, dto.CreateAccountRequest{
		OwnerType: domain.OwnerUser,
		OwnerID:   user.UserID,
		Name:      user.Name,
	}, user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to open personal account during registration",
			slog.String("user_id", user.UserID))
		return nil, err
	}

	if s.cfg.SignupBonusCredits.IsPositive() {
		_, err = s.creditSvc.AppendTransaction(ctx, dto.AppendTransactionRequest{
			AccountID:   account.AccountID,
			Amount:      s.cfg.SignupBonusCredits,
			Kind:        domain.KindBonus,
			Description: "Signup bonus",
			Category:    "signup",
		}, user.UserID)
		if err != nil {
			// The user and account exist; a failed bonus should not fail
			// registration.
			s.LogError(ctx, err, "Failed to apply signup bonus",
				slog.String("account_id", account.AccountID))
		}
	}

	return s.issueToken(user)
}

// Login verifies credentials and issues a JWT.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userSvc.AuthenticateUser(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return s.issueToken(user)
}

func (s *authService) issueToken(user *domain.User) (*dto.AuthResponse, error) {
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &dto.AuthResponse{
		AccessToken: token,
		ExpiresAt:   time.Now().Add(s.cfg.JWTExpiryDuration),
		User:        dto.ToUserResponse(user),
	}, nil
}
