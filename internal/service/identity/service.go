package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/auth"
	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/lifecycle"
	"freight-matching-platform/internal/logx"
)

// Session is the result of a successful login.
type Session struct {
	Token     auth.Token
	User      domain.User
	CarrierID int64
	DriverID  int64
}

// Service registers accounts and issues, validates and revokes access tokens.
type Service struct {
	repo             userRepository
	tokens           *auth.JWTService
	blacklist        auth.Blacklist
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates an identity Service.
func NewService(r userRepository, tokens *auth.JWTService, blacklist auth.Blacklist, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if blacklist == nil {
		blacklist = auth.NewMemoryBlacklist()
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             r,
		tokens:           tokens,
		blacklist:        blacklist,
		operationTimeout: timeout,
		logger:           logger,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Register signs up a carrier or driver. Admin accounts are created through RegisterAs.
func (s *Service) Register(ctx context.Context, r domain.Registration) (domain.User, error) {
	if r.Role == domain.RoleAdmin {
		return domain.User{}, invalid("admin accounts cannot be self-registered")
	}
	return s.register(ctx, r)
}

// RegisterAs creates an account of any role on behalf of an administrator.
func (s *Service) RegisterAs(ctx context.Context, actor lifecycle.Actor, r domain.Registration) (domain.User, error) {
	if err := lifecycle.Authorize(actor, lifecycle.Platform(), lifecycle.ActionAdminister); err != nil {
		return domain.User{}, err
	}
	return s.register(ctx, r)
}

func (s *Service) register(ctx context.Context, r domain.Registration) (domain.User, error) {
	normalize(&r)
	if err := validateRegistration(r); err != nil {
		return domain.User{}, err
	}

	hash, err := auth.HashPassword(r.Password)
	if err != nil {
		return domain.User{}, err
	}
	u := domain.User{
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: hash,
		FullName:     r.FullName,
		Role:         r.Role,
		Phone:        r.Phone,
		IsActive:     true,
	}
	carrier, driver := profiles(u, r)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.Register(ctx, &u, carrier, driver); err != nil {
		return domain.User{}, err
	}

	s.logger.Info("user registered",
		logx.String("event", "user_registered"),
		logx.Int64("user_id", u.ID),
		logx.String("role", string(u.Role)),
	)
	return u, nil
}

var errBadCredentials = fmt.Errorf("%w: invalid username or password", apperr.Unauthenticated)

// Login checks the credentials and issues an access token.
func (s *Service) Login(ctx context.Context, username, password string) (Session, error) {
	if username == "" || password == "" {
		return Session{}, fmt.Errorf("%w: username and password are required", apperr.Invalid)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return Session{}, err
	}
	if u == nil || !auth.CheckPassword(u.PasswordHash, password) {
		s.logger.Warn("login failed",
			logx.String("event", "login_failed"),
			logx.String("username", username),
		)
		return Session{}, errBadCredentials
	}
	if !u.IsActive {
		return Session{}, fmt.Errorf("%w: account is disabled", apperr.Unauthenticated)
	}

	carrierID, driverID, err := s.repo.Profile(ctx, u.ID)
	if err != nil {
		return Session{}, err
	}
	tok, err := s.tokens.Issue(auth.Subject{
		UserID:    u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CarrierID: carrierID,
		DriverID:  driverID,
	})
	if err != nil {
		return Session{}, err
	}

	s.logger.Info("user logged in",
		logx.String("event", "login"),
		logx.Int64("user_id", u.ID),
		logx.String("role", string(u.Role)),
	)
	return Session{Token: tok, User: *u, CarrierID: carrierID, DriverID: driverID}, nil
}

// Authenticate resolves the actor behind an access token.
func (s *Service) Authenticate(ctx context.Context, token string) (lifecycle.Actor, *auth.Claims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return lifecycle.Actor{}, nil, fmt.Errorf("%w: %w", apperr.Unauthenticated, err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return lifecycle.Actor{}, nil, err
	}
	if revoked {
		return lifecycle.Actor{}, nil, fmt.Errorf("%w: %w", apperr.Unauthenticated, auth.ErrRevokedToken)
	}

	return lifecycle.Actor{
		Role:      claims.Role,
		UserID:    claims.UserID(),
		CarrierID: claims.CarrierID,
		DriverID:  claims.DriverID,
	}, claims, nil
}

// Logout revokes the token until it would have expired anyway.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil
		}
		return fmt.Errorf("%w: %w", apperr.Unauthenticated, err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.blacklist.Revoke(ctx, claims.ID, s.tokens.Remaining(claims)); err != nil {
		return err
	}
	s.logger.Info("user logged out",
		logx.String("event", "logout"),
		logx.Int64("user_id", claims.UserID()),
	)
	return nil
}
