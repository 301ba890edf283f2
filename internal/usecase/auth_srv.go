package usecase

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/data/entity"
	"marketplace/internal/data/repository"
	"marketplace/internal/dto/request"
	"marketplace/internal/dto/response"
	"marketplace/pkg/apperr"
	"marketplace/pkg/security"
	"marketplace/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	Me(ctx context.Context, identity utils.Identity) (*response.UserResponse, error)
}

type authService struct {
	users  repository.UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
	log    *zap.Logger
}

func NewAuthService(
	users repository.UserRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	log *zap.Logger,
) AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Register validation failed", zap.Error(err))
		return nil, err
	}

	// bcrypt refuses longer input; len counts bytes, not runes
	if len(req.Password) > security.MaxPasswordBytes {
		s.log.Warn("Register password too long", zap.Int("bytes", len(req.Password)))
		return nil, apperr.ErrInvalidInput.WithMessage(
			fmt.Sprintf("validation failed: password: Maximum length is %d bytes", security.MaxPasswordBytes))
	}

	existing, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.log.Warn("Username already taken", zap.String("username", req.Username))
		return nil, apperr.ErrUsernameTaken
	}

	digest, err := s.hasher.Hash(ctx, req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	// isSeller is taken from the request as-is
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.NewString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: digest,
		Img:          req.Img,
		Country:      req.Country,
		Phone:        req.Phone,
		Desc:         req.Desc,
		IsSeller:     req.IsSeller,
	}

	// the unique index still catches a concurrent registration
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
		zap.Bool("is_seller", user.IsSeller),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperr.ErrCredentialsRequired
	}

	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.log.Warn("Login for unknown user", zap.String("username", req.Username))
		return nil, apperr.ErrUserNotFound
	}

	ok, err := s.hasher.Verify(ctx, req.Password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.log.Warn("Wrong password", zap.String("user_id", user.ID))
		return nil, apperr.ErrBadCredentials
	}

	token, err := s.tokens.Issue(security.Claims{UserID: user.ID, IsSeller: user.IsSeller})
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID))
		return nil, err
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
	)

	return &response.LoginResponse{
		Token: token,
		Info:  response.UserToResponse(user),
	}, nil
}

func (s *authService) Me(ctx context.Context, identity utils.Identity) (*response.UserResponse, error) {
	user, err := s.users.FindByID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrUserNotFound
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}
