package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/lojavirtual-backend/internal/users"
	pkgAuth "github.com/angelmondragon/lojavirtual-backend/pkg/auth"
	"github.com/angelmondragon/lojavirtual-backend/pkg/config"
	"github.com/angelmondragon/lojavirtual-backend/pkg/db"
	"github.com/angelmondragon/lojavirtual-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/lojavirtual-backend/pkg/errors"
	"github.com/angelmondragon/lojavirtual-backend/pkg/logger"
	"github.com/angelmondragon/lojavirtual-backend/pkg/security"
	"gorm.io/gorm"
)

const (
	MsgRegisterFieldsRequired = "Por favor, preencha todos os campos."
	MsgEmailTaken             = "Este email já está em uso."
	MsgLoginFieldsRequired    = "Email e senha são obrigatórios."
	MsgUserNotFound           = "Usuário não encontrado."
	MsgInvalidPassword        = "Senha inválida."
	MsgMissingToken           = "Acesso negado. Nenhum token fornecido."
	MsgInvalidToken           = "Token inválido."
)

// Service registers users, authenticates them and resolves bearer tokens.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*users.UserDTO, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Verify(ctx context.Context, token string) (int64, error)
}

type userRepository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
}

type service struct {
	users       userRepository
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
	logg        *logger.Logger
	now         func() time.Time
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	UserRepo       userRepository
	JWTConfig      config.JWTConfig
	PasswordConfig config.PasswordConfig
	Logger         *logger.Logger
	Now            func() time.Time
}

// NewService constructs an auth service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if params.JWTConfig.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		users:       params.UserRepo,
		jwtCfg:      params.JWTConfig,
		passwordCfg: params.PasswordConfig,
		logg:        logg,
		now:         now,
	}, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*users.UserDTO, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, MsgRegisterFieldsRequired)
	}

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao registrar usuário.")
	}
	if exists {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, MsgEmailTaken)
	}

	hash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao registrar usuário.")
	}

	user, err := s.users.Create(ctx, users.CreateUserDTO{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		// lost a race with a concurrent registration of the same email
		if db.IsUniqueViolation(err, "usuarios_email_key") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, MsgEmailTaken)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao registrar usuário.")
	}

	return users.FromModel(user), nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, MsgLoginFieldsRequired)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, MsgUserNotFound)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao fazer login.")
	}

	valid, err := security.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao fazer login.")
	}
	if !valid {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, MsgInvalidPassword)
	}

	if security.NeedsRehash(user.PasswordHash) {
		s.upgradeHash(ctx, user.ID, req.Password)
	}

	token, err := pkgAuth.MintAccessToken(s.jwtCfg, s.now().UTC(), user.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "Erro ao fazer login.")
	}

	return &LoginResponse{
		User:  users.FromModel(user),
		Token: token,
	}, nil
}

func (s *service) Verify(ctx context.Context, token string) (int64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, pkgerrors.New(pkgerrors.CodeUnauthorized, MsgMissingToken)
	}
	claims, err := pkgAuth.ParseAccessToken(s.jwtCfg, token)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, MsgInvalidToken)
	}
	return claims.UserID, nil
}

// upgradeHash re-hashes a legacy bcrypt password with Argon2id. Failure only
// delays the upgrade to the next login.
func (s *service) upgradeHash(ctx context.Context, userID int64, password string) {
	hash, err := security.HashPassword(password, s.passwordCfg)
	if err == nil {
		err = s.users.UpdatePasswordHash(ctx, userID, hash)
	}
	if err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "user_id", userID), fmt.Sprintf("password rehash failed: %v", err))
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
