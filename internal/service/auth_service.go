package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"signup-api/internal/domain"
	"signup-api/internal/repository"
	"signup-api/internal/security"
)

// AuthError es una falla de autenticacion visible para el usuario. El detalle
// de credenciales incorrectas es deliberadamente generico: nunca revela si
// fallo el nombre o el password.
type AuthError struct {
	Detail string
}

func (e *AuthError) Error() string {
	return e.Detail
}

var (
	ErrIncorrectCredentials = &AuthError{Detail: "Incorrect email or password"}
	ErrAccountNotActive     = &AuthError{Detail: "Account is not active"}
)

// SignUp es el request de registro de una cuenta nueva.
type SignUp struct {
	Name        string
	Age         int
	PhoneNumber string
	Password    string
	Email       string
	Address     *string
}

// SignIn es el request de autenticacion por credenciales.
type SignIn struct {
	Name     string
	Password string
}

// SignInResult envuelve la vista redactada del usuario autenticado. Los campos
// de token quedan reservados para una capa de identidad externa y este
// servicio nunca los llena.
type SignInResult struct {
	AccessToken string            `json:"access_token,omitempty"`
	Expiration  string            `json:"expiration,omitempty"`
	UserInfo    domain.PublicUser `json:"user_info"`
}

// AuthService orquesta sign-up y sign-in sobre el repositorio de usuarios.
// No guarda estado propio: cada llamada es stateless dado el contenido del
// repositorio.
type AuthService struct {
	logger *zap.Logger
	users  repository.UserRepository
}

func NewAuthService(logger *zap.Logger, users repository.UserRepository) *AuthService {
	return &AuthService{
		logger: logger,
		users:  users,
	}
}

// SignUp crea un usuario nuevo: token opaco, hash del password y persistencia.
// Errores de persistencia se propagan sin cambios, sin reintentos.
func (s *AuthService) SignUp(ctx context.Context, input SignUp) (domain.PublicUser, error) {
	token, err := security.NewUserToken()
	if err != nil {
		return domain.PublicUser{}, err
	}
	digest, err := security.HashPassword(input.Password)
	if err != nil {
		return domain.PublicUser{}, err
	}

	user := domain.User{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Age:         input.Age,
		Password:    digest,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		Address:     input.Address,
		IsActive:    true,
		IsSuperuser: false,
		UserToken:   token,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return domain.PublicUser{}, err
	}

	s.logger.Info("user signed up", zap.String("user_id", created.ID))
	return created.Public(), nil
}

// SignIn verifica credenciales y devuelve la vista redactada bajo user_info.
func (s *AuthService) SignIn(ctx context.Context, input SignIn) (SignInResult, error) {
	user, err := s.authenticate(ctx, input.Name, input.Password)
	if err != nil {
		return SignInResult{}, err
	}
	return SignInResult{UserInfo: user}, nil
}

// CheckUserAuthenticate aplica los mismos chequeos que SignIn pero devuelve el
// usuario directamente, para colaboradores que solo necesitan la verificacion.
func (s *AuthService) CheckUserAuthenticate(ctx context.Context, name, password string) (domain.PublicUser, error) {
	return s.authenticate(ctx, name, password)
}

func (s *AuthService) authenticate(ctx context.Context, name, password string) (domain.PublicUser, error) {
	found, err := s.users.FindByOptions(ctx, domain.FindUser{Name: &name})
	if err != nil {
		return domain.PublicUser{}, err
	}
	if len(found) < 1 {
		return domain.PublicUser{}, ErrIncorrectCredentials
	}
	user := found[0]
	if !user.IsActive {
		return domain.PublicUser{}, ErrAccountNotActive
	}
	if !security.CheckPassword(password, user.Password) {
		return domain.PublicUser{}, ErrIncorrectCredentials
	}
	return user.Public(), nil
}
