package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/farmatech/api/internal/application/dto"
	"github.com/farmatech/api/internal/domain"
	"github.com/farmatech/api/internal/domain/entity"
	"github.com/farmatech/api/internal/domain/repository"
	"github.com/farmatech/api/pkg/jwt"
)

// JWTConfig configuração para emissão de tokens.
type JWTConfig struct {
	Secret       string
	AccessMin    int
	RefreshHours int
	Issuer       string
}

// AuthUseCase casos de uso de autenticação: registro, login e emissão de tokens.
// A identidade é uma fronteira opaca para o resto do sistema; daqui para dentro
// só circula o par (userID, farmaciaID) dentro dos claims.
type AuthUseCase struct {
	txRunner     TxRunner
	userRepo     repository.UserRepository
	farmaciaRepo repository.FarmaciaRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(txRunner TxRunner, userRepo repository.UserRepository, farmaciaRepo repository.FarmaciaRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{txRunner: txRunner, userRepo: userRepo, farmaciaRepo: farmaciaRepo, jwtCfg: jwtCfg}
}

// Register cria usuário (bcrypt) e farmácia na mesma transação e devolve o par de tokens.
// Devolve ErrEmailAlreadyExists se o e-mail já estiver em uso.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if in.Email == "" || in.Senha == "" || in.FarmaciaName == "" || in.ResponsavelName == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	farmacia := &entity.Farmacia{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		Nome:        in.FarmaciaName,
		Responsavel: in.ResponsavelName,
		Telefone:    in.Telefone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.txRunner.RunRegistro(ctx, func(
		userRepo repository.UserRepository,
		farmaciaRepo repository.FarmaciaRepository,
	) error {
		if err := userRepo.Create(user); err != nil {
			return err
		}
		return farmaciaRepo.Create(farmacia)
	})
	if err != nil {
		return nil, err
	}

	pair, err := jwt.GeneratePair(uc.jwtCfg.Secret, user.ID, farmacia.ID, uc.jwtCfg.Issuer, uc.jwtCfg.AccessMin, uc.jwtCfg.RefreshHours)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Success: true,
		Message: "Usuário e Farmácia registrados com sucesso!",
		User: dto.AuthUser{
			ID:         user.ID,
			Username:   user.Email,
			Email:      user.Email,
			FarmaciaID: farmacia.ID,
		},
		Access:  pair.Access,
		Refresh: pair.Refresh,
	}, nil
}

// Login verifica e-mail/senha, resolve a farmácia (pode não existir) e emite o par de tokens.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, pair, farmaciaID, err := uc.authenticate(in)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Success: true,
		Message: "Login realizado com sucesso!",
		User: dto.AuthUser{
			ID:         user.ID,
			Username:   user.Email,
			Email:      user.Email,
			FarmaciaID: farmaciaID,
		},
		Access:  pair.Access,
		Refresh: pair.Refresh,
	}, nil
}

// TokenPair emite apenas o par access/refresh (rota /api/token).
func (uc *AuthUseCase) TokenPair(in dto.LoginRequest) (*dto.TokenPairResponse, error) {
	_, pair, _, err := uc.authenticate(in)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairResponse{Access: pair.Access, Refresh: pair.Refresh}, nil
}

// Refresh valida um refresh token e emite um novo access com os mesmos claims.
func (uc *AuthUseCase) Refresh(in dto.RefreshRequest) (*dto.TokenRefreshResponse, error) {
	if in.Refresh == "" {
		return nil, domain.ErrInvalidInput
	}
	claims, err := jwt.ParseRefresh(uc.jwtCfg.Secret, in.Refresh)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	pair, err := jwt.GeneratePair(uc.jwtCfg.Secret, claims.UserID, claims.FarmaciaID, uc.jwtCfg.Issuer, uc.jwtCfg.AccessMin, uc.jwtCfg.RefreshHours)
	if err != nil {
		return nil, err
	}
	return &dto.TokenRefreshResponse{Access: pair.Access}, nil
}

// authenticate valida credenciais e devolve usuário, par de tokens e farmácia resolvida.
func (uc *AuthUseCase) authenticate(in dto.LoginRequest) (*entity.User, *jwt.Pair, string, error) {
	if in.Username == "" || in.Password == "" {
		return nil, nil, "", domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByEmail(in.Username)
	if err != nil {
		return nil, nil, "", err
	}
	if user == nil {
		return nil, nil, "", domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, nil, "", domain.ErrUnauthorized
	}
	farmaciaID := ""
	if farmacia, err := uc.farmaciaRepo.GetByUserID(user.ID); err == nil && farmacia != nil {
		farmaciaID = farmacia.ID
	}
	pair, err := jwt.GeneratePair(uc.jwtCfg.Secret, user.ID, farmaciaID, uc.jwtCfg.Issuer, uc.jwtCfg.AccessMin, uc.jwtCfg.RefreshHours)
	if err != nil {
		return nil, nil, "", err
	}
	return user, pair, farmaciaID, nil
}
