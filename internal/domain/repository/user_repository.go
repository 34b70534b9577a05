package repository

import "github.com/farmatech/api/internal/domain/entity"

// UserRepository porta de persistência para usuários (identidade).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// FindByEmail devolve nil, nil quando o e-mail não existe.
	FindByEmail(email string) (*entity.User, error)
}
