package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound             = errors.New("recurso não encontrado")
	ErrFarmaciaNotFound     = errors.New("farmácia do usuário não encontrada")
	ErrUserNotFound         = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists   = errors.New("o e-mail já está registrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrUnauthorized         = errors.New("não autorizado")
	ErrInsufficientStock    = errors.New("quantidade insuficiente em estoque")
	ErrMedicamentoProtegido = errors.New("medicamento referenciado por itens de venda")
	ErrUpstreamAI           = errors.New("falha no serviço externo de geração de texto")
)
