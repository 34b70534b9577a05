package dto

// RegisterRequest corpo do POST /api/register. Cria usuário + farmácia em uma
// única operação. Os nomes de campo seguem o contrato do front-end FarmaTech.
type RegisterRequest struct {
	Email           string `json:"email"`
	Senha           string `json:"senha"`
	FarmaciaName    string `json:"farmaciaName"`
	ResponsavelName string `json:"responsavelName"`
	Telefone        string `json:"telefone"`
}

// LoginRequest corpo do POST /api/login e POST /api/token (username é o e-mail).
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest corpo do POST /api/token/refresh.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// AuthUser bloco "user" das respostas de auth.
type AuthUser struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FarmaciaID string `json:"farmacia_id,omitempty"`
}

// AuthResponse resposta de registro/login com o par de tokens.
type AuthResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	User    AuthUser `json:"user"`
	Access  string   `json:"access"`
	Refresh string   `json:"refresh"`
}

// TokenPairResponse resposta do POST /api/token.
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenRefreshResponse resposta do POST /api/token/refresh.
type TokenRefreshResponse struct {
	Access string `json:"access"`
}
