package dto

import "time"

// UpdateFarmaciaRequest dados editáveis do perfil da farmácia.
type UpdateFarmaciaRequest struct {
	Nome        string `json:"nome"`
	Responsavel string `json:"responsavel"`
	Telefone    string `json:"telefone"`
	Endereco    string `json:"endereco"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
	CEP         string `json:"cep"`
}

// FarmaciaResponse saída de uma farmácia.
type FarmaciaResponse struct {
	ID          string    `json:"id"`
	Nome        string    `json:"nome"`
	Responsavel string    `json:"responsavel"`
	Telefone    string    `json:"telefone"`
	Endereco    string    `json:"endereco,omitempty"`
	Cidade      string    `json:"cidade,omitempty"`
	Estado      string    `json:"estado,omitempty"`
	CEP         string    `json:"cep,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FarmaciaListResponse lista de farmácias (sempre apenas a do caller).
type FarmaciaListResponse struct {
	Items []FarmaciaResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
