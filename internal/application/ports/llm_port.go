package ports

import "context"

// LLMService define a porta de saída para o serviço externo de geração de texto.
// Qualquer adaptador (Gemini, OpenAI, mock) deve implementar esta interface; a
// aplicação só conhece este contrato, não a implementação concreta.
type LLMService interface {
	// GenerateContent envia o prompt e devolve o texto livre gerado.
	// O contexto deve levar um timeout para evitar bloqueios em chamadas externas.
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
