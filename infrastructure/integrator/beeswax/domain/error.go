package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Erros sentinela do cliente
var (
	ErrMissingAPIRoot     = errors.New("a URL raiz da API é obrigatória")
	ErrMissingCredentials = errors.New("email e senha são obrigatórios")
	ErrEmptyBody          = errors.New("o corpo da requisição não pode ser vazio")
	ErrNotFound           = errors.New("registro não encontrado")
	ErrUnauthorized       = errors.New("sessão expirada ou credenciais inválidas")
	ErrWritesDisabled     = errors.New("recurso descontinuado: apenas leitura é permitida")
)

// AuthenticationError representa uma falha de autenticação junto à API
// remota, carregando o status e o corpo retornados pelo login.
type AuthenticationError struct {
	StatusCode int
	Body       string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("falha na autenticação. Status: %d, Corpo: %s", e.StatusCode, e.Body)
}

// Unwrap permite errors.Is(err, ErrUnauthorized)
func (e *AuthenticationError) Unwrap() error {
	return ErrUnauthorized
}

// RequestError representa uma resposta da API cujo envelope declarou
// falha lógica (success=false), mesmo quando o status HTTP foi 200.
type RequestError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("requisição rejeitada pela API. Status: %d, Mensagem: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("requisição rejeitada pela API. Status: %d, Corpo: %s", e.StatusCode, e.Body)
}

// IsNotFoundMessage verifica se a mensagem da API indica que o objeto
// alvo de uma mutação não existe no sistema remoto.
func IsNotFoundMessage(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "not found") ||
		strings.Contains(lower, "could not load") ||
		strings.Contains(lower, "does not exist")
}
