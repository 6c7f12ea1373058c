package domain

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/mitchellh/mapstructure"
)

// Record representa um registro genérico retornado pela API remota.
// Os campos conhecidos de cada entidade são decodificados para structs
// tipadas via Decode; campos desconhecidos permanecem acessíveis no mapa.
type Record = map[string]interface{}

// Response é o envelope padrão de todas as respostas da API:
// um sinal lógico de sucesso sobreposto ao status HTTP.
type Response struct {
	Success bool     `json:"success"`
	Payload []Record `json:"payload,omitempty"`
	Message string   `json:"message,omitempty"`
	Code    int      `json:"code,omitempty"`
}

// UnmarshalJSON aceita payload como lista de registros ou como objeto
// único: alguns endpoints de criação devolvem apenas o objeto criado.
func (r *Response) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Success bool            `json:"success"`
		Payload json.RawMessage `json:"payload"`
		Message string          `json:"message"`
		Code    int             `json:"code"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	r.Success = envelope.Success
	r.Message = envelope.Message
	r.Code = envelope.Code
	r.Payload = nil

	payload := bytes.TrimSpace(envelope.Payload)
	if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
		return nil
	}

	if payload[0] == '[' {
		return json.Unmarshal(payload, &r.Payload)
	}

	var single Record
	if err := json.Unmarshal(payload, &single); err != nil {
		return err
	}
	r.Payload = []Record{single}
	return nil
}

// First retorna o primeiro registro do payload, ou nil se vazio.
func (r *Response) First() Record {
	if r == nil || len(r.Payload) == 0 {
		return nil
	}
	return r.Payload[0]
}

// Failure cria uma resposta estruturada de falha com código e mensagem.
func Failure(code int, message string) *Response {
	return &Response{
		Success: false,
		Code:    code,
		Message: message,
	}
}

// NotFound cria a resposta estruturada usada quando um registro não existe.
func NotFound(message string) *Response {
	return Failure(http.StatusNotFound, message)
}

// Decode converte um Record em uma struct tipada de entidade. Campos que
// não fazem parte do esquema conhecido são acumulados no campo marcado
// com `mapstructure:",remain"` de cada entidade.
func Decode(rec Record, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(rec)
}
