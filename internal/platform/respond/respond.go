// Package respond concentra la escritura de respuestas JSON de los handlers.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-care-scheduler/internal/platform/apperr"

	"github.com/rs/zerolog"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Kind    apperr.Kind       `json:"kind"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Unauthorized(w http.ResponseWriter) {
	JSON(w, http.StatusUnauthorized, errorBody{Error: errorDetail{Kind: "unauthorized", Message: "unauthorized"}})
}

// BadRequest para errores de decodificación previos al dominio (json inválido, query params).
func BadRequest(w http.ResponseWriter, msg string, fields map[string]string) {
	JSON(w, http.StatusBadRequest, errorBody{Error: errorDetail{Kind: apperr.KindValidation, Message: msg, Fields: fields}})
}

func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindTransient:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error traduce err a status + body. 5xx no exponen la causa, solo se loguea.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)
	status := StatusFor(kind)

	detail := errorDetail{Kind: kind}
	switch kind {
	case apperr.KindInternal:
		detail.Message = "internal error"
	case apperr.KindTransient:
		detail.Message = "temporarily unavailable, retry later"
		w.Header().Set("Retry-After", "1")
	default:
		detail.Message = publicMessage(err)
		detail.Fields = apperr.FieldsOf(err)
	}

	if status >= http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("kind", string(kind)).Msg("request failed")
	}

	JSON(w, status, errorBody{Error: detail})
}

// publicMessage devuelve el mensaje del primer *apperr.Error de la cadena, sin op ni causa.
func publicMessage(err error) string {
	var ae *apperr.Error
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return string(apperr.KindOf(err))
}
