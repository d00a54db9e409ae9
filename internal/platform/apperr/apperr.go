// Package apperr define la taxonomía de errores que cruza dominio, adapters y HTTP.
//
// Cada error de aplicación lleva un Kind. Los handlers solo miran el Kind para
// decidir el status HTTP; los servicios nunca descartan un error de store, lo
// etiquetan con Classify y lo propagan.
package apperr

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"sort"
	"strings"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindTransient  Kind = "transient"
	KindInternal   Kind = "internal"
)

// Sentinels por kind: errors.Is(err, apperr.ErrNotFound) es true para
// cualquier *Error de ese kind en la cadena.
var (
	ErrValidation = &Error{Kind: KindValidation, Message: "validation failed", kindOnly: true}
	ErrNotFound   = &Error{Kind: KindNotFound, Message: "not found", kindOnly: true}
	ErrConflict   = &Error{Kind: KindConflict, Message: "conflict", kindOnly: true}
	ErrTransient  = &Error{Kind: KindTransient, Message: "temporarily unavailable", kindOnly: true}
)

type Error struct {
	Kind    Kind
	Op      string
	Message string
	Fields  map[string]string
	Err     error

	kindOnly bool
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// WithField devuelve una copia con el detalle de campo agregado.
func (e *Error) WithField(field, reason string) *Error {
	cp := *e
	cp.kindOnly = false
	cp.Fields = make(map[string]string, len(e.Fields)+1)
	for k, v := range e.Fields {
		cp.Fields[k] = v
	}
	cp.Fields[field] = reason
	return &cp
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	if e.Message != "" {
		b.WriteString(e.Message)
	} else {
		b.WriteString(string(e.Kind))
	}
	if e.Err != nil && e.Err.Error() != e.Message {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+e.Fields[k])
		}
		b.WriteString(" (")
		b.WriteString(strings.Join(parts, "; "))
		b.WriteString(")")
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || !t.kindOnly {
		return false
	}
	return t.Kind == e.Kind
}

// Transient marca err como reintentable (timeout, cancelación, conexión caída).
func Transient(op string, err error) *Error {
	return &Error{Kind: KindTransient, Op: op, Message: "temporarily unavailable", Err: err}
}

func Internal(op string, err error) *Error {
	return &Error{Kind: KindInternal, Op: op, Message: "internal error", Err: err}
}

// Classify etiqueta un error de infraestructura. Los *Error ya tipados pasan sin cambios.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	if IsTransientCause(err) {
		return Transient(op, err)
	}
	return Internal(op, err)
}

// IsTransientCause reporta si err viene de un timeout, cancelación o conexión inválida.
func IsTransientCause(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// KindOf devuelve el kind del primer *Error de la cadena; internal si no hay ninguno.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// FieldsOf junta el detalle por campo de toda la cadena.
func FieldsOf(err error) map[string]string {
	out := map[string]string{}
	for err != nil {
		if ae, ok := err.(*Error); ok {
			for k, v := range ae.Fields {
				if _, exists := out[k]; !exists {
					out[k] = v
				}
			}
		}
		err = errors.Unwrap(err)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// FieldErrors acumula errores de validación por campo.
type FieldErrors map[string]string

func (f FieldErrors) Add(field, reason string) {
	if _, exists := f[field]; exists {
		return
	}
	f[field] = reason
}

// Merge copia los campos de err (si es de validación) y reporta si lo absorbió.
func (f FieldErrors) Merge(err error) bool {
	if err == nil || KindOf(err) != KindValidation {
		return false
	}
	for k, v := range FieldsOf(err) {
		f.Add(k, v)
	}
	return true
}

// Err devuelve nil si no hay campos. cause queda en la cadena para errors.Is.
func (f FieldErrors) Err(op string, cause error) error {
	if len(f) == 0 {
		return nil
	}
	fields := make(map[string]string, len(f))
	for k, v := range f {
		fields[k] = v
	}
	return &Error{Kind: KindValidation, Op: op, Message: "validation failed", Fields: fields, Err: cause}
}
