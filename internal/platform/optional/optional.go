// Package optional modela campos de PATCH donde hay que distinguir
// "no enviado" de "enviado como null".
package optional

import (
	"encoding/json"
	"fmt"
)

// Set: Present=false => no tocar. Present=true, Value=nil => limpiar.
type Set[T any] struct {
	Present bool
	Value   *T
}

func Value[T any](v T) Set[T] { return Set[T]{Present: true, Value: &v} }
func Null[T any]() Set[T]     { return Set[T]{Present: true} }

// Apply copia el valor en *dst si el campo vino en el patch.
func (s Set[T]) Apply(dst **T) {
	if !s.Present {
		return
	}
	if s.Value == nil {
		*dst = nil
		return
	}
	v := *s.Value
	*dst = &v
}

// FromJSON decodifica un valor crudo de un body PATCH (la clave estaba presente).
func FromJSON[T any](raw json.RawMessage, key string) (Set[T], error) {
	if string(raw) == "null" {
		return Null[T](), nil
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return Set[T]{}, fmt.Errorf("invalid value for %s", key)
	}
	return Value(out), nil
}

// Required es FromJSON pero rechaza null (campos no anulables).
func Required[T any](raw json.RawMessage, key string) (*T, error) {
	s, err := FromJSON[T](raw, key)
	if err != nil {
		return nil, err
	}
	if s.Value == nil {
		return nil, fmt.Errorf("%s cannot be null", key)
	}
	return s.Value, nil
}
