package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// decodeOneOrMany interpreta el cuerpo como un objeto o como un array de objetos.
// Un objeto se valida completo antes de devolver; los elementos de un array se decodifican
// uno a uno según se consume la secuencia, y un elemento inválido se entrega como
// error envuelto en domain.ErrInvalidInput. many indica si el cuerpo era un array.
func decodeOneOrMany[T any](body []byte) (seq iter.Seq2[T, error], many bool, err error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("%w: cuerpo vacío", domain.ErrInvalidInput)
	}

	if trimmed[0] != '[' {
		one, err := decodeOne[T](trimmed)
		if err != nil {
			return nil, false, err
		}
		return func(yield func(T, error) bool) { yield(one, nil) }, false, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := dec.Token(); err != nil {
		return nil, true, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return func(yield func(T, error) bool) {
		for dec.More() {
			var item T
			if err := dec.Decode(&item); err != nil {
				var zero T
				yield(zero, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
				return
			}
			if !yield(item, nil) {
				return
			}
		}
		if _, err := dec.Token(); err != nil {
			var zero T
			yield(zero, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		}
	}, true, nil
}

// decodeOne interpreta el cuerpo como un único objeto, sin depender del Content-Type.
func decodeOne[T any](body []byte) (T, error) {
	var one T
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return one, fmt.Errorf("%w: cuerpo vacío", domain.ErrInvalidInput)
	}
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return one, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return one, nil
}
