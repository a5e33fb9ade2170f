package usecase

import "iter"

// mapSeq transforma cada elemento de seq con fn y reenvía los errores sin tocarlos.
func mapSeq[In, Out any](seq iter.Seq2[In, error], fn func(In) Out) iter.Seq2[Out, error] {
	return func(yield func(Out, error) bool) {
		for v, err := range seq {
			if err != nil {
				var zero Out
				yield(zero, err)
				return
			}
			if !yield(fn(v), nil) {
				return
			}
		}
	}
}
