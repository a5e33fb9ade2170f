package usecase_test

import (
	"context"
	"fmt"
	"iter"
	"slices"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// spyRepo almacén en memoria que registra cada escritura y permite inyectar fallos.
type spyRepo[T any, P repository.DocumentPtr[T]] struct {
	docs   map[string]T
	order  []string
	saves  []T
	nextID int
	err    error
}

var (
	_ repository.CategoryRepository = (*spyRepo[entity.Category, *entity.Category])(nil)
	_ repository.VendorRepository   = (*spyRepo[entity.Vendor, *entity.Vendor])(nil)
)

func newSpyRepo[T any, P repository.DocumentPtr[T]](seed ...T) *spyRepo[T, P] {
	r := &spyRepo[T, P]{docs: map[string]T{}}
	for _, d := range seed {
		id := P(&d).DocumentID()
		r.docs[id] = d
		r.order = append(r.order, id)
	}
	return r
}

func (r *spyRepo[T, P]) FindAll(ctx context.Context) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		if r.err != nil {
			yield(nil, r.err)
			return
		}
		for _, id := range r.order {
			d := r.docs[id]
			if !yield(&d, nil) {
				return
			}
		}
	}
}

func (r *spyRepo[T, P]) FindByID(ctx context.Context, id string) (*T, error) {
	if r.err != nil {
		return nil, r.err
	}
	d, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *spyRepo[T, P]) Save(ctx context.Context, doc *T) (*T, error) {
	if r.err != nil {
		return nil, r.err
	}
	d := *doc
	if P(&d).DocumentID() == "" {
		r.nextID++
		P(&d).SetDocumentID(fmt.Sprintf("gen-%d", r.nextID))
	}
	id := P(&d).DocumentID()
	if !slices.Contains(r.order, id) {
		r.order = append(r.order, id)
	}
	r.docs[id] = d
	r.saves = append(r.saves, d)
	return &d, nil
}

func (r *spyRepo[T, P]) SaveAll(ctx context.Context, docs iter.Seq2[*T, error]) iter.Seq2[*T, error] {
	return repository.SaveEach(ctx, docs, r.Save)
}

func (r *spyRepo[T, P]) Count(ctx context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.docs)), nil
}
