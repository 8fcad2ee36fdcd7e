package service

import (
	"context"
	"sync"

	"langid/internal/core/classify"
)

// recorder is a stub backend that remembers what it was asked
type recorder struct {
	name string
	res  classify.Result
	err  error
	boom bool

	mu    sync.Mutex
	calls []call
}

type call struct{ text, hint string }

func (r *recorder) Name() string { return r.name }

func (r *recorder) Classify(_ context.Context, text, hint string) (classify.Result, error) {
	r.mu.Lock()
	r.calls = append(r.calls, call{text: text, hint: hint})
	r.mu.Unlock()
	if r.boom {
		panic("model exploded")
	}
	if r.err != nil {
		return classify.Result{}, r.err
	}
	res := r.res
	if res.Code == "" {
		res = classify.Unknown(r.name)
	}
	return res, nil
}

func (r *recorder) last() (call, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return call{}, 0
	}
	return r.calls[len(r.calls)-1], len(r.calls)
}

func newRegistry(primary, alt *recorder) *classify.Registry {
	reg, err := classify.NewRegistry(primary, alt, classify.DefaultAltName)
	if err != nil {
		panic(err)
	}
	return reg
}

func english() classify.Result {
	return classify.Result{
		Code:     "en",
		Reliable: true,
		Backend:  "primary",
		Candidates: []classify.Candidate{
			{Name: "ENGLISH", Code: "en", Percent: 100, Score: 0.9},
		},
	}
}
