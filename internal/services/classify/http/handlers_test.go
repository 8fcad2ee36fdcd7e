package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langid/internal/core/classify"
	perr "langid/internal/platform/errors"
	phttp "langid/internal/platform/net/http"
	"langid/internal/services/classify/domain"
)

type dispatchFunc func(ctx context.Context, in domain.Input) (classify.Result, error)

func (f dispatchFunc) Dispatch(ctx context.Context, in domain.Input) (classify.Result, error) {
	return f(ctx, in)
}

func post(t *testing.T, d domain.DispatcherPort, f classify.Format, body string) (*httptest.ResponseRecorder, phttp.Envelope) {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, d, f)

	req := httptest.NewRequest(stdhttp.MethodPost, "/classify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, req)

	var env phttp.Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	return rr, env
}

func TestClassifyRendersTuple(t *testing.T) {
	var got domain.Input
	d := dispatchFunc(func(_ context.Context, in domain.Input) (classify.Result, error) {
		got = in
		return classify.Unknown("whatlang"), nil
	})

	rr, env := post(t, d, classify.FormatTuple, `{"text":"","classifier":"x","hint":"de"}`)
	require.Equal(t, stdhttp.StatusOK, rr.Code)
	assert.Equal(t, domain.Input{Classifier: "x", Hint: "de"}, got)

	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "und", data["code"])
	assert.Equal(t, "('und', False, ())", data["rendered"])
	assert.Equal(t, []any{}, data["candidates"])
}

func TestClassifyMapsErrors(t *testing.T) {
	d := dispatchFunc(func(context.Context, domain.Input) (classify.Result, error) {
		return classify.Result{}, perr.Backendf("engine down")
	})

	rr, env := post(t, d, classify.FormatTuple, `{"text":"hello"}`)
	assert.Equal(t, stdhttp.StatusBadGateway, rr.Code)
	assert.Equal(t, perr.ErrorCodeBackend, env.Code)
	assert.Equal(t, "engine down", env.Error)

	rr, env = post(t, d, classify.FormatTuple, `{"text":"hello","extra":1}`)
	assert.Equal(t, stdhttp.StatusBadRequest, rr.Code)
	assert.Equal(t, perr.ErrorCodeJSON, env.Code)

	rr, env = post(t, d, classify.FormatTuple, `{"text":"hello","classifier":"`+strings.Repeat("a", 65)+`"}`)
	assert.Equal(t, stdhttp.StatusBadRequest, rr.Code)
	assert.Equal(t, "classifier", env.Field)
}

func TestClassifyUnknownFormat(t *testing.T) {
	d := dispatchFunc(func(context.Context, domain.Input) (classify.Result, error) {
		return classify.Unknown("whatlang"), nil
	})
	rr, env := post(t, d, classify.Format("xml"), `{"text":"hi"}`)
	assert.Equal(t, stdhttp.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, perr.ErrorCodeInvalidArgument, env.Code)
}
