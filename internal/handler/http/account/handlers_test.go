package account

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stucode/internal/domain/entity"
	"stucode/internal/handler/http/respond"
	accUC "stucode/internal/usecase/account"
)

type fakeAccountRepo struct {
	accounts map[string]*entity.Account
}

func (f *fakeAccountRepo) Get(_ context.Context, id string) (*entity.Account, error) {
	return f.accounts[id], nil
}

func (f *fakeAccountRepo) Delete(_ context.Context, id string) error {
	delete(f.accounts, id)
	return nil
}

func newAccountMux(accounts ...*entity.Account) *http.ServeMux {
	repo := &fakeAccountRepo{accounts: map[string]*entity.Account{}}
	for _, a := range accounts {
		repo.accounts[a.ID] = a
	}
	mux := http.NewServeMux()
	Register(mux, &accUC.Service{Repo: repo})
	return mux
}

func doRequest(mux *http.ServeMux, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) respond.Envelope {
	t.Helper()
	var env respond.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestGetHandler(t *testing.T) {
	id := uuid.NewString()
	existing := &entity.Account{ID: id, Enabled: true, CreatedAt: time.Now().UTC()}

	t.Run("Success", func(t *testing.T) {
		rec := doRequest(newAccountMux(existing), "GET", "/v1/account/"+id)
		require.Equal(t, http.StatusOK, rec.Code)

		env := decodeEnvelope(t, rec)
		data, ok := env.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, id, data["id"])
		assert.Equal(t, true, data["enabled"])
	})

	t.Run("MalformedID", func(t *testing.T) {
		rec := doRequest(newAccountMux(existing), "GET", "/v1/account/123")
		require.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "The account does not exist", env.Message)
	})

	t.Run("Absent", func(t *testing.T) {
		rec := doRequest(newAccountMux(), "GET", "/v1/account/"+uuid.NewString())
		require.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "The account does not exist", env.Message)
	})
}

func TestDeleteHandler(t *testing.T) {
	id := uuid.NewString()

	t.Run("Success", func(t *testing.T) {
		mux := newAccountMux(&entity.Account{ID: id, Enabled: true})

		rec := doRequest(mux, "DELETE", "/v1/account/"+id)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(mux, "GET", "/v1/account/"+id)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Absent", func(t *testing.T) {
		rec := doRequest(newAccountMux(), "DELETE", "/v1/account/"+uuid.NewString())
		require.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "The account does not exist", env.Message)
	})
}
