package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"stucode/internal/domain/entity"
	handlerhttp "stucode/internal/handler/http"
	"stucode/internal/handler/http/respond"
	"stucode/internal/repository"
	"stucode/internal/service/credentials"
	authUC "stucode/internal/usecase/auth"
)

// fakeUserRepo backs the auth service with an in-memory user table.
type fakeUserRepo struct {
	repository.UserRepository

	byEmail map[string]*entity.User
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) CreateWithAccount(_ context.Context, user *entity.User) (*entity.User, error) {
	if _, ok := f.byEmail[user.Email]; ok {
		return nil, repository.ErrDuplicate
	}
	out := *user
	out.ID = "11111111-1111-1111-1111-111111111111"
	out.AccountID = "22222222-2222-2222-2222-222222222222"
	out.CreatedAt = time.Now().UTC()
	out.UpdatedAt = out.CreatedAt
	f.byEmail[out.Email] = &out
	return &out, nil
}

// newAuthMux wires the real hasher and token issuer behind the endpoints.
func newAuthMux(t *testing.T, users ...*entity.User) *http.ServeMux {
	t.Helper()

	repo := &fakeUserRepo{byEmail: map[string]*entity.User{}}
	for _, u := range users {
		repo.byEmail[u.Email] = u
	}

	svc := &authUC.Service{
		Users:  repo,
		Hasher: credentials.NewHasher(bcrypt.MinCost),
		Tokens: credentials.NewTokenIssuer([]byte("0123456789abcdef0123456789abcdef"), time.Hour),
	}

	mux := http.NewServeMux()
	Register(mux, svc, handlerhttp.NewRateLimiter(1000, time.Minute))
	return mux
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) respond.Envelope {
	t.Helper()
	var env respond.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestRegisterHandler(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		mux := newAuthMux(t)

		body := `{"name":"alice","email":"alice@example.com","password":"s3cret","logo":"a.png"}`
		req := httptest.NewRequest("POST", "/v1/user/register", strings.NewReader(body))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.Equal(t, http.StatusCreated, env.StatusCode)
		assert.Equal(t, "Created", env.Message)
		assert.Empty(t, env.ErrorCode)

		data, ok := env.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "alice", data["name"])
		assert.Equal(t, "alice@example.com", data["email"])
		assert.NotEmpty(t, data["id"])
		assert.NotEmpty(t, data["accountId"])
		assert.NotContains(t, rec.Body.String(), "password",
			"the hash must never be serialized")
	})

	t.Run("MalformedBody", func(t *testing.T) {
		mux := newAuthMux(t)

		req := httptest.NewRequest("POST", "/v1/user/register", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "invalid request body", env.Message)
		assert.Equal(t, respond.CodeBadRequest, env.ErrorCode)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		mux := newAuthMux(t)

		body := `{"name":"alice","email":"not-an-email","password":"s3cret"}`
		req := httptest.NewRequest("POST", "/v1/user/register", strings.NewReader(body))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "The email format is not valid", env.Message)
	})

	t.Run("MissingPassword", func(t *testing.T) {
		mux := newAuthMux(t)

		body := `{"name":"alice","email":"alice@example.com"}`
		req := httptest.NewRequest("POST", "/v1/user/register", strings.NewReader(body))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "The password is not valid", env.Message)
	})

	t.Run("EmailTaken", func(t *testing.T) {
		mux := newAuthMux(t, &entity.User{
			ID:    "u-1",
			Email: "alice@example.com",
		})

		body := `{"name":"alice","email":"alice@example.com","password":"s3cret"}`
		req := httptest.NewRequest("POST", "/v1/user/register", strings.NewReader(body))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusConflict, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "The email already exists", env.Message)
		assert.Equal(t, respond.CodeConflict, env.ErrorCode)
	})
}
