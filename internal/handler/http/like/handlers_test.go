package like

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stucode/internal/domain/entity"
	"stucode/internal/handler/http/respond"
	"stucode/internal/repository"
	likeUC "stucode/internal/usecase/like"
)

type likeKey struct{ articleID, userID string }

type fakeLikeRepo struct {
	repository.LikeRepository

	likes map[likeKey]*entity.Like
}

func (f *fakeLikeRepo) Create(_ context.Context, like *entity.Like) (*entity.Like, error) {
	key := likeKey{like.ArticleID, like.UserID}
	if _, ok := f.likes[key]; ok {
		return nil, repository.ErrDuplicate
	}
	f.likes[key] = like
	return like, nil
}

func (f *fakeLikeRepo) ListByArticle(_ context.Context, articleID string, _ repository.ListFilters) ([]*entity.Like, error) {
	var out []*entity.Like
	for key, l := range f.likes {
		if key.articleID == articleID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLikeRepo) CountByArticle(ctx context.Context, articleID string) (int64, error) {
	likes, _ := f.ListByArticle(ctx, articleID, repository.ListFilters{})
	return int64(len(likes)), nil
}

func (f *fakeLikeRepo) ListByUser(_ context.Context, userID string, _ repository.ListFilters) ([]*entity.Like, error) {
	var out []*entity.Like
	for key, l := range f.likes {
		if key.userID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLikeRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	likes, _ := f.ListByUser(ctx, userID, repository.ListFilters{})
	return int64(len(likes)), nil
}

func (f *fakeLikeRepo) Delete(_ context.Context, articleID, userID string) error {
	key := likeKey{articleID, userID}
	if _, ok := f.likes[key]; !ok {
		return repository.ErrNotFound
	}
	delete(f.likes, key)
	return nil
}

type stubArticleRepo struct {
	repository.ArticleRepository

	articles map[string]*entity.Article
}

func (s *stubArticleRepo) Get(_ context.Context, id string) (*entity.Article, error) {
	return s.articles[id], nil
}

type stubUserRepo struct {
	repository.UserRepository

	users map[string]*entity.User
}

func (s *stubUserRepo) Get(_ context.Context, id string) (*entity.User, error) {
	return s.users[id], nil
}

// likeFixture registers the like routes with one article and one user.
type likeFixture struct {
	mux       *http.ServeMux
	articleID string
	userID    string
}

func newLikeFixture(likes ...*entity.Like) likeFixture {
	articleID := uuid.NewString()
	userID := uuid.NewString()

	repo := &fakeLikeRepo{likes: map[likeKey]*entity.Like{}}
	for _, l := range likes {
		repo.likes[likeKey{l.ArticleID, l.UserID}] = l
	}

	svc := &likeUC.Service{
		Repo:     repo,
		Articles: &stubArticleRepo{articles: map[string]*entity.Article{articleID: {ID: articleID}}},
		Users:    &stubUserRepo{users: map[string]*entity.User{userID: {ID: userID}}},
	}

	mux := http.NewServeMux()
	Register(mux, svc)
	return likeFixture{mux: mux, articleID: articleID, userID: userID}
}

func (f likeFixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) respond.Envelope {
	t.Helper()
	var env respond.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestCreateHandler(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		f := newLikeFixture()

		rec := f.do("POST", "/v1/like/"+f.articleID, `{"userId":"`+f.userID+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		env := decodeEnvelope(t, rec)
		data, ok := env.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, f.articleID, data["articleId"])
		assert.Equal(t, f.userID, data["userId"])
	})

	t.Run("AlreadyLiked", func(t *testing.T) {
		f := newLikeFixture()

		body := `{"userId":"` + f.userID + `"}`
		rec := f.do("POST", "/v1/like/"+f.articleID, body)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = f.do("POST", "/v1/like/"+f.articleID, body)
		require.Equal(t, http.StatusConflict, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "The article is already liked", env.Message)
	})

	t.Run("UnknownArticle", func(t *testing.T) {
		f := newLikeFixture()

		rec := f.do("POST", "/v1/like/"+uuid.NewString(), `{"userId":"`+f.userID+`"}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "The article does not exist", env.Message)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		f := newLikeFixture()

		rec := f.do("POST", "/v1/like/"+f.articleID, `{"userId":"`+uuid.NewString()+`"}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "The user does not exist", env.Message)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		f := newLikeFixture()
		rec := f.do("POST", "/v1/like/"+f.articleID, "{")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListByArticleHandler(t *testing.T) {
	t.Run("SuccessWithCount", func(t *testing.T) {
		f := newLikeFixture()
		rec := f.do("POST", "/v1/like/"+f.articleID, `{"userId":"`+f.userID+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = f.do("GET", "/v1/like/"+f.articleID, "")
		require.Equal(t, http.StatusOK, rec.Code)

		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Count)
		assert.Equal(t, int64(1), *env.Count)
	})

	t.Run("UnknownArticle", func(t *testing.T) {
		f := newLikeFixture()

		rec := f.do("GET", "/v1/like/"+uuid.NewString(), "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "The article does not exist", env.Message)
	})

	t.Run("BadOrder", func(t *testing.T) {
		f := newLikeFixture()

		rec := f.do("GET", "/v1/like/"+f.articleID+"?orderBy=newest", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListByUserHandler(t *testing.T) {
	t.Run("SuccessWithCount", func(t *testing.T) {
		f := newLikeFixture()
		rec := f.do("POST", "/v1/like/"+f.articleID, `{"userId":"`+f.userID+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = f.do("GET", "/v1/like/user/"+f.userID, "")
		require.Equal(t, http.StatusOK, rec.Code)

		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Count)
		assert.Equal(t, int64(1), *env.Count)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		f := newLikeFixture()

		rec := f.do("GET", "/v1/like/user/"+uuid.NewString(), "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "The user does not exist", env.Message)
	})
}

func TestDeleteHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newLikeFixture()
		body := `{"userId":"` + f.userID + `"}`
		rec := f.do("POST", "/v1/like/"+f.articleID, body)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = f.do("DELETE", "/v1/like/"+f.articleID, body)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = f.do("GET", "/v1/like/"+f.articleID, "")
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Count)
		assert.Zero(t, *env.Count)
	})

	t.Run("NeverLiked", func(t *testing.T) {
		f := newLikeFixture()

		rec := f.do("DELETE", "/v1/like/"+f.articleID, `{"userId":"`+f.userID+`"}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "The like does not exist", env.Message)
	})

	t.Run("UnknownArticle", func(t *testing.T) {
		f := newLikeFixture()

		rec := f.do("DELETE", "/v1/like/"+uuid.NewString(), `{"userId":"`+f.userID+`"}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "The article does not exist", env.Message)
	})
}
