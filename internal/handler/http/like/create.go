package like

import (
	"encoding/json"
	"errors"
	"net/http"

	handlerhttp "stucode/internal/handler/http"
	"stucode/internal/handler/http/pathutil"
	"stucode/internal/handler/http/respond"
	likeUC "stucode/internal/usecase/like"
)

type likeRequest struct {
	UserID string `json:"userId"`
}

type CreateHandler struct{ Svc *likeUC.Service }

// ServeHTTP records that a user liked an article.
// @Summary      Like an article
// @Description  Creates a like for the (article, user) pair
// @Tags         likes
// @Accept       json
// @Produce      json
// @Param        articleId path string true "Article ID (UUID)"
// @Param        request body likeRequest true "Liking user"
// @Success      201 {object} respond.Envelope "Created like"
// @Failure      400 {object} respond.Envelope "Malformed body"
// @Failure      404 {object} respond.Envelope "Article or user not found"
// @Failure      409 {object} respond.Envelope "Already liked"
// @Router       /v1/like/{articleId} [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathutil.UUID(r, "articleId")
	if err != nil {
		respond.NotFound(w, respond.MsgArticleNotFound)
		return
	}

	var req likeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, "invalid request body")
		return
	}

	created, err := h.Svc.Create(r.Context(), articleID, req.UserID)
	if err != nil {
		handlerhttp.RecordLike("like", false)
		switch {
		case errors.Is(err, likeUC.ErrArticleNotFound):
			respond.NotFound(w, respond.MsgArticleNotFound)
		case errors.Is(err, likeUC.ErrUserNotFound):
			respond.NotFound(w, respond.MsgUserNotFound)
		case errors.Is(err, likeUC.ErrDuplicateLike):
			respond.Conflict(w, respond.MsgArticleAlreadyLiked)
		default:
			respond.Error(w, "like.create", err)
		}
		return
	}

	handlerhttp.RecordLike("like", true)
	respond.Created(w, FromEntity(created))
}
