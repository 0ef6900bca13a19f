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

type DeleteHandler struct{ Svc *likeUC.Service }

// ServeHTTP removes a like.
// @Summary      Unlike an article
// @Description  Deletes the like for the (article, user) pair
// @Tags         likes
// @Accept       json
// @Produce      json
// @Param        articleId path string true "Article ID (UUID)"
// @Param        request body likeRequest true "Unliking user"
// @Success      200 {object} respond.Envelope
// @Failure      400 {object} respond.Envelope "Malformed body"
// @Failure      404 {object} respond.Envelope "Article, user or like not found"
// @Router       /v1/like/{articleId} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Svc.Delete(r.Context(), articleID, req.UserID); err != nil {
		handlerhttp.RecordLike("unlike", false)
		switch {
		case errors.Is(err, likeUC.ErrArticleNotFound):
			respond.NotFound(w, respond.MsgArticleNotFound)
		case errors.Is(err, likeUC.ErrUserNotFound):
			respond.NotFound(w, respond.MsgUserNotFound)
		case errors.Is(err, likeUC.ErrLikeNotFound):
			respond.NotFound(w, respond.MsgLikeNotFound)
		default:
			respond.Error(w, "like.delete", err)
		}
		return
	}

	handlerhttp.RecordLike("unlike", true)
	respond.OK(w, nil, nil)
}
