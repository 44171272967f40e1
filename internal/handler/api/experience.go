package api

import (
	"net/http"
	"strconv"

	resdto "bookit/internal/handler/dto/response"
	"bookit/internal/handler/httperr"
	"bookit/internal/pkg/errs"
	"bookit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	q queries.ExperienceQueries
}

func NewExperienceHandler(q queries.ExperienceQueries) *ExperienceHandler {
	return &ExperienceHandler{q: q}
}

// @Summary List experiences
// @Tags experiences
// @Produce json
// @Success 200 {array} resdto.ExperienceResponse
// @Failure 500 {object} httperr.Response
// @Router /experiences [get]
func (h *ExperienceHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch experiences")
		return
	}
	resp, err := resdto.FromExperienceViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch experiences")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get experience
// @Description Get an experience with its upcoming slots
// @Tags experiences
// @Produce json
// @Param id path int true "Experience ID"
// @Success 200 {object} resdto.ExperienceDetailResponse
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /experiences/{id} [get]
func (h *ExperienceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusNotFound, errs.Mark(errs.Newf("invalid experience id %q", c.Param("id")), errs.ErrExperienceNotFound), msgExperienceNotFound)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err, "Failed to fetch experience details")
		return
	}
	resp, err := resdto.FromExperienceDetailView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch experience details")
		return
	}
	c.JSON(http.StatusOK, resp)
}
