package api

import (
	"net/http"

	reqdto "bookit/internal/handler/dto/request"
	resdto "bookit/internal/handler/dto/response"
	"bookit/internal/handler/httperr"
	"bookit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromoHandler struct {
	q queries.PromoQueries
}

func NewPromoHandler(q queries.PromoQueries) *PromoHandler {
	return &PromoHandler{q: q}
}

// @Summary Validate promo code
// @Description Look up an active promo code and compute its discount for the given subtotal
// @Tags promo
// @Accept json
// @Produce json
// @Param request body reqdto.ValidatePromoRequest true "Promo code and subtotal"
// @Success 200 {object} resdto.PromoValidationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /promo/validate [post]
func (h *PromoHandler) Validate(c *gin.Context) {
	var req reqdto.ValidatePromoRequest
	if err := reqdto.BindJSON(c, &req); err != nil {
		abortWithDomainError(c, err, "Failed to validate promo code", httperr.WithValid(false))
		return
	}
	if err := req.Validate(); err != nil {
		abortWithDomainError(c, err, "Failed to validate promo code", httperr.WithValid(false))
		return
	}

	eval, err := h.q.Evaluate(c.Request.Context(), req.Code, *req.Subtotal)
	if err != nil {
		abortWithDomainError(c, err, "Failed to validate promo code", httperr.WithValid(false))
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromoEvaluation(eval))
}
