package api

import (
	"net/http"
	"strings"

	reqdto "bookit/internal/handler/dto/request"
	resdto "bookit/internal/handler/dto/response"
	"bookit/internal/handler/httperr"
	"bookit/internal/usecase/commands"
	"bookit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderIdempotencyKey     = "Idempotency-Key"
	HeaderIdempotentReplayed = "Idempotent-Replayed"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Reserve spots on a slot and record the booking. A repeated Idempotency-Key with the same body returns the original booking.
// @Tags bookings
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "UUID for duplicate prevention"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Success 200 {object} resdto.CreateBookingResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	idempotencyKey, err := parseIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidIdempotency)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := reqdto.BindJSON(c, &req); err != nil {
		abortWithDomainError(c, err, "Failed to create booking")
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), req.ToInput(), idempotencyKey)
	if err != nil {
		abortWithDomainError(c, err, "Failed to create booking")
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		c.Header(HeaderIdempotentReplayed, "true")
		status = http.StatusOK
	}
	c.JSON(status, resdto.NewCreateBookingResponse(result.Booking))
}

// @Summary Get booking
// @Description Get a booking by its reference, with the experience title and slot date and time
// @Tags bookings
// @Produce json
// @Param reference path string true "Booking reference, e.g. HUF1A2B3C4"
// @Success 200 {object} resdto.BookingDetailResponse
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings/{reference} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	view, err := h.q.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		abortWithDomainError(c, err, "Failed to fetch booking")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingDetailView(view))
}

// parseIdempotencyKey returns nil when the header is absent.
func parseIdempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.GetHeader(HeaderIdempotencyKey))
	if raw == "" {
		return nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &key, nil
}
