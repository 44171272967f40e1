//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"bookit/internal/domain/slot"
	"bookit/internal/handler/api"
	resdto "bookit/internal/handler/dto/response"
	commandsmock "bookit/internal/mock/commands"
	queriesmock "bookit/internal/mock/queries"
	"bookit/internal/pkg/errs"
	"bookit/internal/testutil"
	"bookit/internal/testutil/builder"
	"bookit/internal/testutil/httptest"
	"bookit/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings/:reference", s.handler.Get)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildDTO()
	created := b.BuildDomain()
	okResult := &commands.CreateBookingResult{Booking: created, AvailableAfter: 3}

	bound := []testCaseBooking{
		{name: "quantity boundary OK (1)", mutate: testutil.Field("quantity", 1), expectCode: http.StatusCreated},
		{name: "quantity boundary OK (10)", mutate: testutil.Field("quantity", 10), expectCode: http.StatusCreated},
		{name: "quantity boundary invalid (11)", mutate: testutil.Field("quantity", 11), expectCode: http.StatusBadRequest, expectInBody: "Quantity must be between 1 and 10"},
		{name: "quantity negative", mutate: testutil.Field("quantity", -2), expectCode: http.StatusBadRequest, expectInBody: "Quantity must be between 1 and 10"},
		{name: "prices as numbers OK", mutate: testutil.Field("total", 2116.5), expectCode: http.StatusCreated},
	}

	missing := []testCaseBooking{
		{name: "missing field: experience_id", mutate: testutil.Field("experience_id", nil), expectCode: http.StatusBadRequest, expectInBody: "Missing required fields"},
		{name: "missing field: slot_id", mutate: testutil.Field("slot_id", nil), expectCode: http.StatusBadRequest, expectInBody: "Missing required fields"},
		{name: "missing field: customer_name", mutate: testutil.Field("customer_name", nil), expectCode: http.StatusBadRequest, expectInBody: "Missing required fields"},
		{name: "missing field: customer_email", mutate: testutil.Field("customer_email", nil), expectCode: http.StatusBadRequest, expectInBody: "Missing required fields"},
		{name: "quantity zero counts as missing", mutate: testutil.Field("quantity", 0), expectCode: http.StatusBadRequest, expectInBody: "Missing required fields"},
		{name: "missing field: subtotal", mutate: testutil.Field("subtotal", nil), expectCode: http.StatusBadRequest, expectInBody: "Invalid price values"},
	}

	malformed := []testCaseBooking{
		{name: "email without domain", mutate: testutil.Field("customer_email", "asha@"), expectCode: http.StatusBadRequest, expectInBody: "Invalid email format"},
		{name: "non numeric price", mutate: testutil.Field("taxes", "lots"), expectCode: http.StatusBadRequest, expectInBody: "Invalid price values"},
		{name: "string experience_id", mutate: testutil.Field("experience_id", "one"), expectCode: http.StatusBadRequest, expectInBody: "Invalid request format"},
	}

	allValidationTestCases := [][]testCaseBooking{bound, missing, malformed}

	s.Run("success: returns 201 with the created booking", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Nil()).Return(okResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(resdto.MsgBookingCreated, body.Message)
		s.Require().NotNil(body.Booking)
		s.Equal("HUF1A2B3C4", body.Booking.BookingReference)
		s.Equal(2116.0, body.Booking.Total)
		s.Equal("confirmed", body.Booking.Status)
		s.Empty(rec.Header().Get(api.HeaderIdempotentReplayed))
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
							Return(okResult, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, nil)
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
					}
				})
			}
		}
	})

	s.Run("error: missing fields reported before a bad email", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("slot_id", nil),
			testutil.Field("customer_email", "broken"),
		)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing required fields")
	})

	s.Run("error: malformed JSON body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, `{"experience_id": 1,`, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 with remaining spots on insufficient capacity", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, slot.NewInsufficientCapacityError(1, 2)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Not enough spots available")
		s.Require().NotNil(body.Available)
		s.Equal(int32(1), *body.Available)
	})

	s.Run("error: 404 when slot or experience is unknown", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrSlotNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Slot not found")

		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("fk"), errs.ErrExperienceNotFound)).Times(1)
		rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Experience not found")
	})

	s.Run("error: 500 hides internal details", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("pq: connection reset"), errs.ErrDatabaseOperationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, nil)
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to create booking")
		s.NotContains(body.Error, "connection reset")
	})
}

// ================================================================================
// TestCreateIdempotency
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateIdempotency() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildDTO()
	key := uuid.New()
	headers := map[string]string{api.HeaderIdempotencyKey: key.String()}

	s.Run("first use: key is forwarded and 201 returned", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Eq(&key)).
			Return(&commands.CreateBookingResult{Booking: b.BuildDomain()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, headers)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("replay: 200 with the replay header", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Eq(&key)).
			Return(&commands.CreateBookingResult{Booking: b.BuildDomain(), IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, headers)

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		httptest.AssertHeaders(s.T(), rec, map[string]string{api.HeaderIdempotentReplayed: "true"})
		s.Equal("HUF1A2B3C4", body.Booking.BookingReference)
	})

	s.Run("mismatch: 409 Conflict", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrIdempotencyKeyMismatch).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Idempotency-Key was already used")
	})

	s.Run("invalid key: 400 before the body is read", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{api.HeaderIdempotencyKey: "not-a-uuid"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key must be a UUID")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().BuildDetailView()

	s.Run("success: returns the booking with experience and slot details", func() {
		s.mockQueries.EXPECT().GetByReference(gomock.Any(), "huf1a2b3c4").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/huf1a2b3c4", nil, nil)

		var body resdto.BookingDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("HUF1A2B3C4", body.BookingReference)
		s.Equal("Kayaking in Udupi", body.ExperienceTitle)
		s.Equal("2026-01-16", body.Date)
		s.Equal("09:00", body.Time)
		s.Equal(1998.0, body.Subtotal)
	})

	s.Run("error: 404 for unknown reference", func() {
		s.mockQueries.EXPECT().GetByReference(gomock.Any(), "HUF0000000").Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/HUF0000000", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
