//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"charter-quote-api/internal/handler"
	"charter-quote-api/internal/handler/api"
	resdto "charter-quote-api/internal/handler/dto/response"
	"charter-quote-api/internal/pkg/config"
	"charter-quote-api/internal/pkg/errs"
	"charter-quote-api/tests/common/builder"
	"charter-quote-api/tests/common/httptest"
	"charter-quote-api/tests/common/testutil"
	commandsmock "charter-quote-api/tests/mock/commands"
	queriesmock "charter-quote-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockQuoteCommands
	mockQueries  *queriesmock.MockQuoteQueries
	handler      *api.QuoteHandler
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockQuoteCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.handler = api.NewQuoteHandler(s.mockCommands, s.mockQueries)

	// Full production wiring: middleware, 405 handling, routes
	handler.NewRouter(s.router, config.NewTestConfig(), s.handler)
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

// ================================================================================
// TestCreateQuote
// ================================================================================

func (s *QuoteHandlerTestSuite) TestCreateQuote() {
	url := "/api/quotes"

	reqBody := builder.NewQuoteBuilder().BuildCreateRequestDTO()
	returnQuote := builder.NewQuoteBuilder().BuildDomain()

	s.Run("success: returns 200 with the priced quote", func() {
		s.mockCommands.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).
			Return(returnQuote, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnQuote.ID, body.QuoteID)
		s.Equal("MAD", body.FlightDetails.Origin)
		s.Equal(returnQuote.BookingLink, body.BookingLink)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: origin_id", mutate: testutil.Field("origin_id", nil)},
			{name: "missing field: destination_id", mutate: testutil.Field("destination_id", nil)},
			{name: "missing field: departure_date", mutate: testutil.Field("departure_date", nil)},
			{name: "missing field: passengers", mutate: testutil.Field("passengers", nil)},
			{name: "zero passengers", mutate: testutil.Field("passengers", 0)},
			{name: "negative passengers", mutate: testutil.Field("passengers", -1)},
			{name: "non-numeric origin", mutate: testutil.Field("origin_id", "MAD")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing required fields")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown airport",
				commandsError:  errs.ErrAirportNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Airport not found",
			},
			{
				name:           "no suitable aircraft",
				commandsError:  errs.ErrNoSuitableAircraft,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "No suitable aircraft",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 405 with a JSON body for GET on the collection", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusMethodNotAllowed, "Method not allowed")
	})
}

// ================================================================================
// TestGetQuote
// ================================================================================

func (s *QuoteHandlerTestSuite) TestGetQuote() {
	returnQuote := builder.NewQuoteBuilder().BuildDomain()

	s.Run("success: returns 200 with the stored quote", func() {
		s.mockQueries.EXPECT().GetQuote(gomock.Any(), returnQuote.ID).
			Return(returnQuote, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/quotes/"+returnQuote.ID.String(), nil)

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnQuote.ID, body.QuoteID)
	})

	s.Run("error: 400 for a malformed quote ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/quotes/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid quote ID")
	})

	s.Run("error: 404 for an unknown quote", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetQuote(gomock.Any(), id).
			Return(nil, errs.ErrQuoteNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/quotes/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Quote not found")
	})
}
