package api

import (
	"errors"
	"net/http"

	reqdto "charter-quote-api/internal/handler/dto/request"
	resdto "charter-quote-api/internal/handler/dto/response"
	"charter-quote-api/internal/handler/httperr"
	"charter-quote-api/internal/pkg/errs"
	"charter-quote-api/internal/usecase/commands"
	"charter-quote-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuoteHandler struct {
	quoteCommands commands.QuoteCommands
	quoteQueries  queries.QuoteQueries
}

func NewQuoteHandler(quoteCommands commands.QuoteCommands, quoteQueries queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{
		quoteCommands: quoteCommands,
		quoteQueries:  quoteQueries,
	}
}

// @Summary Create charter quote
// @Description Price a charter flight between two airports
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.CreateQuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req reqdto.CreateQuoteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Missing required fields", "")
		return
	}

	result, err := h.quoteCommands.CreateQuote(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAirportNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Airport not found", "")
		case errors.Is(err, errs.ErrNoSuitableAircraft):
			httperr.AbortWithError(c, http.StatusNotFound, err,
				"No suitable aircraft found for this journey",
				"Try reducing passenger count or selecting a different aircraft")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuote(result))
}

// @Summary Get quote
// @Description Get a previously issued quote by ID
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid quote ID format", "")
		return
	}

	result, err := h.quoteQueries.GetQuote(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrQuoteNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Quote not found", "")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuote(result))
}
