package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/flighttime/internal/domain"
	"github.com/Domenick1991/flighttime/internal/service/flights"
	"github.com/gin-gonic/gin"
)

const flightNotFoundMessage = "Flight not found"

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightTimeResponse struct {
	FlightID string `json:"flight_id"`
	Time     string `json:"time"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.welcome)
	router.POST("/get-flight-time", h.getFlightTime)
}

func (h *FlightHandler) welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": h.service.GetWelcomeMessage()})
}

func (h *FlightHandler) getFlightTime(c *gin.Context) {
	// A missing, malformed or non-string body resolves to the empty id.
	var req flights.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = flights.LookupRequest{}
	}

	flight, err := h.service.GetFlightTime(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrFlightNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": flightNotFoundMessage})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flightTimeResponse{FlightID: flight.ID, Time: flight.ScheduledTime})
}
