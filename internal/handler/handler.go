package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Abhijith1907/conference-booking/internal/domain"
	"github.com/Abhijith1907/conference-booking/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type ConferenceSvc interface {
	Create(ctx context.Context, input domain.CreateConferenceInput) (*domain.Conference, error)
	GetByName(ctx context.Context, name string) (*domain.Conference, error)
	List(ctx context.Context) ([]*domain.Conference, error)
}

type BookingSvc interface {
	Book(ctx context.Context, conferenceName, userID string) (*domain.BookingOutcome, error)
	Cancel(ctx context.Context, bookingID string) error
	Confirm(ctx context.Context, bookingID string) (*domain.Booking, error)
	GetStatus(ctx context.Context, bookingID string) (*domain.BookingStatusInfo, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	conferenceService ConferenceSvc
	bookingService    BookingSvc
	userService       UserSvc
}

func NewHandler(conferenceService ConferenceSvc, bookingService BookingSvc, userService UserSvc) *Handler {
	return &Handler{
		conferenceService: conferenceService,
		bookingService:    bookingService,
		userService:       userService,
	}
}

// Conferences

func (h *Handler) CreateConference(c *ginext.Context) {
	var req dto.CreateConferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startTS, err := time.ParseInLocation(domain.TimeLayout, req.Timing.StartTS, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: fmt.Sprintf("invalid start_ts, expected %q", domain.TimeLayout),
		})
		return
	}
	endTS, err := time.ParseInLocation(domain.TimeLayout, req.Timing.EndTS, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: fmt.Sprintf("invalid end_ts, expected %q", domain.TimeLayout),
		})
		return
	}

	input := domain.CreateConferenceInput{
		Name:           req.Name,
		Location:       req.Location,
		Topics:         req.Topics,
		StartTS:        startTS,
		EndTS:          endTS,
		AvailableSlots: req.AvailableSlots,
	}

	conf, err := h.conferenceService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToConferenceResponse(conf))
}

func (h *Handler) GetConference(c *ginext.Context) {
	name := c.Param("name")

	conf, err := h.conferenceService.GetByName(c.Request.Context(), name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToConferenceResponse(conf))
}

func (h *Handler) ListConferences(c *ginext.Context) {
	confs, err := h.conferenceService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ConferenceResponse, 0, len(confs))
	for _, conf := range confs {
		resp = append(resp, dto.ToConferenceResponse(conf))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) BookConference(c *ginext.Context) {
	name := c.Param("name")

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	outcome, err := h.bookingService.Book(c.Request.Context(), name, req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if outcome.Waitlisted {
		c.JSON(http.StatusAccepted, dto.WaitlistedResponse{
			BookingID: outcome.Booking.ID,
			Status:    string(outcome.Booking.Status),
			Message: fmt.Sprintf(
				"no slots left in the conference, added to the waitlist; use booking id %s to track status",
				outcome.Booking.ID,
			),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(outcome.Booking))
}

func (h *Handler) GetBookingStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	info, err := h.bookingService.GetStatus(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingStatusResponse(info))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.MessageResponse{
		Message: fmt.Sprintf("cancelled booking %s", id),
	})
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.Confirm(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		UserID:           req.UserID,
		InterestedTopics: req.InterestedTopics,
		TelegramChatID:   req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrConferenceNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrConferenceExists),
		errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrConferenceStarted),
		errors.Is(err, domain.ErrConfirmationNotOffered),
		errors.Is(err, domain.ErrConfirmationExpired),
		errors.Is(err, domain.ErrInvalidState):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidSchedule),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
