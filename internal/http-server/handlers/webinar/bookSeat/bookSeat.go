package bookSeat

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"webinarBooker/internal/booking"
	"webinarBooker/internal/lib/api/response"
	"webinarBooker/internal/lib/logger/sl"
	"webinarBooker/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// BookingRequest carries the identity of the already-authenticated user;
// authentication itself happens upstream.
type BookingRequest struct {
	UserId string `json:"user_id" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
}

type BookingResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SeatBooker
type SeatBooker interface {
	BookSeat(ctx context.Context, webinarID string, user models.User) error
}

func New(log *slog.Logger, booker SeatBooker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.webinar.bookSeat.New"

		log = log.With(slog.String("op", op))

		webinarID := chi.URLParam(r, "id")
		if webinarID == "" {
			log.Error("webinar id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("webinar id is required"))
			return
		}

		log = log.With(slog.String("webinar_id", webinarID))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		user := models.User{ID: req.UserId, Email: req.Email}

		err = booker.BookSeat(r.Context(), webinarID, user)
		if err != nil {
			log.Error("failed to book seat", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrWebinarNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("webinar not found"))
			case errors.Is(err, booking.ErrAlreadyBooked):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("user is already participating in this webinar"))
			case errors.Is(err, booking.ErrNoSeatsLeft):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("no seats available"))
			case errors.Is(err, booking.ErrNotifyFailed):
				// The seat is held at this point, only the mail failed.
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("seat booked but organizer was not notified"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to book seat"))
			}
			return
		}

		log.Info("seat booked successfully", slog.String("user_id", req.UserId))

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
	})
}
