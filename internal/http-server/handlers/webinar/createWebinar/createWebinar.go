package createWebinar

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"webinarBooker/internal/lib/api/response"
	"webinarBooker/internal/lib/logger/sl"
	"webinarBooker/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type WebinarRequest struct {
	OrganizerId string    `json:"organizer_id" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
	Seats       int       `json:"seats" validate:"required,gt=0"`
}

type WebinarResponse struct {
	response.Response
	WebinarId string `json:"webinar_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WebinarCreator
type WebinarCreator interface {
	CreateWebinar(ctx context.Context, webinar models.Webinar) error
}

func New(log *slog.Logger, creator WebinarCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.webinar.createWebinar.New"

		log = log.With(
			slog.String("op", op),
		)

		var req WebinarRequest

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
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		webinar := models.Webinar{
			ID:          uuid.New().String(),
			OrganizerID: req.OrganizerId,
			Title:       req.Title,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			Seats:       req.Seats,
		}

		if err = creator.CreateWebinar(r.Context(), webinar); err != nil {
			log.Error("failed to add webinar", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add webinar"))

			return
		}

		log.Info("webinar added", slog.String("id", webinar.ID))

		responseOK(w, r, webinar.ID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, webinarId string) {
	render.JSON(w, r, WebinarResponse{
		Response:  response.OK(),
		WebinarId: webinarId,
	})
}
