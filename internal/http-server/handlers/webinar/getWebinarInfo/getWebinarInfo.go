package getWebinarInfo

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"webinarBooker/internal/lib/api/response"
	"webinarBooker/internal/lib/logger/sl"
	"webinarBooker/internal/models"
	"webinarBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type WebinarInfoResponse struct {
	response.Response
	Webinar        *models.Webinar        `json:"webinar"`
	Participations []models.Participation `json:"participations"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WebinarGetter
type WebinarGetter interface {
	WebinarWithParticipations(ctx context.Context, id string) (*models.Webinar, []models.Participation, error)
}

func New(log *slog.Logger, info WebinarGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.webinar.getWebinarInfo.New"

		log = log.With(slog.String("op", op))

		webinarID := chi.URLParam(r, "id")
		if webinarID == "" {
			log.Error("webinar id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("webinar id is required"))
			return
		}

		log = log.With(slog.String("webinar_id", webinarID))

		webinar, participations, err := info.WebinarWithParticipations(r.Context(), webinarID)
		if err != nil {
			log.Error("failed to get webinar information", sl.Err(err))

			if errors.Is(err, storage.ErrWebinarNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("webinar not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get webinar information"))
			return
		}

		log.Info("webinar info successfully received")

		responseOK(w, r, webinar, participations)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, webinar *models.Webinar, participations []models.Participation) {
	render.JSON(w, r, WebinarInfoResponse{
		Response:       response.OK(),
		Webinar:        webinar,
		Participations: participations,
	})
}
