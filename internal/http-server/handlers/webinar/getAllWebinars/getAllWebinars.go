package getAllWebinars

import (
	"context"
	"log/slog"
	"net/http"

	"webinarBooker/internal/lib/api/response"
	"webinarBooker/internal/lib/logger/sl"
	"webinarBooker/internal/models"

	"github.com/go-chi/render"
)

type WebinarsResponse struct {
	response.Response
	Webinars []models.Webinar `json:"webinars"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WebinarsGetter
type WebinarsGetter interface {
	GetAllWebinars(ctx context.Context) ([]models.Webinar, error)
}

func New(log *slog.Logger, webinarsGetter WebinarsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.webinar.getAllWebinars.New"

		log = log.With(slog.String("op", op))

		webinars, err := webinarsGetter.GetAllWebinars(r.Context())
		if err != nil {
			log.Error("failed to get webinars", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get webinars"))
			return
		}

		log.Info("webinars retrieved successfully", slog.Int("count", len(webinars)))

		responseOK(w, r, webinars)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, webinars []models.Webinar) {
	render.JSON(w, r, WebinarsResponse{
		Response: response.OK(),
		Webinars: webinars,
	})
}
