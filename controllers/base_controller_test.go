package controllers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"hr-pipeline-backend/models"
	apimodels "hr-pipeline-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSendError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"не найдено", models.ErrNotFound, fiber.StatusNotFound},
		{"ошибка валидации", errors.Wrap(models.ErrValidation, "зарплата от больше зарплаты до"), fiber.StatusBadRequest},
		{"недопустимый переход", errors.Wrap(models.ErrInvalidTransition, "переход hired -> pending"), fiber.StatusConflict},
		{"конфликт расписания", models.ErrSchedulingConflict, fiber.StatusConflict},
		{"прочая ошибка", errors.New("ошибка соединения с БД"), fiber.StatusInternalServerError},
	}
	controller := BaseAPIController{}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(ctx *fiber.Ctx) error {
				return controller.SendError(ctx, log.NewEntry(log.StandardLogger()), c.err, "ошибка операции")
			})
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, c.status, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var envelope apimodels.Response
			require.NoError(t, json.Unmarshal(body, &envelope))
			// код в конверте дублирует http статус
			require.Equal(t, c.status, envelope.Code)
			require.NotEmpty(t, envelope.Error)
			require.Nil(t, envelope.Data)
		})
	}
}
