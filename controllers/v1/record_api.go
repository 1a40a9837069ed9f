package apiv1

import (
	"hr-pipeline-backend/controllers"
	statuslog "hr-pipeline-backend/lib/status-log"
	"hr-pipeline-backend/models"
	apimodels "hr-pipeline-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type recordApiController struct {
	controllers.BaseAPIController
}

func InitRecordApiRouters(app *fiber.App) {
	controller := recordApiController{}
	app.Route("record", func(router fiber.Router) {
		router.Get("", controller.listAll)
		router.Get(":entity_type/:entity_id", controller.list)
	})
}

// @Summary Журнал переходов статусов
// @Tags Журнал
// @Description Последние переходы статусов по всем сущностям
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	limit				query 	int		false		 "количество записей"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.StatusLog}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/record [get]
func (c *recordApiController) listAll(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 0)
	resp, err := statuslog.Instance.ListAll(limit)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения журнала переходов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Журнал переходов статусов по сущности
// @Tags Журнал
// @Description Переходы статусов по конкретной вакансии или кандидату
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   entity_type         path    string  true         "тип сущности job/candidate"
// @Param   entity_id           path    string  true         "идентификатор сущности"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.StatusLog}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/record/{entity_type}/{entity_id} [get]
func (c *recordApiController) list(ctx *fiber.Ctx) error {
	entityType := models.EntityType(ctx.Params("entity_type", ""))
	if !entityType.IsValid() {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, "неизвестный тип сущности"))
	}
	entityID, err := c.GetIDByKey(ctx, "entity_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := statuslog.Instance.List(entityType, entityID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения журнала переходов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
