package apiv1

import (
	"hr-pipeline-backend/controllers"
	referralhandler "hr-pipeline-backend/lib/referral"
	apimodels "hr-pipeline-backend/models/api"
	referralapimodels "hr-pipeline-backend/models/api/referral"

	"github.com/gofiber/fiber/v2"
)

type referralApiController struct {
	controllers.BaseAPIController
}

func InitReferralApiRouters(app *fiber.App) {
	controller := referralApiController{}
	app.Route("referral", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("change_status", controller.changeStatus)
		})
	})
}

// @Summary Создание
// @Tags Рекомендация
// @Description Создание рекомендации сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 referralapimodels.ReferralData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/referral [post]
func (c *referralApiController) create(ctx *fiber.Ctx) error {
	var payload referralapimodels.ReferralData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	id, err := referralhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания рекомендации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Получение по ИД
// @Tags Рекомендация
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=referralapimodels.ReferralView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/referral/{id} [get]
func (c *referralApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}

	resp, err := referralhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения рекомендации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список
// @Tags Рекомендация
// @Description Список
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]referralapimodels.ReferralView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/referral/list [post]
func (c *referralApiController) list(ctx *fiber.Ctx) error {
	list, err := referralhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка рекомендаций")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Изменение статуса рекомендации
// @Tags Рекомендация
// @Description Изменение статуса рекомендации
// @Param   Authorization		header		string					true	"Authorization token"
// @Param   id          		path    string  				    true    "rec ID"
// @Param	body body	 referralapimodels.StatusChange	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/referral/{id}/change_status [put]
func (c *referralApiController) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	var payload referralapimodels.StatusChange
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}

	err = referralhandler.Instance.StatusChange(id, payload.Status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения статуса рекомендации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
