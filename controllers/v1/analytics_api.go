package apiv1

import (
	"fmt"
	"time"

	"hr-pipeline-backend/controllers"
	"hr-pipeline-backend/lib/analytics"
	apimodels "hr-pipeline-backend/models/api"
	analyticsapimodels "hr-pipeline-backend/models/api/analytics"
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/gofiber/fiber/v2"
)

type analyticsApiController struct {
	controllers.BaseAPIController
}

func InitAnalyticsApiRouters(app *fiber.App) {
	controller := analyticsApiController{}
	app.Route("analytics", func(router fiber.Router) {
		router.Get("funnel", controller.funnel)
		router.Get("funnel/export", controller.funnelToPdf)
		router.Get("departments", controller.departments)
		router.Get("sources", controller.sources)
		router.Get("sources/export", controller.sourcesToXls)
		router.Get("trend", controller.trend)
		router.Get("stats", controller.stats)
		router.Route("plan", func(planRoute fiber.Router) {
			planRoute.Get("", controller.planList)
			planRoute.Post("", controller.planUpsert)
		})
	})
}

func (c *analyticsApiController) getFilter(ctx *fiber.Ctx) (analyticsapimodels.AnalyticsFilter, error) {
	filter := analyticsapimodels.AnalyticsFilter{
		From:   ctx.Query("from", ""),
		To:     ctx.Query("to", ""),
		Bucket: analyticsapimodels.TimeBucket(ctx.Query("bucket", "")),
	}
	if err := filter.Validate(); err != nil {
		return analyticsapimodels.AnalyticsFilter{}, err
	}
	return filter, nil
}

// @Summary Воронка найма
// @Tags Аналитика
// @Description Количество кандидатов, достигших каждого этапа, с конверсией от первого этапа
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	from				query 	string	false		 "начало периода ДД.ММ.ГГГГ"
// @Param	to					query 	string	false		 "конец периода ДД.ММ.ГГГГ"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.FunnelReport}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/funnel [get]
func (c *analyticsApiController) funnel(ctx *fiber.Ctx) error {
	filter, err := c.getFilter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := analytics.Instance.Funnel(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка расчёта воронки найма")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Выгрузка воронки найма в pdf
// @Tags Аналитика
// @Description Выгрузка воронки найма в pdf
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	from				query 	string	false		 "начало периода ДД.ММ.ГГГГ"
// @Param	to					query 	string	false		 "конец периода ДД.ММ.ГГГГ"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/funnel/export [get]
func (c *analyticsApiController) funnelToPdf(ctx *fiber.Ctx) error {
	filter, err := c.getFilter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	pdfFile, err := analytics.Instance.FunnelReportToPdf(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки воронки найма в pdf")
	}
	fileName := fmt.Sprintf("funnel_%v.pdf", time.Now().Format("02-01-2006"))
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%v"`, fileName))
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	return ctx.Status(fiber.StatusOK).Send(pdfFile)
}

// @Summary Выполнение плана найма по отделам
// @Tags Аналитика
// @Description Наймы по отделам относительно плановых значений
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	from				query 	string	false		 "начало периода ДД.ММ.ГГГГ"
// @Param	to					query 	string	false		 "конец периода ДД.ММ.ГГГГ"
// @Success 200 {object} apimodels.Response{data=[]analyticsapimodels.DepartmentRate}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/departments [get]
func (c *analyticsApiController) departments(ctx *fiber.Ctx) error {
	filter, err := c.getFilter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := analytics.Instance.Departments(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка расчёта выполнения плана найма")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Источники кандидатов
// @Tags Аналитика
// @Description Распределение кандидатов по источникам
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	from				query 	string	false		 "начало периода ДД.ММ.ГГГГ"
// @Param	to					query 	string	false		 "конец периода ДД.ММ.ГГГГ"
// @Success 200 {object} apimodels.Response{data=[]analyticsapimodels.SourceShare}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/sources [get]
func (c *analyticsApiController) sources(ctx *fiber.Ctx) error {
	filter, err := c.getFilter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := analytics.Instance.Sources(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка расчёта источников кандидатов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Выгрузка источников кандидатов в xlsx
// @Tags Аналитика
// @Description Выгрузка источников кандидатов в xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	from				query 	string	false		 "начало периода ДД.ММ.ГГГГ"
// @Param	to					query 	string	false		 "конец периода ДД.ММ.ГГГГ"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/sources/export [get]
func (c *analyticsApiController) sourcesToXls(ctx *fiber.Ctx) error {
	filter, err := c.getFilter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	buf, err := analytics.Instance.SourcesExportToXls(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки источников кандидатов в xlsx")
	}
	fileName := fmt.Sprintf("sources_%v.xlsx", time.Now().Format("02-01-2006"))
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%v"`, fileName))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Динамика откликов
// @Tags Аналитика
// @Description Количество откликов и средняя оценка ИИ по временным интервалам
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	from				query 	string	false		 "начало периода ДД.ММ.ГГГГ"
// @Param	to					query 	string	false		 "конец периода ДД.ММ.ГГГГ"
// @Param	bucket				query 	string	false		 "шаг группировки day/week/month"
// @Success 200 {object} apimodels.Response{data=[]analyticsapimodels.TrendPoint}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/trend [get]
func (c *analyticsApiController) trend(ctx *fiber.Ctx) error {
	filter, err := c.getFilter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	resp, err := analytics.Instance.Trend(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка расчёта динамики откликов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Сводные показатели
// @Tags Аналитика
// @Description Сводные показатели по вакансиям, кандидатам, интервью и рекомендациям
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.StatsView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/stats [get]
func (c *analyticsApiController) stats(ctx *fiber.Ctx) error {
	resp, err := analytics.Instance.Stats()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка расчёта сводных показателей")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Планы найма по отделам
// @Tags Аналитика
// @Description Планы найма по отделам
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.DepartmentPlan}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/plan [get]
func (c *analyticsApiController) planList(ctx *fiber.Ctx) error {
	resp, err := analytics.Instance.PlanList()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения планов найма")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Сохранение плана найма по отделу
// @Tags Аналитика
// @Description Сохранение плана найма по отделу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dbmodels.DepartmentPlan	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/plan [post]
func (c *analyticsApiController) planUpsert(ctx *fiber.Ctx) error {
	var payload dbmodels.DepartmentPlan
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(fiber.StatusBadRequest, err.Error()))
	}
	err := analytics.Instance.PlanUpsert(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения плана найма")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
