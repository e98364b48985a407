package apiv1

import (
	"appraisal-backend/controllers"
	appraisalshandler "appraisal-backend/lib/appraisals"
	assignmentshandler "appraisal-backend/lib/assignments"
	linkshandler "appraisal-backend/lib/links"
	periodshandler "appraisal-backend/lib/periods"
	summarieshandler "appraisal-backend/lib/summaries"
	templateshandler "appraisal-backend/lib/templates"
	apimodels "appraisal-backend/models/api"
	appraisalapimodels "appraisal-backend/models/api/appraisal"

	"github.com/gofiber/fiber/v2"
)

type appraisalApiController struct {
	controllers.BaseAPIController
}

func InitAppraisalApiRouters(app *fiber.App) {
	controller := appraisalApiController{}
	app.Route("templates", func(router fiber.Router) {
		router.Get("", controller.listTemplates)
		router.Get(":id", controller.getTemplate)
		router.Post("", controller.saveTemplate)
		router.Delete(":id", controller.deleteTemplate)
	})
	app.Route("review-periods", func(router fiber.Router) {
		router.Get("", controller.listPeriods)
		router.Get(":id", controller.getPeriod)
		router.Post("", controller.savePeriod)
		router.Delete(":id", controller.deletePeriod)
	})
	app.Route("assignments", func(router fiber.Router) {
		router.Get("", controller.listAssignments)
		router.Get(":id", controller.getAssignment)
		router.Post("preview", controller.previewAssignments)
		router.Post("confirm", controller.confirmAssignments)
		router.Post("", controller.createAssignment)
		router.Put(":id/status", controller.advanceAssignment)
		router.Delete(":id", controller.deleteAssignment)
	})
	app.Route("appraisals", func(router fiber.Router) {
		router.Get("", controller.listAppraisals)
		router.Get(":id", controller.getAppraisal)
		router.Post("submit", controller.submitAppraisal)
	})
	app.Route("links", func(router fiber.Router) {
		router.Get("", controller.listLinks)
		router.Post("", controller.createLink)
		router.Delete(":id", controller.deleteLink)
	})
	app.Route("summaries", func(router fiber.Router) {
		router.Get("", controller.listSummaries)
		router.Get("employee/:id", controller.employeeSummaries)
	})
}

// @Summary Список шаблонов оценки
// @Tags Оценка персонала
// @Description Список шаблонов оценки
// @Success 200 {object} apimodels.Response{data=[]appraisalapimodels.Template}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/templates [get]
func (c *appraisalApiController) listTemplates(ctx *fiber.Ctx) error {
	list, err := templateshandler.Instance.GetAll()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка шаблонов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Шаблон оценки
// @Tags Оценка персонала
// @Description Шаблон оценки по идентификатору
// @Param	id	path	string	true	"идентификатор шаблона"
// @Success 200 {object} apimodels.Response{data=appraisalapimodels.Template}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/templates/{id} [get]
func (c *appraisalApiController) getTemplate(ctx *fiber.Ctx) error {
	template, err := templateshandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения шаблона")
	}
	if template == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("шаблон не найден"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(template))
}

// @Summary Сохранение шаблона оценки
// @Tags Оценка персонала
// @Description Создание или обновление шаблона оценки
// @Param	body	body	appraisalapimodels.Template	true	"request body"
// @Success 200 {object} apimodels.Response{data=appraisalapimodels.Template}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/templates [post]
func (c *appraisalApiController) saveTemplate(ctx *fiber.Ctx) error {
	var payload appraisalapimodels.Template
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	template, err := templateshandler.Instance.Save(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения шаблона")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(template))
}

// @Summary Удаление шаблона оценки
// @Tags Оценка персонала
// @Description Удаление шаблона оценки
// @Param	id	path	string	true	"идентификатор шаблона"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/templates/{id} [delete]
func (c *appraisalApiController) deleteTemplate(ctx *fiber.Ctx) error {
	if err := templateshandler.Instance.Delete(ctx.Params("id")); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления шаблона")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Список периодов оценки
// @Tags Оценка персонала
// @Description Список периодов оценки
// @Success 200 {object} apimodels.Response{data=[]appraisalapimodels.ReviewPeriod}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/review-periods [get]
func (c *appraisalApiController) listPeriods(ctx *fiber.Ctx) error {
	list, err := periodshandler.Instance.GetAll()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка периодов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Период оценки
// @Tags Оценка персонала
// @Description Период оценки по идентификатору
// @Param	id	path	string	true	"идентификатор периода"
// @Success 200 {object} apimodels.Response{data=appraisalapimodels.ReviewPeriod}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/review-periods/{id} [get]
func (c *appraisalApiController) getPeriod(ctx *fiber.Ctx) error {
	period, err := periodshandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения периода")
	}
	if period == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("период не найден"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(period))
}

// @Summary Сохранение периода оценки
// @Tags Оценка персонала
// @Description Создание или обновление периода оценки
// @Param	body	body	appraisalapimodels.ReviewPeriod	true	"request body"
// @Success 200 {object} apimodels.Response{data=appraisalapimodels.ReviewPeriod}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/review-periods [post]
func (c *appraisalApiController) savePeriod(ctx *fiber.Ctx) error {
	var payload appraisalapimodels.ReviewPeriod
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	period, err := periodshandler.Instance.Save(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения периода")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(period))
}

// @Summary Удаление периода оценки
// @Tags Оценка персонала
// @Description Удаление периода оценки
// @Param	id	path	string	true	"идентификатор периода"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/review-periods/{id} [delete]
func (c *appraisalApiController) deletePeriod(ctx *fiber.Ctx) error {
	if err := periodshandler.Instance.Delete(ctx.Params("id")); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления периода")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Список назначений
// @Tags Оценка персонала
// @Description Список назначений, опционально по периоду
// @Param	periodId	query	string	false	"идентификатор периода"
// @Success 200 {object} apimodels.Response{data=[]appraisalapimodels.Assignment}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assignments [get]
func (c *appraisalApiController) listAssignments(ctx *fiber.Ctx) error {
	periodID := ctx.Query("periodId", "")
	var list []appraisalapimodels.Assignment
	var err error
	if periodID != "" {
		list, err = assignmentshandler.Instance.GetByPeriod(periodID)
	} else {
		list, err = assignmentshandler.Instance.GetAll()
	}
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка назначений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Назначение
// @Tags Оценка персонала
// @Description Назначение по идентификатору
// @Param	id	path	string	true	"идентификатор назначения"
// @Success 200 {object} apimodels.Response{data=appraisalapimodels.Assignment}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assignments/{id} [get]
func (c *appraisalApiController) getAssignment(ctx *fiber.Ctx) error {
	assignment, err := assignmentshandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения назначения")
	}
	if assignment == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("назначение не найдено"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(assignment))
}

// @Summary Предварительный расчет назначений
// @Tags Оценка персонала
// @Description Расчет пар оценки по оргструктуре без сохранения, с предупреждениями
// @Param	body	body	appraisalapimodels.PreviewRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=appraisalapimodels.PreviewResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assignments/preview [post]
func (c *appraisalApiController) previewAssignments(ctx *fiber.Ctx) error {
	var payload appraisalapimodels.PreviewRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	preview, err := assignmentshandler.Instance.Preview(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка расчета назначений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(preview))
}

// @Summary Подтверждение назначений
// @Tags Оценка персонала
// @Description Сохранение подтвержденного списка назначений
// @Param	body	body	appraisalapimodels.ConfirmRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assignments/confirm [post]
func (c *appraisalApiController) confirmAssignments(ctx *fiber.Ctx) error {
	var payload appraisalapimodels.ConfirmRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := assignmentshandler.Instance.Confirm(payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения назначений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Ручное назначение
// @Tags Оценка персонала
// @Description Создание назначения вручную для произвольной пары
// @Param	body	body	appraisalapimodels.CreateAssignment	true	"request body"
// @Success 200 {object} apimodels.Response{data=appraisalapimodels.Assignment}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assignments [post]
func (c *appraisalApiController) createAssignment(ctx *fiber.Ctx) error {
	var payload appraisalapimodels.CreateAssignment
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	assignment, err := assignmentshandler.Instance.CreateManual(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания назначения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(assignment))
}

// @Summary Смена статуса назначения
// @Tags Оценка персонала
// @Description Перевод назначения в следующий статус, движение только вперед
// @Param	id		path	string								true	"идентификатор назначения"
// @Param	body	body	appraisalapimodels.AdvanceAssignment	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assignments/{id}/status [put]
func (c *appraisalApiController) advanceAssignment(ctx *fiber.Ctx) error {
	var payload appraisalapimodels.AdvanceAssignment
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := assignmentshandler.Instance.Advance(ctx.Params("id"), payload.Status); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление назначения
// @Tags Оценка персонала
// @Description Удаление назначения
// @Param	id	path	string	true	"идентификатор назначения"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/assignments/{id} [delete]
func (c *appraisalApiController) deleteAssignment(ctx *fiber.Ctx) error {
	if err := assignmentshandler.Instance.Delete(ctx.Params("id")); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления назначения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Список оценок
// @Tags Оценка персонала
// @Description Список заполненных оценок, опционально по сотруднику
// @Param	employeeId	query	string	false	"идентификатор сотрудника"
// @Success 200 {object} apimodels.Response{data=[]appraisalapimodels.Appraisal}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/appraisals [get]
func (c *appraisalApiController) listAppraisals(ctx *fiber.Ctx) error {
	employeeID := ctx.Query("employeeId", "")
	var list []appraisalapimodels.Appraisal
	var err error
	if employeeID != "" {
		list, err = appraisalshandler.Instance.GetByEmployee(employeeID)
	} else {
		list, err = appraisalshandler.Instance.GetAll()
	}
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка оценок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Оценка
// @Tags Оценка персонала
// @Description Заполненная оценка по идентификатору
// @Param	id	path	string	true	"идентификатор оценки"
// @Success 200 {object} apimodels.Response{data=appraisalapimodels.Appraisal}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/appraisals/{id} [get]
func (c *appraisalApiController) getAppraisal(ctx *fiber.Ctx) error {
	appraisal, err := appraisalshandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения оценки")
	}
	if appraisal == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("оценка не найдена"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(appraisal))
}

// @Summary Отправка заполненной оценки
// @Tags Оценка персонала
// @Description Прием формы: подсчет балла, завершение назначения, пересчет агрегата
// @Param	body	body	appraisalapimodels.SubmitAppraisal	true	"request body"
// @Success 200 {object} apimodels.Response{data=appraisalapimodels.Appraisal}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/appraisals/submit [post]
func (c *appraisalApiController) submitAppraisal(ctx *fiber.Ctx) error {
	var payload appraisalapimodels.SubmitAppraisal
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	appraisal, err := appraisalshandler.Instance.Submit(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения оценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(appraisal))
}

// @Summary Список приглашений
// @Tags Оценка персонала
// @Description Список одноразовых ссылок на форму оценки
// @Success 200 {object} apimodels.Response{data=[]appraisalapimodels.Link}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/links [get]
func (c *appraisalApiController) listLinks(ctx *fiber.Ctx) error {
	list, err := linkshandler.Instance.GetAll()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка приглашений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создание приглашения
// @Tags Оценка персонала
// @Description Одноразовая ссылка на форму, опционально отправка на почту
// @Param	body	body	appraisalapimodels.CreateLink	true	"request body"
// @Success 200 {object} apimodels.Response{data=appraisalapimodels.Link}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/links [post]
func (c *appraisalApiController) createLink(ctx *fiber.Ctx) error {
	var payload appraisalapimodels.CreateLink
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	link, err := linkshandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания приглашения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(link))
}

// @Summary Удаление приглашения
// @Tags Оценка персонала
// @Description Удаление приглашения
// @Param	id	path	string	true	"идентификатор приглашения"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/links/{id} [delete]
func (c *appraisalApiController) deleteLink(ctx *fiber.Ctx) error {
	if err := linkshandler.Instance.Delete(ctx.Params("id")); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления приглашения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Сводные результаты
// @Tags Оценка персонала
// @Description Сводные результаты по всем сотрудникам
// @Success 200 {object} apimodels.Response{data=[]appraisalapimodels.PerformanceSummary}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/summaries [get]
func (c *appraisalApiController) listSummaries(ctx *fiber.Ctx) error {
	list, err := summarieshandler.Instance.GetAll()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения сводных результатов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Сводные результаты сотрудника
// @Tags Оценка персонала
// @Description Сводные результаты сотрудника по периодам
// @Param	id	path	string	true	"идентификатор сотрудника"
// @Success 200 {object} apimodels.Response{data=[]appraisalapimodels.PerformanceSummary}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/summaries/employee/{id} [get]
func (c *appraisalApiController) employeeSummaries(ctx *fiber.Ctx) error {
	list, err := summarieshandler.Instance.GetByEmployee(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения сводных результатов сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
