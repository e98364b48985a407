package publicapi

import (
	"appraisal-backend/controllers"
	appraisalshandler "appraisal-backend/lib/appraisals"
	linkshandler "appraisal-backend/lib/links"
	templateshandler "appraisal-backend/lib/templates"
	apimodels "appraisal-backend/models/api"
	appraisalapimodels "appraisal-backend/models/api/appraisal"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type publicLinkApiController struct {
	controllers.BaseAPIController
}

func InitPublicLinkApiRouters(app *fiber.App) {
	controller := publicLinkApiController{}
	app.Route("appraise", func(router fiber.Router) {
		router.Route(":token", func(tokenRoute fiber.Router) {
			tokenRoute.Get("", controller.openForm)
			tokenRoute.Post("", controller.submitForm)
		})
	})
}

// @Summary Открытие формы оценки по приглашению
// @Tags Форма оценки
// @Description Просмотр формы не гасит токен, приглашение расходуется при отправке
// @Param   token	path	string	true	"токен приглашения"
// @Success 200 {object} apimodels.Response{data=appraisalapimodels.Template}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/appraise/{token} [get]
func (c *publicLinkApiController) openForm(ctx *fiber.Ctx) error {
	token := ctx.Params("token")
	link, err := linkshandler.Instance.GetByToken(token)
	if err != nil {
		logger := log.WithField("link_token", token)
		return c.SendError(ctx, logger, err, "Ошибка проверки приглашения")
	}
	if link == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("приглашение не найдено"))
	}
	if link.Used {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("приглашение уже использовано"))
	}
	template, err := templateshandler.Instance.GetByID(link.TemplateID)
	if err != nil {
		logger := log.WithField("link_token", token)
		return c.SendError(ctx, logger, err, "Ошибка получения шаблона оценки")
	}
	if template == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("шаблон оценки не найден"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(template))
}

// @Summary Отправка формы оценки по приглашению
// @Tags Форма оценки
// @Description Прием заполненной формы без авторизации, пара оценки берется из приглашения, токен гасится при отправке
// @Param   token	path	string								true	"токен приглашения"
// @Param	body	body	appraisalapimodels.SubmitAppraisal	true	"request body"
// @Success 200 {object} apimodels.Response{data=appraisalapimodels.Appraisal}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/appraise/{token} [post]
func (c *publicLinkApiController) submitForm(ctx *fiber.Ctx) error {
	token := ctx.Params("token")
	var payload appraisalapimodels.SubmitAppraisal
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	// токен гасится до записи оценки, повторная отправка по той же ссылке невозможна
	link, err := linkshandler.Instance.Consume(token)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	// пара оценки и шаблон фиксированы приглашением, клиентские значения игнорируются
	payload.AppraiserID = link.AppraiserID
	payload.EmployeeID = link.EmployeeID
	payload.TemplateID = link.TemplateID
	payload.ReviewPeriodID = link.ReviewPeriodID
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	appraisal, err := appraisalshandler.Instance.Submit(payload)
	if err != nil {
		logger := log.WithField("link_token", token)
		return c.SendError(ctx, logger, err, "Ошибка сохранения оценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(appraisal))
}
