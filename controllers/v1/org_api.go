package apiv1

import (
	"appraisal-backend/controllers"
	employeeshandler "appraisal-backend/lib/employees"
	teamshandler "appraisal-backend/lib/teams"
	apimodels "appraisal-backend/models/api"
	orgapimodels "appraisal-backend/models/api/org"

	"github.com/gofiber/fiber/v2"
)

type orgApiController struct {
	controllers.BaseAPIController
}

func InitOrgApiRouters(app *fiber.App) {
	controller := orgApiController{}
	app.Route("employees", func(router fiber.Router) {
		router.Get("", controller.listEmployees)
		router.Get("active", controller.listActiveEmployees)
		router.Get(":id", controller.getEmployee)
		router.Post("", controller.createEmployee)
		router.Put(":id", controller.updateEmployee)
		router.Delete(":id", controller.deleteEmployee)
	})
	app.Route("teams", func(router fiber.Router) {
		router.Get("", controller.listTeams)
		router.Get(":id", controller.getTeam)
		router.Get(":id/leaders", controller.teamLeaders)
		router.Post("", controller.createTeam)
		router.Put(":id", controller.updateTeam)
		router.Delete(":id", controller.deleteTeam)
	})
}

// @Summary Список сотрудников
// @Tags Оргструктура
// @Description Список сотрудников
// @Success 200 {object} apimodels.Response{data=[]orgapimodels.Employee}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees [get]
func (c *orgApiController) listEmployees(ctx *fiber.Ctx) error {
	list, err := employeeshandler.Instance.GetAll()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка сотрудников")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Список активных сотрудников
// @Tags Оргструктура
// @Description Сотрудники без блокирующих статусов занятости
// @Success 200 {object} apimodels.Response{data=[]orgapimodels.Employee}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/active [get]
func (c *orgApiController) listActiveEmployees(ctx *fiber.Ctx) error {
	list, err := employeeshandler.Instance.GetActive()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка активных сотрудников")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Карточка сотрудника
// @Tags Оргструктура
// @Description Карточка сотрудника
// @Param	id	path	string	true	"идентификатор сотрудника"
// @Success 200 {object} apimodels.Response{data=orgapimodels.Employee}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [get]
func (c *orgApiController) getEmployee(ctx *fiber.Ctx) error {
	employee, err := employeeshandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения сотрудника")
	}
	if employee == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("сотрудник не найден"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(employee))
}

// @Summary Создание сотрудника
// @Tags Оргструктура
// @Description Создание сотрудника, опционально с учетной записью
// @Param	body	body	orgapimodels.CreateEmployee	true	"request body"
// @Success 200 {object} apimodels.Response{data=orgapimodels.CreateEmployeeResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees [post]
func (c *orgApiController) createEmployee(ctx *fiber.Ctx) error {
	var payload orgapimodels.CreateEmployee
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	response, err := employeeshandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(response))
}

// @Summary Обновление сотрудника
// @Tags Оргструктура
// @Description Обновление сотрудника
// @Param	id		path	string						true	"идентификатор сотрудника"
// @Param	body	body	orgapimodels.CreateEmployee	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [put]
func (c *orgApiController) updateEmployee(ctx *fiber.Ctx) error {
	var payload orgapimodels.CreateEmployee
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := employeeshandler.Instance.Update(ctx.Params("id"), payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление сотрудника
// @Tags Оргструктура
// @Description Удаление сотрудника
// @Param	id	path	string	true	"идентификатор сотрудника"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [delete]
func (c *orgApiController) deleteEmployee(ctx *fiber.Ctx) error {
	if err := employeeshandler.Instance.Delete(ctx.Params("id")); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Список команд
// @Tags Оргструктура
// @Description Список команд
// @Success 200 {object} apimodels.Response{data=[]orgapimodels.Team}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/teams [get]
func (c *orgApiController) listTeams(ctx *fiber.Ctx) error {
	list, err := teamshandler.Instance.GetAll()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка команд")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Карточка команды
// @Tags Оргструктура
// @Description Карточка команды
// @Param	id	path	string	true	"идентификатор команды"
// @Success 200 {object} apimodels.Response{data=orgapimodels.Team}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/teams/{id} [get]
func (c *orgApiController) getTeam(ctx *fiber.Ctx) error {
	team, err := teamshandler.Instance.GetByID(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения команды")
	}
	if team == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("команда не найдена"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(team))
}

// @Summary Руководители команды
// @Tags Оргструктура
// @Description Активные сотрудники команды с иерархией руководителя
// @Param	id	path	string	true	"идентификатор команды"
// @Success 200 {object} apimodels.Response{data=[]orgapimodels.Employee}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/teams/{id}/leaders [get]
func (c *orgApiController) teamLeaders(ctx *fiber.Ctx) error {
	list, err := teamshandler.Instance.GetLeaders(ctx.Params("id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения руководителей команды")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создание команды
// @Tags Оргструктура
// @Description Создание команды
// @Param	body	body	orgapimodels.CreateTeam	true	"request body"
// @Success 200 {object} apimodels.Response{data=orgapimodels.Team}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/teams [post]
func (c *orgApiController) createTeam(ctx *fiber.Ctx) error {
	var payload orgapimodels.CreateTeam
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	team, err := teamshandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания команды")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(team))
}

// @Summary Обновление команды
// @Tags Оргструктура
// @Description Обновление команды
// @Param	id		path	string					true	"идентификатор команды"
// @Param	body	body	orgapimodels.CreateTeam	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/teams/{id} [put]
func (c *orgApiController) updateTeam(ctx *fiber.Ctx) error {
	var payload orgapimodels.CreateTeam
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := teamshandler.Instance.Update(ctx.Params("id"), payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления команды")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление команды
// @Tags Оргструктура
// @Description Удаление команды
// @Param	id	path	string	true	"идентификатор команды"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/teams/{id} [delete]
func (c *orgApiController) deleteTeam(ctx *fiber.Ctx) error {
	if err := teamshandler.Instance.Delete(ctx.Params("id")); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления команды")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
