package apiv1

import (
	"appraisal-backend/controllers"
	backuphandler "appraisal-backend/lib/backup"
	"appraisal-backend/middleware"
	apimodels "appraisal-backend/models/api"
	backupapimodels "appraisal-backend/models/api/backup"

	"github.com/gofiber/fiber/v2"
)

type backupApiController struct {
	controllers.BaseAPIController
}

func InitBackupApiRouters(app *fiber.App) {
	controller := backupApiController{}
	app.Route("backup", func(router fiber.Router) {
		router.Use(middleware.AdminRoleRequired())
		router.Get("export", controller.export)
		router.Post("import", controller.importSnapshot)
		router.Post("upload", controller.uploadSnapshot)
	})
}

// @Summary Выгрузка снимка данных
// @Tags Резервное копирование
// @Description Полный снимок всех сущностей с меткой версии
// @Success 200 {object} apimodels.Response{data=backupapimodels.Snapshot}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/backup/export [get]
func (c *backupApiController) export(ctx *fiber.Ctx) error {
	snapshot, err := backuphandler.Instance.Export()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки снимка данных")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(snapshot))
}

// @Summary Загрузка снимка данных
// @Tags Резервное копирование
// @Description Восстановление сущностей из снимка сквозной записью
// @Param	body	body	backupapimodels.Snapshot	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/backup/import [post]
func (c *backupApiController) importSnapshot(ctx *fiber.Ctx) error {
	var payload backupapimodels.Snapshot
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := backuphandler.Instance.Import(payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки снимка данных")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Выгрузка снимка в S3
// @Tags Резервное копирование
// @Description Сериализация снимка и выгрузка в объектное хранилище
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/backup/upload [post]
func (c *backupApiController) uploadSnapshot(ctx *fiber.Ctx) error {
	if err := backuphandler.Instance.UploadSnapshot(ctx.Context()); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки снимка в S3")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
