package ws

import (
	authhandler "appraisal-backend/lib/auth"
	connectionhub "appraisal-backend/lib/ws/hub"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func InitWs(app *fiber.App) {
	app.Use("", func(ctx *fiber.Ctx) error {
		session := authhandler.GetSession(ctx)
		ctx.Locals("userID", session.UserID)
		return ctx.Next()
	})
	app.Get("/", websocket.New(eventsHandler))
}

// @Summary Системные события
// @Tags Websocket
// @Description Поток событий создания и изменения записей
// @Param   Authorization		header		string		true		"Authorization token"
// @Success 200
// @Failure 400
// @Failure 403
// @router /ws [get]
func eventsHandler(c *websocket.Conn) {
	userID, _ := c.Locals("userID").(string)
	connectionhub.Instance.AddClient(userID, c)
	defer connectionhub.Instance.DeleteClient(userID)
	for {
		// входящие сообщения не обрабатываются, чтение держит соединение открытым
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
