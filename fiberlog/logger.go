package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func getLogrusFields(tags []string, c *fiber.Ctx, start, end time.Time) log.Fields {
	f := make(log.Fields)
	for _, tag := range tags {
		switch tag {
		case TagStatus:
			f[TagStatus] = c.Response().StatusCode()
		case TagLatency:
			f[TagLatency] = end.Sub(start).String()
		case TagMethod:
			f[TagMethod] = c.Method()
		case TagPath:
			f[TagPath] = c.Path()
		case TagBody:
			if body := string(c.Body()); body != "" {
				f[TagBody] = body
			}
		case TagResBody:
			if resBody := string(c.Response().Body()); resBody != "" {
				f[TagResBody] = resBody
			}
		case RequestID:
			f[RequestID] = requestID(c)
		}
	}
	return f
}

func requestID(c *fiber.Ctx) string {
	id := c.Get(fiber.HeaderXRequestID)
	if id == "" {
		id = uuid.NewString()
	}
	return id
}

// New creates a new middleware handler
func New(config ...Config) fiber.Handler {
	var cfg Config
	if len(config) == 0 {
		cfg = ConfigDefault
	} else {
		cfg = config[0]
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		end := time.Now()
		if c.Method() == "OPTIONS" {
			return err
		}

		message := "запрос api"
		switch cfg.Logger {
		case nil:
			log.WithFields(getLogrusFields(cfg.Tags, c, start, end)).Info(message)
		default:
			entity := cfg.Logger.WithFields(getLogrusFields(cfg.Tags, c, start, end))
			if c.Response() != nil && c.Response().StatusCode() >= 300 {
				entity.Warn(message)
			} else {
				entity.Info(message)
			}
		}

		return err
	}
}
