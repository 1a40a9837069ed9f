package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Logger variables
const (
	TagPid         = "pid"
	TagReferer     = "referer"
	TagProtocol    = "protocol"
	TagIP          = "ip"
	TagHost        = "host"
	TagMethod      = "method"
	TagPath        = "path"
	TagURL         = "url"
	TagUA          = "ua"
	TagLatency     = "latency"
	TagStatus      = "status"
	TagBody        = "body"
	TagQueryParams = "query_params"
	TagResBody     = "res_body"
	RequestID      = "request_id"
)

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag извлекает значение тега из контекста запроса
type FuncTag func(c *fiber.Ctx, d *data) interface{}

var allFuncTags = map[string]FuncTag{
	TagPid: func(c *fiber.Ctx, d *data) interface{} {
		return d.pid
	},
	TagReferer: func(c *fiber.Ctx, d *data) interface{} {
		return c.Get(fiber.HeaderReferer)
	},
	TagProtocol: func(c *fiber.Ctx, d *data) interface{} {
		return c.Protocol()
	},
	TagIP: func(c *fiber.Ctx, d *data) interface{} {
		return c.IP()
	},
	TagHost: func(c *fiber.Ctx, d *data) interface{} {
		return c.Hostname()
	},
	TagMethod: func(c *fiber.Ctx, d *data) interface{} {
		return c.Method()
	},
	TagPath: func(c *fiber.Ctx, d *data) interface{} {
		return c.Path()
	},
	TagURL: func(c *fiber.Ctx, d *data) interface{} {
		return c.OriginalURL()
	},
	TagUA: func(c *fiber.Ctx, d *data) interface{} {
		return c.Get(fiber.HeaderUserAgent)
	},
	TagLatency: func(c *fiber.Ctx, d *data) interface{} {
		return d.end.Sub(d.start).String()
	},
	TagStatus: func(c *fiber.Ctx, d *data) interface{} {
		return c.Response().StatusCode()
	},
	TagBody: func(c *fiber.Ctx, d *data) interface{} {
		return string(c.Body())
	},
	TagQueryParams: func(c *fiber.Ctx, d *data) interface{} {
		return c.Request().URI().QueryArgs().String()
	},
	TagResBody: func(c *fiber.Ctx, d *data) interface{} {
		return string(c.Response().Body())
	},
	RequestID: func(c *fiber.Ctx, d *data) interface{} {
		return c.GetRespHeader(fiber.HeaderXRequestID)
	},
}

// getFuncTagMap возвращает только теги, перечисленные в конфиге
func getFuncTagMap(cfg Config, d *data) map[string]FuncTag {
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := allFuncTags[tag]; ok {
			ftm[tag] = ft
		}
	}
	return ftm
}
