package sender

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kafkaBridge/internal/domain"
	"kafkaBridge/internal/ports"
)

// responsePrefix — тело ответа: "Updated location :true" / "Updated location :false".
const responsePrefix = "Updated location :"

// Controller — маршрут отправителя: POST /api/v1/send/location.
type Controller struct {
	uc  ports.ISenderUseCase
	log *slog.Logger
}

// New создаёт контроллер отправителя.
func New(uc ports.ISenderUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1/send")

	api.POST("/location", c.sendLocation)
}

// @Summary Опубликовать случайную координату
// @Description Тело запроса игнорируется. Генерирует "<lat>,<lon>" и публикует в топик.
// @Tags sender
// @Produce plain
// @Success 200 {string} string "Updated location :true"
// @Failure 400 {string} string "Updated location :false (ошибка сериализации)"
// @Failure 503 {string} string "Updated location :false (брокер недоступен)"
// @Router /api/v1/send/location [post]
func (c *Controller) sendLocation(ctx *gin.Context) {
	_, err := c.uc.SendLocation(ctx.Request.Context())
	if err == nil {
		ctx.String(http.StatusOK, responsePrefix+strconv.FormatBool(true))
		return
	}

	status := http.StatusServiceUnavailable
	if errors.Is(err, domain.ErrSerialization) {
		status = http.StatusBadRequest
	}
	c.log.Warn("send location failed", "status", status, "error", err)
	ctx.String(status, responsePrefix+strconv.FormatBool(false))
}
