package receiver

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"kafkaBridge/internal/domain"
	"kafkaBridge/internal/ports"
)

// maxBodyBytes — предел тела запроса. Координата короткая, тело длиннее отклоняется с 413.
const maxBodyBytes = 1 << 10

// Controller — маршрут получателя: POST /location.
type Controller struct {
	uc  ports.IReceiverUseCase
	log *slog.Logger
}

// New создаёт контроллер получателя.
func New(uc ports.IReceiverUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.POST("/location", c.updateLocation)
}

// @Summary Принять координату
// @Description Пустое тело — 200 без действий. Иначе тело "<lat>,<lon>" обрабатывается как сообщение из брокера.
// @Tags receiver
// @Accept plain
// @Success 200
// @Failure 400 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Router /location [post]
func (c *Controller) updateLocation(ctx *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBodyBytes))
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		c.log.Warn("receiver read body failed", "status", status, "error", err)
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	if err := c.uc.UpdateLocation(ctx.Request.Context(), string(body)); err != nil {
		if errors.Is(err, domain.ErrMalformedLocation) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.log.Error("receiver update failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusOK)
}
