package httpapi

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"github.com/i474232898/weather-chat/internal/chat"
)

const welcomeMessage = "Welcome to the Gemini chatbot API. Use POST /chat to ask weather questions."

const noMessageDetail = "No message provided."

var validate = validator.New()

// chatRequest is the POST /chat body.
type chatRequest struct {
	Message string `json:"message" validate:"required"`
}

// historyResponse is the GET /history body.
type historyResponse struct {
	ClientIP    string          `json:"client_ip"`
	ChatHistory []chat.Exchange `json:"chat_history"`
}

// ErrorHandler renders every error as {"detail": "..."}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"detail": err.Error(),
	})
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, router *chat.Router, history chat.HistoryStore, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": welcomeMessage})
	})

	app.Post("/chat", func(c *fiber.Ctx) error {
		var req chatRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		req.Message = strings.TrimSpace(req.Message)
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, noMessageDetail)
		}

		reply, err := router.Handle(c.UserContext(), chat.Message{
			Sender: c.IP(),
			Text:   req.Message,
		})
		if err != nil {
			if errors.Is(err, chat.ErrEmptyMessage) {
				return fiber.NewError(fiber.StatusBadRequest, noMessageDetail)
			}
			logger.Error("chat request failed",
				zap.String("request_id", requestID(c)),
				zap.String("client_ip", c.IP()),
				zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		return c.JSON(reply)
	})

	app.Get("/history", func(c *fiber.Ctx) error {
		ip := c.IP()
		return c.JSON(historyResponse{
			ClientIP:    ip,
			ChatHistory: history.History(ip),
		})
	})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
