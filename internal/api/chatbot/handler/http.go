package chatbotHandler

import (
	chatbotService "ProjectGlimmer/internal/api/chatbot/service"
	"ProjectGlimmer/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type ChatbotHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	chatbotService chatbotService.IChatbotService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs chatbotService.IChatbotService,
) *ChatbotHandler {
	return &ChatbotHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		chatbotService: cs,
	}
}

func (h *ChatbotHandler) Start(srv fiber.Router) {
	chatbot := srv.Group("/chatbot")

	// Guests and logged-in shoppers share the chat endpoint; a valid bearer
	// token upgrades the exchange to a persisted transcript.
	chatbot.Get("/message", h.middleware.NewRateLimiter, h.middleware.NewOptionalTokenMiddleware, h.Chat)
	chatbot.Post("/message", h.middleware.NewRateLimiter, h.middleware.NewOptionalTokenMiddleware, h.Chat)
	chatbot.Get("/analysis", h.middleware.NewRateLimiter, h.Analyze)

	chatbot.Get("/history", h.middleware.NewTokenMiddleware, h.GetHistory)
	chatbot.Delete("/history", h.middleware.NewTokenMiddleware, h.ClearHistory)

	chatbot.Use("/ws", h.upgradeWebsocket)
	chatbot.Get("/ws", websocket.New(h.ChatSocket))
}

func (h *ChatbotHandler) upgradeWebsocket(ctx *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(ctx) {
		ctx.Locals("allowed", true)
		return ctx.Next()
	}
	return fiber.ErrUpgradeRequired
}
