package chatbotHandler

import (
	"ProjectGlimmer/internal/api/chatbot"
	"ProjectGlimmer/internal/entity"
	contextPkg "ProjectGlimmer/pkg/context"
	"ProjectGlimmer/pkg/handlerUtil"
	jwtPkg "ProjectGlimmer/pkg/jwt"
	"ProjectGlimmer/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ChatbotHandler) Chat(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing chat message request")

	var req chatbot.ChatRequest
	if ctx.Method() == fiber.MethodPost {
		if err := ctx.BodyParser(&req); err != nil {
			return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
		}
	} else {
		req.Message = ctx.Query("message", "")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	var user *entity.UserLoginData
	if userData, err := jwtPkg.GetUserLoginData(ctx); err == nil {
		user = &userData
	}

	sessionID := h.resolveSessionID(ctx, user, requestID)

	result, err := h.chatbotService.Chat(c, sessionID, user, req.Message)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "chat_message")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *ChatbotHandler) Analyze(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing chat analysis request")

	req := chatbot.ChatRequest{
		Message: ctx.Query("message", ""),
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result, err := h.chatbotService.Analyze(c, req.Message)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "chat_analysis")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *ChatbotHandler) GetHistory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get chat history request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	result, err := h.chatbotService.GetHistory(c, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_chat_history")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *ChatbotHandler) ClearHistory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing clear chat history request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	sessionID := h.resolveSessionID(ctx, &userData, requestID)

	if err := h.chatbotService.ClearHistory(c, sessionID, userData.ID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "clear_chat_history")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Chat history cleared successfully",
		})
	}
}

// resolveSessionID keys the conversation transcript. Clients pass their own
// session header; logged-in users fall back to a per-user key so history
// survives across devices, guests fall back to the request ID.
func (h *ChatbotHandler) resolveSessionID(ctx *fiber.Ctx, user *entity.UserLoginData, requestID string) string {
	if sessionID := ctx.Get("X-Session-ID"); sessionID != "" {
		return sessionID
	}
	if user != nil {
		return "user:" + user.ID
	}
	return requestID
}
