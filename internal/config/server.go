package config

import (
	"ProjectGlimmer/database/postgres"
	catalogHandler "ProjectGlimmer/internal/api/catalog/handler"
	catalogRepository "ProjectGlimmer/internal/api/catalog/repository"
	catalogService "ProjectGlimmer/internal/api/catalog/service"
	chatbotHandler "ProjectGlimmer/internal/api/chatbot/handler"
	chatbotRepository "ProjectGlimmer/internal/api/chatbot/repository"
	chatbotService "ProjectGlimmer/internal/api/chatbot/service"
	"ProjectGlimmer/internal/middleware"
	"ProjectGlimmer/pkg/redis"
	"ProjectGlimmer/pkg/smtp"
	"ProjectGlimmer/pkg/utils"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	handlers    []handler
	redisServer redis.IRedis
	smtpMailer  smtp.ItfSmtp
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Catalog Domain
	catalogRepo := catalogRepository.New(s.db, s.log)
	catalogServices := catalogService.New(s.log, catalogRepo, s.utils)
	catalogHandlers := catalogHandler.New(s.log, s.validator, s.middleware, catalogServices)

	// Chatbot Domain
	corpusPath := os.Getenv("INTENT_CORPUS_PATH")
	if corpusPath == "" {
		corpusPath = "./data/intents.json"
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	chatbotRepo := chatbotRepository.New(s.db, s.log)
	chatbotServices := chatbotService.New(s.log, chatbotRepo, s.redisServer, s.smtpMailer, catalogServices, catalogServices, s.utils, corpusPath, rng)
	chatbotHandlers := chatbotHandler.New(s.log, s.validator, s.middleware, chatbotServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, catalogHandlers, chatbotHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
