package chatbotService

import (
	"ProjectGlimmer/internal/api/chatbot"
	chatbotRepository "ProjectGlimmer/internal/api/chatbot/repository"
	"ProjectGlimmer/internal/entity"
	"ProjectGlimmer/pkg/nlp"
	redisPkg "ProjectGlimmer/pkg/redis"
	smtpPkg "ProjectGlimmer/pkg/smtp"
	"ProjectGlimmer/pkg/utils"
	"context"
	"math/rand"
	"sync"

	"github.com/sirupsen/logrus"
)

// ProductCatalog is the slice of the catalog the intent router needs for
// single product lookups.
type ProductCatalog interface {
	FindProductByName(ctx context.Context, name string) (entity.Product, error)
}

// CategoryCatalog lists products for a recognized category keyword.
type CategoryCatalog interface {
	ProductsInCategory(ctx context.Context, categoryName string) ([]entity.Product, error)
}

type IChatbotService interface {
	Chat(ctx context.Context, sessionID string, user *entity.UserLoginData, message string) (chatbot.ChatResponse, error)
	Analyze(ctx context.Context, message string) (chatbot.AnalysisResponse, error)
	GetHistory(ctx context.Context, userID string) (chatbot.HistoryResponse, error)
	ClearHistory(ctx context.Context, sessionID string, userID string) error
}

type chatbotService struct {
	log         *logrus.Logger
	chatbotRepo chatbotRepository.Repository
	redis       redisPkg.IRedis
	smtp        smtpPkg.ItfSmtp
	products    ProductCatalog
	categories  CategoryCatalog
	utils       utils.IUtils
	cache       *nlp.ModelCache
	corpusPath  string

	rngMu sync.Mutex
	rng   *rand.Rand
}

func New(
	log *logrus.Logger,
	chatbotRepo chatbotRepository.Repository,
	redis redisPkg.IRedis,
	smtp smtpPkg.ItfSmtp,
	products ProductCatalog,
	categories CategoryCatalog,
	utils utils.IUtils,
	corpusPath string,
	rng *rand.Rand,
) IChatbotService {
	return &chatbotService{
		log:         log,
		chatbotRepo: chatbotRepo,
		redis:       redis,
		smtp:        smtp,
		products:    products,
		categories:  categories,
		utils:       utils,
		cache:       nlp.NewModelCache(),
		corpusPath:  corpusPath,
		rng:         rng,
	}
}
