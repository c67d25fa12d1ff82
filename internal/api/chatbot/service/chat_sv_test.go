package chatbotService

import (
	"ProjectGlimmer/internal/api/catalog"
	"ProjectGlimmer/internal/api/chatbot"
	chatbotRepository "ProjectGlimmer/internal/api/chatbot/repository"
	"ProjectGlimmer/internal/entity"
	"ProjectGlimmer/pkg/utils"
	"context"
	"errors"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

const testCorpusJSON = `{
  "intents": [
    {
      "tag": "greeting",
      "patterns": ["Hi", "Hi there", "Hello"],
      "responses": ["Hello! How can I help you today?", "Hi there! Looking for something shiny?"]
    },
    {
      "tag": "farewell",
      "patterns": ["Bye", "Goodbye for now"],
      "responses": ["Goodbye! Visit again soon."]
    },
    {
      "tag": "payment_inquiry",
      "patterns": ["Do you accept esewa", "Can I pay cash", "Is online payment available"],
      "responses": []
    },
    {
      "tag": "product_search",
      "patterns": ["Tell me about this product", "I want product details", "Do you have this item"],
      "responses": []
    },
    {
      "tag": "category_search",
      "patterns": ["Show me necklaces", "Show me earrings", "I want to see bracelets"],
      "responses": []
    },
    {
      "tag": "feedback",
      "patterns": ["I want to leave feedback", "I have a suggestion"],
      "responses": []
    }
  ]
}`

type fakeTranscripts struct {
	created  []entity.ChatMessage
	messages []entity.ChatMessage
	deleted  int64
}

func (f *fakeTranscripts) CreateChatMessage(_ context.Context, message entity.ChatMessage) error {
	f.created = append(f.created, message)
	return nil
}

func (f *fakeTranscripts) GetChatMessagesByUserID(_ context.Context, _ string, _ int) ([]entity.ChatMessage, error) {
	return f.messages, nil
}

func (f *fakeTranscripts) DeleteChatMessagesByUserID(_ context.Context, _ string) (int64, error) {
	return f.deleted, nil
}

type fakeRepository struct {
	transcripts *fakeTranscripts
}

func (f *fakeRepository) NewClient(_ bool) (chatbotRepository.Client, error) {
	return chatbotRepository.Client{
		Transcripts: f.transcripts,
		Commit:      func() error { return nil },
		Rollback:    func() error { return nil },
	}, nil
}

type fakeRedis struct {
	lists map[string][]entity.ChatEntry
}

func (f *fakeRedis) AppendChatEntry(_ context.Context, sessionID string, entry entity.ChatEntry, _ time.Duration) error {
	f.lists[sessionID] = append(f.lists[sessionID], entry)
	return nil
}

func (f *fakeRedis) GetChatHistory(_ context.Context, sessionID string) ([]entity.ChatEntry, error) {
	return f.lists[sessionID], nil
}

func (f *fakeRedis) ClearChatHistory(_ context.Context, sessionID string) error {
	delete(f.lists, sessionID)
	return nil
}

type fakeSMTP struct {
	labels   []string
	messages []string
}

func (f *fakeSMTP) SendFeedback(userLabel string, message string) error {
	f.labels = append(f.labels, userLabel)
	f.messages = append(f.messages, message)
	return nil
}

type fakeProducts struct {
	byName map[string]entity.Product
}

func (f *fakeProducts) FindProductByName(_ context.Context, name string) (entity.Product, error) {
	product, ok := f.byName[name]
	if !ok {
		return entity.Product{}, catalog.ErrProductNotFound
	}
	return product, nil
}

type fakeCategories struct {
	byCategory map[string][]entity.Product
}

func (f *fakeCategories) ProductsInCategory(_ context.Context, categoryName string) ([]entity.Product, error) {
	return f.byCategory[categoryName], nil
}

type testEnv struct {
	svc         IChatbotService
	transcripts *fakeTranscripts
	redis       *fakeRedis
	smtp        *fakeSMTP
	products    *fakeProducts
	categories  *fakeCategories
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	corpusPath := filepath.Join(t.TempDir(), "intents.json")
	if err := os.WriteFile(corpusPath, []byte(testCorpusJSON), 0o600); err != nil {
		t.Fatalf("writing test corpus: %v", err)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	env := &testEnv{
		transcripts: &fakeTranscripts{},
		redis:       &fakeRedis{lists: make(map[string][]entity.ChatEntry)},
		smtp:        &fakeSMTP{},
		products:    &fakeProducts{byName: make(map[string]entity.Product)},
		categories:  &fakeCategories{byCategory: make(map[string][]entity.Product)},
	}

	env.svc = New(
		logger,
		&fakeRepository{transcripts: env.transcripts},
		env.redis,
		env.smtp,
		env.products,
		env.categories,
		utils.New(),
		corpusPath,
		rand.New(rand.NewSource(1)),
	)

	return env
}

func TestChatGreeting(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.svc.Chat(context.Background(), "sess-1", nil, "Hi there")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if result.Intent != "greeting" {
		t.Fatalf("intent = %q, want greeting", result.Intent)
	}

	greetings := map[string]bool{
		"Hello! How can I help you today?":       true,
		"Hi there! Looking for something shiny?": true,
	}
	if !greetings[result.Response] {
		t.Errorf("response %q is not a configured greeting", result.Response)
	}

	if len(result.History) != 1 {
		t.Fatalf("history length = %d, want 1", len(result.History))
	}
	if result.History[0].User != "Hi there" || result.History[0].Bot != result.Response {
		t.Errorf("history entry = %+v", result.History[0])
	}
}

func TestChatPaymentEsewa(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.svc.Chat(context.Background(), "sess-1", nil, "Do you accept esewa")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if result.Intent != "payment_inquiry" {
		t.Fatalf("intent = %q, want payment_inquiry", result.Intent)
	}
	if want := "We accept online payment in eSewa."; result.Response != want {
		t.Errorf("response = %q, want %q", result.Response, want)
	}
}

func TestChatPaymentFallback(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.svc.Chat(context.Background(), "sess-1", nil, "Is online payment available")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	// "online payment" keyword matches before the generic fallback.
	if want := "We accept online payment in eSewa."; result.Response != want {
		t.Errorf("response = %q, want %q", result.Response, want)
	}
}

func TestChatCategoryListing(t *testing.T) {
	env := newTestEnv(t)
	env.categories.byCategory["necklace"] = []entity.Product{
		{Name: "Blue_necklace", Price: 500},
		{Name: "Silver_necklace", Price: 800},
	}

	result, err := env.svc.Chat(context.Background(), "sess-1", nil, "show me the blue necklace")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if result.Intent != "category_search" {
		t.Fatalf("intent = %q, want category_search", result.Intent)
	}

	want := "Here are the available products in the <strong>'necklace'</strong> category:<br>" +
		"<strong>Blue necklace</strong> - Rs.500<br>" +
		"<strong>Silver necklace</strong> - Rs.800<br>"
	if result.Response != want {
		t.Errorf("response = %q, want %q", result.Response, want)
	}
}

func TestChatCategoryEmpty(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.svc.Chat(context.Background(), "sess-1", nil, "show me the blue necklace")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	want := "Sorry, we couldn't find any products in the <strong>'necklace'</strong> category."
	if result.Response != want {
		t.Errorf("response = %q, want %q", result.Response, want)
	}
}

func TestChatProductFound(t *testing.T) {
	env := newTestEnv(t)
	env.products.byName["Blue_necklace"] = entity.Product{Name: "Blue_necklace", Price: 500}

	// "Tell me" matches product_search training patterns without leaning on
	// the i/want tokens the feedback record also trains on.
	result, err := env.svc.Chat(context.Background(), "sess-1", nil, "Tell me about blue necklace")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if result.Intent != "product_search" {
		t.Fatalf("intent = %q, want product_search", result.Intent)
	}
	if want := "We have <strong>Blue necklace</strong> : Rs.500.<br>"; result.Response != want {
		t.Errorf("response = %q, want %q", result.Response, want)
	}
}

func TestChatProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.svc.Chat(context.Background(), "sess-1", nil, "I want about Product XYZ")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if result.Intent != "product_search" {
		t.Fatalf("intent = %q, want product_search", result.Intent)
	}
	if want := "Sorry, we couldn't find a product named <strong>'Product_xyz'</strong>."; result.Response != want {
		t.Errorf("response = %q, want %q", result.Response, want)
	}
}

func TestChatEmptyMessage(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.svc.Chat(context.Background(), "sess-1", nil, "")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if want := "Please enter a message..."; result.Response != want {
		t.Errorf("response = %q, want %q", result.Response, want)
	}
	if len(result.History) != 0 {
		t.Errorf("empty message must not be recorded, history = %v", result.History)
	}
	if len(env.smtp.messages) != 0 {
		t.Errorf("empty message must not trigger feedback forwarding")
	}
}

func TestChatFeedbackForwarded(t *testing.T) {
	env := newTestEnv(t)
	user := &entity.UserLoginData{ID: "u-1", Username: "asha", Email: "asha@example.com"}

	result, err := env.svc.Chat(context.Background(), "sess-1", user, "I have a suggestion")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if result.Intent != "feedback" {
		t.Fatalf("intent = %q, want feedback", result.Intent)
	}
	if want := "You can leave feedback on the product page or through our contact page."; result.Response != want {
		t.Errorf("response = %q, want %q", result.Response, want)
	}

	if len(env.smtp.messages) != 1 || env.smtp.messages[0] != "I have a suggestion" {
		t.Errorf("smtp messages = %v", env.smtp.messages)
	}
	if env.smtp.labels[0] != "asha" {
		t.Errorf("smtp label = %q, want asha", env.smtp.labels[0])
	}
}

func TestChatPersistsForAuthenticatedUser(t *testing.T) {
	env := newTestEnv(t)
	user := &entity.UserLoginData{ID: "u-1", Username: "asha", Email: "asha@example.com"}

	if _, err := env.svc.Chat(context.Background(), "sess-1", user, "Hi there"); err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if len(env.transcripts.created) != 1 {
		t.Fatalf("persisted messages = %d, want 1", len(env.transcripts.created))
	}

	message := env.transcripts.created[0]
	if message.UserID != "u-1" || message.UserText != "Hi there" || message.Intent != "greeting" {
		t.Errorf("persisted message = %+v", message)
	}
	if message.ID == "" {
		t.Errorf("persisted message has empty ID")
	}
}

func TestChatGuestNotPersisted(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.svc.Chat(context.Background(), "sess-1", nil, "Hi there"); err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if len(env.transcripts.created) != 0 {
		t.Errorf("guest chat must not be persisted, got %d messages", len(env.transcripts.created))
	}
}

func TestChatCorpusUnavailable(t *testing.T) {
	env := newTestEnv(t)
	broken := env.svc.(*chatbotService)
	broken.corpusPath = filepath.Join(t.TempDir(), "missing.json")

	_, err := env.svc.Chat(context.Background(), "sess-1", nil, "Hi there")
	if !errors.Is(err, chatbot.ErrCorpusUnavailable) {
		t.Fatalf("err = %v, want ErrCorpusUnavailable", err)
	}
}

func TestGetHistory(t *testing.T) {
	env := newTestEnv(t)
	env.transcripts.messages = []entity.ChatMessage{
		{ID: "m-1", UserID: "u-1", UserText: "Hi", BotText: "Hello!", Intent: "greeting"},
		{ID: "m-2", UserID: "u-1", UserText: "Bye", BotText: "Goodbye!", Intent: "farewell"},
	}

	result, err := env.svc.GetHistory(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}

	if result.Total != 2 || len(result.Messages) != 2 {
		t.Fatalf("result = %+v", result)
	}
	if result.Messages[0].ID != "m-1" || result.Messages[1].Intent != "farewell" {
		t.Errorf("messages = %+v", result.Messages)
	}
}

func TestClearHistory(t *testing.T) {
	env := newTestEnv(t)
	env.transcripts.deleted = 2
	env.redis.lists["sess-1"] = []entity.ChatEntry{{User: "Hi", Bot: "Hello!"}}

	if err := env.svc.ClearHistory(context.Background(), "sess-1", "u-1"); err != nil {
		t.Fatalf("ClearHistory: %v", err)
	}

	if _, ok := env.redis.lists["sess-1"]; ok {
		t.Errorf("session history was not cleared")
	}
}

func TestClearHistoryNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.transcripts.deleted = 0

	err := env.svc.ClearHistory(context.Background(), "", "u-1")
	if !errors.Is(err, chatbot.ErrHistoryNotFound) {
		t.Fatalf("err = %v, want ErrHistoryNotFound", err)
	}
}
