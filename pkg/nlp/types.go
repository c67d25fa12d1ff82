package nlp

// Intent is the tag of a classifiable user-request category.
type Intent string

const (
	IntentNone            Intent = "none"
	IntentGreeting        Intent = "greeting"
	IntentFarewell        Intent = "farewell"
	IntentProductSearch   Intent = "product_search"
	IntentCategorySearch  Intent = "category_search"
	IntentOrderStatus     Intent = "order_status"
	IntentReturnPolicy    Intent = "return_policy"
	IntentPaymentInquiry  Intent = "payment_inquiry"
	IntentShippingInquiry Intent = "shipping_inquiry"
	IntentCustomerService Intent = "customer_service"
	IntentFeedback        Intent = "feedback"
	IntentHelp            Intent = "help"
)

// IntentRecord is one entry of the training corpus: a tag, the example
// phrases it is trained on, and the canned replies the router may pick from.
type IntentRecord struct {
	Tag       string   `json:"tag"`
	Patterns  []string `json:"patterns"`
	Responses []string `json:"responses"`
}

// TrainedModel holds the word statistics for one training pass. It is built
// fresh from the corpus, never mutated afterwards, and safe to share between
// goroutines.
type TrainedModel struct {
	// Tags in corpus order. Classification iterates this slice so that
	// ties break deterministically on the first tag encountered.
	Tags []string

	WordCounts   map[string]map[string]int
	IntentCounts map[string]int
	TokenTotals  map[string]int
	Vocabulary   map[string]struct{}
	VocabSize    int

	// TotalPatterns is the prior denominator: every training pattern
	// contributes one unit of prior mass to its tag.
	TotalPatterns int

	responses map[string][]string
}

// Responses returns the configured reply list for a tag, if the model kept
// one for it.
func (m *TrainedModel) Responses(tag string) []string {
	return m.responses[tag]
}

// ClassificationResult is the outcome of scoring an input against the model.
type ClassificationResult struct {
	// BestIntent is the arg-max tag, or IntentNone for an empty model.
	BestIntent Intent

	// Probabilities maps every tag to its share of the probability mass,
	// scaled to percentages summing to 100. Nil when not requested or when
	// the total mass underflowed to zero.
	Probabilities map[string]float64
}
