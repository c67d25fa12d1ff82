package chatbotService

import (
	"ProjectGlimmer/internal/api/catalog"
	"ProjectGlimmer/pkg/log"
	"ProjectGlimmer/pkg/nlp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const fallbackResponse = "I'm not sure how to respond to that."

// productNameTriggers mark where a product name starts in the token stream.
// The name is everything after the first trigger that has tokens behind it.
var productNameTriggers = []string{"about", "product", "item", "is", "want", "show"}

// categoryKeywords are matched as substrings of the raw lowercased input, in
// this order. "earring" must stay ahead of "ring".
var categoryKeywords = []string{"earring", "watch", "ring", "sunglasses", "necklace", "bracelet"}

var paymentKeywords = []struct {
	keyword  string
	response string
}{
	{"online payment", "We accept online payment in eSewa."},
	{"esewa", "We accept online payment in eSewa."},
	{"cash", "We accept cash on delivery as well."},
	{"card", "We currently donot have a system to accept cards.We can do esewa."},
}

const customerServiceDefault = "You can contact our support team at glimmerservice@mail.com or call +977 9841123456."

var customerServiceFAQs = []struct {
	keyword  string
	response string
}{
	{"refund", "Refunds are processed within 5-7 business days after receiving the returned product."},
	{"cancel order", "To cancel an order, go to your orders page and click on the cancel button for the relevant order."},
	{"track order", "You can track your order on our tracking page using the order ID sent to your email."},
	{"complaint", "We are sorry to hear about your complaint. Please provide details, and we will resolve it promptly."},
	{"damaged product", "If you received a damaged product, please contact our support team with a photo of the product."},
	{"exchange", "You can exchange products within 15 days of delivery. Visit the exchanges page for more details."},
	{"contact support", customerServiceDefault},
	{"work hour", "Our support team is available from 9 AM to 6 PM, Monday to Saturday."},
}

// respond turns a classified intent into the reply text. rawInput is the
// untokenized message, keyword intents match against it directly.
func (s *chatbotService) respond(ctx context.Context, model *nlp.TrainedModel, intent nlp.Intent, rawInput string, tokens []string) string {
	switch intent {
	case nlp.IntentProductSearch:
		candidate := s.extractProductName(tokens)
		if candidate == "" {
			return "Sorry, I couldn't understand the product you're asking about."
		}
		return s.productDetails(ctx, candidate)

	case nlp.IntentCategorySearch:
		category := extractCategoryName(rawInput)
		if category == "" {
			return "Sorry, we don’t have products in the category you're asking about."
		}
		return s.categoryListing(ctx, category)

	case nlp.IntentOrderStatus:
		return "Please provide your order ID, and I’ll check the status for you."

	case nlp.IntentReturnPolicy:
		return "You can return any product within 30 days of purchase. Visit our returns page for more details."

	case nlp.IntentPaymentInquiry:
		return paymentResponse(rawInput)

	case nlp.IntentShippingInquiry:
		return "Shipping usually takes 5-7 business days. You can track your order on our tracking page."

	case nlp.IntentCustomerService:
		return customerServiceResponse(rawInput)

	case nlp.IntentFeedback:
		return "You can leave feedback on the product page or through our contact page."

	case nlp.IntentGreeting:
		return s.pickResponse(model, string(nlp.IntentGreeting))

	case nlp.IntentFarewell:
		return s.pickResponse(model, string(nlp.IntentFarewell))

	case nlp.IntentHelp:
		return "I’m here to help! Let me know what you need assistance with."
	}

	return fallbackResponse
}

// extractProductName builds the storage-format candidate name from the
// tokens following the first trigger word. With no trigger the whole token
// sequence is the candidate.
func (s *chatbotService) extractProductName(tokens []string) string {
	for _, trigger := range productNameTriggers {
		idx := slices.Index(tokens, trigger)
		if idx >= 0 && idx+1 < len(tokens) {
			name := strings.Join(tokens[idx+1:], " ")
			return s.utils.Capitalize(strings.ReplaceAll(name, " ", "_"))
		}
	}

	name := strings.Join(tokens, " ")
	return s.utils.Capitalize(strings.ReplaceAll(name, " ", "_"))
}

func extractCategoryName(rawInput string) string {
	lowered := strings.ToLower(rawInput)
	for _, category := range categoryKeywords {
		if strings.Contains(lowered, category) {
			return category
		}
	}
	return ""
}

func (s *chatbotService) productDetails(ctx context.Context, candidate string) string {
	product, err := s.products.FindProductByName(ctx, candidate)
	if err != nil {
		if !errors.Is(err, catalog.ErrProductNotFound) {
			s.log.WithFields(log.Fields{
				"candidate": candidate,
				"error":     err.Error(),
			}).Warn("Product lookup failed")
		}
		return fmt.Sprintf("Sorry, we couldn't find a product named <strong>'%s'</strong>.", candidate)
	}

	return fmt.Sprintf("We have <strong>%s</strong> : Rs.%s.<br>",
		s.utils.DisplayName(product.Name), formatPrice(product.Price))
}

func (s *chatbotService) categoryListing(ctx context.Context, categoryName string) string {
	products, err := s.categories.ProductsInCategory(ctx, categoryName)
	if err != nil {
		if !errors.Is(err, catalog.ErrCategoryNotFound) {
			s.log.WithFields(log.Fields{
				"category": categoryName,
				"error":    err.Error(),
			}).Warn("Category lookup failed")
		}
		return fmt.Sprintf("Sorry, we couldn't find any products in the <strong>'%s'</strong> category.", categoryName)
	}

	if len(products) == 0 {
		return fmt.Sprintf("Sorry, we couldn't find any products in the <strong>'%s'</strong> category.", categoryName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are the available products in the <strong>'%s'</strong> category:<br>", categoryName)
	for _, product := range products {
		fmt.Fprintf(&b, "<strong>%s</strong> - Rs.%s<br>",
			s.utils.DisplayName(product.Name), formatPrice(product.Price))
	}

	return b.String()
}

func paymentResponse(rawInput string) string {
	lowered := strings.ToLower(rawInput)
	for _, entry := range paymentKeywords {
		if strings.Contains(lowered, entry.keyword) {
			return entry.response
		}
	}
	return "We accept both cash on delivery or eSewa payment if online payment is preferred."
}

func customerServiceResponse(rawInput string) string {
	lowered := strings.ToLower(rawInput)
	for _, entry := range customerServiceFAQs {
		if strings.Contains(lowered, entry.keyword) {
			return entry.response
		}
	}
	return customerServiceDefault
}

// pickResponse draws one of the corpus replies configured for the tag.
func (s *chatbotService) pickResponse(model *nlp.TrainedModel, tag string) string {
	responses := model.Responses(tag)
	if len(responses) == 0 {
		return fallbackResponse
	}

	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return responses[s.rng.Intn(len(responses))]
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
