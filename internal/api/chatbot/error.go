package chatbot

import "ProjectGlimmer/pkg/response"

var (
	ErrCorpusUnavailable = response.NewError(500, "intent corpus unavailable")
	ErrHistoryNotFound   = response.NewError(404, "chat history not found")
)
