package types

type CompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type CompletionRequest struct {
	Model     string              `json:"model"`
	MaxTokens int                 `json:"max_tokens"`
	System    string              `json:"system"`
	Messages  []CompletionMessage `json:"messages"`
}

type CompletionContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type CompletionResponse struct {
	Content []CompletionContentBlock `json:"content"`
}
