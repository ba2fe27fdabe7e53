package llm

// Message is a single chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request describes one chat completion. Model pins the request to a single
// model: when set, the gateway never falls back. Temperature and MaxTokens
// override the configured defaults when non-zero.
type Request struct {
	Prompt      string
	System      string
	History     []Message
	Model       string
	Temperature float64
	MaxTokens   int
}

// Usage is the provider-reported token accounting.
type Usage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
}

// Response is a completed (non-streaming) chat result.
type Response struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Content string `json:"content"`
	Usage   Usage  `json:"usage"`
}

// Fragment is one element of a streamed completion. The sequence is finite
// and not restartable: zero or more content fragments, optionally one
// carrying Err, and exactly one terminal fragment with Done set.
type Fragment struct {
	Content string
	Done    bool
	Err     error
}
