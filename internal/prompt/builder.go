package prompt

// Logical model tags shown in the sidebar. Each maps to exactly one default
// provider identifier on OpenRouter; an explicit ModelOverride wins.
const (
	TagChatGPT  = "ChatGPT"
	TagGemini   = "Gemini"
	TagMistral  = "mistral"
	TagLLaMA    = "LLaMA"
	TagDeepSeek = "DeepSeek"
	TagNvidia   = "nvidia"
)

var modelTable = map[string]string{
	TagChatGPT:  "openai/gpt-oss-20b:free",
	TagGemini:   "google/gemma-3-27b-it:free",
	TagMistral:  "z-ai/glm-4.5-air:free",
	TagLLaMA:    "meta-llama/llama-3.3-70b-instruct:free",
	TagDeepSeek: "deepseek/deepseek-r1-0528-qwen3-8b:free",
	TagNvidia:   "nvidia/llama-3.1-nemotron-ultra-253b-v1:free",
}

// Tags returns the logical model tags in sidebar order.
func Tags() []string {
	return []string{TagChatGPT, TagGemini, TagMistral, TagLLaMA, TagDeepSeek, TagNvidia}
}

// ResolveModel maps a logical tag to its provider identifier. An unknown tag
// passes through unchanged so callers can address OpenRouter models directly.
func ResolveModel(tag string, params Params) string {
	if params.ModelOverride != "" {
		return params.ModelOverride
	}
	if id, ok := modelTable[tag]; ok {
		return id
	}
	return tag
}

// Request is the structured payload handed to the gateway: a resolved model
// identifier and a two-message conversation (system + user).
type Request struct {
	Model  string
	System string
	User   string
}

// BuildRequest produces the request for one submission. The user prompt is
// carried verbatim: no escaping, no truncation.
func BuildRequest(tag, promptText string, params Params) Request {
	return Request{
		Model:  ResolveModel(tag, params),
		System: params.SystemPrompt(),
		User:   promptText,
	}
}
