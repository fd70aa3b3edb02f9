package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name   string
		tag    string
		params Params
		want   string
	}{
		{"known tag", TagChatGPT, Params{}, "openai/gpt-oss-20b:free"},
		{"llama tag", TagLLaMA, Params{}, "meta-llama/llama-3.3-70b-instruct:free"},
		{"override wins", TagGemini, Params{ModelOverride: "google/gemini-pro"}, "google/gemini-pro"},
		{"unknown tag passes through", "qwen/qwen-2.5:free", Params{}, "qwen/qwen-2.5:free"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveModel(tt.tag, tt.params))
		})
	}
}

func TestBuildRequest(t *testing.T) {
	p := DefaultParams()
	req := BuildRequest(TagDeepSeek, "What is entropy?", p)

	assert.Equal(t, "deepseek/deepseek-r1-0528-qwen3-8b:free", req.Model)
	assert.Equal(t, p.SystemPrompt(), req.System)
	assert.Equal(t, "What is entropy?", req.User)
}

func TestBuildRequest_PromptVerbatim(t *testing.T) {
	raw := "  line one\n\t<b>html</b> & \"quotes\" | pipes  "
	req := BuildRequest(TagChatGPT, raw, Params{})
	assert.Equal(t, raw, req.User, "prompt text is carried verbatim")
}

func TestTags_CoverTheTable(t *testing.T) {
	for _, tag := range Tags() {
		assert.Contains(t, modelTable, tag)
	}
	assert.Len(t, Tags(), len(modelTable))
}
