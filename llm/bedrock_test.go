package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assist-sh/assist/session"
	"github.com/assist-sh/assist/tools"
)

type stubTool struct {
	name string
}

func (s *stubTool) Name() string        { return s.name }
func (s *stubTool) Description() string { return "stub tool" }
func (s *stubTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"path": map[string]interface{}{"type": "string", "description": "a path"},
		},
		"required": []string{"path"},
	}
}

func (s *stubTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	return "", nil
}

func TestConvertMessagesToBedrockFormat(t *testing.T) {
	messages := []session.Message{
		{Role: "system", Content: "You are helpful."},
		{Role: "user", Content: "list my files"},
		{Role: "assistant", ToolCalls: []session.ToolCall{
			{ToolCallID: "call_1", Name: "list_files_and_dirs", Args: map[string]interface{}{"path": "."}},
		}},
		{Role: "tool", Content: "Files: a.txt", ToolCalls: []session.ToolCall{
			{ToolCallID: "call_1", Name: "list_files_and_dirs"},
		}},
	}

	bedrockMessages, systemPrompt := convertMessagesToBedrockFormat(messages)

	assert.Equal(t, "You are helpful.", systemPrompt)
	require.Len(t, bedrockMessages, 3)

	assert.Equal(t, "user", bedrockMessages[0]["role"])

	assistant := bedrockMessages[1]
	assert.Equal(t, "assistant", assistant["role"])
	content := assistant["content"].([]map[string]interface{})
	require.Len(t, content, 1)
	assert.Equal(t, "tool_use", content[0]["type"])
	assert.Equal(t, "call_1", content[0]["id"])

	toolResult := bedrockMessages[2]
	assert.Equal(t, "user", toolResult["role"])
	resultContent := toolResult["content"].([]map[string]interface{})
	require.Len(t, resultContent, 1)
	assert.Equal(t, "tool_result", resultContent[0]["type"])
	assert.Equal(t, "call_1", resultContent[0]["tool_use_id"])
	assert.Equal(t, "Files: a.txt", resultContent[0]["content"])
}

func TestConvertMessagesSkipsMalformedToolMessage(t *testing.T) {
	messages := []session.Message{
		{Role: "tool", Content: "orphaned result"},
	}
	bedrockMessages, _ := convertMessagesToBedrockFormat(messages)
	assert.Empty(t, bedrockMessages)
}

func TestCreateBedrockRequest(t *testing.T) {
	messages := []map[string]interface{}{
		{"role": "user", "content": []map[string]interface{}{{"type": "text", "text": "hi"}}},
	}

	body, err := createBedrockRequest(messages, "be terse", []tools.Tool{&stubTool{name: "read_file"}})
	require.NoError(t, err)

	var request map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &request))

	assert.Equal(t, "bedrock-2023-05-31", request["anthropic_version"])
	assert.Equal(t, float64(4096), request["max_tokens"])
	assert.Equal(t, "be terse", request["system"])

	toolDecls := request["tools"].([]interface{})
	require.Len(t, toolDecls, 1)
	decl := toolDecls[0].(map[string]interface{})
	assert.Equal(t, "read_file", decl["name"])

	schema := decl["input_schema"].(map[string]interface{})
	assert.Equal(t, "object", schema["type"])
	props := schema["properties"].(map[string]interface{})
	assert.Contains(t, props, "path")
}

func TestCreateBedrockRequestOmitsEmptySections(t *testing.T) {
	body, err := createBedrockRequest(nil, "", nil)
	require.NoError(t, err)

	var request map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &request))
	assert.NotContains(t, request, "system")
	assert.NotContains(t, request, "tools")
}

func TestProcessBedrockResponse(t *testing.T) {
	body := []byte(`{
		"content": [
			{"type": "text", "text": "Let me check."},
			{"type": "tool_use", "id": "toolu_1", "name": "read_file", "input": {"path": "a.txt"}}
		]
	}`)

	msg, err := processBedrockResponse(body)
	require.NoError(t, err)
	assert.Equal(t, "assistant", msg.Role)
	assert.Equal(t, "Let me check.", msg.Content)
	require.Len(t, msg.ToolCalls, 1)
	assert.Equal(t, "toolu_1", msg.ToolCalls[0].ToolCallID)
	assert.Equal(t, "read_file", msg.ToolCalls[0].Name)
	assert.Equal(t, "a.txt", msg.ToolCalls[0].Args["path"])
}

func TestProcessBedrockResponseMissingToolUseID(t *testing.T) {
	body := []byte(`{
		"content": [
			{"type": "tool_use", "name": "read_file", "input": {}}
		]
	}`)

	msg, err := processBedrockResponse(body)
	require.NoError(t, err)
	require.Len(t, msg.ToolCalls, 1)
	assert.Equal(t, "call_0_read_file", msg.ToolCalls[0].ToolCallID)
}

func TestProcessBedrockResponseError(t *testing.T) {
	_, err := processBedrockResponse([]byte(`{"error": "model not found"}`))
	assert.ErrorContains(t, err, "model not found")
}

func TestProcessBedrockResponseEmpty(t *testing.T) {
	msg, err := processBedrockResponse([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, msg.Content)
	assert.Empty(t, msg.ToolCalls)
}
