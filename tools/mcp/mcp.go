// Package mcp connects to Model Context Protocol servers and exposes their
// tools to the agent.
package mcp

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"

	"github.com/assist-sh/assist/errors"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Client manages the connection to a single MCP server subprocess.
type Client struct {
	Name  string
	cmd   *exec.Cmd
	conn  *mcpsdk.ClientSession
	tools []*Tool
}

// NewClient starts the MCP server subprocess, connects to it and discovers
// the tools it provides.
func NewClient(ctx context.Context, name, command string, args []string) (*Client, error) {
	cmd := exec.Command(command, args...)
	cmd.Stderr = os.Stderr

	mcpClient := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "assist", Version: "v1.0.0"}, nil)
	conn, err := mcpClient.Connect(ctx, mcpsdk.NewCommandTransport(cmd))
	if err != nil {
		if cmd.Process != nil {
			cmd.Process.Kill()
		}
		return nil, errors.Wrapf(err, "failed to connect to MCP server '%s'", name)
	}

	client := &Client{Name: name, cmd: cmd, conn: conn}

	params := &mcpsdk.ListToolsParams{}
	for {
		toolList, err := conn.ListTools(ctx, params)
		if err != nil {
			cmd.Process.Kill()
			return nil, errors.Wrapf(err, "failed to list tools from MCP server '%s'", name)
		}

		for _, t := range toolList.Tools {
			client.tools = append(client.tools, &Tool{
				serverName:  name,
				toolName:    t.Name,
				description: t.Description,
				parameters:  schemaToMap(t.InputSchema),
				client:      client,
			})
		}

		if toolList.NextCursor == "" {
			break
		}
		params.Cursor = toolList.NextCursor
	}

	return client, nil
}

// Tools returns the tools advertised by this server.
func (c *Client) Tools() []*Tool {
	return c.tools
}

// Stop terminates the MCP server subprocess.
func (c *Client) Stop() error {
	if c.conn != nil {
		c.conn.Close()
	}
	if c.cmd != nil && c.cmd.Process != nil {
		return c.cmd.Process.Kill()
	}
	return nil
}

// Tool is a single tool served by an MCP server. It satisfies the agent's
// tool interface without importing the tools package.
type Tool struct {
	serverName  string
	toolName    string
	description string
	parameters  map[string]interface{}
	client      *Client
}

// Name returns the tool's short name as advertised by the server. Qualified
// "<server>:<tool>" names are rejected by some providers, so the short name
// is used on the wire.
func (t *Tool) Name() string { return t.toolName }

// Description returns the tool's description, provided by the MCP server.
func (t *Tool) Description() string { return t.description }

// Parameters returns the tool's input schema as a generic JSON-schema map.
func (t *Tool) Parameters() map[string]interface{} { return t.parameters }

// Execute forwards the call to the MCP server and concatenates the text
// content of the result.
func (t *Tool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	result, err := t.client.conn.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      t.toolName,
		Arguments: args,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to call MCP tool '%s'", t.toolName)
	}

	out := ""
	for _, content := range result.Content {
		if text, ok := content.(*mcpsdk.TextContent); ok {
			out += text.Text
		}
	}
	return out, nil
}

// schemaToMap converts the SDK's schema representation into the generic map
// the LLM providers consume. Anything unconvertible degrades to an empty
// object schema.
func schemaToMap(schema any) map[string]interface{} {
	fallback := map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
	if schema == nil {
		return fallback
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return fallback
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return fallback
	}
	return m
}
