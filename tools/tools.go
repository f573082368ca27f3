package tools

import (
	"context"
	"regexp"
	"strings"

	"github.com/assist-sh/assist/config"
	"github.com/assist-sh/assist/errors"
	"github.com/assist-sh/assist/tools/mcp"
	"github.com/bmatcuk/doublestar/v4"
)

// Tool defines the interface for any action the agent can take.
// Parameters returns a JSON-schema object describing the arguments, which is
// forwarded to the LLM provider's native tool declaration format.
type Tool interface {
	Name() string
	Description() string
	Parameters() map[string]interface{}
	Execute(ctx context.Context, args map[string]interface{}) (string, error)
}

// Registry holds every tool the current invocation may hand to an agent.
type Registry struct {
	tools      map[string]Tool
	mcpClients []*mcp.Client
}

// NewRegistry builds a registry with the builtin tools registered. The
// confirm function is consulted before any shell command is run; passing nil
// rejects every command.
func NewRegistry(cfg *config.Config, confirm func(prompt string) bool) *Registry {
	r := &Registry{tools: make(map[string]Tool)}

	fs := &cfg.FilesystemAccess
	r.Register(&WorkingDirectoryTool{})
	r.Register(&ListDirectoryTool{fsAccess: fs})
	r.Register(&ReadFileTool{fsAccess: fs})
	r.Register(&CreateDirectoryTool{fsAccess: fs})
	r.Register(&CreateFileTool{fsAccess: fs})
	r.Register(&WriteFileTool{fsAccess: fs})
	r.Register(&GitHistoryTool{})
	r.Register(&GitShowTool{})
	r.Register(&RunCommandTool{
		allowedCommands: cfg.AllowedCommands,
		confirm:         confirm,
	})

	return r
}

// Register adds a tool, replacing any previous tool with the same name.
func (r *Registry) Register(t Tool) {
	r.tools[t.Name()] = t
}

// Get returns a registered tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Resolve maps a list of tool names to tool instances. Unknown names are an
// error so a typo in a config toolset fails loudly instead of silently
// shrinking the agent's abilities.
func (r *Registry) Resolve(names []string) ([]Tool, error) {
	var active []Tool
	for _, name := range names {
		t, ok := r.Get(name)
		if !ok {
			return nil, errors.New("tool '%s' is not registered", name)
		}
		active = append(active, t)
	}
	return active, nil
}

// StartMCPServers launches the configured MCP server subprocesses and
// registers every tool they advertise. Call Close to terminate them.
func (r *Registry) StartMCPServers(ctx context.Context, servers []config.MCPServer) error {
	for _, srv := range servers {
		client, err := mcp.NewClient(ctx, srv.Name, srv.Command, srv.Args)
		if err != nil {
			return errors.Wrapf(err, "failed to start MCP server '%s'", srv.Name)
		}
		r.mcpClients = append(r.mcpClients, client)
		for _, t := range client.Tools() {
			r.Register(t)
		}
	}
	return nil
}

// MCPToolNames returns the names of every tool contributed by MCP servers,
// so callers can append them to an assistant's toolset.
func (r *Registry) MCPToolNames() []string {
	var names []string
	for _, c := range r.mcpClients {
		for _, t := range c.Tools() {
			names = append(names, t.Name())
		}
	}
	return names
}

// Close stops all MCP server subprocesses.
func (r *Registry) Close() {
	for _, c := range r.mcpClients {
		if err := c.Stop(); err != nil {
			// Shutdown is best effort; the process is exiting anyway.
			continue
		}
	}
	r.mcpClients = nil
}

// isPathRestricted checks if a path matches any of the glob patterns.
func isPathRestricted(path string, patterns []string) (bool, error) {
	for _, pattern := range patterns {
		match, err := doublestar.PathMatch(pattern, path)
		if err != nil {
			return false, errors.New("invalid glob pattern '%s': %v", pattern, err)
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}

// isCommandAllowed checks if a command matches the allowlist. Entries are
// treated as regular expressions; an entry that fails to compile falls back
// to an exact string comparison.
func isCommandAllowed(command string, allowed []string) bool {
	if len(strings.Fields(command)) == 0 {
		return false
	}

	for _, pattern := range allowed {
		re, err := regexp.Compile(pattern)
		if err != nil {
			if command == pattern {
				return true
			}
			continue
		}
		if re.MatchString(command) {
			return true
		}
	}
	return false
}

// objectSchema builds the JSON-schema object the providers expect for tool
// parameters.
func objectSchema(props map[string]interface{}, required ...string) map[string]interface{} {
	if required == nil {
		required = []string{}
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

func stringProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description}
}

func integerProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "integer", "description": description}
}

// stringArg extracts a required string argument from a tool call.
func stringArg(args map[string]interface{}, name string) (string, error) {
	v, ok := args[name].(string)
	if !ok {
		return "", errors.New("missing or invalid '%s' argument", name)
	}
	return v, nil
}
