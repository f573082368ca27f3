package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assist-sh/assist/config"
)

func TestIsPathRestricted(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		patterns []string
		want     bool
	}{
		{"exact match", ".assist", []string{".assist", ".assist/**"}, true},
		{"glob match", ".assist/sessions/demo.json", []string{".assist", ".assist/**"}, true},
		{"no match", "notes.txt", []string{".assist", ".assist/**"}, false},
		{"dotfile", ".env", []string{".env"}, true},
		{"empty patterns", "anything", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := isPathRestricted(tt.path, tt.patterns)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsPathRestrictedBadPattern(t *testing.T) {
	_, err := isPathRestricted("x", []string{"["})
	assert.Error(t, err)
}

func TestIsCommandAllowed(t *testing.T) {
	tests := []struct {
		name    string
		command string
		allowed []string
		want    bool
	}{
		{"regex match", "git status", []string{"^git .*"}, true},
		{"regex miss", "rm -rf /", []string{"^git .*", "^ls"}, false},
		{"exact entry", "ls", []string{"^ls$"}, true},
		{"empty command", "   ", []string{".*"}, false},
		{"bad regex falls back to exact", "ls [", []string{"ls ["}, true},
		{"bad regex no exact match", "ls", []string{"ls ["}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isCommandAllowed(tt.command, tt.allowed))
		})
	}
}

func TestRegistryBuiltins(t *testing.T) {
	r := NewRegistry(&config.Config{}, nil)

	for _, name := range []string{
		"get_current_working_directory",
		"list_files_and_dirs",
		"read_file",
		"create_directory",
		"create_file",
		"write_file",
		"get_git_history",
		"get_git_commit",
		"run_command",
	} {
		_, ok := r.Get(name)
		assert.True(t, ok, "builtin tool %q not registered", name)
	}
}

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry(&config.Config{}, nil)

	active, err := r.Resolve([]string{"read_file", "run_command"})
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "read_file", active[0].Name())

	_, err = r.Resolve([]string{"read_file", "not_a_tool"})
	assert.ErrorContains(t, err, "not_a_tool")
}

func TestRegistryRegisterReplaces(t *testing.T) {
	r := NewRegistry(&config.Config{}, nil)
	replacement := NewRunCommandTool([]string{"^echo"}, nil)
	r.Register(replacement)

	got, ok := r.Get("run_command")
	require.True(t, ok)
	assert.Same(t, replacement, got)
}

func TestObjectSchema(t *testing.T) {
	schema := objectSchema(map[string]interface{}{
		"path": stringProp("a path"),
	}, "path")

	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, []string{"path"}, schema["required"])

	// No required arguments still yields an array, which some providers insist on.
	empty := objectSchema(map[string]interface{}{})
	assert.Equal(t, []string{}, empty["required"])
}
