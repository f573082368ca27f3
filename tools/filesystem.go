package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/assist-sh/assist/config"
	"github.com/assist-sh/assist/errors"
)

// ReadFileLimit caps how many bytes of a file are handed to the model so a
// single large file cannot blow up the context window.
const ReadFileLimit = 40000

// WorkingDirectoryTool reports the process working directory.
type WorkingDirectoryTool struct{}

func (t *WorkingDirectoryTool) Name() string { return "get_current_working_directory" }
func (t *WorkingDirectoryTool) Description() string {
	return "Returns the current working directory."
}
func (t *WorkingDirectoryTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{})
}

func (t *WorkingDirectoryTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrapf(err, "could not determine working directory")
	}
	return wd, nil
}

// ListDirectoryTool lists files and folders in a directory.
type ListDirectoryTool struct {
	fsAccess *config.FilesystemAccess
}

func (t *ListDirectoryTool) Name() string { return "list_files_and_dirs" }
func (t *ListDirectoryTool) Description() string {
	return "Lists all files and directories in a given path. Defaults to the current directory when no path is provided."
}
func (t *ListDirectoryTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"path": stringProp("Directory to list. Defaults to '.'."),
	})
}

func (t *ListDirectoryTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	path, _ := args["path"].(string)
	if path == "" {
		path = "."
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to list '%s'", path)
	}

	var files, folders []string
	for _, e := range entries {
		hidden, err := isPathRestricted(filepath.Join(path, e.Name()), t.fsAccess.Hidden)
		if err != nil {
			return "", err
		}
		if hidden {
			continue
		}
		if e.IsDir() {
			folders = append(folders, e.Name())
		} else {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	sort.Strings(folders)

	return fmt.Sprintf("Files: %s\nFolders: %s", strings.Join(files, ", "), strings.Join(folders, ", ")), nil
}

// ReadFileTool reads a file, truncated to ReadFileLimit bytes.
type ReadFileTool struct {
	fsAccess *config.FilesystemAccess
}

func (t *ReadFileTool) Name() string { return "read_file" }
func (t *ReadFileTool) Description() string {
	return fmt.Sprintf("Reads the content of a file, truncated to %d characters.", ReadFileLimit)
}
func (t *ReadFileTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"path": stringProp("Path of the file to read."),
	}, "path")
}

func (t *ReadFileTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	path, err := stringArg(args, "path")
	if err != nil {
		return "", err
	}
	if err := t.checkHidden(path); err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read file '%s'", path)
	}
	if info.IsDir() {
		return "", errors.New("'%s' is a directory, not a file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read file '%s'", path)
	}
	if len(data) > ReadFileLimit {
		return string(data[:ReadFileLimit]) + "\n... (file content truncated)", nil
	}
	return string(data), nil
}

func (t *ReadFileTool) checkHidden(path string) error {
	hidden, err := isPathRestricted(path, t.fsAccess.Hidden)
	if err != nil {
		return err
	}
	if hidden {
		return errors.New("access denied: path '%s' is hidden", path)
	}
	return nil
}

// CreateDirectoryTool creates a directory. It refuses to clobber existing
// paths so a confused model cannot silently reuse one.
type CreateDirectoryTool struct {
	fsAccess *config.FilesystemAccess
}

func (t *CreateDirectoryTool) Name() string { return "create_directory" }
func (t *CreateDirectoryTool) Description() string {
	return "Creates a directory at the specified path. Fails if the path already exists."
}
func (t *CreateDirectoryTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"path": stringProp("Path of the directory to create."),
	}, "path")
}

func (t *CreateDirectoryTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	path, err := stringArg(args, "path")
	if err != nil {
		return "", err
	}
	if err := checkWritable(path, t.fsAccess); err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return "", errors.New("path '%s' already exists", path)
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", errors.Wrapf(err, "failed to create directory '%s'", path)
	}
	return fmt.Sprintf("Successfully created directory: %s", path), nil
}

// CreateFileTool creates a new file with the given content. Fails if the
// file already exists.
type CreateFileTool struct {
	fsAccess *config.FilesystemAccess
}

func (t *CreateFileTool) Name() string { return "create_file" }
func (t *CreateFileTool) Description() string {
	return "Creates a file at the specified path with the given content. Fails if the file already exists."
}
func (t *CreateFileTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"path":    stringProp("Path of the file to create."),
		"content": stringProp("Content to write into the new file."),
	}, "path", "content")
}

func (t *CreateFileTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	path, err := stringArg(args, "path")
	if err != nil {
		return "", err
	}
	content, err := stringArg(args, "content")
	if err != nil {
		return "", err
	}
	if err := checkWritable(path, t.fsAccess); err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return "", errors.New("file '%s' already exists", path)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", errors.Wrapf(err, "failed to create file '%s'", path)
	}
	return fmt.Sprintf("Successfully created file: %s", path), nil
}

// WriteFileTool writes content to a file, replacing it entirely.
type WriteFileTool struct {
	fsAccess *config.FilesystemAccess
}

func (t *WriteFileTool) Name() string { return "write_file" }
func (t *WriteFileTool) Description() string {
	return "Writes content to a file, replacing any existing content."
}
func (t *WriteFileTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"path":    stringProp("Path of the file to write."),
		"content": stringProp("Content to write."),
	}, "path", "content")
}

func (t *WriteFileTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	path, err := stringArg(args, "path")
	if err != nil {
		return "", err
	}
	content, err := stringArg(args, "content")
	if err != nil {
		return "", err
	}
	if err := checkWritable(path, t.fsAccess); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", errors.Wrapf(err, "failed to write to file '%s'", path)
	}
	return fmt.Sprintf("Successfully wrote %d bytes to %s", len(content), path), nil
}

// checkWritable rejects paths that are hidden or declared read-only.
func checkWritable(path string, fs *config.FilesystemAccess) error {
	hidden, err := isPathRestricted(path, fs.Hidden)
	if err != nil {
		return err
	}
	if hidden {
		return errors.New("access denied: path '%s' is hidden", path)
	}
	readOnly, err := isPathRestricted(path, fs.ReadOnly)
	if err != nil {
		return err
	}
	if readOnly {
		return errors.New("access denied: path '%s' is read-only", path)
	}
	return nil
}
