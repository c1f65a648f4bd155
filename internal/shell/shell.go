// Package shell maps tokenized command lines onto virtual filesystem
// operations. It is the dispatcher between a UI (REPL or HTTP) and the
// core tree: commands come in as a name plus already-split arguments, and
// failures come back as error strings the UI forwards verbatim.
package shell

import (
	"fmt"
	"strings"

	"questfs/internal/core"
)

// UsageError reports a command invoked with the wrong arguments.
type UsageError struct {
	Cmd   string
	Usage string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: usage: %s", e.Cmd, e.Usage)
}

// UnknownCommandError reports an unrecognized command name.
type UnknownCommandError struct {
	Cmd string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("%s: command not found", e.Cmd)
}

// Dispatcher executes commands against a single tree.
type Dispatcher struct {
	tree *core.Tree
}

func New(tree *core.Tree) *Dispatcher {
	return &Dispatcher{tree: tree}
}

// Tree returns the tree the dispatcher operates on.
func (d *Dispatcher) Tree() *core.Tree { return d.tree }

// Split tokenizes a raw command line on whitespace. The first word is the
// command name, the rest are arguments; an empty line yields an empty name.
func Split(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

// Exec runs one command and returns its output. Mutating commands return
// empty output on success. The error, when non-nil, is the human-readable
// status for the UI.
func (d *Dispatcher) Exec(name string, args []string) (string, error) {
	switch name {
	case "mkdir":
		return d.mkdir(args)
	case "cd":
		if len(args) != 1 {
			return "", &UsageError{Cmd: "cd", Usage: "cd <path>"}
		}
		return "", d.tree.ChangeDirectory(args[0])
	case "ls":
		return d.ls(args)
	case "pwd":
		if len(args) != 0 {
			return "", &UsageError{Cmd: "pwd", Usage: "pwd"}
		}
		return d.tree.WorkingDirectory(), nil
	case "touch":
		if len(args) != 1 {
			return "", &UsageError{Cmd: "touch", Usage: "touch <name>"}
		}
		return "", d.tree.CreateFile(args[0])
	case "rm":
		if len(args) != 1 {
			return "", &UsageError{Cmd: "rm", Usage: "rm <path>"}
		}
		return "", d.tree.RemoveFile(args[0])
	case "rmdir":
		if len(args) != 1 {
			return "", &UsageError{Cmd: "rmdir", Usage: "rmdir <path>"}
		}
		return "", d.tree.RemoveDirectory(args[0])
	case "cat":
		if len(args) != 1 {
			return "", &UsageError{Cmd: "cat", Usage: "cat <path>"}
		}
		return d.tree.ReadFile(args[0])
	case "tree":
		return d.renderTree(args)
	case "help":
		return helpText, nil
	default:
		return "", &UnknownCommandError{Cmd: name}
	}
}

func (d *Dispatcher) mkdir(args []string) (string, error) {
	if len(args) == 2 && args[0] == "-p" {
		return "", d.tree.MakeDirectoryPath(args[1])
	}
	if len(args) != 1 {
		return "", &UsageError{Cmd: "mkdir", Usage: "mkdir [-p] <path>"}
	}
	return "", d.tree.MakeDirectory(args[0])
}

func (d *Dispatcher) ls(args []string) (string, error) {
	path := ""
	switch len(args) {
	case 0:
	case 1:
		path = args[0]
	default:
		return "", &UsageError{Cmd: "ls", Usage: "ls [path]"}
	}
	names, err := d.tree.List(path)
	if err != nil {
		return "", err
	}
	return strings.Join(names, "\n"), nil
}

func (d *Dispatcher) renderTree(args []string) (string, error) {
	path := ""
	switch len(args) {
	case 0:
	case 1:
		path = args[0]
	default:
		return "", &UsageError{Cmd: "tree", Usage: "tree [path]"}
	}
	return d.tree.Render(path)
}

const helpText = `commands:
  cd <path>         change directory
  ls [path]         list directory contents
  pwd               print working directory
  cat <path>        print file contents
  tree [path]       draw the directory tree
  mkdir [-p] <path> create a directory
  touch <name>      create an empty file
  rm <path>         remove a file
  rmdir <path>      remove a directory
  help              show this help`
