// Package remote lets other devices drive a workspace over a websocket:
// pointer events, tool changes, delete and clear.
package remote

import (
	"errors"
	"fmt"

	"VecBoard/internal/geom"
	"VecBoard/internal/shape"
	"VecBoard/internal/workspace"
)

var ErrUnknownCommand = errors.New("remote: unknown command")

// Target is the part of a workspace remote clients may drive.
type Target interface {
	Handle(ev workspace.Event)
	SetActiveTool(kind shape.Kind) bool
	DeleteTool() bool
	ClearWorkspace() bool
}

var _ Target = (*workspace.Workspace)(nil)

// Command is one message from a remote client.
type Command struct {
	Type string  `json:"type"`
	X    float64 `json:"x,omitempty"`
	Y    float64 `json:"y,omitempty"`
	Tool string  `json:"tool,omitempty"`
}

// Reply answers every Command.
type Reply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

var eventKinds = map[string]workspace.EventKind{
	"press":   workspace.Press,
	"release": workspace.Release,
	"move":    workspace.Move,
	"drag":    workspace.Drag,
}

// Apply runs c against t. The bool is the result of tool, delete and clear
// commands; pointer events always report true.
func (c Command) Apply(t Target) (bool, error) {
	if kind, ok := eventKinds[c.Type]; ok {
		t.Handle(workspace.Event{Kind: kind, Pos: geom.Pt(c.X, c.Y)})
		return true, nil
	}
	switch c.Type {
	case "tool":
		return t.SetActiveTool(shape.Kind(c.Tool)), nil
	case "delete":
		return t.DeleteTool(), nil
	case "clear":
		return t.ClearWorkspace(), nil
	}
	return false, fmt.Errorf("%w %q", ErrUnknownCommand, c.Type)
}
