package session

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/joshuapare/derkit/der"
	"github.com/joshuapare/derkit/der/edit"
	"github.com/joshuapare/derkit/der/printer"
	"github.com/joshuapare/derkit/internal/mmfile"
	"github.com/joshuapare/derkit/pkg/rpki"
	"github.com/joshuapare/derkit/pkg/types"
)

var (
	hexPattern    = regexp.MustCompile(`^(?:[0-9A-Fa-f]{2})+$`)
	base64Pattern = regexp.MustCompile(`^(?:[A-Za-z0-9+/]{4})*(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?$`)
)

// State is one editing session over a single object.
//
// State is NOT thread-safe.
type State struct {
	tree *der.Tree
	ed   *edit.Editor
	log  *zap.Logger
}

// New decodes data and parses it into a State. data is hex, optionally
// prefixed with "0x", or standard base64; surrounding whitespace is ignored.
// Hex wins when a string is valid as both.
func New(data string, opts ...Option) (*State, error) {
	raw, err := DecodeText(data)
	if err != nil {
		return nil, err
	}
	return fromBytes(raw, newConfig(opts))
}

// Open loads an object from a file holding hex or base64 text, or binary DER.
func Open(path string, opts ...Option) (*State, error) {
	c := newConfig(opts)
	raw, err := mmfile.Load(path, int64(c.parse.Limits.MaxInputSize)*2)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindInvalidInput, Msg: "cannot read " + path, Err: err}
	}
	if text, err := DecodeText(string(raw)); err == nil {
		raw = text
	}
	return fromBytes(raw, c)
}

// LoadExample starts a session from a skeleton object of type t.
func LoadExample(t rpki.ObjectType, opts ...Option) (*State, error) {
	tree, err := rpki.Example(t)
	if err != nil {
		return nil, err
	}
	c := newConfig(opts)
	return newState(tree, c.log), nil
}

// DecodeText turns hex or base64 text into bytes.
func DecodeText(data string) ([]byte, error) {
	s := strings.TrimSpace(data)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	switch {
	case s == "":
	case hexPattern.MatchString(s):
		b, err := hex.DecodeString(s)
		if err == nil {
			return b, nil
		}
	case base64Pattern.MatchString(s):
		b, err := base64.StdEncoding.DecodeString(s)
		if err == nil {
			return b, nil
		}
	}
	return nil, types.ErrInvalidInput
}

func fromBytes(raw []byte, c config) (*State, error) {
	tree, err := der.Parse(raw, c.parse)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindInvalidInput, Msg: "invalid data", Err: err}
	}
	if c.objType == rpki.Unknown {
		c.objType = rpki.Classify(tree)
	}
	tree.ObjType = c.objType.String()

	s := newState(tree, c.log)
	s.log.Debug("session opened",
		zap.Int("size", len(raw)),
		zap.Int("nodes", tree.Len()),
		zap.String("type", tree.ObjType),
	)
	return s, nil
}

func newState(tree *der.Tree, log *zap.Logger) *State {
	return &State{tree: tree, ed: edit.NewEditor(tree, log), log: log}
}

// Tree returns the underlying tree. Mutating it directly bypasses the
// validation the State methods perform.
func (s *State) Tree() *der.Tree {
	return s.tree
}

// ObjectType returns the object type used when bundling.
func (s *State) ObjectType() rpki.ObjectType {
	return rpki.FromString(s.tree.ObjType)
}

// SetObjectType overrides the classified object type.
func (s *State) SetObjectType(t rpki.ObjectType) {
	s.tree.ObjType = t.String()
}

// Nodes returns the pretty projection of every node as a JSON array.
func (s *State) Nodes() (string, error) {
	b, err := json.Marshal(printer.Project(s.tree))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Preview returns the first n nodes in pre-order.
func (s *State) Preview(n int) []printer.Node {
	return printer.Preview(s.tree, n)
}

// AddNode encodes text for tag and appends it under parent.
func (s *State) AddNode(tag byte, text string, parent types.NodeID, label string) (types.NodeID, error) {
	return s.ed.AddNode(tag, text, parent, label)
}

// AdaptNodeContent replaces the content of id with text encoded for its tag.
func (s *State) AdaptNodeContent(id types.NodeID, text string) error {
	return s.ed.AdaptContent(id, text)
}

// AdaptNodeLength sets the length written for id, whatever its real size.
func (s *State) AdaptNodeLength(id types.NodeID, length int) error {
	return s.ed.AdaptLength(id, length)
}

// AdaptNodeTag sets the identifier written for id.
func (s *State) AdaptNodeTag(id types.NodeID, tag byte) error {
	return s.ed.AdaptTag(id, tag)
}

// AdaptNodeLabel sets the label of id.
func (s *State) AdaptNodeLabel(id types.NodeID, label string) error {
	return s.ed.AdaptLabel(id, label)
}

// DragNode moves id to position index among newParent's children.
func (s *State) DragNode(id, newParent types.NodeID, index int) error {
	return s.ed.Drag(id, newParent, index)
}

// RemoveNode deletes id and its subtree.
func (s *State) RemoveNode(id types.NodeID) error {
	return s.ed.Remove(id)
}

// ExportBin encodes the tree.
func (s *State) ExportBin() []byte {
	return s.tree.Encode()
}

// ExportBase64 encodes the tree as standard base64.
func (s *State) ExportBase64() string {
	return base64.StdEncoding.EncodeToString(s.tree.Encode())
}
