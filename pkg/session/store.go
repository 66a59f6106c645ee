package session

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/joshuapare/derkit/der"
	"github.com/joshuapare/derkit/pkg/types"
)

// StoreVersion is the version written by EncodeStore.
const StoreVersion = 1

//go:embed schema.json
var schemaJSON []byte

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
})

type stored struct {
	Version int       `json:"version"`
	Tree    *der.Tree `json:"tree"`
}

type schemaError struct {
	*gojsonschema.Result
}

func (e schemaError) Error() string {
	var b strings.Builder
	fmt.Fprint(&b, "stored state failed schema validation:")
	for _, desc := range e.Result.Errors() {
		fmt.Fprint(&b, "\n- ", desc)
	}
	return b.String()
}

func serializationError(msg string, err error) error {
	return &types.Error{Kind: types.ErrKindSerialization, Msg: msg, Err: err}
}

// EncodeStore serializes the whole session, labels and overrides included,
// for FromStored.
func (s *State) EncodeStore() (string, error) {
	b, err := json.Marshal(stored{Version: StoreVersion, Tree: s.tree})
	if err != nil {
		return "", serializationError("cannot encode state", err)
	}
	return string(b), nil
}

// FromStored restores a session written by EncodeStore. The blob is checked
// against the stored-state schema and the tree against its structural
// invariants before it is accepted.
func FromStored(blob string, opts ...Option) (*State, error) {
	schema, err := loadSchema()
	if err != nil {
		return nil, serializationError("schema unavailable", err)
	}
	result, err := schema.Validate(gojsonschema.NewStringLoader(blob))
	if err != nil {
		return nil, serializationError("invalid stored state", err)
	}
	if !result.Valid() {
		return nil, serializationError("invalid stored state", schemaError{result})
	}

	var st stored
	if err := json.Unmarshal([]byte(blob), &st); err != nil {
		return nil, serializationError("invalid stored state", err)
	}
	if st.Tree.Labels == nil {
		st.Tree.Labels = make(map[string]types.NodeID)
	}
	if err := st.Tree.Verify(); err != nil {
		return nil, serializationError("inconsistent stored tree", err)
	}

	c := newConfig(opts)
	return newState(st.Tree, c.log), nil
}
