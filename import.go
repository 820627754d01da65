package cashbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultImportPath locates the snapshot in a dump of the browser's local storage.
const DefaultImportPath = "$." + DefaultKey

// ImportSnapshot reads any JSON document from r, extracts the ledger snapshot
// found at the JSONPath path, and decodes it.
//
// The snapshot can be embedded as an object or as a JSON encoded string, the
// way browsers dump their local storage. Use "$" for a bare snapshot.
func ImportSnapshot(r io.Reader, path string) (*Ledger, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("could not parse export: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// jsonpath may return a list of one answer instead of the answer itself.
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		jval = jlist[0]
	}

	var raw []byte
	switch v := jval.(type) {
	case string:
		raw = []byte(v)
	case map[string]any:
		raw, err = json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("error re-encoding %q: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%q is not a snapshot: got %T", path, jval)
	}
	return DecodeLedger(bytes.NewReader(raw))
}
