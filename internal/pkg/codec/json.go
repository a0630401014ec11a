// Package codec holds the JSON configuration shared by the catalog file,
// the change journal and event payloads.
package codec

import jsoniter "github.com/json-iterator/go"

// JSON behaves like encoding/json except that it leaves <, > and & alone, so
// product text is written verbatim as UTF-8.
var JSON = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// Indent is the indentation step of the catalog file.
const Indent = "  "
