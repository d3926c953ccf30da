package console

import (
	"fmt"
	"strings"

	"github.com/valyala/fastjson"
)

// Record is a single console call forwarded from the browser: the severity
// the page used (console.log, console.warn, ...) and the stringified
// arguments it was called with. A record lives for one request: parsed,
// printed, discarded.
type Record struct {
	Level string
	Args  []string
}

var parsers fastjson.ParserPool

// Parse decodes a relay request body. The body must be a JSON object with a
// string "level" and an array of strings "args". The level is opaque text;
// whatever name the browser sends is accepted as-is.
func Parse(body []byte) (Record, error) {
	p := parsers.Get()
	defer parsers.Put(p)

	v, err := p.ParseBytes(body)
	if err != nil {
		return Record{}, fmt.Errorf("invalid JSON: %v", err)
	}

	levelVal := v.Get("level")
	if levelVal == nil {
		return Record{}, fmt.Errorf("missing field %q", "level")
	}
	level, err := levelVal.StringBytes()
	if err != nil {
		return Record{}, fmt.Errorf("field %q: %v", "level", err)
	}

	argsVal := v.Get("args")
	if argsVal == nil {
		return Record{}, fmt.Errorf("missing field %q", "args")
	}
	arr, err := argsVal.Array()
	if err != nil {
		return Record{}, fmt.Errorf("field %q: %v", "args", err)
	}

	args := make([]string, 0, len(arr))
	for i, item := range arr {
		b, err := item.StringBytes()
		if err != nil {
			return Record{}, fmt.Errorf("args[%d]: %v", i, err)
		}
		args = append(args, string(b))
	}

	return Record{Level: string(level), Args: args}, nil
}

// Line renders the record the way it appears in the server log: uppercased
// level, arguments joined with single spaces.
func (r Record) Line() string {
	return strings.ToUpper(r.Level) + ": " + strings.Join(r.Args, " ")
}
