package logging

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

type record struct {
	time   time.Time
	level  Level
	msg    string
	err    error
	fields Fields
}

// encode renders one log line terminated by "\n"
func encode(format Format, r record) ([]byte, error) {
	if format == FormatJSON {
		return encodeJSON(r)
	}
	return encodeText(r), nil
}

func encodeJSON(r record) ([]byte, error) {
	entry := make(map[string]interface{}, len(r.fields)+4)
	for k, v := range r.fields {
		entry[k] = v
	}
	entry["timestamp"] = r.time.UTC().Format(time.RFC3339)
	entry["level"] = r.level.String()
	entry["message"] = r.msg
	if r.err != nil {
		entry["error"] = r.err.Error()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// encodeText writes "timestamp [LEVEL] message error=".." k=v" with keys sorted
func encodeText(r record) []byte {
	var b strings.Builder
	b.WriteString(r.time.UTC().Format("2006-01-02T15:04:05.000Z"))
	b.WriteString(" [")
	b.WriteString(r.level.String())
	b.WriteString("] ")
	b.WriteString(r.msg)

	if r.err != nil {
		fmt.Fprintf(&b, " error=%q", r.err.Error())
	}

	keys := make([]string, 0, len(r.fields))
	for k := range r.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, r.fields[k])
	}

	b.WriteByte('\n')
	return []byte(b.String())
}
