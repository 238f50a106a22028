package laybuy

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Result is the outcome carried by every provider response envelope.
type Result int

const (
	ResultError Result = iota
	ResultSuccess
	ResultDeclined
	ResultCancelled
)

var resultNames = map[Result]string{
	ResultError:     "error",
	ResultSuccess:   "success",
	ResultDeclined:  "declined",
	ResultCancelled: "cancelled",
}

func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("result(%d)", int(r))
}

// ParseResult matches a result name case-insensitively.
func ParseResult(s string) (Result, error) {
	for r, name := range resultNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return ResultError, fmt.Errorf("unknown result %q", s)
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Result) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseResult(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
