// Package assembler converts between backend wire resources and domain
// entities. Assemblers are pure and stateless: missing or malformed
// fields degrade to defaults, and malformed list payloads degrade to
// empty lists, so a bad API response never fails entity construction.
package assembler

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexFloat is a float64 that also accepts quoted numbers and null on
// the wire. Unparseable values decode as zero rather than erroring.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	*f = 0
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexFloat(v)
	}
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}

// FlexInt is an int that also accepts quoted numbers, floats and null
// on the wire. Unparseable values decode as zero.
type FlexInt int

func (i *FlexInt) UnmarshalJSON(b []byte) error {
	*i = 0
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		return nil
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		*i = FlexInt(v)
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*i = FlexInt(int(v))
	}
	return nil
}

func (i FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(i))
}

// intPtr converts an optional wire id to an optional entity id.
func intPtr(p *FlexInt) *int {
	if p == nil {
		return nil
	}
	v := int(*p)
	return &v
}

// pick returns the first non-empty string: used for wire fields that
// appear under both a current and a legacy key.
func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// atoi coerces a form string to an int, zero on failure.
func atoi(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

// orDefault returns s, or def when s is empty.
func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// toEntityList decodes a JSON array of resources and maps each through
// conv. Any non-array payload (null, absent, object, garbage) yields an
// empty, non-nil slice: list assembly is a total function.
func toEntityList[R any, E any](data []byte, conv func(R) E) []E {
	var resources []R
	if len(data) == 0 || json.Unmarshal(data, &resources) != nil || resources == nil {
		return []E{}
	}
	out := make([]E, 0, len(resources))
	for _, r := range resources {
		out = append(out, conv(r))
	}
	return out
}
