package define

import (
	"sort"
	"strings"
)

const (
	AirBlockName = "minecraft:air"

	// the editor addresses a fixed vertical range, bottom and top inclusive
	WorldMinY   = 0
	WorldMaxY   = 319
	WorldHeight = WorldMaxY - WorldMinY + 1
)

// BlockDescribe is a block identifier together with its optional block state properties. Its canonical
// string form is "name" or "name[k1=v1,k2=v2]" with keys in sorted order.
type BlockDescribe struct {
	Name       string
	Properties map[string]string
}

func (b BlockDescribe) IsAir() bool {
	return b.Name == AirBlockName || b.Name == ""
}

// String renders the canonical form. Two descriptors with the same name and properties always render to the
// same string, so the string is usable as a palette key.
func (b BlockDescribe) String() string {
	if len(b.Properties) == 0 {
		return b.Name
	}
	keys := make([]string, 0, len(b.Properties))
	for k := range b.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	sb := strings.Builder{}
	sb.WriteString(b.Name)
	sb.WriteByte('[')
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(b.Properties[k])
	}
	sb.WriteByte(']')
	return sb.String()
}

// ParseBlockDescribe is the inverse of BlockDescribe.String. Malformed property lists are kept verbatim as
// part of the name rather than rejected.
func ParseBlockDescribe(id string) BlockDescribe {
	open := strings.IndexByte(id, '[')
	if open < 0 || !strings.HasSuffix(id, "]") {
		return BlockDescribe{Name: id}
	}
	body := id[open+1 : len(id)-1]
	if body == "" {
		return BlockDescribe{Name: id[:open]}
	}
	props := make(map[string]string)
	for _, kv := range strings.Split(body, ",") {
		eq := strings.IndexByte(kv, '=')
		if eq <= 0 {
			return BlockDescribe{Name: id}
		}
		props[strings.TrimSpace(kv[:eq])] = strings.TrimSpace(kv[eq+1:])
	}
	return BlockDescribe{Name: id[:open], Properties: props}
}

// IsAirID reports whether a block identifier (plain or canonical form) names air.
func IsAirID(id string) bool {
	return id == "" || id == AirBlockName || strings.HasPrefix(id, AirBlockName+"[")
}
