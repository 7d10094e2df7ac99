// radoub.dev/go/dlggff - a codec for GFF-based dialog resources
// Copyright (C) 2024  Radoub Project Contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dlg

import "golang.org/x/exp/maps"

// ParamMap is an insertion-ordered string-to-string map, modelling the
// dynamic Key/Value parameter structs a script's ActionParams or
// ConditionParams list carries. Encoding must reproduce the original
// insertion order, so a plain map is not enough.
type ParamMap struct {
	keys   []string
	values map[string]string
}

// NewParamMap returns an empty ParamMap.
func NewParamMap() *ParamMap {
	return &ParamMap{values: map[string]string{}}
}

// Set assigns key to value, appending key to the iteration order the
// first time it is seen and leaving the order unchanged on update.
func (m *ParamMap) Set(key, value string) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored for key, if any.
func (m *ParamMap) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[key]
	return v, ok
}

// Len reports the number of parameters. A nil ParamMap has length 0.
func (m *ParamMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the parameter keys in insertion order.
func (m *ParamMap) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Clone returns a deep copy of m.
func (m *ParamMap) Clone() *ParamMap {
	out := &ParamMap{keys: append([]string(nil), m.keys...), values: maps.Clone(m.values)}
	return out
}
