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

package gff

import "fmt"

// String renders a short human-readable summary of a container, useful
// in diagnostics and test failure messages. It is not part of the wire
// format and carries no decode/encode semantics.
func (c *Container) String() string {
	return fmt.Sprintf("gff.Container{%d structs}", len(c.Structs))
}

// Describe renders one line per struct, listing its type and field
// labels, for debugging malformed or unexpected containers.
func (c *Container) Describe() string {
	out := ""
	for i, s := range c.Structs {
		out += fmt.Sprintf("struct %d (type %d):", i, s.Type)
		for _, f := range s.Fields {
			out += fmt.Sprintf(" %s=%s", f.Label, f.Value.Type)
		}
		out += "\n"
	}
	return out
}

func (t FieldType) String() string {
	names := [...]string{
		"Byte", "Char", "Word", "Short", "Dword", "Int", "Dword64", "Int64",
		"Float", "Double", "ExoString", "ResRef", "ExoLocStr", "Void", "Struct", "List",
	}
	if int(t) < len(names) {
		return names[t]
	}
	return fmt.Sprintf("Unknown(%d)", byte(t))
}

// DecodeOptions tunes Decode's diagnostic collection without changing
// which problems are fatal.
type DecodeOptions struct {
	// MaxWarnings caps the number of warnings returned; 0 means
	// unlimited. Decoding itself is unaffected, only how many
	// diagnostics are retained, to bound memory on pathological inputs.
	MaxWarnings int
}

// DecodeWithOptions behaves like Decode but applies opts to the
// returned warnings.
func DecodeWithOptions(buf []byte, opts DecodeOptions) (*Container, []Warning, error) {
	c, warnings, err := Decode(buf)
	if opts.MaxWarnings > 0 && len(warnings) > opts.MaxWarnings {
		warnings = warnings[:opts.MaxWarnings]
	}
	return c, warnings, err
}
