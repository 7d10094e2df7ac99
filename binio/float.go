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

package binio

import "math"

func float32frombits(v uint32) float32 { return math.Float32frombits(v) }
func float32bits(v float32) uint32     { return math.Float32bits(v) }
func float64frombits(v uint64) float64 { return math.Float64frombits(v) }
func float64bits(v float64) uint64     { return math.Float64bits(v) }
