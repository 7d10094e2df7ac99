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

// WarningKind categorises a non-fatal problem found while lifting a
// container into a Dialog.
type WarningKind int

const (
	WarnPointerUnresolved WarningKind = iota
	WarnFallbackStart
	WarnMalformedPointerStruct
	WarnUnknownAnimation
	WarnStructIndexOutOfRange
)

// Warning describes one non-fatal problem Lift encountered. Lift always
// returns a best-effort Dialog alongside any warnings, per the gff
// package's own "collect and continue" decode policy.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string { return w.Message }
