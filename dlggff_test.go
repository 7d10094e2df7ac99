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

package dlggff

import (
	"testing"

	"radoub.dev/go/dlggff/dlg"
)

func sampleDialog() *dlg.Dialog {
	entry := &dlg.DialogNode{
		Kind:         dlg.KindEntry,
		Speaker:      "NPC",
		Text:         &dlg.LocalizedText{StrRef: 0xFFFFFFFF, Strings: map[uint32]string{0: "Hello"}},
		ActionParams: dlg.NewParamMap(),
	}
	return &dlg.Dialog{
		Entries: []*dlg.DialogNode{entry},
		Starts: []*dlg.DialogPtr{{
			Index:           0,
			TargetKind:      dlg.KindEntry,
			IsStart:         true,
			ConditionParams: dlg.NewParamMap(),
		}},
	}
}

func TestDecodeEncodeDialogRoundTrip(t *testing.T) {
	buf, err := EncodeDialog(sampleDialog())
	if err != nil {
		t.Fatalf("EncodeDialog: %v", err)
	}

	d, warnings, err := DecodeDialog(buf)
	if err != nil {
		t.Fatalf("DecodeDialog: %v (warnings: %v)", err, warnings)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(d.Entries) != 1 || d.Entries[0].Speaker != "NPC" {
		t.Fatalf("unexpected dialog: %+v", d)
	}

	if res := Validate(d); !res.OK() {
		t.Fatalf("validate failed: %v", res.Problems)
	}
}

func TestDecodeDialogRejectsWrongFileType(t *testing.T) {
	buf, err := EncodeDialog(sampleDialog())
	if err != nil {
		t.Fatalf("EncodeDialog: %v", err)
	}
	// Corrupt the file-type tag in the header.
	buf[0] = 'X'

	if _, _, err := DecodeDialog(buf); err == nil {
		t.Fatal("expected an error decoding a non-dialog file type")
	}
}
