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

import (
	"errors"
	"fmt"

	"radoub.dev/go/dlggff/gff"
)

// Lift walks a decoded GFF container that holds a dialog resource and
// builds the in-memory Dialog graph. Malformed sub-structures are
// reported as warnings rather than aborting the whole lift, mirroring
// gff.Decode's own "collect and continue" policy: a bogus entry in a
// list of pointers is skipped, and a pointer whose index does not
// resolve stays in the graph with a nil Node.
func Lift(c *gff.Container) (*Dialog, []Warning, error) {
	root := c.Root()
	if root == nil {
		return nil, nil, errors.New("dlg: container has no root struct")
	}

	var warnings []Warning

	d := &Dialog{
		DelayEntry:          fieldDword(root, lblDelayEntry, 0),
		DelayReply:          fieldDword(root, lblDelayReply, 0),
		NumWords:            fieldDword(root, lblNumWords, 0),
		ScriptEnd:           fieldResRef(root, lblEndConversation, ""),
		ScriptAbort:         fieldResRef(root, lblEndConverAbort, ""),
		PreventZoom:         fieldByte(root, lblPreventZoomIn, 0) != 0,
		OriginalRootType:    root.Type,
		HasOriginalRootType: true,
	}

	entryIdx, _ := fieldList(root, lblEntryList)
	replyIdx, _ := fieldList(root, lblReplyList)
	startIdx, hasStarts := fieldList(root, lblStartingList)

	buildList := func(indices []uint32, kind Kind, ptrLabel string) []*DialogNode {
		var nodes []*DialogNode
		for _, idx := range indices {
			s, ok := c.StructAt(idx)
			if !ok {
				warnings = append(warnings, Warning{
					Kind:    WarnStructIndexOutOfRange,
					Message: fmt.Sprintf("%s list references missing struct %d", kind, idx),
				})
				continue
			}
			node, w := buildNode(c, s, kind)
			warnings = append(warnings, w...)

			ptrIdx, _ := fieldList(s, ptrLabel)
			targetKind := KindReply
			if kind == KindReply {
				targetKind = KindEntry
			}
			for _, pidx := range ptrIdx {
				ps, ok := c.StructAt(pidx)
				if !ok {
					warnings = append(warnings, Warning{
						Kind:    WarnStructIndexOutOfRange,
						Message: fmt.Sprintf("%s pointer list references missing struct %d", kind, pidx),
					})
					continue
				}
				if !looksLikePointer(ps) {
					warnings = append(warnings, Warning{
						Kind:    WarnMalformedPointerStruct,
						Message: fmt.Sprintf("struct %d in a %s pointer list does not look like a pointer, skipping", pidx, kind),
					})
					continue
				}
				ptr, w := buildPointer(c, ps, targetKind)
				warnings = append(warnings, w...)
				node.Pointers = append(node.Pointers, ptr)
			}

			nodes = append(nodes, node)
		}
		return nodes
	}

	d.Entries = buildList(entryIdx, KindEntry, lblRepliesList)
	d.Replies = buildList(replyIdx, KindReply, lblEntriesList)

	if !hasStarts || len(startIdx) == 0 {
		if len(d.Entries) > 0 {
			d.Starts = []*DialogPtr{{
				Index:           0,
				TargetKind:      KindEntry,
				IsStart:         true,
				ConditionParams: NewParamMap(),
			}}
			warnings = append(warnings, Warning{
				Kind:    WarnFallbackStart,
				Message: "starting list absent or empty; synthesised a fallback start pointing at entry 0",
			})
		}
	} else {
		for _, sidx := range startIdx {
			ss, ok := c.StructAt(sidx)
			if !ok {
				warnings = append(warnings, Warning{
					Kind:    WarnStructIndexOutOfRange,
					Message: fmt.Sprintf("starting list references missing struct %d", sidx),
				})
				continue
			}
			ptr, w := buildPointer(c, ss, KindEntry)
			warnings = append(warnings, w...)
			ptr.IsStart = true
			d.Starts = append(d.Starts, ptr)
		}
	}

	resolve := func(ptrs []*DialogPtr, targets []*DialogNode) {
		for _, p := range ptrs {
			if p.Index == unresolvedIndex || int(p.Index) >= len(targets) {
				warnings = append(warnings, Warning{
					Kind:    WarnPointerUnresolved,
					Message: fmt.Sprintf("%s pointer index %d does not resolve to a %s", p.TargetKind, p.Index, p.TargetKind),
				})
				continue
			}
			p.Node = targets[p.Index]
		}
	}
	for _, e := range d.Entries {
		resolve(e.Pointers, d.Replies)
	}
	for _, r := range d.Replies {
		resolve(r.Pointers, d.Entries)
	}
	resolve(d.Starts, d.Entries)

	return d, warnings, nil
}

func buildNode(c *gff.Container, s *gff.Struct, kind Kind) (*DialogNode, []Warning) {
	var warnings []Warning

	n := &DialogNode{
		Kind:                  kind,
		Comment:               fieldString(s, lblComment, ""),
		Quest:                 fieldString(s, lblQuest, ""),
		ScriptAction:          fieldResRef(s, lblScript, ""),
		Sound:                 fieldResRef(s, lblSound, ""),
		Delay:                 fieldDword(s, lblDelay, 0),
		AnimationLoop:         fieldByte(s, lblAnimLoop, 0) != 0,
		Text:                  fieldLocText(s, lblText),
		OriginalStructType:    s.Type,
		HasOriginalStructType: true,
	}
	if kind == KindEntry {
		n.Speaker = fieldString(s, lblSpeaker, "")
	}
	if n.Quest != "" {
		n.QuestEntry = fieldDword(s, lblQuestEntry, 0)
	}

	rawAnim := fieldDword(s, lblAnimation, 0)
	anim, ok := ValidateAnimation(rawAnim)
	n.Animation = anim
	if !ok {
		warnings = append(warnings, Warning{
			Kind:    WarnUnknownAnimation,
			Message: fmt.Sprintf("%s: unknown animation id %d, falling back to default", kind, rawAnim),
		})
	}

	params, w := fieldParams(c, s, lblActionParams)
	n.ActionParams = params
	warnings = append(warnings, w...)

	return n, warnings
}

func buildPointer(c *gff.Container, s *gff.Struct, targetKind Kind) (*DialogPtr, []Warning) {
	var warnings []Warning

	idx := uint32(unresolvedIndex)
	if f, ok := s.Field(lblIndex); ok {
		if v, err := f.Value.AsDwordLike(); err == nil {
			idx = v
		} else {
			warnings = append(warnings, Warning{
				Kind:    WarnMalformedPointerStruct,
				Message: "pointer Index field is neither DWORD nor FLOAT, treating as unresolved",
			})
		}
	}

	isLink := fieldByte(s, lblIsChild, 0) != 0

	ptr := &DialogPtr{
		Index:                 idx,
		TargetKind:            targetKind,
		ScriptAppears:         fieldResRef(s, lblActive, ""),
		IsLink:                isLink,
		OriginalStructType:    s.Type,
		HasOriginalStructType: true,
	}

	params, w := fieldParams(c, s, lblConditionParams)
	ptr.ConditionParams = params
	warnings = append(warnings, w...)

	if isLink {
		ptr.LinkComment = fieldString(s, lblLinkComment, "")
	}

	return ptr, warnings
}

func fieldParams(c *gff.Container, s *gff.Struct, label string) (*ParamMap, []Warning) {
	pm := NewParamMap()
	idxs, ok := fieldList(s, label)
	if !ok {
		return pm, nil
	}
	var warnings []Warning
	for _, idx := range idxs {
		ps, ok := c.StructAt(idx)
		if !ok {
			warnings = append(warnings, Warning{
				Kind:    WarnStructIndexOutOfRange,
				Message: fmt.Sprintf("%s references missing param struct %d", label, idx),
			})
			continue
		}
		k := fieldString(ps, lblKey, "")
		v := fieldString(ps, lblValue, "")
		pm.Set(k, v)
	}
	return pm, warnings
}
