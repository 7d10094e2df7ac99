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
	"sort"

	"radoub.dev/go/dlggff/binio"
	"radoub.dev/go/dlggff/gff"
	"radoub.dev/go/dlggff/layout"
)

const paramStructType = 0

// Encode lowers a Dialog graph back into a gff.Container using the
// fixed Entry-First batched struct order: the root struct, then each
// entry followed immediately by its own pointer structs, then each
// reply followed by its pointer structs, then the starting-list wrapper
// structs, and finally every parameter struct. Struct indices for every
// list field are only known once all of a list's members have been
// placed, so Encode reserves struct slots in two passes: first the
// shape, then the content.
func Encode(d *Dialog) (*gff.Container, error) {
	var structs []gff.Struct
	reserve := func() uint32 {
		structs = append(structs, gff.Struct{})
		return uint32(len(structs) - 1)
	}

	rootIdx := reserve()

	entryIndices := make([]uint32, len(d.Entries))
	entryPtrIndices := make([][]uint32, len(d.Entries))
	for i, e := range d.Entries {
		entryIndices[i] = reserve()
		ptrs := make([]uint32, len(e.Pointers))
		for j := range e.Pointers {
			ptrs[j] = reserve()
		}
		entryPtrIndices[i] = ptrs
	}

	replyIndices := make([]uint32, len(d.Replies))
	replyPtrIndices := make([][]uint32, len(d.Replies))
	for i, r := range d.Replies {
		replyIndices[i] = reserve()
		ptrs := make([]uint32, len(r.Pointers))
		for j := range r.Pointers {
			ptrs[j] = reserve()
		}
		replyPtrIndices[i] = ptrs
	}

	startIndices := make([]uint32, len(d.Starts))
	for i := range d.Starts {
		startIndices[i] = reserve()
	}

	// Global pointer sequence: entry pointers, then reply pointers, then
	// starts, matching layout.Shape's PointerParamCounts contract.
	type pointerRef struct {
		ptr      *DialogPtr
		structIx uint32
	}
	var pointerSeq []pointerRef
	for i, e := range d.Entries {
		for j, p := range e.Pointers {
			pointerSeq = append(pointerSeq, pointerRef{p, entryPtrIndices[i][j]})
		}
	}
	for i, r := range d.Replies {
		for j, p := range r.Pointers {
			pointerSeq = append(pointerSeq, pointerRef{p, replyPtrIndices[i][j]})
		}
	}
	for i, p := range d.Starts {
		pointerSeq = append(pointerSeq, pointerRef{p, startIndices[i]})
	}

	pointerParamIndices := make([][]uint32, len(pointerSeq))
	pointerParamCounts := make([]int, len(pointerSeq))
	for i, pr := range pointerSeq {
		n := pr.ptr.ConditionParams.Len()
		idxs := make([]uint32, n)
		for k := 0; k < n; k++ {
			idxs[k] = reserve()
		}
		pointerParamIndices[i] = idxs
		pointerParamCounts[i] = n
	}

	entryActionIndices := make([][]uint32, len(d.Entries))
	entryActionCounts := make([]int, len(d.Entries))
	for i, e := range d.Entries {
		n := e.ActionParams.Len()
		idxs := make([]uint32, n)
		for k := 0; k < n; k++ {
			idxs[k] = reserve()
		}
		entryActionIndices[i] = idxs
		entryActionCounts[i] = n
	}
	replyActionIndices := make([][]uint32, len(d.Replies))
	replyActionCounts := make([]int, len(d.Replies))
	for i, r := range d.Replies {
		n := r.ActionParams.Len()
		idxs := make([]uint32, n)
		for k := 0; k < n; k++ {
			idxs[k] = reserve()
		}
		replyActionIndices[i] = idxs
		replyActionCounts[i] = n
	}

	entryReplyCounts := make([]int, len(d.Entries))
	for i, e := range d.Entries {
		entryReplyCounts[i] = len(e.Pointers)
	}
	replyEntryCounts := make([]int, len(d.Replies))
	for i, r := range d.Replies {
		replyEntryCounts[i] = len(r.Pointers)
	}

	plan := layout.Build(layout.Shape{
		NumEntries:             len(d.Entries),
		NumReplies:             len(d.Replies),
		NumStarts:              len(d.Starts),
		EntryReplyCounts:       entryReplyCounts,
		ReplyEntryCounts:       replyEntryCounts,
		PointerParamCounts:     pointerParamCounts,
		EntryActionParamCounts: entryActionCounts,
		ReplyActionParamCounts: replyActionCounts,
	})
	listField := func(key layout.Key, indices []uint32) gff.Value {
		off, _ := plan.Offset(key)
		return gff.ListValueAt(indices, off)
	}

	rootType := uint32(0xFFFFFFFF)
	if d.HasOriginalRootType {
		rootType = d.OriginalRootType
	}
	structs[rootIdx] = gff.Struct{
		Type: rootType,
		Fields: []gff.Field{
			{Label: lblDelayEntry, Value: gff.DwordValue(d.DelayEntry)},
			{Label: lblDelayReply, Value: gff.DwordValue(d.DelayReply)},
			{Label: lblNumWords, Value: gff.DwordValue(d.NumWords)},
			{Label: lblEndConversation, Value: gff.ResRefValue(d.ScriptEnd)},
			{Label: lblEndConverAbort, Value: gff.ResRefValue(d.ScriptAbort)},
			{Label: lblPreventZoomIn, Value: gff.ByteValue(boolByte(d.PreventZoom))},
			{Label: lblEntryList, Value: listField(layout.Key{Kind: layout.EntryList, Index: 0}, entryIndices)},
			{Label: lblReplyList, Value: listField(layout.Key{Kind: layout.ReplyList, Index: 0}, replyIndices)},
			{Label: lblStartingList, Value: listField(layout.Key{Kind: layout.StartingList, Index: 0}, startIndices)},
		},
	}

	for i, e := range d.Entries {
		structs[entryIndices[i]] = encodeNode(e, listField(layout.Key{Kind: layout.EntryReplies, Index: i}, entryPtrIndices[i]),
			listField(layout.Key{Kind: layout.NodeActionParams, Index: i}, entryActionIndices[i]))
	}
	base := len(d.Entries)
	for i, r := range d.Replies {
		structs[replyIndices[i]] = encodeNode(r, listField(layout.Key{Kind: layout.ReplyEntries, Index: i}, replyPtrIndices[i]),
			listField(layout.Key{Kind: layout.NodeActionParams, Index: base + i}, replyActionIndices[i]))
	}

	for i, pr := range pointerSeq {
		conditionParams := listField(layout.Key{Kind: layout.PointerParams, Index: i}, pointerParamIndices[i])
		if pr.ptr.IsStart {
			structs[pr.structIx] = encodeStart(pr.ptr, conditionParams)
		} else {
			structs[pr.structIx] = encodePointer(pr.ptr, conditionParams)
		}
	}

	for i, e := range d.Entries {
		emitParamStructs(structs, entryActionIndices[i], e.ActionParams)
	}
	for i, r := range d.Replies {
		emitParamStructs(structs, replyActionIndices[i], r.ActionParams)
	}
	for i, pr := range pointerSeq {
		emitParamStructs(structs, pointerParamIndices[i], pr.ptr.ConditionParams)
	}

	return &gff.Container{Structs: structs}, nil
}

func encodeNode(n *DialogNode, repliesOrEntries, actionParams gff.Value) gff.Struct {
	typ := uint32(0)
	if n.HasOriginalStructType {
		typ = n.OriginalStructType
	}
	fields := []gff.Field{}
	if n.Kind == KindEntry {
		fields = append(fields, gff.Field{Label: lblSpeaker, Value: gff.StringValue(n.Speaker)})
	}
	fields = append(fields,
		gff.Field{Label: lblAnimation, Value: gff.DwordValue(uint32(n.Animation))},
		gff.Field{Label: lblAnimLoop, Value: gff.ByteValue(boolByte(n.AnimationLoop))},
		gff.Field{Label: lblText, Value: encodeLocText(n.Text)},
		gff.Field{Label: lblScript, Value: gff.ResRefValue(n.ScriptAction)},
		gff.Field{Label: lblActionParams, Value: actionParams},
		gff.Field{Label: lblDelay, Value: gff.DwordValue(n.Delay)},
		gff.Field{Label: lblComment, Value: gff.StringValue(n.Comment)},
		gff.Field{Label: lblSound, Value: gff.ResRefValue(n.Sound)},
		gff.Field{Label: lblQuest, Value: gff.StringValue(n.Quest)},
	)
	if n.Quest != "" {
		fields = append(fields, gff.Field{Label: lblQuestEntry, Value: gff.DwordValue(n.QuestEntry)})
	}
	ptrLabel := lblRepliesList
	if n.Kind == KindReply {
		ptrLabel = lblEntriesList
	}
	fields = append(fields, gff.Field{Label: ptrLabel, Value: repliesOrEntries})

	return gff.Struct{Type: typ, Fields: fields}
}

func encodePointer(p *DialogPtr, conditionParams gff.Value) gff.Struct {
	typ := uint32(0)
	if p.HasOriginalStructType {
		typ = p.OriginalStructType
	}
	fields := []gff.Field{
		{Label: lblIndex, Value: gff.DwordValue(p.Index)},
		{Label: lblActive, Value: gff.ResRefValue(p.ScriptAppears)},
		{Label: lblConditionParams, Value: conditionParams},
		{Label: lblIsChild, Value: gff.ByteValue(boolByte(p.IsLink))},
	}
	if p.IsLink {
		fields = append(fields, gff.Field{Label: lblLinkComment, Value: gff.StringValue(p.LinkComment)})
	}
	return gff.Struct{Type: typ, Fields: fields}
}

// encodeStart builds a starting-list wrapper struct. It shares Index,
// Active and ConditionParams with encodePointer's node pointers but
// never carries IsChild or LinkComment: a start always targets an
// entry directly and cannot be a link.
func encodeStart(p *DialogPtr, conditionParams gff.Value) gff.Struct {
	typ := uint32(0)
	if p.HasOriginalStructType {
		typ = p.OriginalStructType
	}
	return gff.Struct{
		Type: typ,
		Fields: []gff.Field{
			{Label: lblIndex, Value: gff.DwordValue(p.Index)},
			{Label: lblActive, Value: gff.ResRefValue(p.ScriptAppears)},
			{Label: lblConditionParams, Value: conditionParams},
		},
	}
}

func emitParamStructs(structs []gff.Struct, indices []uint32, pm *ParamMap) {
	keys := pm.Keys()
	for i, idx := range indices {
		k := keys[i]
		v, _ := pm.Get(k)
		structs[idx] = gff.Struct{
			Type: paramStructType,
			Fields: []gff.Field{
				{Label: lblKey, Value: gff.StringValue(k)},
				{Label: lblValue, Value: gff.StringValue(v)},
			},
		}
	}
}

func encodeLocText(t *LocalizedText) gff.Value {
	loc := &binio.LocString{StrRef: unresolvedIndex}
	if t != nil {
		loc.StrRef = t.StrRef
		langs := make([]uint32, 0, len(t.Strings))
		for lang := range t.Strings {
			langs = append(langs, lang)
		}
		sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
		for _, lang := range langs {
			loc.Substrings = append(loc.Substrings, binio.LocSubstring{LanguageGender: lang, Text: t.Strings[lang]})
		}
	}
	return gff.LocStringValue(loc)
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
