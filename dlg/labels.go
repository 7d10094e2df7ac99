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

// GFF field labels for the dialog resource schema. Keeping them as
// constants in one place avoids typos diverging lift.go from encode.go.
const (
	lblDelayEntry      = "DelayEntry"
	lblDelayReply      = "DelayReply"
	lblNumWords        = "NumWords"
	lblEndConversation = "EndConversation"
	lblEndConverAbort  = "EndConverAbort"
	lblPreventZoomIn   = "PreventZoomIn"
	lblEntryList       = "EntryList"
	lblReplyList       = "ReplyList"
	lblStartingList    = "StartingList"

	lblSpeaker      = "Speaker"
	lblAnimation    = "Animation"
	lblAnimLoop     = "AnimLoop"
	lblText         = "Text"
	lblScript       = "Script"
	lblActionParams = "ActionParams"
	lblDelay        = "Delay"
	lblComment      = "Comment"
	lblSound        = "Sound"
	lblQuest        = "Quest"
	lblQuestEntry   = "QuestEntry"
	lblRepliesList  = "RepliesList"
	lblEntriesList  = "EntriesList"

	lblIndex           = "Index"
	lblActive          = "Active"
	lblConditionParams = "ConditionParams"
	lblIsChild         = "IsChild"
	lblLinkComment     = "LinkComment"

	lblKey   = "Key"
	lblValue = "Value"
)

const unresolvedIndex = 0xFFFFFFFF
