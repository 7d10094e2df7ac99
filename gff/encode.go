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

import (
	"encoding/binary"
	"fmt"
	"math"

	"radoub.dev/go/dlggff/binio"
)

// Encode serialises a Container into the seven-section GFF byte layout.
// Every TypeList field must carry a pre-assigned offset (see
// ListValueAt); a caller's layout planner is responsible for computing
// those before the container is built, so this function only ever
// writes forward, never patches a value already emitted. It aborts on
// the first structural problem encountered: partial output is never
// returned.
func Encode(c *Container) ([]byte, error) {
	var labels []string
	labelIndex := map[string]uint32{}
	internLabel := func(s string) uint32 {
		if i, ok := labelIndex[s]; ok {
			return i
		}
		i := uint32(len(labels))
		labels = append(labels, s)
		labelIndex[s] = i
		return i
	}

	var fieldsTable []rawField
	var fieldIndices []uint32
	fieldData := binio.NewWriter()
	fieldData.PutU32(0) // reserved prelude: keeps offset 0 from ever colliding with a real payload

	locDedup := map[string]uint32{}

	listTotal := uint32(0)
	for _, s := range c.Structs {
		for _, f := range s.Fields {
			if f.Value.Type == TypeList {
				off, sz, ok := f.Value.listOffsetSize()
				if !ok {
					return nil, fmt.Errorf("gff: encode: list field %q has no planned offset", f.Label)
				}
				if end := off + sz; end > listTotal {
					listTotal = end
				}
			}
		}
	}
	listBuf := make([]byte, listTotal)

	structsTable := make([]rawStruct, len(c.Structs))

	for si, s := range c.Structs {
		var fieldIdxForStruct []uint32
		for _, f := range s.Fields {
			labelIdx := internLabel(f.Label)
			doff, err := encodeFieldValue(f.Value, fieldData, listBuf, locDedup)
			if err != nil {
				return nil, fmt.Errorf("gff: encode: struct %d field %q: %w", si, f.Label, err)
			}
			fieldsTable = append(fieldsTable, rawField{Type: f.Value.Type, LabelIndex: labelIdx, DataOrOffset: doff})
			fieldIdxForStruct = append(fieldIdxForStruct, uint32(len(fieldsTable)-1))
		}

		switch len(fieldIdxForStruct) {
		case 0:
			structsTable[si] = rawStruct{Type: s.Type, DataOrOffset: 0, FieldCount: 0}
		case 1:
			structsTable[si] = rawStruct{Type: s.Type, DataOrOffset: fieldIdxForStruct[0], FieldCount: 1}
		default:
			startRel := uint32(len(fieldIndices) * indexSize)
			fieldIndices = append(fieldIndices, fieldIdxForStruct...)
			structsTable[si] = rawStruct{Type: s.Type, DataOrOffset: startRel, FieldCount: uint32(len(fieldIdxForStruct))}
		}
	}

	structsOffset := uint32(headerSize)
	fieldsOffset := structsOffset + uint32(len(structsTable))*structSize
	labelsOffset := fieldsOffset + uint32(len(fieldsTable))*fieldSize
	fieldDataBytes := fieldData.Bytes()
	fieldDataOffset := labelsOffset + uint32(len(labels))*labelSize
	fieldIndicesOffset := fieldDataOffset + uint32(len(fieldDataBytes))
	listIndicesOffset := fieldIndicesOffset + uint32(len(fieldIndices))*indexSize

	header := &Header{
		FileType:     DialogFileType,
		Version:      DialogVersion,
		Structs:      sectionPair{Offset: structsOffset, Count: uint32(len(structsTable))},
		Fields:       sectionPair{Offset: fieldsOffset, Count: uint32(len(fieldsTable))},
		Labels:       sectionPair{Offset: labelsOffset, Count: uint32(len(labels))},
		FieldData:    sectionPair{Offset: fieldDataOffset, Count: uint32(len(fieldDataBytes))},
		FieldIndices: sectionPair{Offset: fieldIndicesOffset, Count: uint32(len(fieldIndices)) * indexSize},
		ListIndices:  sectionPair{Offset: listIndicesOffset, Count: uint32(len(listBuf))},
	}

	w := binio.NewWriter()
	header.encode(w)

	for _, s := range structsTable {
		w.PutU32(s.Type)
		w.PutU32(s.DataOrOffset)
		w.PutU32(s.FieldCount)
	}
	for _, f := range fieldsTable {
		w.PutU32(uint32(f.Type))
		w.PutU32(f.LabelIndex)
		w.PutU32(f.DataOrOffset)
	}
	for _, l := range labels {
		w.PutBytes(padLabel(l))
	}
	w.PutBytes(fieldDataBytes)
	for _, idx := range fieldIndices {
		w.PutU32(idx)
	}
	w.PutBytes(listBuf)

	return w.Bytes(), nil
}

func padLabel(s string) []byte {
	b := make([]byte, labelSize)
	copy(b, s)
	return b
}

func encodeFieldValue(v Value, fd *binio.Writer, listBuf []byte, locDedup map[string]uint32) (uint32, error) {
	switch v.Type {
	case TypeByte:
		return uint32(v.byteV), nil
	case TypeChar:
		return uint32(uint8(v.charV)), nil
	case TypeWord:
		return uint32(v.wordV), nil
	case TypeShort:
		return uint32(uint16(v.shortV)), nil
	case TypeDword:
		return v.dwordV, nil
	case TypeInt:
		return uint32(v.intV), nil
	case TypeFloat:
		return math.Float32bits(v.floatV), nil
	case TypeDword64:
		off := uint32(fd.Len())
		fd.PutU64(v.dword64)
		return off, nil
	case TypeInt64:
		off := uint32(fd.Len())
		fd.PutI64(v.int64V)
		return off, nil
	case TypeDouble:
		off := uint32(fd.Len())
		fd.PutF64(v.doubleV)
		return off, nil
	case TypeExoString:
		off := uint32(fd.Len())
		fd.PutCExoString(v.strV)
		return off, nil
	case TypeResRef:
		off := uint32(fd.Len())
		fd.PutCResRef(v.resRefV)
		return off, nil
	case TypeExoLocStr:
		key := locDedupKey(v.locV)
		if off, ok := locDedup[key]; ok {
			return off, nil
		}
		off := uint32(fd.Len())
		fd.PutCExoLocString(v.locV)
		locDedup[key] = off
		return off, nil
	case TypeVoid:
		off := uint32(fd.Len())
		fd.PutU32(uint32(len(v.voidV)))
		fd.PutBytes(v.voidV)
		fd.Align4()
		return off, nil
	case TypeStruct:
		return v.structV, nil
	case TypeList:
		off, sz, ok := v.listOffsetSize()
		if !ok {
			return 0, fmt.Errorf("list field missing planned offset")
		}
		if int(off)+int(sz) > len(listBuf) {
			return 0, fmt.Errorf("list offset %d (size %d) out of range", off, sz)
		}
		binary.LittleEndian.PutUint32(listBuf[off:], uint32(len(v.listV)))
		for i, idx := range v.listV {
			binary.LittleEndian.PutUint32(listBuf[off+4+uint32(i)*4:], idx)
		}
		return off, nil
	}
	return 0, ErrUnknownFieldType
}

// locDedupKey identifies a locstring by its content so identical
// locstrings can share one field-data offset instead of each getting
// its own copy. Not a correctness requirement, only a size optimisation.
func locDedupKey(l *binio.LocString) string {
	if l == nil {
		return fmt.Sprintf("strref:%d", uint32(0xFFFFFFFF))
	}
	key := fmt.Sprintf("strref:%d", l.StrRef)
	for _, s := range l.Substrings {
		key += fmt.Sprintf("|lang:%d|len:%d|text:%s", s.LanguageGender, len(s.Text), s.Text)
	}
	return key
}
