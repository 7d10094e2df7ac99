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
	"bytes"
	"fmt"
	"math"

	"radoub.dev/go/dlggff/binio"
)

type rawStruct struct {
	Type         uint32
	DataOrOffset uint32
	FieldCount   uint32
}

type rawField struct {
	RawType      uint32
	Type         FieldType
	LabelIndex   uint32
	DataOrOffset uint32
}

// Decode parses a complete GFF buffer into a Container. Non-fatal
// problems (an unrecognised field type on one field, for instance) are
// collected into the returned warnings and decoding continues for the
// remaining fields and structs; the first fatal problem aborts
// decoding and is returned as the error.
func Decode(buf []byte) (*Container, []Warning, error) {
	r := binio.New(buf)

	header, err := decodeHeader(r)
	if err != nil {
		return nil, nil, err
	}

	var warnings []Warning

	labels, err := decodeLabels(buf, header)
	if err != nil {
		return nil, warnings, err
	}

	rawStructs, err := decodeRawStructs(buf, header)
	if err != nil {
		return nil, warnings, err
	}

	rawFields, err := decodeRawFields(buf, header)
	if err != nil {
		return nil, warnings, err
	}

	fieldIndexAt := func(pos int) (uint32, error) {
		abs := int(header.FieldIndices.Offset) + pos
		rr := binio.NewAt(buf, abs)
		return rr.U32()
	}

	structs := make([]Struct, len(rawStructs))
	for i, rs := range rawStructs {
		structs[i].Type = rs.Type

		var fieldIdx []uint32
		switch rs.FieldCount {
		case 0:
			// no fields
		case 1:
			fieldIdx = []uint32{rs.DataOrOffset}
		default:
			for k := uint32(0); k < rs.FieldCount; k++ {
				idx, err := fieldIndexAt(int(rs.DataOrOffset) + int(k)*indexSize)
				if err != nil {
					return nil, warnings, &FormatError{Section: "field-indices", Offset: int(header.FieldIndices.Offset) + int(rs.DataOrOffset) + int(k)*indexSize, Err: ErrTruncatedBuffer}
				}
				fieldIdx = append(fieldIdx, idx)
			}
		}

		for _, fi := range fieldIdx {
			if int(fi) >= len(rawFields) {
				return nil, warnings, &FormatError{Section: "struct", Offset: int(header.Structs.Offset) + i*structSize, Err: ErrInvalidOffset}
			}
			rf := rawFields[fi]

			if int(rf.LabelIndex) >= len(labels) {
				return nil, warnings, &FormatError{Section: "field", Offset: int(header.Fields.Offset) + int(fi)*fieldSize, Err: ErrInvalidOffset}
			}
			label := labels[rf.LabelIndex]

			val, w, err := decodeFieldValue(buf, header, rf)
			if err != nil {
				var fatal *FormatError
				if asFormatError(err, &fatal) {
					return nil, warnings, err
				}
				warnings = append(warnings, Warning{
					Section: "field",
					Offset:  int(header.Fields.Offset) + int(fi)*fieldSize,
					Message: fmt.Sprintf("field %q: %v", label, err),
				})
				continue
			}
			if w != nil {
				warnings = append(warnings, *w)
			}

			structs[i].Fields = append(structs[i].Fields, Field{Label: label, Value: val})
		}
	}

	return &Container{Structs: structs}, warnings, nil
}

func asFormatError(err error, target **FormatError) bool {
	e, ok := err.(*FormatError)
	if ok {
		*target = e
	}
	return ok
}

func decodeLabels(buf []byte, h *Header) ([]string, error) {
	labels := make([]string, h.Labels.Count)
	for i := uint32(0); i < h.Labels.Count; i++ {
		abs := int(h.Labels.Offset) + int(i)*labelSize
		if abs+labelSize > len(buf) {
			return nil, &FormatError{Section: "labels", Offset: abs, Err: ErrTruncatedBuffer}
		}
		raw := buf[abs : abs+labelSize]
		labels[i] = string(bytes.TrimRight(raw, "\x00"))
	}
	return labels, nil
}

func decodeRawStructs(buf []byte, h *Header) ([]rawStruct, error) {
	out := make([]rawStruct, h.Structs.Count)
	for i := uint32(0); i < h.Structs.Count; i++ {
		abs := int(h.Structs.Offset) + int(i)*structSize
		r := binio.NewAt(buf, abs)
		tp, err := r.U32()
		if err != nil {
			return nil, &FormatError{Section: "structs", Offset: abs, Err: ErrTruncatedBuffer}
		}
		doff, err := r.U32()
		if err != nil {
			return nil, &FormatError{Section: "structs", Offset: abs, Err: ErrTruncatedBuffer}
		}
		fc, err := r.U32()
		if err != nil {
			return nil, &FormatError{Section: "structs", Offset: abs, Err: ErrTruncatedBuffer}
		}
		out[i] = rawStruct{Type: tp, DataOrOffset: doff, FieldCount: fc}
	}
	return out, nil
}

func decodeRawFields(buf []byte, h *Header) ([]rawField, error) {
	out := make([]rawField, h.Fields.Count)
	for i := uint32(0); i < h.Fields.Count; i++ {
		abs := int(h.Fields.Offset) + int(i)*fieldSize
		r := binio.NewAt(buf, abs)
		tp, err := r.U32()
		if err != nil {
			return nil, &FormatError{Section: "fields", Offset: abs, Err: ErrTruncatedBuffer}
		}
		labelIdx, err := r.U32()
		if err != nil {
			return nil, &FormatError{Section: "fields", Offset: abs, Err: ErrTruncatedBuffer}
		}
		doff, err := r.U32()
		if err != nil {
			return nil, &FormatError{Section: "fields", Offset: abs, Err: ErrTruncatedBuffer}
		}
		valid := tp <= uint32(TypeList)
		ft := FieldType(0)
		if valid {
			ft = FieldType(tp)
		}
		out[i] = rawField{RawType: tp, Type: ft, LabelIndex: labelIdx, DataOrOffset: doff}
	}
	return out, nil
}

// decodeFieldValue resolves one field's value. A *FormatError return is
// fatal; any other error is a per-field diagnostic the caller folds
// into the warnings list so sibling fields keep decoding.
func decodeFieldValue(buf []byte, h *Header, rf rawField) (Value, *Warning, error) {
	if rf.RawType > uint32(TypeList) {
		return Value{}, nil, ErrUnknownFieldType
	}

	if rf.Type.simple() {
		return decodeSimpleValue(rf), nil, nil
	}

	switch rf.Type {
	case TypeDword64:
		v, err := readAt(buf, h.FieldData, rf.DataOrOffset, func(r *binio.Reader) (uint64, error) { return r.U64() })
		if err != nil {
			return Value{}, nil, err
		}
		return Dword64Value(v), nil, nil
	case TypeInt64:
		v, err := readAt(buf, h.FieldData, rf.DataOrOffset, func(r *binio.Reader) (int64, error) { return r.I64() })
		if err != nil {
			return Value{}, nil, err
		}
		return Int64Value(v), nil, nil
	case TypeDouble:
		v, err := readAt(buf, h.FieldData, rf.DataOrOffset, func(r *binio.Reader) (float64, error) { return r.F64() })
		if err != nil {
			return Value{}, nil, err
		}
		return DoubleValue(v), nil, nil
	case TypeExoString:
		v, err := readAt(buf, h.FieldData, rf.DataOrOffset, func(r *binio.Reader) (string, error) { return r.CExoString() })
		if err != nil {
			return Value{}, nil, err
		}
		return StringValue(v), nil, nil
	case TypeResRef:
		v, err := readAt(buf, h.FieldData, rf.DataOrOffset, func(r *binio.Reader) (string, error) { return r.CResRef() })
		if err != nil {
			return Value{}, nil, err
		}
		return ResRefValue(v), nil, nil
	case TypeExoLocStr:
		v, err := readAt(buf, h.FieldData, rf.DataOrOffset, func(r *binio.Reader) (*binio.LocString, error) { return r.CExoLocString() })
		if err != nil {
			return Value{}, nil, err
		}
		return LocStringValue(v), nil, nil
	case TypeVoid:
		v, err := readAt(buf, h.FieldData, rf.DataOrOffset, func(r *binio.Reader) ([]byte, error) {
			n, err := r.U32()
			if err != nil {
				return nil, err
			}
			b, err := r.Bytes(int(n))
			if err != nil {
				return nil, err
			}
			if err := r.Align4(); err != nil {
				return nil, err
			}
			return b, nil
		})
		if err != nil {
			return Value{}, nil, err
		}
		return VoidValue(v), nil, nil
	case TypeStruct:
		return StructValue(rf.DataOrOffset), nil, nil
	case TypeList:
		abs := int(h.ListIndices.Offset) + int(rf.DataOrOffset)
		r := binio.NewAt(buf, abs)
		count, err := r.U32()
		if err != nil {
			return Value{}, nil, &FormatError{Section: "list-indices", Offset: abs, Err: ErrTruncatedBuffer}
		}
		indices := make([]uint32, count)
		for i := range indices {
			v, err := r.U32()
			if err != nil {
				return Value{}, nil, &FormatError{Section: "list-indices", Offset: r.Pos(), Err: ErrTruncatedBuffer}
			}
			indices[i] = v
		}
		return ListValue(indices), nil, nil
	}

	return Value{}, nil, ErrUnknownFieldType
}

func decodeSimpleValue(rf rawField) Value {
	switch rf.Type {
	case TypeByte:
		return ByteValue(byte(rf.DataOrOffset))
	case TypeChar:
		return CharValue(int8(rf.DataOrOffset))
	case TypeWord:
		return WordValue(uint16(rf.DataOrOffset))
	case TypeShort:
		return ShortValue(int16(rf.DataOrOffset))
	case TypeDword:
		return DwordValue(rf.DataOrOffset)
	case TypeInt:
		return IntValue(int32(rf.DataOrOffset))
	case TypeFloat:
		return FloatValue(math.Float32frombits(rf.DataOrOffset))
	}
	return Value{}
}

func readAt[T any](buf []byte, section sectionPair, relOffset uint32, read func(r *binio.Reader) (T, error)) (T, error) {
	var zero T
	abs := int(section.Offset) + int(relOffset)
	if abs < 0 || abs > len(buf) {
		return zero, &FormatError{Section: "field-data", Offset: abs, Err: ErrInvalidOffset}
	}
	r := binio.NewAt(buf, abs)
	v, err := read(r)
	if err != nil {
		return zero, &FormatError{Section: "field-data", Offset: abs, Err: ErrTruncatedBuffer}
	}
	return v, nil
}
