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

import "radoub.dev/go/dlggff/binio"

// FieldType is one of the sixteen GFF field type tags; anything outside
// 0..15 is fatal for that field.
type FieldType byte

const (
	TypeByte       FieldType = 0
	TypeChar       FieldType = 1
	TypeWord       FieldType = 2
	TypeShort      FieldType = 3
	TypeDword      FieldType = 4
	TypeInt        FieldType = 5
	TypeDword64    FieldType = 6
	TypeInt64      FieldType = 7
	TypeFloat      FieldType = 8
	TypeDouble     FieldType = 9
	TypeExoString  FieldType = 10
	TypeResRef     FieldType = 11
	TypeExoLocStr  FieldType = 12
	TypeVoid       FieldType = 13
	TypeStruct     FieldType = 14
	TypeList       FieldType = 15
)

// IsValid reports whether t is one of the sixteen known field types.
func (t FieldType) IsValid() bool { return t <= TypeList }

// simple reports whether a field of this type stores its value inline
// in the 4-byte data_or_offset slot rather than dereferencing into
// field-data: types no wider than 4 bytes are kept in-place.
func (t FieldType) simple() bool {
	switch t {
	case TypeByte, TypeChar, TypeWord, TypeShort, TypeDword, TypeInt, TypeFloat:
		return true
	default:
		return false
	}
}

// Value is a type-tagged GFF field value: a closed sum over the sixteen
// field types. Exactly one accessor is meaningful for a given Type; the
// As* accessors enforce this and return an error on variant mismatch,
// per the "type-tagged field values" design (decoder always produces
// the variant matching the type tag).
type Value struct {
	Type FieldType

	byteV   byte
	charV   int8
	wordV   uint16
	shortV  int16
	dwordV  uint32
	intV    int32
	dword64 uint64
	int64V  int64
	floatV  float32
	doubleV float64
	strV    string
	resRefV string
	locV    *binio.LocString
	voidV   []byte
	listV   []uint32 // struct indices, for TypeList
	structV uint32   // struct index, for TypeStruct

	// listOffset is set only on values constructed for encoding via
	// ListValueAt: the byte offset (relative to the list-indices
	// section) the layout planner already assigned this list. Encode
	// writes the list's content there instead of appending sequentially,
	// so no field ever gets patched after the fact.
	listOffset *uint32
}

func ByteValue(v byte) Value      { return Value{Type: TypeByte, byteV: v} }
func CharValue(v int8) Value      { return Value{Type: TypeChar, charV: v} }
func WordValue(v uint16) Value    { return Value{Type: TypeWord, wordV: v} }
func ShortValue(v int16) Value    { return Value{Type: TypeShort, shortV: v} }
func DwordValue(v uint32) Value   { return Value{Type: TypeDword, dwordV: v} }
func IntValue(v int32) Value      { return Value{Type: TypeInt, intV: v} }
func Dword64Value(v uint64) Value { return Value{Type: TypeDword64, dword64: v} }
func Int64Value(v int64) Value    { return Value{Type: TypeInt64, int64V: v} }
func FloatValue(v float32) Value  { return Value{Type: TypeFloat, floatV: v} }
func DoubleValue(v float64) Value { return Value{Type: TypeDouble, doubleV: v} }
func StringValue(v string) Value  { return Value{Type: TypeExoString, strV: v} }
func ResRefValue(v string) Value  { return Value{Type: TypeResRef, resRefV: v} }
func LocStringValue(v *binio.LocString) Value {
	return Value{Type: TypeExoLocStr, locV: v}
}
func VoidValue(v []byte) Value       { return Value{Type: TypeVoid, voidV: v} }
func ListValue(indices []uint32) Value { return Value{Type: TypeList, listV: indices} }
func StructValue(index uint32) Value   { return Value{Type: TypeStruct, structV: index} }

// ListValueAt builds a list field value carrying the byte offset the
// layout planner already assigned it, for use by Encode.
func ListValueAt(indices []uint32, offset uint32) Value {
	o := offset
	return Value{Type: TypeList, listV: indices, listOffset: &o}
}

func (v Value) listOffsetSize() (offset, size uint32, ok bool) {
	if v.Type != TypeList || v.listOffset == nil {
		return 0, 0, false
	}
	return *v.listOffset, uint32(4 + 4*len(v.listV)), true
}

type valueTypeError struct {
	want FieldType
	have FieldType
}

func (e *valueTypeError) Error() string {
	return "gff: value is not the expected field type"
}

func (v Value) AsByte() (byte, error) {
	if v.Type != TypeByte {
		return 0, &valueTypeError{TypeByte, v.Type}
	}
	return v.byteV, nil
}

func (v Value) AsDword() (uint32, error) {
	if v.Type != TypeDword {
		return 0, &valueTypeError{TypeDword, v.Type}
	}
	return v.dwordV, nil
}

// AsDwordLike accepts both TypeDword and TypeFloat, converting the
// float's numeric value to an unsigned integer in the float case. Some
// historical writers encoded pointer Index fields as FLOAT instead of
// DWORD; this module's own writer always emits DWORD, but the reader
// must tolerate both.
func (v Value) AsDwordLike() (uint32, error) {
	switch v.Type {
	case TypeDword:
		return v.dwordV, nil
	case TypeFloat:
		return uint32(v.floatV), nil
	default:
		return 0, &valueTypeError{TypeDword, v.Type}
	}
}

func (v Value) AsInt() (int32, error) {
	if v.Type != TypeInt {
		return 0, &valueTypeError{TypeInt, v.Type}
	}
	return v.intV, nil
}

func (v Value) AsFloat() (float32, error) {
	if v.Type != TypeFloat {
		return 0, &valueTypeError{TypeFloat, v.Type}
	}
	return v.floatV, nil
}

func (v Value) AsString() (string, error) {
	if v.Type != TypeExoString {
		return "", &valueTypeError{TypeExoString, v.Type}
	}
	return v.strV, nil
}

func (v Value) AsResRef() (string, error) {
	if v.Type != TypeResRef {
		return "", &valueTypeError{TypeResRef, v.Type}
	}
	return v.resRefV, nil
}

func (v Value) AsLocString() (*binio.LocString, error) {
	if v.Type != TypeExoLocStr {
		return nil, &valueTypeError{TypeExoLocStr, v.Type}
	}
	return v.locV, nil
}

func (v Value) AsVoid() ([]byte, error) {
	if v.Type != TypeVoid {
		return nil, &valueTypeError{TypeVoid, v.Type}
	}
	return v.voidV, nil
}

func (v Value) AsList() ([]uint32, error) {
	if v.Type != TypeList {
		return nil, &valueTypeError{TypeList, v.Type}
	}
	return v.listV, nil
}

func (v Value) AsStructIndex() (uint32, error) {
	if v.Type != TypeStruct {
		return 0, &valueTypeError{TypeStruct, v.Type}
	}
	return v.structV, nil
}
