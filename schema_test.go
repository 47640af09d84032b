package readtext

import "testing"

func TestDtypeRowSizeHomogeneous(t *testing.T) {
	d := Dtype{Homogeneous: true, Fields: []FieldDescriptor{{Type: TypeFloat, ItemSize: 8}}}
	if got := d.RowSize(4); got != 32 {
		t.Errorf("RowSize(4) = %d, want 32", got)
	}
}

func TestDtypeRowSizeStructured(t *testing.T) {
	d := Dtype{Fields: []FieldDescriptor{
		{Type: TypeInt, ItemSize: 8},
		{Type: TypeFloat, ItemSize: 4},
	}}
	if got := d.RowSize(0); got != 12 {
		t.Errorf("RowSize = %d, want 12", got)
	}
}

func TestDtypeValidateRejectsEmpty(t *testing.T) {
	var d Dtype
	if err := d.validate(); err == nil {
		t.Error("expected error for empty dtype")
	}
}

func TestDtypeValidateRejectsMultiFieldHomogeneous(t *testing.T) {
	d := Dtype{Homogeneous: true, Fields: []FieldDescriptor{
		{Type: TypeInt, ItemSize: 8}, {Type: TypeInt, ItemSize: 8},
	}}
	if err := d.validate(); err == nil {
		t.Error("expected error for homogeneous dtype with >1 field descriptor")
	}
}

func TestFieldDescriptorString(t *testing.T) {
	d := FieldDescriptor{Type: TypeInt, ItemSize: 8}
	if got := d.String(); got != "int64" {
		t.Errorf("String() = %q, want %q", got, "int64")
	}
}
