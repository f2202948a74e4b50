package record

import (
	"strings"
	"testing"
)

func TestDec2Validation(t *testing.T) {
	type P struct {
		Amount float64 `json:"amount" validate:"dec2"`
	}
	v := NewValidator()

	for _, ok := range []float64{0, 10, 10.5, 10.55, 1234567.89} {
		if err := v.Struct(P{Amount: ok}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", ok, err)
		}
	}
	for _, bad := range []float64{10.555, 3.14159, 0.001} {
		err := v.Struct(P{Amount: bad})
		if err == nil {
			t.Fatalf("expected error for %v", bad)
		}
		fe := ToFieldErrors(err)
		if len(fe) != 1 || fe[0].Field != "amount" || !strings.Contains(fe[0].Message, "2 decimal places") {
			t.Fatalf("unexpected field errors for %v: %+v", bad, fe)
		}
	}
}

func TestDateOnlyValidation(t *testing.T) {
	type P struct {
		Date string `json:"date" validate:"dateonly"`
	}
	v := NewValidator()

	if err := v.Struct(P{Date: "2025-02-28"}); err != nil {
		t.Fatalf("expected valid date, got %v", err)
	}
	for _, bad := range []string{"", "2025-13-01", "2025-02-30", "28/02/2025", "2025-02-28T10:00:00Z"} {
		err := v.Struct(P{Date: bad})
		if err == nil {
			t.Fatalf("expected error for %q", bad)
		}
		fe := ToFieldErrors(err)
		if fe[0].Field != "date" || !strings.Contains(fe[0].Message, "YYYY-MM-DD") {
			t.Fatalf("unexpected field errors for %q: %+v", bad, fe)
		}
	}
}

func TestFieldNamesComeFromJSONTags(t *testing.T) {
	type P struct {
		FullName string `json:"full_name" validate:"required"`
	}
	v := NewValidator()
	err := v.Struct(P{})
	if err == nil {
		t.Fatal("want error")
	}
	fe := ToFieldErrors(err)
	if fe[0].Field != "full_name" {
		t.Fatalf("field = %q, want json tag name", fe[0].Field)
	}
}

func TestOneofMessageNamesInvalidValue(t *testing.T) {
	type P struct {
		Type string `json:"type" validate:"oneof=income expense"`
	}
	v := NewValidator()
	err := v.Struct(P{Type: "transfer"})
	if err == nil {
		t.Fatal("want error")
	}
	fe := ToFieldErrors(err)
	if !strings.Contains(fe[0].Message, "transfer") || !strings.Contains(fe[0].Message, "income") {
		t.Fatalf("message should name the value and the choices: %q", fe[0].Message)
	}
}
