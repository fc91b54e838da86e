package request

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

func TestPincodeValidation(t *testing.T) {
	cases := []struct {
		name    string
		pincode string
		valid   bool
	}{
		{name: "metro pincode", pincode: "400001", valid: true},
		{name: "leading zero", pincode: "040001", valid: false},
		{name: "non digit", pincode: "40A001", valid: false},
		{name: "too long", pincode: "4000011", valid: false},
		{name: "too short", pincode: "40001", valid: false},
		{name: "missing", pincode: "", valid: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&ServiceabilityQuery{Pincode: tc.pincode})
			if tc.valid && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.valid && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
