package inn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantNil bool
		invalid bool
	}{
		{name: "ten digits with separators", raw: "77-01/234567", want: "7701234567"},
		{name: "twelve digits", raw: "500100732259", want: "500100732259"},
		{name: "ten digits with spaces", raw: " 7701 234 567 ", want: "7701234567"},
		{name: "too short kept as invalid", raw: "123", want: "123", invalid: true},
		{name: "eleven digits invalid", raw: "12345678901", want: "12345678901", invalid: true},
		{name: "empty", raw: "", wantNil: true, invalid: true},
		{name: "no digits", raw: "нет данных", wantNil: true, invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			norm, invalid := Normalize(tt.raw)
			assert.Equal(t, tt.invalid, invalid)
			if tt.wantNil {
				assert.Nil(t, norm)
				return
			}
			if assert.NotNil(t, norm) {
				assert.Equal(t, tt.want, *norm)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, raw := range []string{"7701234567", "123", "500100732259"} {
		first, firstInvalid := Normalize(raw)
		if first == nil {
			t.Fatalf("unexpected nil for %q", raw)
		}
		second, secondInvalid := Normalize(*first)
		if second == nil || *second != *first || secondInvalid != firstInvalid {
			t.Fatalf("normalize not idempotent for %q", raw)
		}
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("7701234567"))
	assert.True(t, Valid("77 01 23 45 67"))
	assert.False(t, Valid("123"))
	assert.False(t, Valid(""))
}
