package identity_test

import (
	"testing"

	"github.com/mduval/wedding-rsvp/utils/identity"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "trims and lowercases", in: "  A@B.Com ", want: "a@b.com"},
		{name: "already normalized", in: "a@b.com", want: "a@b.com"},
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, identity.NormalizeEmail(tt.in))
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "keeps leading plus", in: "+33 6 12 34 56 78", want: "+33612345678"},
		{name: "strips separators", in: "06-12-34-56-78", want: "0612345678"},
		{name: "parentheses and dots", in: "(06) 12.34.56.78", want: "0612345678"},
		{name: "inner plus dropped", in: "06+12", want: "0612"},
		{name: "plus only after trim", in: "  +33612345678  ", want: "+33612345678"},
		{name: "empty", in: "", want: ""},
		{name: "no digits", in: "abc", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, identity.NormalizePhone(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	emails := []string{"  A@B.Com ", "x@y.z", ""}
	for _, e := range emails {
		once := identity.NormalizeEmail(e)
		assert.Equal(t, once, identity.NormalizeEmail(once))
	}

	phones := []string{"+33 6 12 34 56 78", "06-12", "", "++33"}
	for _, p := range phones {
		once := identity.NormalizePhone(p)
		assert.Equal(t, once, identity.NormalizePhone(once))
	}
}
