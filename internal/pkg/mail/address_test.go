package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFrom(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		want       string
	}{
		{name: "empty falls back", configured: "", want: "no-reply@example.com"},
		{name: "configured kept", configured: "ops@postline.dev", want: "ops@postline.dev"},
		{name: "display form kept verbatim", configured: "Ops <ops@postline.dev>", want: "Ops <ops@postline.dev>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveFrom(tt.configured))
		})
	}
}

func TestParseAddressList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "absent", raw: "", want: []string{}},
		{name: "only delimiters and spaces", raw: " , ,, ", want: []string{}},
		{name: "single", raw: "a@x.com", want: []string{"a@x.com"}},
		{name: "trim and drop empties", raw: "a@x.com, b@y.com,,  ", want: []string{"a@x.com", "b@y.com"}},
		{name: "leading delimiter", raw: ",a@x.com", want: []string{"a@x.com"}},
		{name: "order kept", raw: "c@z.com,a@x.com , b@y.com", want: []string{"c@z.com", "a@x.com", "b@y.com"}},
		{name: "duplicates kept", raw: "a@x.com,a@x.com", want: []string{"a@x.com", "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAddressList(tt.raw)

			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}
