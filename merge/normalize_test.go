package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"A-b 1!", "ab1"},
		{"ab1", "ab1"},
		{"MacBook Pro 14", "macbookpro14"},
		{"  ASUS TUF / Gaming  ", "asustufgaming"},
		{"", ""},
		{"!!!", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Normalize(c.in), "Normalize(%q)", c.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, s := range []string{"A-b 1!", "MacBook Pro", "Lenovo IdeaPad 3 15ITL6", ""} {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once))
	}
}
