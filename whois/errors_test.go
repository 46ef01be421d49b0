package whois

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrors(t *testing.T) {
	assert.Equal(t, []string{
		"Error: Authorisation for [person] FOO-TEST failed\nusing \"mnt-by:\"\nnot authenticated by: FOO-MNT",
		"Error: Syntax error in %s (netname)",
		"Warning: Deprecated attribute \"changed\". This attribute has been removed.",
		"Info: Dry-run performed, no changes to the database have been made",
	}, GetErrors(fixture(t, "errors.json")))
}

func TestGetErrorsInvalidBody(t *testing.T) {
	assert.Empty(t, GetErrors(""))
	assert.Empty(t, GetErrors("<html>"))
	assert.Empty(t, GetErrors(fixture(t, "person.json")))
}

func TestRawURLEncode(t *testing.T) {
	assert.Equal(t, "because%20I%20can%21", RawURLEncode("because I can!"))
	assert.Equal(t, "a-b_c.d~e", RawURLEncode("a-b_c.d~e"))
	assert.Equal(t, "1%2B1%3D2%26x", RawURLEncode("1+1=2&x"))
}
