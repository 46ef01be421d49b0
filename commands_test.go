package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BourgeoisBear/ripews/adapter"
	"github.com/BourgeoisBear/ripews/whois"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T, name string) string {
	t.Helper()
	bs, err := os.ReadFile(filepath.Join("whois", "testdata", name))
	require.NoError(t, err)
	return string(bs)
}

func newParams(t *testing.T, responses ...string) (CmdExecParams, *adapter.Mock, *bytes.Buffer) {
	t.Helper()
	m := adapter.NewMock(responses...)
	ws, err := whois.New(m, whois.Config{})
	require.NoError(t, err)
	ws.Log, _ = test.NewNullLogger()
	var buf bytes.Buffer
	return CmdExecParams{Ctx: context.Background(), WS: ws, Out: &buf}, m, &buf
}

func TestCmdGet(t *testing.T) {

	cep, m, buf := newParams(t, fixture(t, "person.json"))
	var mode Modes
	require.NoError(t, cep.runCmd(&mode, "get person FOO-TEST"))

	assert.Equal(t, "https://rest-test.db.ripe.net/test/person/FOO-TEST?unfiltered", m.Last().URL)

	szOut := buf.String()
	assert.True(t, strings.HasPrefix(szOut, "person:|John Smith\n"), szOut)
	assert.Contains(t, szOut, "address:|Example, Ltd.\naddress:|Road to Mandalay 1\n")
	assert.Contains(t, szOut, "mnt-by:|FOO-MNT\n")
	// source never carries decorations
	assert.Contains(t, szOut, "source:|TEST\n")
	assert.NotContains(t, szOut, "Filtered")
	assert.Contains(t, szOut, "last-modified:|1970-01-01T00:00:00Z\n")
	assert.NotContains(t, szOut, "changed")
}

func TestCmdGetPretty(t *testing.T) {

	cep, _, buf := newParams(t, fixture(t, "person.json"))
	mode := Modes{Pretty: true}
	require.NoError(t, cep.runCmd(&mode, "get person FOO-TEST"))

	szOut := buf.String()
	assert.True(t, strings.HasPrefix(szOut, "Person (FOO-TEST)\n"), szOut)
	assert.Contains(t, szOut, "address:         | Example, Ltd.\n                 | Road to Mandalay 1\n")
}

func TestCmdGetXML(t *testing.T) {

	cep, _, buf := newParams(t, fixture(t, "person.json"))
	var mode Modes
	require.NoError(t, cep.runCmd(&mode, "xml"))
	require.NoError(t, cep.runCmd(&mode, "get person FOO-TEST"))

	szOut := buf.String()
	assert.True(t, strings.HasPrefix(szOut, `<?xml version="1.0"`), szOut)
	assert.Contains(t, szOut, `<object type="person">`)
}

func TestCmdPrependQuery(t *testing.T) {

	cep, _, buf := newParams(t)
	cep.MaxCmdLen = 12
	mode := Modes{PrependQuery: true}
	require.NoError(t, cep.runCmd(&mode, "range 10.0.0.0 - 10.0.1.255"))
	assert.Equal(t, "range 10.0.0.0 - 10.0.1.255|IPV4|10.0.0.0/23\n", buf.String())
}

func TestCmdVersions(t *testing.T) {

	cep, m, buf := newParams(t, fixture(t, "versions.json"))
	var mode Modes
	require.NoError(t, cep.runCmd(&mode, "versions inetnum 127.0.0.1"))

	assert.Equal(t, "https://rest-test.db.ripe.net/test/inetnum/127.0.0.1/versions", m.Last().URL)
	assert.Equal(t, "1|2015-05-21T11:02:20Z|ADD/UPD\n2|2015-06-10T08:54:01Z|ADD/UPD\n", buf.String())
}

func TestCmdVersionsEmpty(t *testing.T) {

	cep, _, _ := newParams(t, `{"versions": {"version": []}}`)
	var mode Modes
	assert.ErrorIs(t, cep.runCmd(&mode, "versions inetnum 127.0.0.1"), whois.ENotFound)
}

func TestCmdVersion(t *testing.T) {

	cep, m, buf := newParams(t, fixture(t, "person.json"))
	var mode Modes
	require.NoError(t, cep.runCmd(&mode, "version person FOO-TEST 2"))
	assert.Equal(t, "https://rest-test.db.ripe.net/test/person/FOO-TEST/versions/2?unfiltered", m.Last().URL)
	assert.Contains(t, buf.String(), "nic-hdl:|FOO-TEST\n")
}

func TestCmdSearch(t *testing.T) {

	cep, m, buf := newParams(t, fixture(t, "search.json"))
	var mode Modes
	require.NoError(t, cep.runCmd(&mode, "search FOO type-filter=role"))

	assert.Equal(t, "https://rest-test.db.ripe.net/search?type-filter=role&source=test&query-string=FOO", m.Last().URL)
	assert.Contains(t, buf.String(), "nic-hdl:|FOO1-TEST\n")
	assert.Contains(t, buf.String(), "\n\n")
	assert.Contains(t, buf.String(), "nic-hdl:|FOO2-TEST\n")

	require.NoError(t, cep.runCmd(&mode, "search FOO"))
	assert.Equal(t, "https://rest-test.db.ripe.net/search?source=test&query-string=FOO", m.Last().URL)
}

func TestCmdSearchEmpty(t *testing.T) {

	cep, _, _ := newParams(t, `{"objects": {"object": []}}`)
	var mode Modes
	assert.ErrorIs(t, cep.runCmd(&mode, "search nothing"), whois.ENotFound)
}

func TestCmdAbuse(t *testing.T) {

	cep, m, buf := newParams(t, fixture(t, "abuse.json"))
	var mode Modes
	require.NoError(t, cep.runCmd(&mode, "abuse 127.0.0.1"))
	assert.Equal(t, "https://rest-test.db.ripe.net/abuse-contact/127.0.0.1", m.Last().URL)
	assert.Equal(t, "127.0.0.1|abuse@example.com\n", buf.String())
}

func TestCmdTemplate(t *testing.T) {

	cep, m, buf := newParams(t, fixture(t, "template.json"))
	var mode Modes
	require.NoError(t, cep.runCmd(&mode, "template poem"))
	assert.Equal(t, "https://rest-test.db.ripe.net/metadata/templates/poem", m.Last().URL)

	szOut := buf.String()
	assert.True(t, strings.HasPrefix(szOut, "poem|mandatory|single\ndescr|optional|multiple\n"), szOut)
	assert.True(t, strings.HasSuffix(szOut, "created|generated|single\nlast-modified|generated|single\n"), szOut)
}

func TestCmdRange(t *testing.T) {

	cep, m, buf := newParams(t)
	var mode Modes
	require.NoError(t, cep.runCmd(&mode, "range 10.0.0.0 - 10.0.2.255"))
	assert.Equal(t, "IPV4|10.0.0.0/23\nIPV4|10.0.2.0/24\n", buf.String())
	assert.Empty(t, m.Requests())
}

func TestCmdRequestError(t *testing.T) {

	cep, m, _ := newParams(t)
	m.Err = &adapter.StatusError{Code: 404, Status: "404 Not Found", Body: fixture(t, "errors.json")}
	var mode Modes

	err := cep.runCmd(&mode, "get person FOO-TEST")
	var pRE *whois.RequestError
	require.ErrorAs(t, err, &pRE)
	assert.Equal(t, 404, pRE.Code)
}

func TestRunCmdModes(t *testing.T) {

	cep, m, buf := newParams(t)
	var mode Modes
	require.NoError(t, cep.runCmd(&mode, "  "))
	require.NoError(t, cep.runCmd(&mode, "pretty"))
	assert.True(t, mode.Pretty)
	assert.Empty(t, buf.String())
	assert.Empty(t, m.Requests())

	assert.ErrorIs(t, cep.runCmd(&mode, "bogus"), whois.EInvalidQuery)
}

func TestAnsiMsg(t *testing.T) {

	var buf bytes.Buffer
	m := Modes{Color: true}
	_, err := m.AnsiMsg(&buf, "error", "boom", []uint8{1, 91})
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1;91merror\x1b[0m: boom\n", buf.String())

	buf.Reset()
	m.Color = false
	m.AnsiMsg(&buf, "NOT FOUND", "", []uint8{1, 91})
	assert.Equal(t, "NOT FOUND\n", buf.String())
}
