// Package whois is a client for the RIPE DB REST API that reads, searches
// and maintains RPSL objects.
package whois

import (
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/BourgeoisBear/ripews/adapter"
	"github.com/BourgeoisBear/ripews/rpsl"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	SANDBOX    = "sandbox"
	PRODUCTION = "production"

	SandboxHost    = "https://rest-test.db.ripe.net"
	ProductionHost = "https://rest.db.ripe.net"

	SandboxUser     = "TEST-DBM-MNT"
	SandboxPassword = "emptypassword"
)

// Config holds the connection settings. Empty fields take the sandbox
// defaults.
type Config struct {
	Environment string `toml:"environment"`
	Username    string `toml:"username"`
	Password    string `toml:"password"`
	Location    string `toml:"location"`
}

// WebService talks to one RIPE DB environment. It keeps the results of the
// last call and is not safe for concurrent use.
type WebService struct {
	Log logrus.FieldLogger

	client adapter.Adapter
	cfg    Config

	results  []*rpsl.Object
	versions []Version
	skipped  []rpsl.Skipped
}

// New creates a web service for cfg. The sandbox environment always uses
// the public test maintainer credentials. An unparsable Location is an
// error.
func New(client adapter.Adapter, cfg Config) (*WebService, error) {

	if len(cfg.Environment) == 0 {
		cfg.Environment = SANDBOX
	}
	if len(cfg.Location) == 0 {
		cfg.Location = SandboxHost
	}

	ws := &WebService{
		Log:    logrus.StandardLogger(),
		client: client,
		cfg:    cfg,
	}
	if err := ws.SetEnvironment(cfg.Environment); err != nil {
		return nil, err
	}
	return ws, nil
}

func (ws *WebService) Environment() string { return ws.cfg.Environment }
func (ws *WebService) Username() string    { return ws.cfg.Username }
func (ws *WebService) Password() string    { return ws.cfg.Password }
func (ws *WebService) Host() string        { return ws.cfg.Location }

func (ws *WebService) IsProduction() bool {
	return strings.ToLower(ws.cfg.Environment) == PRODUCTION
}

func (ws *WebService) SetUsername(name string)     { ws.cfg.Username = name }
func (ws *WebService) SetPassword(password string) { ws.cfg.Password = password }

// SetEnvironment switches to the production or sandbox host. Any other
// name keeps the current host.
func (ws *WebService) SetEnvironment(env string) error {

	ws.cfg.Environment = env

	switch env {
	case PRODUCTION:
		return ws.SetHost(ProductionHost)
	case SANDBOX:
		ws.cfg.Username = SandboxUser
		ws.cfg.Password = SandboxPassword
		return ws.SetHost(SandboxHost)
	}
	return ws.SetHost(ws.cfg.Location)
}

// SetHost sets the API location from a URL. Credentials in the URL replace
// the configured ones; a /ripe or /test path selects the environment.
func (ws *WebService) SetHost(szUrl string) error {

	pU, err := url.Parse(szUrl)
	if err != nil {
		return errors.WithMessage(err, "host")
	}
	if len(pU.Host) == 0 {
		return errors.Errorf("host: no host in %q", szUrl)
	}

	szScheme := pU.Scheme
	if len(szScheme) == 0 {
		szScheme = "https"
	}
	ws.cfg.Location = szScheme + "://" + pU.Host

	if bs, ok := ws.client.(adapter.BaseURISetter); ok {
		bs.SetBaseURI(ws.cfg.Location)
	}

	if pU.User != nil {
		if szUser := pU.User.Username(); len(szUser) > 0 {
			ws.cfg.Username = szUser
		}
		if szPass, ok := pU.User.Password(); ok && len(szPass) > 0 {
			ws.cfg.Password = szPass
		}
	}

	switch pU.Path {
	case "/ripe":
		ws.cfg.Environment = PRODUCTION
	case "/test":
		ws.cfg.Environment = SANDBOX
	}

	return nil
}

// Source is the lower-case source name used in paths.
func (ws *WebService) Source() string {
	if ws.IsProduction() {
		return "ripe"
	}
	return "test"
}

// SourceID is the source attribute value.
func (ws *WebService) SourceID() string {
	return strings.ToUpper(ws.Source())
}

func (ws *WebService) basicAuth(o *rpsl.Object) string {
	szUser := ws.cfg.Username
	if len(szUser) == 0 {
		szUser = maintainer(o)
	}
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(szUser+":"+ws.cfg.Password))
}

// maintainer is the first mnt-by value of o.
func maintainer(o *rpsl.Object) string {
	a, err := o.Attribute("mnt-by")
	if (err != nil) || !a.IsDefined() {
		return ""
	}
	return a.Items()[0].Value()
}

// Result is the first object of the last call, nil if there was none.
func (ws *WebService) Result() *rpsl.Object {
	if len(ws.results) == 0 {
		return nil
	}
	return ws.results[0]
}

// Results are all objects of the last call.
func (ws *WebService) Results() []*rpsl.Object { return ws.results }

// Skipped lists the response attributes of the last call that could not be
// applied to their objects.
func (ws *WebService) Skipped() []rpsl.Skipped { return ws.skipped }

func (ws *WebService) setObjects(pRsp *Response) bool {

	ws.results = nil
	ws.skipped = nil

	sObj, sSkipped, err := rpsl.FromResources(&pRsp.WhoisResources)
	if err != nil {
		ws.Log.WithError(err).Warn("response objects")
		return false
	}

	for _, sk := range sSkipped {
		ws.Log.WithFields(logrus.Fields{
			"type":      sk.Type,
			"attribute": sk.Attribute,
			"error":     sk.Err,
		}).Warn("skipped attribute")
	}

	ws.results = sObj
	ws.skipped = sSkipped
	return pRsp.Objects != nil
}

func (ws *WebService) setVersions(pRsp *Response) bool {

	ws.versions = nil
	if pRsp.Versions == nil {
		return false
	}

	for _, vi := range pRsp.Versions.Version {
		if vi.Revision == nil {
			continue
		}
		ws.versions = append(ws.versions, Version{
			Revision:  *vi.Revision,
			Date:      vi.Date,
			Operation: vi.Operation,
		})
	}
	return true
}
