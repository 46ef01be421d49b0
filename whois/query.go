package whois

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/BourgeoisBear/ripews/rpsl"
	"github.com/asaskevich/govalidator"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func (ws *WebService) do(ctx context.Context, method, path string, headers map[string]string, body string) (*Response, error) {

	if headers == nil {
		headers = make(map[string]string, 1)
	}
	headers["Accept"] = "application/json"

	ws.Log.WithFields(logrus.Fields{"method": method, "path": path}).Debug("request")

	szBody, err := ws.client.Request(ctx, method, path, headers, body)
	if err != nil {
		return nil, requestErr(method, path, err)
	}

	return decodeResponse(szBody)
}

func (ws *WebService) query(ctx context.Context, path string) (*Response, error) {
	return ws.do(ctx, http.MethodGet, path, nil, "")
}

func (ws *WebService) objectPath(o *rpsl.Object) string {
	return fmt.Sprintf("/%s/%s/%s", ws.Source(), o.Type(), o.PrimaryKey())
}

// Read fetches the unfiltered current version of o.
func (ws *WebService) Read(ctx context.Context, o *rpsl.Object) (*rpsl.Object, error) {
	return ws.ReadWith(ctx, o, "unfiltered")
}

// ReadWith fetches o with the given query flags (e.g. "unfiltered",
// "unformatted"). Without flags no query string is sent.
func (ws *WebService) ReadWith(ctx context.Context, o *rpsl.Object, params ...string) (*rpsl.Object, error) {

	szPath := ws.objectPath(o)
	if len(params) > 0 {
		szPath += "?" + strings.Join(params, "&")
	}

	return ws.queryObject(ctx, szPath)
}

func (ws *WebService) queryObject(ctx context.Context, path string) (*rpsl.Object, error) {

	pRsp, err := ws.query(ctx, path)
	if err != nil {
		return nil, err
	}

	ws.setObjects(pRsp)
	if res := ws.Result(); res != nil {
		return res, nil
	}
	return nil, errors.WithMessage(ENotFound, path)
}

// Version fetches one revision of o.
func (ws *WebService) Version(ctx context.Context, o *rpsl.Object, revision int) (*rpsl.Object, error) {
	return ws.queryObject(ctx, fmt.Sprintf("%s/versions/%d?unfiltered", ws.objectPath(o), revision))
}

// Versions lists the revisions of o in server order. Deletions are left out.
func (ws *WebService) Versions(ctx context.Context, o *rpsl.Object) ([]Version, error) {

	pRsp, err := ws.query(ctx, ws.objectPath(o)+"/versions")
	if err != nil {
		return nil, err
	}

	ws.setVersions(pRsp)
	return ws.versions, nil
}

// Search runs a full text / inverse lookup and returns the number of
// objects found; the objects are available through Results.
func (ws *WebService) Search(ctx context.Context, value string, params Params) (int, error) {

	sParams := make(Params, 0, len(params)+2)
	sParams = append(sParams, params...)
	sParams.Add("source", ws.Source())
	sParams.Add("query-string", value)

	return ws.search(ctx, "/search?"+sParams.Encode())
}

// SearchQuery is Search with a ready-made query string, which is used
// verbatim. value is encoded.
func (ws *WebService) SearchQuery(ctx context.Context, value string, query string) (int, error) {

	if strings.Index(query, "=") < 1 {
		return 0, errors.WithMessagef(EInvalidQuery, "%q is not a query string", query)
	}

	if !strings.Contains(query, "source=") {
		query += "&source=" + ws.Source()
	}
	query += "&query-string=" + RawURLEncode(value)

	return ws.search(ctx, "/search?"+query)
}

func (ws *WebService) search(ctx context.Context, path string) (int, error) {

	pRsp, err := ws.query(ctx, path)
	if err != nil {
		return 0, err
	}

	ws.setObjects(pRsp)
	return len(ws.results), nil
}

// AbuseContact returns the abuse mailbox responsible for an IP address.
func (ws *WebService) AbuseContact(ctx context.Context, ip string) (string, error) {
	if !govalidator.IsIP(ip) {
		return "", errors.WithMessagef(EInvalidQuery, "%q is not an IP address", ip)
	}
	return ws.abuseContact(ctx, ip)
}

// AbuseContactFor returns the abuse mailbox responsible for an object.
func (ws *WebService) AbuseContactFor(ctx context.Context, o *rpsl.Object) (string, error) {
	return ws.abuseContact(ctx, o.PrimaryKey())
}

func (ws *WebService) abuseContact(ctx context.Context, key string) (string, error) {

	szPath := "/abuse-contact/" + key
	pRsp, err := ws.query(ctx, szPath)
	if err != nil {
		return "", err
	}

	if (pRsp.AbuseContacts == nil) || (len(pRsp.AbuseContacts.Email) == 0) {
		return "", errors.WithMessage(ENotFound, szPath)
	}
	return pRsp.AbuseContacts.Email, nil
}

// ObjectFromTemplate builds an empty object from the server's current
// template for typ rather than the compiled-in schema.
func (ws *WebService) ObjectFromTemplate(ctx context.Context, typ string) (*rpsl.Object, error) {

	typ = strings.ToLower(typ)
	szPath := "/metadata/templates/" + typ

	pRsp, err := ws.query(ctx, szPath)
	if err != nil {
		return nil, err
	}

	if (pRsp.Templates == nil) || (len(pRsp.Templates.Template) == 0) {
		return nil, errors.WithMessage(ENotFound, szPath)
	}

	tpl := pRsp.Templates.Template[0]
	o := rpsl.Factory(typ, tpl.Attributes.Attribute)
	if err := o.Set("source", tpl.Source.ID); err != nil {
		return nil, err
	}
	return o, nil
}
