package whois

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/BourgeoisBear/ripews/rpsl"
	"github.com/pkg/errors"
)

// requestBody encodes o, filling in the environment's source when unset.
func (ws *WebService) requestBody(o *rpsl.Object) (string, error) {

	a, err := o.Attribute("source")
	if err != nil {
		return "", err
	}
	if !a.IsDefined() {
		if err := a.AddValue(ws.SourceID()); err != nil {
			return "", err
		}
	}

	bs, err := json.Marshal(o)
	if err != nil {
		return "", err
	}
	return string(bs), nil
}

func (ws *WebService) submit(ctx context.Context, method, path string, o *rpsl.Object, withBody bool) (*rpsl.Object, error) {

	mHdr := map[string]string{
		"Authorization": ws.basicAuth(o),
	}

	szBody := ""
	if withBody {
		var err error
		if szBody, err = ws.requestBody(o); err != nil {
			return nil, err
		}
		mHdr["Content-Type"] = "application/json"
	}

	pRsp, err := ws.do(ctx, method, path, mHdr, szBody)
	if err != nil {
		return nil, err
	}

	ws.setObjects(pRsp)
	if res := ws.Result(); res != nil {
		return res, nil
	}
	return nil, errors.WithMessage(ENotFound, path)
}

// Create stores a new object and returns it as created by the server.
func (ws *WebService) Create(ctx context.Context, o *rpsl.Object) (*rpsl.Object, error) {
	return ws.submit(ctx, http.MethodPost, "/"+ws.Source()+"/"+o.Type(), o, true)
}

// Update replaces an existing object.
func (ws *WebService) Update(ctx context.Context, o *rpsl.Object) (*rpsl.Object, error) {
	return ws.submit(ctx, http.MethodPut, ws.objectPath(o), o, true)
}

// Delete removes an object; reason is optional.
func (ws *WebService) Delete(ctx context.Context, o *rpsl.Object, reason string) (*rpsl.Object, error) {
	szPath := ws.objectPath(o)
	if len(reason) > 0 {
		var p Params
		p.Add("reason", reason)
		szPath += "?" + p.Encode()
	}
	return ws.submit(ctx, http.MethodDelete, szPath, o, false)
}
