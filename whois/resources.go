package whois

import (
	"encoding/json"
	"strings"

	"github.com/BourgeoisBear/ripews/rpsl"
	"github.com/pkg/errors"
)

/*
	Response documents of the RIPE DB REST API.

	https://rest.db.ripe.net/{source}/{type}/{key}
	https://rest.db.ripe.net/{source}/{type}/{key}/versions
	https://rest.db.ripe.net/search?query-string={text}
	https://rest.db.ripe.net/abuse-contact/{key}
	https://rest.db.ripe.net/metadata/templates/{type}
*/

// Response is the union of the documents returned by the query resources.
type Response struct {
	rpsl.WhoisResources
	Versions      *VersionList   `json:"versions,omitempty"`
	AbuseContacts *AbuseContacts `json:"abuse-contacts,omitempty"`
	Templates     *TemplateList  `json:"templates,omitempty"`
}

type VersionList struct {
	Type    string        `json:"type"`
	Key     string        `json:"key"`
	Version []VersionItem `json:"version"`
}

// VersionItem is one entry of a version history. Deleted entries come
// without revision.
type VersionItem struct {
	Revision  *int   `json:"revision,omitempty"`
	Date      string `json:"date"`
	Operation string `json:"operation"`
	Deleted   string `json:"deletedDate,omitempty"`
}

// Version is one revision of an object.
type Version struct {
	Revision  int
	Date      string
	Operation string
}

func (v Version) String() string {
	return v.Date + " (" + v.Operation + ")"
}

type AbuseContacts struct {
	Key     string `json:"key"`
	Email   string `json:"email"`
	Suspect bool   `json:"suspect"`
	OrgID   string `json:"org-id"`
}

type TemplateList struct {
	Template []Template `json:"template"`
}

type Template struct {
	Type       string          `json:"type"`
	Source     rpsl.WireSource `json:"source"`
	Attributes struct {
		Attribute []rpsl.TemplateAttribute `json:"attribute"`
	} `json:"attributes"`
}

// decodeResponse parses a response body. Empty bodies decode to an empty
// response.
func decodeResponse(body string) (*Response, error) {

	pRsp := new(Response)

	szBody := strings.TrimSpace(body)
	if (len(szBody) == 0) || (szBody == "[]") {
		return pRsp, nil
	}

	if err := json.Unmarshal([]byte(szBody), pRsp); err != nil {
		return nil, errors.Wrap(err, "decode response")
	}
	return pRsp, nil
}
