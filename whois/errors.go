package whois

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BourgeoisBear/ripews/adapter"
	"github.com/BourgeoisBear/ripews/rpsl"
	"github.com/pkg/errors"
)

var (
	EInvalidQuery = errors.New("invalid query")
	ENotFound     = errors.New("not found")
)

// RequestError is a failed API request along with the messages the server
// reported.
type RequestError struct {
	Method   string
	Path     string
	Code     int
	Status   string
	Messages []string
	Err      error
}

func (e *RequestError) Error() string {
	szMsg := fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.Status)
	if len(e.Messages) > 0 {
		szMsg += ": " + strings.Join(e.Messages, "; ")
	}
	return szMsg
}

func (e *RequestError) Unwrap() error { return e.Err }

// requestErr converts transport failures. Status errors become a
// *RequestError; anything else is annotated with the request line.
func requestErr(method, path string, err error) error {

	var pSE *adapter.StatusError
	if !errors.As(err, &pSE) {
		return errors.WithMessagef(err, "%s %s", method, path)
	}

	return &RequestError{
		Method:   method,
		Path:     path,
		Code:     pSE.Code,
		Status:   pSE.Status,
		Messages: GetErrors(pSE.Body),
		Err:      err,
	}
}

// GetErrors renders the errormessages of a response body, one line each:
//
//	Severity: text (attribute)
//
// %s placeholders are replaced with the message arguments. A message with
// fewer arguments than placeholders is returned unsubstituted. Bodies
// without errormessages yield an empty list.
func GetErrors(body string) []string {

	sList := []string{}

	var res rpsl.WhoisResources
	if err := json.Unmarshal([]byte(body), &res); err != nil {
		return sList
	}
	if res.ErrorMessages == nil {
		return sList
	}

	for _, em := range res.ErrorMessages.ErrorMessage {

		szText := em.Severity + ": " + em.Text
		if em.Attribute != nil {
			szText += " (" + em.Attribute.Name + ")"
		}

		if em.Args == nil {
			sList = append(sList, szText)
			continue
		}

		var sArgs []string
		for _, arg := range em.Args {
			if arg.Value != nil {
				sArgs = append(sArgs, *arg.Value)
			}
		}

		// RIPE may send fewer args than placeholders (e.g. empty netname)
		if strings.Count(szText, "%") > len(sArgs) {
			sList = append(sList, szText)
			continue
		}

		for _, arg := range sArgs {
			szText = strings.Replace(szText, "%s", arg, 1)
		}
		sList = append(sList, szText)
	}

	return sList
}
