package main

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/BourgeoisBear/ripews/rpsl"
	"github.com/BourgeoisBear/ripews/whois"
	"github.com/asaskevich/govalidator"
	"github.com/pkg/errors"
)

type CmdGet struct {
	Type string
	Key  string
}

type CmdVersions struct {
	Type string
	Key  string
}

type CmdVersion struct {
	Type     string
	Key      string
	Revision int
}

type CmdSearch struct {
	Text  string
	Query string
}

type CmdAbuse struct {
	IP string
}

type CmdTemplate struct {
	Type string
}

type CmdRange struct {
	Range string
}

type Modes struct {
	Color        bool
	Pretty       bool
	XML          bool
	PrependQuery bool
	CmdRegex     []*regexp.Regexp
}

func (m *Modes) ParseCmd(cmd string) (CmdExec, error) {

	// build regexes on first invocation
	if len(m.CmdRegex) == 0 {

		sSyntax := []string{
			`^\s*GET\s+([a-z0-9-]+)\s+(.+?)\s*$`,
			`^\s*VERSIONS\s+([a-z0-9-]+)\s+(.+?)\s*$`,
			`^\s*VERSION\s+([a-z0-9-]+)\s+(.+?)\s+(\d+)\s*$`,
			`^\s*SEARCH\s+(\S+)(?:\s+(\S+))?\s*$`,
			`^\s*ABUSE\s+(\S+)\s*$`,
			`^\s*TEMPLATE\s+([a-z0-9-]+)\s*$`,
			`^\s*RANGE\s+(.+?)\s*$`,
		}
		var err error
		m.CmdRegex = make([]*regexp.Regexp, len(sSyntax))
		for ix, txt := range sSyntax {
			m.CmdRegex[ix], err = regexp.Compile(`(?i)` + txt)
			if err != nil {
				return nil, err
			}
		}
	}

	for ix, rx := range m.CmdRegex {

		sMtch := rx.FindStringSubmatch(cmd)
		if len(sMtch) == 0 {
			continue
		}

		switch ix {

		// GET
		case 0:
			return CmdGet{Type: strings.ToLower(sMtch[1]), Key: sMtch[2]}, nil

		// VERSIONS
		case 1:
			return CmdVersions{Type: strings.ToLower(sMtch[1]), Key: sMtch[2]}, nil

		// VERSION
		case 2:
			nRev, e2 := strconv.Atoi(sMtch[3])
			if e2 != nil {
				return nil, errors.WithMessage(e2, "invalid revision")
			}
			return CmdVersion{Type: strings.ToLower(sMtch[1]), Key: sMtch[2], Revision: nRev}, nil

		// SEARCH
		case 3:
			if (len(sMtch[2]) > 0) && (strings.Index(sMtch[2], "=") < 1) {
				return nil, errors.WithMessagef(whois.EInvalidQuery, "%q is not a query string", sMtch[2])
			}
			return CmdSearch{Text: sMtch[1], Query: sMtch[2]}, nil

		// ABUSE
		case 4:
			if !govalidator.IsIP(sMtch[1]) {
				return nil, errors.WithMessagef(whois.EInvalidQuery, "invalid IP %q", sMtch[1])
			}
			return CmdAbuse{IP: sMtch[1]}, nil

		// TEMPLATE
		case 5:
			return CmdTemplate{Type: strings.ToLower(sMtch[1])}, nil

		// RANGE
		case 6:
			if _, e2 := rpsl.RangePrefixes(sMtch[1]); e2 != nil {
				return nil, e2
			}
			return CmdRange{Range: sMtch[1]}, nil
		}
	}

	return nil, whois.EInvalidQuery
}

// keyObject builds the lookup object for a type and key. Unregistered types
// become dummy objects keyed by their type name.
func keyObject(typ, key string) (*rpsl.Object, error) {

	if _, ok := rpsl.Lookup(typ); ok {
		return rpsl.New(typ, key)
	}

	o := rpsl.NewDummy(typ, "")
	if err := o.Set(typ, key); err != nil {
		return nil, err
	}
	return o, nil
}
