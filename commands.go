package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	cw "github.com/BourgeoisBear/ripews/colwriter"
	"github.com/BourgeoisBear/ripews/rpsl"
	"github.com/BourgeoisBear/ripews/whois"
)

type CmdExec interface {
	Exec(CmdExecParams) error
}

type CmdExecParams struct {
	Modes
	Ctx       context.Context
	WS        *whois.WebService
	Out       io.Writer
	Cmd       string
	MaxCmdLen uint16
}

func (cep CmdExecParams) writerCfg() cw.Cfg {
	return cw.Cfg{Spacer: "|", Pad: cep.Pretty}
}

// withQuery puts the query column in front of sCfg when enabled.
func (cep CmdExecParams) withQuery(sCfg []cw.ColCfg) []cw.ColCfg {
	if !cep.PrependQuery {
		return sCfg
	}
	return append([]cw.ColCfg{{Wid: cep.MaxCmdLen, Title: "QRY"}}, sCfg...)
}

func (cep CmdExecParams) fields(sFields ...interface{}) []interface{} {
	if !cep.PrependQuery {
		return sFields
	}
	return append([]interface{}{cep.Cmd}, sFields...)
}

// printObject writes one attribute per group of rows, or the XML document
// in xml mode.
func (cep CmdExecParams) printObject(o *rpsl.Object) error {

	if cep.XML {
		bsXml, err := o.ToXML()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cep.Out, "%s\n", bsXml)
		return err
	}

	oWF := cep.writerCfg().NewWriterFuncs(cep.withQuery([]cw.ColCfg{
		{Wid: 16, Title: "ATTRIBUTE"},
		{Title: "VALUE"},
	}))

	if cep.Pretty {
		fmt.Fprintf(cep.Out, "%s (%s)\n", o.ClassName(), o.PrimaryKey())
	}

	return o.ForEachDefined(func(a *rpsl.Attribute) error {
		sVals := make([]string, 0, len(a.Items()))
		for _, item := range a.Items() {
			sVals = append(sVals, item.String())
		}
		_, err := oWF.Group(cep.Out, cep.fields(a.Name()+":"), sVals)
		return err
	})
}

func (cep CmdExecParams) printObjects(sObj []*rpsl.Object) error {

	for ix, o := range sObj {
		if (ix > 0) && !cep.XML {
			fmt.Fprintln(cep.Out)
		}
		if err := cep.printObject(o); err != nil {
			return err
		}
	}
	return nil
}

func (v CmdGet) Exec(cep CmdExecParams) error {

	o, err := keyObject(v.Type, v.Key)
	if err != nil {
		return err
	}

	if _, err = cep.WS.Read(cep.Ctx, o); err != nil {
		return err
	}
	return cep.printObjects(cep.WS.Results())
}

func (v CmdVersions) Exec(cep CmdExecParams) error {

	o, err := keyObject(v.Type, v.Key)
	if err != nil {
		return err
	}

	sVer, err := cep.WS.Versions(cep.Ctx, o)
	if err != nil {
		return err
	}
	if len(sVer) == 0 {
		return whois.ENotFound
	}

	oWF := cep.writerCfg().NewWriterFuncs(cep.withQuery([]cw.ColCfg{
		{Wid: 4, Title: "REV", Rt: true},
		{Wid: 20, Title: "DATE"},
		{Title: "OPERATION"},
	}))

	if cep.Pretty {
		if _, err := oWF.Header(cep.Out); err != nil {
			return err
		}
	}

	for _, ver := range sVer {
		_, err := oWF.Row(cep.Out, cep.fields(strconv.Itoa(ver.Revision), ver.Date, ver.Operation)...)
		if err != nil {
			return err
		}
	}
	return nil
}

func (v CmdVersion) Exec(cep CmdExecParams) error {

	o, err := keyObject(v.Type, v.Key)
	if err != nil {
		return err
	}

	res, err := cep.WS.Version(cep.Ctx, o, v.Revision)
	if err != nil {
		return err
	}
	return cep.printObject(res)
}

func (v CmdSearch) Exec(cep CmdExecParams) error {

	var n int
	var err error
	if len(v.Query) > 0 {
		n, err = cep.WS.SearchQuery(cep.Ctx, v.Text, v.Query)
	} else {
		n, err = cep.WS.Search(cep.Ctx, v.Text, nil)
	}
	if err != nil {
		return err
	}
	if n == 0 {
		return whois.ENotFound
	}

	return cep.printObjects(cep.WS.Results())
}

func (v CmdAbuse) Exec(cep CmdExecParams) error {

	szEmail, err := cep.WS.AbuseContact(cep.Ctx, v.IP)
	if err != nil {
		return err
	}

	oWF := cep.writerCfg().NewWriterFuncs(cep.withQuery([]cw.ColCfg{
		{Wid: 16, Title: "IP"},
		{Title: "ABUSE-MAILBOX"},
	}))
	_, err = oWF.Row(cep.Out, cep.fields(v.IP, szEmail)...)
	return err
}

func (v CmdTemplate) Exec(cep CmdExecParams) error {

	o, err := cep.WS.ObjectFromTemplate(cep.Ctx, v.Type)
	if err != nil {
		return err
	}

	oWF := cep.writerCfg().NewWriterFuncs(cep.withQuery([]cw.ColCfg{
		{Wid: 16, Title: "ATTRIBUTE"},
		{Wid: 9, Title: "REQ"},
		{Title: "CARD"},
	}))

	if cep.Pretty {
		if _, err := oWF.Header(cep.Out); err != nil {
			return err
		}
	}

	fnCard := func(a *rpsl.Attribute) string {
		if a.IsMultiple() {
			return "multiple"
		}
		return "single"
	}

	for _, a := range o.Attributes() {
		szReq := "optional"
		if a.IsRequired() {
			szReq = "mandatory"
		}
		if _, err := oWF.Row(cep.Out, cep.fields(a.Name(), szReq, fnCard(a))...); err != nil {
			return err
		}
	}

	for _, a := range o.Generated() {
		if _, err := oWF.Row(cep.Out, cep.fields(a.Name(), "generated", fnCard(a))...); err != nil {
			return err
		}
	}

	return nil
}

func (v CmdRange) Exec(cep CmdExecParams) error {

	sPfx, err := rpsl.RangePrefixes(v.Range)
	if err != nil {
		return err
	}

	oWF := cep.writerCfg().NewWriterFuncs(cep.withQuery([]cw.ColCfg{
		{Wid: 4, Title: "TYPE"},
		{Title: "PREFIX"},
	}))

	for _, pfx := range sPfx {
		addrVer := "IPV4"
		if pfx.Addr().Is6() {
			addrVer = "IPV6"
		}
		if _, err := oWF.Row(cep.Out, cep.fields(addrVer, pfx.String())...); err != nil {
			return err
		}
	}

	return nil
}
