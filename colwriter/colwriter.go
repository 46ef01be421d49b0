// Package colwriter writes delimited rows, padded to fixed column widths
// when the output is meant for people.
package colwriter

import (
	"fmt"
	"io"
	"strings"
)

type Cfg struct {
	Spacer string
	Pad    bool
}

type ColCfg struct {
	Title string
	Wid   uint16
	Rt    bool
}

// WriterFuncs writes rows for one column layout.
type WriterFuncs struct {
	cfg   Cfg
	cols  []ColCfg
	szFmt string
}

func (wc Cfg) NewWriterFuncs(sCfg []ColCfg) WriterFuncs {

	sParts := make([]string, len(sCfg))
	for i, cfg := range sCfg {
		if wc.Pad && (cfg.Wid > 0) {
			if cfg.Rt {
				sParts[i] = fmt.Sprintf("%%%d.%ds", cfg.Wid, cfg.Wid)
			} else {
				sParts[i] = fmt.Sprintf("%%-%d.%ds", cfg.Wid, cfg.Wid)
			}
		} else {
			sParts[i] = "%s"
		}
	}

	spcr := wc.Spacer
	if wc.Pad {
		spcr = " " + wc.Spacer + " "
	}

	return WriterFuncs{
		cfg:   wc,
		cols:  sCfg,
		szFmt: strings.Join(sParts, spcr) + "\n",
	}
}

// Row writes one line. Missing trailing fields are left empty.
func (wf WriterFuncs) Row(iWri io.Writer, sFields ...interface{}) (int, error) {

	if len(sFields) < len(wf.cols) {
		sTmp := make([]interface{}, len(wf.cols))
		copy(sTmp, sFields)
		for ix := len(sFields); ix < len(sTmp); ix++ {
			sTmp[ix] = ""
		}
		sFields = sTmp
	}

	return fmt.Fprintf(iWri, wf.szFmt, sFields[:len(wf.cols)]...)
}

// Header writes the column titles.
func (wf WriterFuncs) Header(iWri io.Writer) (int, error) {

	sTitles := make([]interface{}, len(wf.cols))
	for ix := range wf.cols {
		sTitles[ix] = wf.cols[ix].Title
	}
	return wf.Row(iWri, sTitles...)
}

// Group writes one row per line of sVals, with the sLead fields in front.
// Padded output prints the lead fields on the first row only; unpadded
// output repeats them so every line stands on its own.
func (wf WriterFuncs) Group(iWri io.Writer, sLead []interface{}, sVals []string) (int, error) {

	var sLines []string
	for _, v := range sVals {
		sLines = append(sLines, strings.Split(v, "\n")...)
	}

	sBlank := make([]interface{}, len(sLead))
	for ix := range sBlank {
		sBlank[ix] = ""
	}

	nTotal := 0
	for ix, line := range sLines {

		sFields := make([]interface{}, 0, len(sLead)+1)
		if (ix == 0) || !wf.cfg.Pad {
			sFields = append(sFields, sLead...)
		} else {
			sFields = append(sFields, sBlank...)
		}
		sFields = append(sFields, line)

		n, err := wf.Row(iWri, sFields...)
		nTotal += n
		if err != nil {
			return nTotal, err
		}
	}

	return nTotal, nil
}
