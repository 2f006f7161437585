package sfp

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/sfputil/internal/entities"
	"github.com/Fivegen-LLC/sfputil/internal/objects/bo"
)

const (
	hexGroupSize = 8
	hexRowSize   = 16
)

var (
	presenceHeader = table.Row{"Port", "Presence"}
	lpmodeHeader   = table.Row{"Port", "Low-power Mode"}
)

func eepromStatus(name string, detected bool) string {
	if detected {
		return fmt.Sprintf("%s: SFP EEPROM detected", name)
	}

	return fmt.Sprintf("%s: SFP EEPROM not detected", name)
}

func sortedKeys(fields entities.EEPROMFields) []string {
	keys := lo.Keys(fields)
	slices.Sort(keys)

	return keys
}

// formatFieldsPretty renders fields as tab-indented "key: value" lines, nested mappings under a "key:" header.
func formatFieldsPretty(buf *strings.Builder, fields entities.EEPROMFields, indent int) {
	for _, key := range sortedKeys(fields) {
		value := fields[key]
		if nested, ok := entities.AsFields(value); ok {
			fmt.Fprintf(buf, "%s%s:\n", strings.Repeat("\t", indent), key)
			formatFieldsPretty(buf, nested, indent+1)
			continue
		}

		fmt.Fprintf(buf, "%s%s: %v\n", strings.Repeat("\t", indent), key, value)
	}
}

// formatFieldsOneline flattens fields into "path:value" items. A key is dropped with its
// subtree when either its name or its dotted path is excluded.
func formatFieldsOneline(fields entities.EEPROMFields, exclude map[string]bool, prefix string) (items []string) {
	for _, key := range sortedKeys(fields) {
		path := prefix + key
		if exclude[key] || exclude[path] {
			continue
		}

		if nested, ok := entities.AsFields(fields[key]); ok {
			items = append(items, formatFieldsOneline(nested, exclude, path+".")...)
			continue
		}

		items = append(items, fmt.Sprintf("%s:%v", path, fields[key]))
	}

	return items
}

// formatEEPROMPretty renders every lane as a status line followed by its indented fields.
func formatEEPROMPretty(lanes []bo.LaneEEPROM, dumpDOM bool) string {
	var buf strings.Builder
	for _, lane := range lanes {
		buf.WriteString(eepromStatus(lane.DisplayName, lane.Record != nil))
		buf.WriteString("\n")

		if lane.Record != nil {
			formatFieldsPretty(&buf, lane.Record.Interface.Data, 1)

			if dom := lane.Record.DOMData(); dumpDOM && dom != nil {
				buf.WriteString("\n")
				formatFieldsPretty(&buf, dom, 1)
			}
		}

		buf.WriteString("\n")
	}

	return buf.String()
}

// formatEEPROMOneline renders one line per detected lane; absent lanes are skipped.
func formatEEPROMOneline(lanes []bo.LaneEEPROM, ifaceExclude, domExclude []string, dumpDOM bool) string {
	var (
		buf          strings.Builder
		ifaceExclSet = lo.SliceToMap(ifaceExclude, func(key string) (string, bool) { return key, true })
		domExclSet   = lo.SliceToMap(domExclude, func(key string) (string, bool) { return key, true })
	)
	for _, lane := range lanes {
		if lane.Record == nil {
			continue
		}

		items := formatFieldsOneline(lane.Record.Interface.Data, ifaceExclSet, "")
		if dom := lane.Record.DOMData(); dumpDOM && dom != nil {
			items = append(items, formatFieldsOneline(dom, domExclSet, "")...)
		}

		fmt.Fprintf(&buf, "port:%s,%s\n", lane.DisplayName, strings.Join(items, ","))
	}

	return buf.String()
}

// formatRawBytes renders data as lowercase hex tokens, 16 per row in two groups of 8.
func formatRawBytes(data []byte) string {
	var buf strings.Builder
	for i, b := range data {
		if i > 0 && i%hexGroupSize == 0 {
			buf.WriteString(" ")
		}

		if i > 0 && i%hexRowSize == 0 {
			buf.WriteString("\n")
		}

		fmt.Fprintf(&buf, "%02x ", b)
	}

	return buf.String()
}

func formatEEPROMRaw(lanes []bo.LaneRaw) string {
	var buf strings.Builder
	for _, lane := range lanes {
		buf.WriteString(eepromStatus(lane.DisplayName, lane.Data != nil))
		buf.WriteString("\n")

		if lane.Data != nil {
			buf.WriteString(formatRawBytes(lane.Data))
			buf.WriteString("\n")
		}

		buf.WriteString("\n")
	}

	return buf.String()
}

// formatLaneStates renders a two column table in the plain layout operators script against.
func formatLaneStates(header table.Row, lanes []bo.LaneState, on, off string) string {
	t := table.NewWriter()
	t.SetStyle(plainStyle())
	t.AppendHeader(header)
	for _, lane := range lanes {
		t.AppendRow(table.Row{lane.DisplayName, lo.Ternary(lane.Enabled, on, off)})
	}

	return t.Render()
}

func plainStyle() table.Style {
	style := table.StyleDefault
	style.Name = "StylePlain"
	style.Box.PaddingLeft = ""
	style.Box.PaddingRight = "  "
	style.Format.Header = text.FormatDefault
	style.Options = table.Options{
		DrawBorder:      false,
		SeparateColumns: false,
		SeparateFooter:  false,
		SeparateHeader:  true,
		SeparateRows:    false,
	}

	return style
}
