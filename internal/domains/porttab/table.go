package porttab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/sfputil/internal/errs"
)

const (
	columnName  = "name"
	columnLanes = "lanes"
	columnAlias = "alias"
	columnIndex = "index"
)

var (
	defaultColumns = []string{columnName, columnLanes, columnAlias, columnIndex}
)

// Port is one logical port row of the port table.
type Port struct {
	Name     string
	Alias    string
	Physical []int
	ASIC     int
}

// Table is an ordered logical to physical port mapping.
type Table struct {
	prefix   string
	ports    []Port
	byName   map[string]int
	physical map[int]bool
}

func newTable(prefix string) *Table {
	return &Table{
		prefix:   prefix,
		byName:   make(map[string]int),
		physical: make(map[int]bool),
	}
}

// Load reads port_config.ini files in order, one per ASIC.
func Load(prefix string, paths ...string) (table *Table, err error) {
	table = newTable(prefix)
	for asic, path := range paths {
		if err = table.loadFile(path, asic); err != nil {
			return nil, fmt.Errorf("Load: %w: %w", errs.ErrPortTableLoad, err)
		}
	}

	if len(table.ports) == 0 {
		return nil, fmt.Errorf("Load: %w: no ports found in %s", errs.ErrPortTableLoad, strings.Join(paths, ", "))
	}

	log.Debug().
		Int("ports", len(table.ports)).
		Strs("paths", paths).
		Msg("Load: port table loaded")

	return table, nil
}

func (t *Table) loadFile(path string, asic int) (err error) {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("loadFile: %w", err)
	}
	defer file.Close()

	if err = t.parse(file, asic); err != nil {
		return fmt.Errorf("loadFile: %s: %w", path, err)
	}

	return nil
}

func (t *Table) parse(r io.Reader, asic int) (err error) {
	var (
		columns    = defaultColumns
		lastHeader []string
		seenData   bool
		lineNumber int
		scanner    = bufio.NewScanner(r)
	)
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if lo.IsEmpty(line) {
			continue
		}

		if strings.HasPrefix(line, "#") {
			lastHeader = strings.Fields(strings.TrimPrefix(line, "#"))
			continue
		}

		if !seenData && lo.Contains(lastHeader, columnName) {
			columns = lastHeader
		}
		seenData = true

		port, parseErr := t.parseRow(columns, strings.Fields(line), asic)
		if parseErr != nil {
			return fmt.Errorf("parse: line %d: %w", lineNumber, parseErr)
		}

		if err = t.add(port); err != nil {
			return fmt.Errorf("parse: line %d: %w", lineNumber, err)
		}
	}

	if err = scanner.Err(); err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	return nil
}

func (t *Table) parseRow(columns []string, values []string, asic int) (port Port, err error) {
	if len(values) < 2 {
		return port, fmt.Errorf("parseRow: expected at least 2 columns, got %d", len(values))
	}

	row := make(map[string]string, len(columns))
	for i, column := range columns {
		if i < len(values) {
			row[column] = values[i]
		}
	}

	port = Port{
		Name:  row[columnName],
		Alias: row[columnAlias],
		ASIC:  asic,
	}

	index, ok := row[columnIndex]
	if !ok {
		// no index column: front panel position follows row order
		port.Physical = []int{len(t.ports) + 1}
		return port, nil
	}

	for _, item := range strings.Split(index, ",") {
		physicalPort, convErr := strconv.Atoi(strings.TrimSpace(item))
		if convErr != nil {
			return port, fmt.Errorf("parseRow: invalid index %q for port %s: %w", index, port.Name, convErr)
		}

		port.Physical = append(port.Physical, physicalPort)
	}

	return port, nil
}

func (t *Table) add(port Port) error {
	if _, exists := t.byName[port.Name]; exists {
		return fmt.Errorf("add: duplicate port %s", port.Name)
	}

	t.byName[port.Name] = len(t.ports)
	t.ports = append(t.ports, port)
	for _, physicalPort := range port.Physical {
		t.physical[physicalPort] = true
	}

	return nil
}

// Prefix returns the logical port naming prefix.
func (t *Table) Prefix() string {
	return t.prefix
}

// Logical returns logical port names in table order.
func (t *Table) Logical() []string {
	return lo.Map(t.ports, func(port Port, _ int) string {
		return port.Name
	})
}

func (t *Table) IsLogicalPort(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// GetLogicalToPhysical returns physical ports of a logical port in table order.
func (t *Table) GetLogicalToPhysical(name string) (physicalPorts []int, err error) {
	i, ok := t.byName[name]
	if !ok {
		return nil, fmt.Errorf("GetLogicalToPhysical: %w: %s", errs.ErrInvalidPort, name)
	}

	return append([]int(nil), t.ports[i].Physical...), nil
}

// IsValidPort accepts known logical names and physical indexes present in the table.
func (t *Table) IsValidPort(port string) bool {
	if strings.HasPrefix(port, t.prefix) {
		return t.IsLogicalPort(port)
	}

	physicalPort, err := strconv.Atoi(port)
	if err != nil {
		return false
	}

	return t.physical[physicalPort]
}
