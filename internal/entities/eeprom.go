package entities

// EEPROMFields maps a field name to a scalar value or to nested EEPROMFields.
type EEPROMFields map[string]any

// EEPROMSection wraps one parsed area of the transceiver memory map.
type EEPROMSection struct {
	Data EEPROMFields `json:"data"`
}

// EEPROMRecord is the parsed EEPROM of one physical port.
type EEPROMRecord struct {
	Interface EEPROMSection  `json:"interface"`
	DOM       *EEPROMSection `json:"dom,omitempty"`
}

// NewEEPROMRecord builds a record; dom may be nil when the module has no diagnostics.
func NewEEPROMRecord(iface EEPROMFields, dom EEPROMFields) *EEPROMRecord {
	record := &EEPROMRecord{
		Interface: EEPROMSection{Data: iface},
	}
	if dom != nil {
		record.DOM = &EEPROMSection{Data: dom}
	}

	return record
}

// DOMData returns the DOM fields or nil.
func (r *EEPROMRecord) DOMData() EEPROMFields {
	if r == nil || r.DOM == nil {
		return nil
	}

	return r.DOM.Data
}

// AsFields reports whether value is a nested mapping and returns it.
func AsFields(value any) (EEPROMFields, bool) {
	switch nested := value.(type) {
	case EEPROMFields:
		return nested, true
	case map[string]any:
		return nested, true
	default:
		return nil, false
	}
}
