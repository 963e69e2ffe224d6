package component

import (
	"fmt"
	"strings"
)

// ParseAttrs builds a Definition from the raw key=value tokens of a
// component directive. Repeatable keys (service, property, reference)
// accumulate; unknown keys are an error so typos surface at generation time.
func ParseAttrs(attrs []string) (Definition, error) {
	var d Definition
	for _, attr := range attrs {
		key, val, ok := strings.Cut(attr, "=")
		if !ok {
			return Definition{}, fmt.Errorf("malformed component attribute %q, want key=value", attr)
		}
		switch key {
		case "name":
			d.Name = val
		case "configpid":
			d.ConfigPID = val
		case "policy":
			d.Policy = val
		case "enabled":
			b, err := parseTriBool(key, val)
			if err != nil {
				return Definition{}, err
			}
			d.Enabled = b
		case "factory":
			d.Factory = val
		case "immediate":
			b, err := parseTriBool(key, val)
			if err != nil {
				return Definition{}, err
			}
			d.Immediate = b
		case "service":
			for _, s := range strings.Split(val, ",") {
				if s = strings.TrimSpace(s); s != "" {
					d.Services = append(d.Services, s)
				}
			}
		case "property":
			d.Properties = append(d.Properties, val)
		case "reference":
			name, iface, ok := strings.Cut(val, ":")
			if !ok {
				return Definition{}, fmt.Errorf("malformed reference %q, want name:interface", val)
			}
			d.References = append(d.References, Reference{Name: name, Interface: iface})
		case "scope":
			d.Scope = val
		case "servicefactory":
			b, err := parseTriBool(key, val)
			if err != nil {
				return Definition{}, err
			}
			d.ServiceFactory = b
		default:
			return Definition{}, fmt.Errorf("unknown component attribute %q", key)
		}
	}
	return d, nil
}

func parseTriBool(key, val string) (TriBool, error) {
	switch strings.ToLower(val) {
	case "true":
		return True, nil
	case "false":
		return False, nil
	}
	return Unset, fmt.Errorf("component attribute %s must be true or false, got %q", key, val)
}
