// Package component models the registration metadata the lifecycle runtime
// reads to publish and activate a generated component, plus the marker
// interfaces generated code pins.
package component

import (
	"strings"

	"github.com/averell-io/componentgen/pkg/envelope"
)

// DataObject is the marker base every generated data object satisfies.
type DataObject interface {
	ToMap() map[string]any
	ToEnvelope() envelope.Envelope
}

// Handler is the marker interface the runtime uses to route inbound
// envelopes to a component's generated dispatch method.
type Handler interface {
	HandleEvent(ev envelope.Envelope)
}

// TriBool is a three-state flag for attributes that carry a meaningful
// default: Unset means the user never touched it, so "was this set" stays
// representable without guessing.
type TriBool int

const (
	Unset TriBool = iota
	True
	False
)

// Or returns the flag itself when set, otherwise the fallback.
func (b TriBool) Or(fallback TriBool) TriBool {
	if b == Unset {
		return fallback
	}
	return b
}

// Bool collapses the flag against its documented default.
func (b TriBool) Bool(def bool) bool {
	switch b {
	case True:
		return true
	case False:
		return false
	}
	return def
}

// Attribute defaults the runtime documents. An attribute equal to its
// default is never re-emitted into a generated definition.
const (
	DefaultPolicy = "optional"
	DefaultScope  = "singleton"
)

// Reference names a service dependency of a component.
type Reference struct {
	Name      string `yaml:"name"`
	Interface string `yaml:"interface"`
}

// Definition is the registration metadata for one component.
type Definition struct {
	Name           string      `yaml:"name"`
	ConfigPID      string      `yaml:"config_pid,omitempty"`
	Policy         string      `yaml:"policy,omitempty"`
	Enabled        TriBool     `yaml:"enabled,omitempty"`
	Factory        string      `yaml:"factory,omitempty"`
	Immediate      TriBool     `yaml:"immediate,omitempty"`
	Services       []string    `yaml:"services,omitempty"`
	Properties     []string    `yaml:"properties,omitempty"`
	References     []Reference `yaml:"references,omitempty"`
	Scope          string      `yaml:"scope,omitempty"`
	ServiceFactory TriBool     `yaml:"service_factory,omitempty"`
}

// TopicProperty is the property key carrying a derived topic subscription.
const TopicProperty = "event.topics"

// MarkerService is the service name of the Handler marker interface. A
// component that publishes any services must also publish this one, or the
// runtime would never hand it envelopes.
const MarkerService = "component.Handler"

// Subscribe merges a derived topic into a definition without clobbering
// anything the user supplied: the new topic property is prepended, every
// prior explicit property is kept, and attributes still at their documented
// default stay untouched. When the component declares no services at all and
// immediate was never set, immediate is forced true, since nothing would
// otherwise trigger activation; an explicit false is respected.
func (d Definition) Subscribe(topic string) Definition {
	props := make([]string, 0, len(d.Properties)+1)
	props = append(props, TopicProperty+"="+topic)
	props = append(props, d.Properties...)
	d.Properties = props

	if len(d.Services) == 0 {
		if d.Immediate == Unset {
			d.Immediate = True
		}
	} else if !contains(d.Services, MarkerService) {
		d.Services = append(d.Services, MarkerService)
	}
	return d
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}

// Topics extracts the subscribed topics from the property list, in order.
func (d Definition) Topics() []string {
	var out []string
	for _, p := range d.Properties {
		if topic, ok := strings.CutPrefix(p, TopicProperty+"="); ok {
			out = append(out, topic)
		}
	}
	return out
}
