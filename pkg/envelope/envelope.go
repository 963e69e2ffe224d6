// Package envelope defines the wire shape dispatched through the messaging
// runtime: a topic string plus a string-keyed property mapping mirroring a
// data object's declared fields.
package envelope

import "strings"

// Envelope is the wire representation of a data object.
type Envelope struct {
	Topic      string
	Properties map[string]any
}

// Property returns the named property, or nil when absent.
func (e Envelope) Property(name string) any {
	return e.Properties[name]
}

// New builds an envelope over the given properties.
func New(topic string, props map[string]any) Envelope {
	return Envelope{Topic: topic, Properties: props}
}

// Topic derives the event topic for a fully qualified type name by replacing
// package separators with slashes: "a.b.C" becomes "a/b/C". The derivation
// is deterministic and reversible in form.
func Topic(qualifiedName string) string {
	return strings.ReplaceAll(qualifiedName, ".", "/")
}
