package domain

import "encoding/json"

// ResourceDescriptor is the origin/version tag stamped onto every object
// the provisioner owns. A major version bump signals a breaking schema
// change that consumers must detect before assuming compatibility.
type ResourceDescriptor struct {
	Origin  string            `json:"origin"`
	Name    string            `json:"name"`
	Version DescriptorVersion `json:"version"`
}

type DescriptorVersion struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
}

// JSON renders the descriptor as the canonical document attached to owned
// objects (table comments, the stage descriptor object).
func (d ResourceDescriptor) JSON() string {
	b, _ := json.Marshal(d)
	return string(b)
}

// CompatibleWith reports whether a stored descriptor can be consumed by a
// caller built against this descriptor's schema version.
func (d ResourceDescriptor) CompatibleWith(other ResourceDescriptor) bool {
	return d.Origin == other.Origin &&
		d.Name == other.Name &&
		d.Version.Major == other.Version.Major
}
