// Package distro classifies OBS repository URLs and package filenames by
// distribution. Every lookup is closed: anything outside the tables is a
// *ClassifyError, never a default.
package distro

import "strings"

// Family is a distribution lineage as named in OBS repository paths.
type Family string

const (
	Fedora       Family = "Fedora"
	CentOS       Family = "CentOS"
	SLE          Family = "SLE"
	Ubuntu       Family = "Ubuntu"
	Debian       Family = "Debian"
	OpenSUSE     Family = "openSUSE"
	OpenSUSELeap Family = "openSUSE_Leap"
	RHEL         Family = "RHEL"
)

// Identity is a (family, version) pair resolved from a repository URL.
type Identity struct {
	Family  Family
	Version string
}

func (id Identity) String() string {
	return string(id.Family) + " " + id.Version
}

const (
	// index of the <Family>_<Version> segment in a "/"-split OBS URL:
	// https://host/repositories/home:/user/Fedora_28/...
	distroSegment = 6

	legacyRHELURL = "RedHat_RHEL-6"
	redHatPrefix  = "RedHat_"
	leapPrefix    = "openSUSE_Leap"
	ubuntuAlias   = "xUbuntu"
)

// FromURL resolves the distribution identity encoded in an OBS repository
// or package URL.
func FromURL(url string) (Identity, error) {
	if url == legacyRHELURL {
		return Identity{Family: RHEL, Version: "6"}, nil
	}

	segments := strings.Split(url, "/")
	if len(segments) <= distroSegment {
		return Identity{}, &ClassifyError{Kind: MalformedURL, Input: url, URL: url}
	}
	seg := segments[distroSegment]
	malformed := &ClassifyError{Kind: MalformedURL, Input: seg, URL: url}

	var family, version string
	switch {
	case strings.HasPrefix(seg, redHatPrefix):
		// RedHat_RHEL-6
		parts := strings.Split(seg, "_")
		if len(parts) != 2 {
			return Identity{}, malformed
		}
		compound := strings.Split(parts[1], "-")
		if len(compound) != 2 {
			return Identity{}, malformed
		}
		family, version = compound[0], compound[1]
	case strings.HasPrefix(seg, leapPrefix):
		// openSUSE_Leap_42.3
		parts := strings.Split(seg, "_")
		if len(parts) < 3 {
			return Identity{}, malformed
		}
		family, version = leapPrefix, parts[2]
	default:
		parts := strings.Split(seg, "_")
		if len(parts) != 2 {
			return Identity{}, malformed
		}
		family, version = parts[0], parts[1]
	}

	if family == ubuntuAlias {
		family = string(Ubuntu)
	}
	return Identity{Family: Family(family), Version: version}, nil
}
