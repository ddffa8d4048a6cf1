package distro

import (
	"sort"
	"strings"
)

// tagRule builds a tag as prefix + dotless version. When versions is set,
// only its keys are accepted and the version is replaced by the mapped value.
type tagRule struct {
	prefix   string
	versions map[string]string
}

var tagRules = map[Family]tagRule{
	// official Fedora dist tag
	Fedora: {prefix: "fc"},
	CentOS: {prefix: "centos"},
	SLE:    {prefix: "sle"},
	Ubuntu: {prefix: "ubuntu"},
	// unofficial; OBS names Debian repositories 6.0 .. 9.0
	Debian: {prefix: "debian", versions: map[string]string{
		"60": "6",
		"70": "7",
		"80": "8",
		"90": "9",
	}},
	// unofficial
	OpenSUSE:     {prefix: "opensuse"},
	OpenSUSELeap: {prefix: "opensuse"},
	RHEL:         {prefix: "el"},
}

// Tag returns the short suffix embedded in renamed package files, such as
// fc28 or debian9.
func (id Identity) Tag() (string, error) {
	rule, ok := tagRules[id.Family]
	if !ok {
		return "", &ClassifyError{Kind: UnknownFamily, Family: id.Family, Version: id.Version}
	}
	ver := strings.ReplaceAll(id.Version, ".", "")
	if rule.versions != nil {
		mapped, ok := rule.versions[ver]
		if !ok {
			return "", &ClassifyError{Kind: UnknownVersion, Family: id.Family, Version: id.Version}
		}
		ver = mapped
	}
	return rule.prefix + ver, nil
}

// Families lists every family Tag accepts, sorted.
func Families() []Family {
	out := make([]Family, 0, len(tagRules))
	for f := range tagRules {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
