package distro

import (
	"regexp"
	"strings"
)

// WindowsLabel is the label of the .exe installer.
const WindowsLabel = "Microsoft Windows"

// bleachbit-0.9.0beta-1.1.centosCentOS-6.noarch.rpm predates the tag scheme.
const legacyCentOS6 = "centosCentOS-6"

var (
	rpmTagPattern = regexp.MustCompile(`\.([a-z]*[0-9]*)\.noarch\.rpm$`)
	debTagPattern = regexp.MustCompile(`_([a-z]*[0-9]*)\.deb$`)
)

var rpmLabels = map[string]string{
	"centos6":     "CentOS 6",
	"centos7":     "CentOS 7",
	"fc20":        "Fedora 20 (Heisenbug)",
	"fc21":        "Fedora 21",
	"fc22":        "Fedora 22",
	"fc23":        "Fedora 23",
	"fc24":        "Fedora 24",
	"fc25":        "Fedora 25",
	"fc26":        "Fedora 26",
	"fc27":        "Fedora 27",
	"fc28":        "Fedora 28",
	"opensuse131": "openSUSE 13.1",
	"opensuse132": "openSUSE 13.2",
	"opensuse421": "openSUSE Leap 42.1",
	"opensuse422": "openSUSE Leap 42.2",
	"opensuse423": "openSUSE Leap 42.3",
	"el6":         "RHEL 6",
	"el7":         "RHEL 7",
	"sle11":       `<acronym title="SUSE Linux Enterprise">SLE</acronym> 11`,
}

var debLabels = map[string]string{
	"ubuntu1204": "Ubuntu 12.04 (Precise Pangolin)",
	"ubuntu1404": "Ubuntu 14.04 LTS (Trusty Tahr)",
	"ubuntu1410": "Ubuntu 14.10 (Utopic Unicorn)",
	"ubuntu1504": "Ubuntu 15.04 (Vivid Vervet)",
	"ubuntu1510": "Ubuntu 15.10 (Wily Werewolf)",
	"ubuntu1604": "Ubuntu 16.04 LTS (Xenial Xerus)",
	"ubuntu1610": "Ubuntu 16.10 (Yakkety Yak)",
	"ubuntu1704": "Ubuntu 17.04 (Zesty Zapus)",
	"ubuntu1710": "Ubuntu 17.10 (Artful Aardvark)",
	"ubuntu1804": "Ubuntu 18.04 LTS (Bionic Beaver)",
	"ubuntu1810": "Ubuntu 18.10 (Cosmic Cuttlefish)",
	"debian6":    "Debian 6 (Squeeze)",
	"debian7":    "Debian 7 (Wheezy)",
	"debian8":    "Debian 8 (Jessie)",
	"debian9":    "Debian 9 (Stretch)",
}

// Label returns the human-readable distribution name for a package
// filename. The result may contain HTML markup.
func Label(filename string) (string, error) {
	if strings.Contains(filename, legacyCentOS6) {
		return "CentOS 6", nil
	}
	if m := rpmTagPattern.FindStringSubmatch(filename); m != nil {
		return lookupLabel(rpmLabels, m[1], filename)
	}
	if m := debTagPattern.FindStringSubmatch(filename); m != nil {
		return lookupLabel(debLabels, m[1], filename)
	}
	if strings.HasSuffix(filename, ".exe") {
		return WindowsLabel, nil
	}
	return "", &ClassifyError{Kind: UnknownLabel, Input: filename}
}

func lookupLabel(table map[string]string, tag, filename string) (string, error) {
	label, ok := table[tag]
	if !ok {
		return "", &ClassifyError{Kind: UnknownLabel, Input: filename}
	}
	return label, nil
}
