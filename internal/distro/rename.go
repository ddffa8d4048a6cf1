package distro

import (
	"errors"
	"strings"
)

const (
	noarchMarker = "noarch"
	debExt       = ".deb"
)

// RenameForURL returns the local filename for a package URL on OBS: the
// original filename with the distribution tag inserted, so packages built
// for different distributions do not collide.
//
//	.../Fedora_28/noarch/bleachbit-1.0.noarch.rpm -> bleachbit-1.0.fc28.noarch.rpm
//	.../xUbuntu_18.04/all/bleachbit_1.0_all.deb   -> bleachbit_1.0_all_ubuntu1804.deb
func RenameForURL(url string) (string, error) {
	id, err := FromURL(url)
	if err != nil {
		return "", err
	}
	tag, err := id.Tag()
	if err != nil {
		var ce *ClassifyError
		if errors.As(err, &ce) {
			ce.URL = url
		}
		return "", err
	}

	name := url[strings.LastIndex(url, "/")+1:]
	switch {
	case strings.Contains(name, noarchMarker):
		base, _, _ := strings.Cut(name, "."+noarchMarker)
		return base + "." + tag + ".noarch.rpm", nil
	case strings.HasSuffix(name, debExt):
		return strings.TrimSuffix(name, debExt) + "_" + tag + debExt, nil
	}
	return "", &ClassifyError{
		Kind:    UnexpectedFilename,
		Input:   name,
		URL:     url,
		Family:  id.Family,
		Version: id.Version,
	}
}
