package nager

import "github.com/dvcrn/nager-date-go/raw"

// Version identifies the library behind the remote service.
type Version struct {
	Name    string
	Version string
}

func (v Version) String() string {
	return v.Name + " " + v.Version
}

func parseVersion(row raw.Row) Version {
	return Version{
		Name:    stringField(row, "name"),
		Version: stringField(row, "version"),
	}
}
