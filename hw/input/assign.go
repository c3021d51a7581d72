package input

import (
	"fmt"
	"strings"
)

// An Assignment selects the setting of a dip switch. Its text form is
// "PORT:Dip Name=Setting", as found in configuration files.
type Assignment struct {
	Port    string
	Dip     string
	Setting string
}

func (a Assignment) MarshalText() ([]byte, error) {
	if a.Port == "" || a.Dip == "" {
		return nil, fmt.Errorf("incomplete dip assignment %+v", a)
	}
	return []byte(a.Port + ":" + a.Dip + "=" + a.Setting), nil
}

func (a *Assignment) UnmarshalText(text []byte) error {
	port, rest, ok := strings.Cut(string(text), ":")
	if !ok {
		return fmt.Errorf("invalid dip assignment %q: missing port", text)
	}
	dip, setting, ok := strings.Cut(rest, "=")
	if !ok {
		return fmt.Errorf("invalid dip assignment %q: missing setting", text)
	}
	port, dip = strings.TrimSpace(port), strings.TrimSpace(dip)
	if port == "" || dip == "" {
		return fmt.Errorf("invalid dip assignment %q", text)
	}
	*a = Assignment{Port: port, Dip: dip, Setting: strings.TrimSpace(setting)}
	return nil
}

func (a Assignment) String() string {
	return a.Port + ":" + a.Dip + "=" + a.Setting
}
