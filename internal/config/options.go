package config

import (
	"strconv"
	"strings"
)

// Flag values that remember whether they were set, so that only explicit flags
// override the config file.

type stringOpt struct {
	v   string
	set bool
}

func (o *stringOpt) String() string { return o.v }
func (o *stringOpt) Set(v string) error {
	o.v = v
	o.set = true
	return nil
}

type intOpt struct {
	v   int
	set bool
}

func (o *intOpt) String() string { return strconv.Itoa(o.v) }
func (o *intOpt) Set(v string) error {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return err
	}
	o.v = i
	o.set = true
	return nil
}

type boolOpt struct {
	v   bool
	set bool
}

func (o *boolOpt) String() string {
	if o.v {
		return "true"
	}
	return "false"
}
func (o *boolOpt) Set(v string) error {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return err
	}
	o.v = b
	o.set = true
	return nil
}

// IsBoolFlag lets "-steps" work without "=true".
func (o *boolOpt) IsBoolFlag() bool { return true }
