package balancete

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

// quietLog returns a logger that discards everything.
func quietLog() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

var errBackend = errors.New("backend down")

// brokenKV fails every operation.
type brokenKV struct{}

func (brokenKV) Get(string) ([]byte, bool, error) { return nil, false, errBackend }
func (brokenKV) Set(string, []byte) error         { return errBackend }
func (brokenKV) Delete(string) error              { return errBackend }
