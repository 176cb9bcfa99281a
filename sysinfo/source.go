package sysinfo

import "os"

// Source is the view of the outside world the resolvers read from.
type Source interface {
	LookupEnv(key string) (string, bool)
	ReadFile(path string) ([]byte, error)
}

type osSource struct{}

func (osSource) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

func (osSource) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// DefaultSource returns a Source backed by the process environment and the
// local filesystem.
func DefaultSource() Source {
	return osSource{}
}
