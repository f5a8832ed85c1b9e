package log

import (
	"sync/atomic"
	"testing"

	"github.com/golang/glog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	for _, name := range []string{"v", "logtostderr", "log_dir", "log-rotate-max-size"} {
		assert.NotNil(t, fs.Lookup(name), "flag %s is not registered", name)
	}

	// Registering twice must not panic on duplicate flags.
	assert.NotPanics(t, func() { RegisterFlags(fs) })
}

func TestLogRotateMaxSize(t *testing.T) {
	old := atomic.LoadUint64(&glog.MaxSize)
	defer atomic.StoreUint64(&glog.MaxSize, old)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	require.NoError(t, fs.Parse([]string{"--log-rotate-max-size=1024"}))
	assert.Equal(t, uint64(1024), atomic.LoadUint64(&glog.MaxSize))
	assert.Equal(t, "1024", fs.Lookup("log-rotate-max-size").Value.String())
	assert.Equal(t, "uint64", fs.Lookup("log-rotate-max-size").Value.Type())

	assert.Error(t, fs.Parse([]string{"--log-rotate-max-size=big"}))
}
