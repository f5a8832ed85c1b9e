// Package log provides a thin adapter around glog.
//
// The core computor package never logs; only the command line does.
package log

import (
	"flag"
	"strconv"
	"sync/atomic"

	"github.com/golang/glog"
	"github.com/spf13/pflag"
)

// Flush ensures any pending I/O is written.
var Flush = glog.Flush

var (
	// V quickly checks if the logging verbosity meets a threshold.
	V = glog.V

	// Infof formats and logs at the info level.
	Infof = glog.Infof

	// Warningf formats and logs at the warning level.
	Warningf = glog.Warningf

	// Errorf formats and logs at the error level.
	Errorf = glog.Errorf
)

// glogFlags lists the flags glog installs on the standard flag.CommandLine.
var glogFlags = []string{
	"alsologtostderr",
	"log_backtrace_at",
	"log_dir",
	"logtostderr",
	"stderrthreshold",
	"v",
	"vmodule",
}

// RegisterFlags installs log flags on the given FlagSet.
func RegisterFlags(fs *pflag.FlagSet) {
	for _, name := range glogFlags {
		if f := flag.CommandLine.Lookup(name); f != nil && fs.Lookup(name) == nil {
			fs.AddGoFlag(f)
		}
	}

	if fs.Lookup("log-rotate-max-size") != nil {
		return
	}
	flagVal := logRotateMaxSize{
		val: strconv.FormatUint(atomic.LoadUint64(&glog.MaxSize), 10),
	}
	fs.Var(&flagVal, "log-rotate-max-size", "size in bytes at which logs are rotated (glog.MaxSize)")
}

// logRotateMaxSize implements pflag.Value and is used to
// try and provide thread-safe access to glog.MaxSize.
type logRotateMaxSize struct {
	val string
}

func (lrms *logRotateMaxSize) Set(s string) error {
	maxSize, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	atomic.StoreUint64(&glog.MaxSize, maxSize)
	lrms.val = s
	return nil
}

func (lrms *logRotateMaxSize) String() string {
	return lrms.val
}

func (lrms *logRotateMaxSize) Type() string {
	return "uint64"
}
