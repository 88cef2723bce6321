package huffman

import (
	"github.com/op/go-logging"
)

// LogModule is the go-logging module name used by this package.  Use
// logging.SetLevel(level, huffman.LogModule) to control its verbosity.
const LogModule = "seqhuff"

var log = logging.MustGetLogger(LogModule)
