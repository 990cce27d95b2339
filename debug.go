package willowui

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// globalDebug enables extra checks and debug logging. Set by
// Scene.SetDebugMode or SetDebugMode.
var globalDebug bool

var baseLogger = newBaseLogger()

// logger is the package-wide log entry. Warnings are always emitted; debug
// lines only when debug mode is on.
var logger = baseLogger.WithField("component", "willowui")

func newBaseLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

// SetDebugMode turns debug checks and debug logging on or off for the whole
// package.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
	if enabled {
		baseLogger.SetLevel(logrus.DebugLevel)
	} else {
		baseLogger.SetLevel(logrus.InfoLevel)
	}
}

// SetLogOutput redirects willowui's log output. Passing nil restores stderr.
func SetLogOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	baseLogger.SetOutput(w)
}

// debugCheckDisposed panics with a descriptive message when a disposed node
// is used in a tree operation.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("willowui debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

const debugMaxTreeDepth = 32

// debugCheckTreeDepth warns if tree depth exceeds debugMaxTreeDepth.
func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.WithFields(logrus.Fields{
			"node":  n.Name,
			"depth": depth,
		}).Warnf("tree depth exceeds %d", debugMaxTreeDepth)
	}
}

const debugMaxChildCount = 1000

// debugCheckChildCount warns if a node has more than debugMaxChildCount
// children.
func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		logger.WithFields(logrus.Fields{
			"node":     n.Name,
			"children": len(n.children),
		}).Warnf("child count exceeds %d", debugMaxChildCount)
	}
}
