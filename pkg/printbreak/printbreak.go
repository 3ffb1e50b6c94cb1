//go:build !printbreak_release

package printbreak

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/arthur-debert/printbreak/pkg/callsite"
	"github.com/arthur-debert/printbreak/pkg/logging"
	"github.com/arthur-debert/printbreak/pkg/session"
)

var (
	defaultMu         sync.Mutex
	defaultController *session.Controller
)

// Default returns the process-wide controller, building it on first use.
func Default() *session.Controller {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultController == nil {
		defaultController = session.New()
	}
	return defaultController
}

// SetDefault replaces the process-wide controller.
func SetDefault(c *session.Controller) {
	defaultMu.Lock()
	defaultController = c
	defaultMu.Unlock()
}

// Enabled reports whether checkpoints currently run.
func Enabled() bool {
	return Default().Enabled()
}

// Break stops at a checkpoint showing values.
func Break(values ...interface{}) {
	checkpoint("Break", 0, values)
}

// BreakIf stops at a checkpoint only when cond is true.
func BreakIf(cond bool, values ...interface{}) {
	if !cond {
		return
	}
	checkpoint("BreakIf", 1, values)
}

func checkpoint(funcName string, skip int, values []interface{}) {
	c := Default()
	if !c.Enabled() {
		return
	}

	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "unknown", 0
	}

	var names []string
	if ok {
		var err error
		names, err = callsite.Default.Names(callsite.Call{
			File:  file,
			Line:  line,
			Funcs: []string{funcName},
			Skip:  skip,
			Count: len(values),
		})
		if err != nil {
			log := logging.GetLogger("printbreak")
			log.Debug().Err(err).Msg("falling back to positional names")
		}
	}

	vals := make([]session.Value, len(values))
	for i, v := range values {
		if nv, isNamed := v.(Value); isNamed {
			vals[i] = session.Value{Name: nv.Name, Value: nv.Value}
			continue
		}
		name := callsite.Fallback(i)
		if i < len(names) {
			name = names[i]
		}
		vals[i] = session.Value{Name: name, Value: v}
	}

	c.Checkpoint(session.Location{File: displayPath(file), Line: line}, vals...)
}

// displayPath shortens file to a path relative to the working directory
// when it lives below it.
func displayPath(file string) string {
	wd, err := os.Getwd()
	if err != nil {
		return file
	}
	rel, err := filepath.Rel(wd, file)
	if err != nil || strings.HasPrefix(rel, "..") {
		return file
	}
	return filepath.ToSlash(rel)
}
