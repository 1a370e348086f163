// Command c builds a C shared library (go build -buildmode=c-shared) that exposes the optimizer to other languages.
package main

/*
#include <stdlib.h>
#include <stdint.h>
#include <stdbool.h>

typedef struct {
	const char *data;
	const char *preset;
	bool pretty;
	int32_t indent;
	int32_t floatPrecision;
} SvgoOptions;

typedef struct {
	char *error;
	char *data;
} SvgoResult;
*/
import "C"
import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/tdewolff/svgo"
	"github.com/tdewolff/svgo/plugin"
)

type optimizeOptions struct {
	Data           string
	Preset         string
	Pretty         bool
	Indent         int
	FloatPrecision int
}

func parseOptions(opts *C.SvgoOptions) (optimizeOptions, error) {
	if opts == nil {
		return optimizeOptions{}, errors.New("options are required")
	}

	preset := "core"
	if opts.preset != nil {
		preset = strings.TrimSpace(C.GoString(opts.preset))
	}
	return optimizeOptions{
		Data:           C.GoString(opts.data),
		Preset:         preset,
		Pretty:         bool(opts.pretty),
		Indent:         int(opts.indent),
		FloatPrecision: int(opts.floatPrecision),
	}, nil
}

// newOptimizer returns the optimizer for the options, a negative precision keeps the default.
func newOptimizer(opts optimizeOptions) (*svgo.Optimizer, error) {
	plugins, ok := svgo.Preset(opts.Preset)
	if !ok {
		return nil, fmt.Errorf("invalid preset %q", opts.Preset)
	}
	for _, p := range plugins {
		if numeric, ok := p.(*plugin.CleanupNumericValues); ok && 0 <= opts.FloatPrecision {
			numeric.FloatPrecision = opts.FloatPrecision
		}
	}

	o := svgo.New(plugins...)
	o.Stringify.Pretty = opts.Pretty
	if opts.Indent != 0 {
		o.Stringify.Indent = opts.Indent
	}
	return o, nil
}

func setResult(out *C.SvgoResult, err error, data string) {
	if out == nil {
		return
	}

	if out.error != nil {
		C.free(unsafe.Pointer(out.error))
		out.error = nil
	}
	if out.data != nil {
		C.free(unsafe.Pointer(out.data))
		out.data = nil
	}

	if err != nil {
		out.error = C.CString(err.Error())
		return
	}

	out.data = C.CString(data)
}

//export Optimize
func Optimize(cOptions *C.SvgoOptions, cResult *C.SvgoResult) {
	opts, err := parseOptions(cOptions)
	if err != nil {
		setResult(cResult, err, "")
		return
	}

	o, err := newOptimizer(opts)
	if err != nil {
		setResult(cResult, err, "")
		return
	}

	data, err := o.String(opts.Data)
	if err != nil {
		setResult(cResult, err, "")
		return
	}
	setResult(cResult, nil, data)
}

//export FreeCString
func FreeCString(ptr unsafe.Pointer) {
	if ptr != nil {
		C.free(ptr)
	}
}

func main() {}
