package tool

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Status is the closed outcome enum shared by invocation envelopes and
// whole-task runs.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is the envelope every tool invocation resolves to.
// Exactly one of Report or ErrorMessage is populated, gated by Status.
type Result struct {
	Status       Status `json:"status"`
	Report       string `json:"report,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// Success builds a success envelope.
func Success(report string) Result {
	return Result{Status: StatusSuccess, Report: report}
}

// Errorf builds an error envelope with a formatted message.
func Errorf(format string, args ...any) Result {
	return Result{Status: StatusError, ErrorMessage: fmt.Sprintf(format, args...)}
}

// Func is the callable behind a tool. Implementations report domain
// failures (missing key, upstream rejection) through the envelope; returned
// errors and panics are normalized by Invoke.
type Func func(ctx context.Context, args map[string]any) (Result, error)

// Descriptor is the read-only metadata handed to selection processes.
type Descriptor struct {
	Name        string
	Description string
	Schema      map[string]any
}

// Tool pairs a unique name with its callable and human-readable metadata.
// Immutable after New.
type Tool struct {
	name        string
	description string
	schema      map[string]any
	fn          Func
}

var ErrEmptyName = errors.New("tool name is empty")

// New constructs a tool. The schema is a JSON-schema style object describing
// the argument map; nil is allowed for tools without parameters.
func New(name string, fn Func, description string, schema map[string]any) (*Tool, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if fn == nil {
		return nil, fmt.Errorf("tool %q has no function", name)
	}
	return &Tool{name: name, description: description, schema: schema, fn: fn}, nil
}

// MustNew is New for static tool definitions known to be valid.
func MustNew(name string, fn Func, description string, schema map[string]any) *Tool {
	t, err := New(name, fn, description, schema)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Tool) Name() string        { return t.name }
func (t *Tool) Description() string { return t.description }

// Descriptor returns the metadata surfaced to selectors and help listings.
func (t *Tool) Descriptor() Descriptor {
	return Descriptor{Name: t.name, Description: t.description, Schema: t.schema}
}

// Invoke runs the underlying function. It never lets a failure escape: an
// error return or panic becomes an error envelope carrying the tool name and
// the root cause. This is the single boundary where failures are normalized.
func (t *Tool) Invoke(ctx context.Context, args map[string]any) (out Result) {
	defer func() {
		if r := recover(); r != nil {
			out = Errorf("tool %q panicked: %v", t.name, r)
		}
	}()
	res, err := t.fn(ctx, args)
	if err != nil {
		return Errorf("tool %q failed: %v", t.name, err)
	}
	return normalize(t.name, res)
}

// normalize enforces the envelope invariant so malformed tool returns never
// leak past the invoke boundary.
func normalize(name string, res Result) Result {
	switch res.Status {
	case StatusSuccess:
		res.ErrorMessage = ""
		return res
	case StatusError:
		res.Report = ""
		if res.ErrorMessage == "" {
			res.ErrorMessage = fmt.Sprintf("tool %q failed with no message", name)
		}
		return res
	default:
		return Errorf("tool %q returned unknown status %q", name, res.Status)
	}
}
