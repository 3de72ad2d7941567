package errors

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestErrorString(t *testing.T) {
	err := &Error{
		Op:   "style.Load",
		Kind: KindConfig,
		Err:  fmt.Errorf("invalid color %q", "#zz0000"),
	}
	got := err.Error()
	want := `style.Load [config]: invalid color "#zz0000"`
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := fmt.Errorf("boom")
	err := &Error{Op: "x", Kind: KindRender, Err: inner}
	if err.Unwrap() != inner {
		t.Error("Unwrap should return the underlying error")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindLayout, "layout"},
		{KindRender, "render"},
		{KindPanic, "panic"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	withOp := &PanicError{
		Op:        "dockview.renderFrame",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got = withOp.Error()
	want = "panic in dockview.renderFrame: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var capturedErr *Error
	handler := &testHandler{
		onError: func(err *Error) {
			capturedErr = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&Error{
		Op:   "test.op",
		Kind: KindLayout,
		Err:  fmt.Errorf("edge panel after central"),
	})

	if capturedErr == nil {
		t.Fatal("expected error to be captured")
	}
	if capturedErr.Op != "test.op" {
		t.Errorf("Op = %q, want %q", capturedErr.Op, "test.op")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNil(t *testing.T) {
	called := false
	handler := &testHandler{
		onError: func(err *Error) { called = true },
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(nil)
	if called {
		t.Error("Report(nil) should not reach the handler")
	}
}

func TestRecover(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if capturedPanic == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if capturedPanic.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "intentional test panic")
	}
	if capturedPanic.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", capturedPanic.Op, "test.recover")
	}
	if capturedPanic.StackTrace == "" {
		t.Error("expected StackTrace to be captured")
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Fatal("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if DefaultHandler == nil {
		t.Fatal("SetHandler(nil) should set default LogHandler, not nil")
	}
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

type testHandler struct {
	onError func(*Error)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *Error) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
