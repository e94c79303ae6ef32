package iocontext

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestEmptyContext(t *testing.T) {
	ctx := context.Background()
	if Stdout(ctx) != nil || Stderr(ctx) != nil || Stdin(ctx) != nil {
		t.Error("expected nil streams for empty context")
	}
}

func TestWithIO_InjectsWriters(t *testing.T) {
	var stdout, stderr bytes.Buffer
	ctx := WithIO(context.Background(), &stdout, &stderr)

	if Stdout(ctx) != &stdout {
		t.Errorf("expected injected stdout")
	}
	if Stderr(ctx) != &stderr {
		t.Errorf("expected injected stderr")
	}
}

func TestWithStdin(t *testing.T) {
	in := strings.NewReader("name,age\n")
	ctx := WithStdin(context.Background(), in)

	if Stdin(ctx) != in {
		t.Errorf("expected injected stdin")
	}
	if Stdout(ctx) != nil {
		t.Errorf("WithStdin should not set stdout")
	}
}

func TestOrDefault(t *testing.T) {
	var ctxOut, ctxErr, defOut, defErr bytes.Buffer
	ctxIn, defIn := strings.NewReader("ctx"), strings.NewReader("def")

	empty := context.Background()
	if StdoutOrDefault(empty, &defOut) != &defOut {
		t.Error("expected default stdout")
	}
	if StderrOrDefault(empty, &defErr) != &defErr {
		t.Error("expected default stderr")
	}
	if StdinOrDefault(empty, defIn) != defIn {
		t.Error("expected default stdin")
	}

	ctx := WithStdin(WithIO(empty, &ctxOut, &ctxErr), ctxIn)
	if StdoutOrDefault(ctx, &defOut) != &ctxOut {
		t.Error("expected context stdout")
	}
	if StderrOrDefault(ctx, &defErr) != &ctxErr {
		t.Error("expected context stderr")
	}
	if StdinOrDefault(ctx, defIn) != ctxIn {
		t.Error("expected context stdin")
	}
}

func TestWithIO_NilWritersFallBack(t *testing.T) {
	var def bytes.Buffer
	ctx := WithIO(context.Background(), nil, nil)

	if StdoutOrDefault(ctx, &def) != &def {
		t.Error("nil injected stdout should fall back to default")
	}
}
