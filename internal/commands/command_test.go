package commands

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/focusflow/internal/model"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add pay rent", TypeAdd},
		{"done 2", TypeDone},
		{"/sub 1 s2", TypeSub},
		{"delete abc", TypeDelete},
		{"habit h1", TypeHabit},
		{"view Goals", TypeView},
		{"/summary", TypeSummary},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddOptions(t *testing.T) {
	cmd, err := Parse("/add Book dentist cat:health prio:HIGH")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := AddArgs{Title: "Book dentist", Category: model.CategoryHealth, Priority: model.PriorityHigh}
	if *cmd.Add != want {
		t.Fatalf("unexpected add args: %+v", *cmd.Add)
	}

	cmd, err = Parse("add Call mom")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Category != model.CategoryPersonal || cmd.Add.Priority != model.PriorityMedium {
		t.Fatalf("unexpected defaults: %+v", *cmd.Add)
	}
}

func TestParseInvalidArguments(t *testing.T) {
	cases := []string{
		"/add",
		"/add cat:work",
		"/add x prio:urgent",
		"/done",
		"/done 1 2",
		"/sub 1",
		"/view calendar",
	}
	for _, in := range cases {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q: expected invalid argument, got %v", in, err)
		}
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/unknown do x")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "  ", "/"} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeEmptyInput {
			t.Fatalf("parse %q: expected empty input, got %v", in, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add write docs")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Title != "write docs" {
				t.Fatalf("unexpected title: %q", a.Title)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("summary")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	ids := []string{"a1", "b2", "c3"}
	cases := []struct {
		ref  Ref
		want string
		ok   bool
	}{
		{ref: "1", want: "a1", ok: true},
		{ref: "3", want: "c3", ok: true},
		{ref: "b2", want: "b2", ok: true},
		{ref: "0"},
		{ref: "4"},
		{ref: "zz"},
	}
	for _, tc := range cases {
		got, err := Resolve(tc.ref, ids)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Fatalf("resolve %q: got %q err %v", tc.ref, got, err)
			}
			continue
		}
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeNotFound {
			t.Fatalf("resolve %q: expected not found, got %v", tc.ref, err)
		}
	}
}
