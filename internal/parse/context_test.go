package parse

import "testing"

func TestContextSendErrorNoSink(t *testing.T) {
	ctx := NewContext[rune]()
	fail := NewFailure[rune](newCharLexer("x"), errBoom{})
	if err := ctx.SendError(fail); err == nil {
		t.Error("SendError with no sink should return the failure as fatal")
	}
	if ctx.HasSink() {
		t.Error("a fresh Context should have no sink")
	}
}

func TestContextSendErrorWithSink(t *testing.T) {
	var seen *Failure[rune]
	ctx := NewContext[rune]().WithSink(func(f *Failure[rune]) error {
		seen = f
		return nil
	})
	if !ctx.HasSink() {
		t.Fatal("WithSink should install a sink")
	}
	fail := NewFailure[rune](newCharLexer("x"), errBoom{})
	if err := ctx.SendError(fail); err != nil {
		t.Errorf("SendError should be recovered by the sink: %v", err)
	}
	if seen != fail {
		t.Error("the sink should receive the original failure")
	}
}

func TestContextPushedAppliesFramesOutermostLast(t *testing.T) {
	var order []string
	ctx := NewContext[rune]().
		Pushed(func(f *Failure[rune]) *Failure[rune] {
			order = append(order, "outer")
			return f
		}).
		Pushed(func(f *Failure[rune]) *Failure[rune] {
			order = append(order, "inner")
			return f
		})
	fail := NewFailure[rune](newCharLexer("x"), errBoom{})
	_ = ctx.SendError(fail)
	if len(order) != 2 || order[0] != "inner" || order[1] != "outer" {
		t.Errorf("frame application order = %v, want [inner outer]", order)
	}
}

func TestRawAndUnrecoverable(t *testing.T) {
	sinkCalled := false
	ctx := NewContext[rune]().
		WithSink(func(f *Failure[rune]) error { sinkCalled = true; return nil }).
		Pushed(func(f *Failure[rune]) *Failure[rune] { return f })

	raw := Raw(ctx)
	if raw.HasSink() != ctx.HasSink() {
		t.Error("Raw should preserve the sink")
	}
	fail := NewFailure[rune](newCharLexer("x"), errBoom{})
	_ = raw.SendError(fail)
	if !sinkCalled {
		t.Error("Raw should still route to the sink")
	}

	unrec := Unrecoverable(ctx)
	if unrec.HasSink() {
		t.Error("Unrecoverable should drop the sink")
	}
	if err := unrec.SendError(NewFailure[rune](newCharLexer("x"), errBoom{})); err == nil {
		t.Error("Unrecoverable should treat every failure as fatal")
	}
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }
