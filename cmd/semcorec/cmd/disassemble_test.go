package cmd

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/semcore-lang/semcore/internal/codegen"
	"github.com/semcore-lang/semcore/internal/config"
)

// TestDisassembleTextSnapshot pins the rendered instruction stream for a
// small fixture program, the same way the teacher snapshots interpreter
// output per test case.
func TestDisassembleTextSnapshot(t *testing.T) {
	path := writeASTFixture(t, oneFunctionMain())
	cfg := config.Default(4)

	driver, err := runDriver(path, cfg)
	if err != nil {
		t.Fatalf("runDriver: %v", err)
	}

	sink := codegen.NewTextSink()
	codegen.Dispatch(sink, driver.Instructions())

	snaps.MatchSnapshot(t, sink.Lines())
}

// TestDisassembleJSONSnapshot pins the JSON trace for the same fixture.
func TestDisassembleJSONSnapshot(t *testing.T) {
	path := writeASTFixture(t, oneFunctionMain())
	cfg := config.Default(4)

	driver, err := runDriver(path, cfg)
	if err != nil {
		t.Fatalf("runDriver: %v", err)
	}

	sink := codegen.NewJSONSink()
	codegen.Dispatch(sink, driver.Instructions())
	if err := sink.Err(); err != nil {
		t.Fatalf("JSONSink.Err() = %v", err)
	}

	trace, err := sink.JSON()
	if err != nil {
		t.Fatalf("JSONSink.JSON() = %v", err)
	}

	snaps.MatchJSON(t, trace)
}
