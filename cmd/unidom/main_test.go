package main

import "testing"

func TestParseArgumentsAppliesDefaults(t *testing.T) {
	p, err := parseArguments(nil)
	if err != nil {
		t.Fatalf("parseArguments: %v", err)
	}
	if p.inputSource.Name() != defaultInputSource {
		t.Errorf("expected default input source %q, got %q", defaultInputSource, p.inputSource.Name())
	}
	if p.solver.Name() != defaultSolver {
		t.Errorf("expected default solver %q, got %q", defaultSolver, p.solver.Name())
	}
	if p.output.Name() != defaultOutputProxy {
		t.Errorf("expected default output proxy %q, got %q", defaultOutputProxy, p.output.Name())
	}
}

func TestParseArgumentsSelectsNamedComponents(t *testing.T) {
	p, err := parseArguments([]string{"-I", "queen", "-n", "4", "-S", "fixed_order", "-O", "graph_only"})
	if err != nil {
		t.Fatalf("parseArguments: %v", err)
	}
	if p.inputSource.Name() != "queen" {
		t.Errorf("expected input source queen, got %q", p.inputSource.Name())
	}
	if p.output.Name() != "graph_only" {
		t.Errorf("expected output proxy graph_only, got %q", p.output.Name())
	}
}

func TestParseArgumentsRejectsDuplicateDirective(t *testing.T) {
	_, err := parseArguments([]string{"-I", "basic_input", "-I", "queen", "-n", "4"})
	if err == nil {
		t.Fatal("expected a duplicate -I directive to be rejected")
	}
}

func TestParseArgumentsRejectsUnknownComponent(t *testing.T) {
	_, err := parseArguments([]string{"-S", "does_not_exist"})
	if err == nil {
		t.Fatal("expected an unknown solver name to be rejected")
	}
}

func TestParseArgumentsHelpRequestsClean(t *testing.T) {
	_, err := parseArguments([]string{"-h"})
	if err != errHelpRequested {
		t.Fatalf("expected errHelpRequested, got %v", err)
	}
}

func TestParseArgumentsAcceptsMultipleFilters(t *testing.T) {
	p, err := parseArguments([]string{"-F", "force_in", "0", "-F", "force_out", "1"})
	if err != nil {
		t.Fatalf("parseArguments: %v", err)
	}
	if len(p.filters) != 2 {
		t.Fatalf("expected 2 filters, got %d", len(p.filters))
	}
}

func TestStackedTokenizerStopsAtRootArgument(t *testing.T) {
	tok := &stackedTokenizer{args: []string{"-n", "4", "-S", "fixed_order"}}
	var collected []string
	for tok.HasNext() && !isRootArgument(tok.peek()) {
		s, err := tok.NextString()
		if err != nil {
			t.Fatalf("NextString: %v", err)
		}
		collected = append(collected, s)
	}
	if len(collected) != 2 || collected[0] != "-n" || collected[1] != "4" {
		t.Fatalf("expected [-n 4], got %v", collected)
	}
	if !tok.HasNext() || tok.peek() != "-S" {
		t.Fatalf("expected the next token to be -S, got %q (HasNext=%v)", tok.peek(), tok.HasNext())
	}
}
