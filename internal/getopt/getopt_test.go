package getopt

import "testing"

func TestNextSimpleFlags(t *testing.T) {
	argv := []string{"cmd", "-a", "-b"}
	s := &State{Index: 1}
	if opt := s.Next(argv, "ab"); opt != 'a' {
		t.Fatalf("first option = %q, want a", opt)
	}
	if opt := s.Next(argv, "ab"); opt != 'b' {
		t.Fatalf("second option = %q, want b", opt)
	}
	if opt := s.Next(argv, "ab"); opt != End {
		t.Fatalf("after last option = %v, want End", opt)
	}
}

func TestNextRequiredArgAttached(t *testing.T) {
	argv := []string{"cmd", "-ofile.txt"}
	s := &State{Index: 1}
	opt := s.Next(argv, "o:")
	if opt != 'o' {
		t.Fatalf("option = %q, want o", opt)
	}
	if s.Arg != "file.txt" {
		t.Errorf("Arg = %q, want file.txt", s.Arg)
	}
}

func TestNextRequiredArgSeparate(t *testing.T) {
	argv := []string{"cmd", "-o", "file.txt"}
	s := &State{Index: 1}
	opt := s.Next(argv, "o:")
	if opt != 'o' {
		t.Fatalf("option = %q, want o", opt)
	}
	if s.Arg != "file.txt" {
		t.Errorf("Arg = %q, want file.txt", s.Arg)
	}
	if opt := s.Next(argv, "o:"); opt != End {
		t.Fatalf("after consuming arg, expected End, got %v", opt)
	}
}

func TestNextMissingArg(t *testing.T) {
	argv := []string{"cmd", "-o"}
	s := &State{Index: 1}
	if opt := s.Next(argv, "o:"); opt != MissingArg {
		t.Fatalf("expected MissingArg, got %v", opt)
	}
}

func TestNextUnknownOption(t *testing.T) {
	argv := []string{"cmd", "-z"}
	s := &State{Index: 1}
	if opt := s.Next(argv, "ab"); opt != Unknown {
		t.Fatalf("expected Unknown, got %v", opt)
	}
	if s.Option != 'z' {
		t.Errorf("Option = %q, want z", s.Option)
	}
}

func TestNextDoubleDashEndsOptions(t *testing.T) {
	argv := []string{"cmd", "-a", "--", "-b"}
	s := &State{Index: 1}
	if opt := s.Next(argv, "ab"); opt != 'a' {
		t.Fatalf("first option = %q, want a", opt)
	}
	if opt := s.Next(argv, "ab"); opt != End {
		t.Fatalf("expected End at '--', got %v", opt)
	}
	if argv[s.Index] != "-b" {
		t.Errorf("Index should point past '--' at the remaining operand, got argv[%d]=%q", s.Index, argv[s.Index])
	}
}

func TestNextBundledOptions(t *testing.T) {
	argv := []string{"cmd", "-ab"}
	s := &State{Index: 1}
	if opt := s.Next(argv, "ab"); opt != 'a' {
		t.Fatalf("first bundled option = %q, want a", opt)
	}
	if opt := s.Next(argv, "ab"); opt != 'b' {
		t.Fatalf("second bundled option = %q, want b", opt)
	}
}

func TestNextNonOptionEndsProcessing(t *testing.T) {
	argv := []string{"cmd", "positional"}
	s := &State{Index: 1}
	if opt := s.Next(argv, "ab"); opt != End {
		t.Fatalf("expected End for non-option argument, got %v", opt)
	}
}
