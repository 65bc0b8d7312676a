package examples

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

const defaultListing = `Available ISOPRO example notebooks:
- custom_environment_example
- conversation_simulation_example
- adversarial_simulation_example

To run an example, open the corresponding .ipynb file in a Jupyter notebook environment.
`

func TestAvailable(t *testing.T) {
	want := []Name{
		"custom_environment_example",
		"conversation_simulation_example",
		"adversarial_simulation_example",
	}

	got := Available()
	if len(got) != len(want) {
		t.Fatalf("Available() returned %d names, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Available()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAvailable_ReturnsCopy(t *testing.T) {
	names := Available()
	names[0] = "tampered"

	if got := Available()[0]; got != CustomEnvironment {
		t.Errorf("registry mutated through returned slice: got %q", got)
	}
}

func TestIsRegistered(t *testing.T) {
	tests := []struct {
		name Name
		want bool
	}{
		{CustomEnvironment, true},
		{AdversarialSimulation, true},
		{"custom_environment", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			if got := IsRegistered(tt.name); got != tt.want {
				t.Errorf("IsRegistered(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestList_DefaultOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := List(&buf); err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if buf.String() != defaultListing {
		t.Errorf("List() output mismatch\ngot:\n%q\nwant:\n%q", buf.String(), defaultListing)
	}
}

func TestList_Idempotent(t *testing.T) {
	var first, second bytes.Buffer
	if err := List(&first); err != nil {
		t.Fatalf("first List() error: %v", err)
	}
	if err := List(&second); err != nil {
		t.Fatalf("second List() error: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("repeated List() calls produced different output")
	}
}

func TestList_Structure(t *testing.T) {
	var buf bytes.Buffer
	if err := List(&buf); err != nil {
		t.Fatalf("List() error: %v", err)
	}

	out := buf.String()
	if n := strings.Count(out, Header); n != 1 {
		t.Errorf("header appears %d times, want 1", n)
	}

	var bullets []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "- ") {
			bullets = append(bullets, strings.TrimPrefix(line, "- "))
		}
	}
	names := Available()
	if len(bullets) != len(names) {
		t.Fatalf("got %d bullet lines, want %d", len(bullets), len(names))
	}
	for i, n := range names {
		if bullets[i] != string(n) {
			t.Errorf("bullet %d = %q, want %q", i, bullets[i], n)
		}
	}
	if !strings.HasSuffix(out, "\n\n"+Footer+"\n") {
		t.Errorf("output does not end with blank line and footer: %q", out)
	}
}

func TestListNames_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := ListNames(&buf, nil); err != nil {
		t.Fatalf("ListNames(nil) error: %v", err)
	}

	want := Header + "\n\n" + Footer + "\n"
	if buf.String() != want {
		t.Errorf("ListNames(nil) = %q, want %q", buf.String(), want)
	}
}

func TestListNames_Subset(t *testing.T) {
	var buf bytes.Buffer
	if err := ListNames(&buf, []Name{AdversarialSimulation}); err != nil {
		t.Fatalf("ListNames() error: %v", err)
	}

	want := Header + "\n- adversarial_simulation_example\n\n" + Footer + "\n"
	if buf.String() != want {
		t.Errorf("ListNames() = %q, want %q", buf.String(), want)
	}
}

// failingWriter accepts n writes and fails every write after that.
type failingWriter struct {
	n   int
	err error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, w.err
	}
	w.n--
	return len(p), nil
}

func TestList_OutputFailure(t *testing.T) {
	tests := []struct {
		name     string
		okWrites int
	}{
		{"header fails", 0},
		{"bullet fails", 1},
		{"footer fails", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &failingWriter{n: tt.okWrites, err: io.ErrClosedPipe}
			err := List(w)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrOutput) {
				t.Errorf("error %v does not wrap ErrOutput", err)
			}
			if !errors.Is(err, io.ErrClosedPipe) {
				t.Errorf("error %v does not wrap the underlying write error", err)
			}
		})
	}
}
