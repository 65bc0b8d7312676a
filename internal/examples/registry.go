package examples

import (
	"errors"
	"fmt"
	"io"
)

// Name identifies an example notebook.
type Name string

// Registered example notebooks.
const (
	CustomEnvironment      Name = "custom_environment_example"
	ConversationSimulation Name = "conversation_simulation_example"
	AdversarialSimulation  Name = "adversarial_simulation_example"
)

const (
	// Header is the first line of every listing.
	Header = "Available ISOPRO example notebooks:"

	// Footer closes every listing, preceded by a blank line.
	Footer = "To run an example, open the corresponding .ipynb file in a Jupyter notebook environment."

	bullet = "- "
)

// ErrOutput is returned when a listing cannot be written.
var ErrOutput = errors.New("writing example listing")

var available = [...]Name{
	CustomEnvironment,
	ConversationSimulation,
	AdversarialSimulation,
}

// Available returns the registered example names in display order.
// The returned slice is a copy.
func Available() []Name {
	names := make([]Name, len(available))
	copy(names, available[:])
	return names
}

// IsRegistered reports whether name is in the registry.
func IsRegistered(name Name) bool {
	for _, n := range available {
		if n == name {
			return true
		}
	}
	return false
}

// List writes the registry listing to w.
func List(w io.Writer) error {
	return ListNames(w, available[:])
}

// ListNames writes a listing of names to w using the registry format.
// An empty names slice still produces the header and footer.
func ListNames(w io.Writer, names []Name) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	for _, n := range names {
		if _, err := fmt.Fprintln(w, bullet+string(n)); err != nil {
			return fmt.Errorf("%w: %w", ErrOutput, err)
		}
	}
	if _, err := fmt.Fprintln(w, "\n"+Footer); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return nil
}
