package cli

import "io"

// PinPrompt is the modal credential prompt: it collects a candidate PIN
// and invokes exactly one of two caller-supplied continuations. The prompt
// never sees the stored secret, it only calls the verifier.
type PinPrompt struct {
	verify func(pin string) bool
	out    io.Writer
}

func NewPinPrompt(verify func(pin string) bool, out io.Writer) *PinPrompt {
	return &PinPrompt{verify: verify, out: out}
}

// Present reads a PIN from the terminal. An empty entry cancels the prompt
// and invokes cancelled; otherwise validated receives the verifier result.
func (p *PinPrompt) Present(validated func(ok bool), cancelled func()) error {
	pin, err := GetPin("PIN (empty to cancel)", p.out)
	if err != nil {
		return err
	}
	if pin == "" {
		if cancelled != nil {
			cancelled()
		}
		return nil
	}
	if validated != nil {
		validated(p.verify(pin))
	}
	return nil
}
