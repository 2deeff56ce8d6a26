package loader

// Output receives the outcome of an asynchronous fetch.
// It is either a TextOutput or a BytesOutput; no other implementations exist.
type Output interface {
	deliver(data []byte, err error)
	valid() bool
}

// TextOutput receives the payload decoded as text.
// On failure text is empty and err is non-nil.
type TextOutput func(text string, err error)

func (o TextOutput) deliver(data []byte, err error) {
	if err != nil {
		o("", err)

		return
	}

	o(string(data), nil)
}

func (o TextOutput) valid() bool { return o != nil }

// BytesOutput receives the raw payload.
// On failure data is nil and err is non-nil.
type BytesOutput func(data []byte, err error)

func (o BytesOutput) deliver(data []byte, err error) {
	if err != nil {
		o(nil, err)

		return
	}

	if data == nil {
		data = []byte{}
	}

	o(data, nil)
}

func (o BytesOutput) valid() bool { return o != nil }

// OutputOf picks the Output for a caller holding two optional callbacks.
// Exactly one of onText and onBytes must be non-nil, otherwise ErrConfiguration is returned.
//
//nolint:ireturn // Output is a closed variant
func OutputOf(onText func(string, error), onBytes func([]byte, error)) (Output, error) {
	switch {
	case onText != nil && onBytes == nil:
		return TextOutput(onText), nil
	case onBytes != nil && onText == nil:
		return BytesOutput(onBytes), nil
	default:
		return nil, ErrConfiguration
	}
}

func validOutput(out Output) bool {
	return out != nil && out.valid()
}
