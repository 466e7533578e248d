package serialize

import (
	"io"

	"github.com/realForbis/ddgsampler/alias"
)

// WriteAlias writes the alias format: `n\n` then three arrays (qs, Ms,
// j) in order.
func WriteAlias(w io.Writer, s *alias.Sampler) error {
	if err := writeLine(w, s.N); err != nil {
		return err
	}
	if err := writeBigIntArray(w, s.Qs); err != nil {
		return err
	}
	if err := writeBigIntArray(w, s.Ms); err != nil {
		return err
	}
	return writeIntArray(w, s.J)
}

// ReadAlias reads an alias file back into a Sampler.
func ReadAlias(r io.Reader) (*alias.Sampler, error) {
	t := newTokenReader(r)
	n, err := t.int()
	if err != nil {
		return nil, err
	}
	qs, err := t.bigIntArray()
	if err != nil {
		return nil, err
	}
	ms, err := t.bigIntArray()
	if err != nil {
		return nil, err
	}
	j, err := t.intArray()
	if err != nil {
		return nil, err
	}
	return &alias.Sampler{N: n, Qs: qs, Ms: ms, J: j}, nil
}
