package felt

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

// UnmarshalJSON accepts numbers and strings as input, see FromString for the
// accepted formats.
func (z *Felt) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > Bits*3 {
		return errors.New("value too large (max = Felt.Bits * 3)")
	}

	// we accept numbers and strings, remove leading and trailing quotes if any
	if len(s) > 0 && s[0] == '"' {
		s = s[1:]
	}
	if len(s) > 0 && s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}

	f, err := FromString(s)
	if err != nil {
		return err
	}
	*z = f
	return nil
}

func (z Felt) MarshalJSON() ([]byte, error) {
	return []byte(`"` + z.String() + `"`), nil
}

// MarshalCBOR encodes z as a 32 byte big-endian byte string.
func (z Felt) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(z.val[:])
}

func (z *Felt) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return err
	}
	if len(b) != Bytes {
		return errors.Errorf("felt: expected %d bytes, got %d", Bytes, len(b))
	}
	f, err := FromCanonicalBytes(b)
	if err != nil {
		return err
	}
	*z = f
	return nil
}
