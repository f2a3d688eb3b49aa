package ternary

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/marshalutil"
)

// FromBytes unmarshals a Number from a sequence of bytes.
func FromBytes(bytes []byte) (number Number, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(bytes)
	if number, err = FromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse Number from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// FromMarshalUtil unmarshals a Number using a MarshalUtil (for easier unmarshalling). The encoding consists of the
// amount of trits (uint32) followed by one signed byte per trit, least significant first.
func FromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (number Number, err error) {
	tritCount, err := marshalUtil.ReadUint32()
	if err != nil {
		err = errors.Errorf("failed to parse trit count (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	// the count is not trusted for preallocation: reading fails as soon as the bytes run out
	trits := make([]Trit, 0)
	for position := 0; position < int(tritCount); position++ {
		value, readErr := marshalUtil.ReadInt8()
		if readErr != nil {
			err = errors.Errorf("failed to parse trit at position %d (%v): %w", position, readErr, cerrors.ErrParseBytesFailed)
			return
		}

		if trit := Trit(value); !trit.Valid() {
			err = errors.Mark(errors.Errorf("trit at position %d has value %d: %w", position, value, cerrors.ErrParseBytesFailed), ErrInvalidTrit)
			return
		}
		trits = append(trits, Trit(value))
	}

	return newNumber(trits), nil
}

// Bytes returns a marshaled version of the Number.
func (n Number) Bytes() []byte {
	marshalUtil := marshalutil.New(marshalutil.Uint32Size + len(n.trits)*marshalutil.Int8Size)
	marshalUtil.WriteUint32(uint32(len(n.trits)))
	for _, trit := range n.trits {
		marshalUtil.WriteInt8(int8(trit))
	}

	return marshalUtil.Bytes()
}
