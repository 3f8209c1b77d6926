package token

import "strconv"

// Value is the out-of-band payload of an Int or String token.
type Value interface {
	isValue()
	String() string
}

type IntValue uint32

type StringValue string

func (IntValue) isValue()    {}
func (StringValue) isValue() {}

func (v IntValue) String() string { return strconv.FormatUint(uint64(v), 10) }

func (v StringValue) String() string { return strconv.Quote(string(v)) }
