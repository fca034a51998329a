package core

// byteRange is an inclusive range of byte values.
type byteRange struct {
	Lo, Hi byte
}

// class is a set of byte values the DFA does not need to tell apart.
type class struct {
	Name   string
	Ranges []byteRange
	// LeadMask keeps the payload bits when the class starts a sequence.
	LeadMask byte
}

// sequence is one shape of well-formed encoding: a lead class followed
// by one set of allowed classes per continuation byte.
type sequence struct {
	Lead int
	Tail [][]int
}

// Byte classes. The order fixes the class numbers in the table.
const (
	clsASCII = iota
	clsCont80
	clsCont90
	clsContA0
	clsInvalid
	clsLead2
	clsLeadE0
	clsLead3
	clsLeadED
	clsLeadF0
	clsLead4
	clsLeadF4
)

var classes = []class{
	clsASCII:   {Name: "ascii", Ranges: []byteRange{{0x00, 0x7f}}, LeadMask: 0x7f},
	clsCont80:  {Name: "cont80", Ranges: []byteRange{{0x80, 0x8f}}},
	clsCont90:  {Name: "cont90", Ranges: []byteRange{{0x90, 0x9f}}},
	clsContA0:  {Name: "contA0", Ranges: []byteRange{{0xa0, 0xbf}}},
	clsInvalid: {Name: "invalid", Ranges: []byteRange{{0xc0, 0xc1}, {0xf5, 0xff}}},
	clsLead2:   {Name: "lead2", Ranges: []byteRange{{0xc2, 0xdf}}, LeadMask: 0x1f},
	clsLeadE0:  {Name: "leadE0", Ranges: []byteRange{{0xe0, 0xe0}}, LeadMask: 0x0f},
	clsLead3:   {Name: "lead3", Ranges: []byteRange{{0xe1, 0xec}, {0xee, 0xef}}, LeadMask: 0x0f},
	clsLeadED:  {Name: "leadED", Ranges: []byteRange{{0xed, 0xed}}, LeadMask: 0x0f},
	clsLeadF0:  {Name: "leadF0", Ranges: []byteRange{{0xf0, 0xf0}}, LeadMask: 0x07},
	clsLead4:   {Name: "lead4", Ranges: []byteRange{{0xf1, 0xf3}}, LeadMask: 0x07},
	clsLeadF4:  {Name: "leadF4", Ranges: []byteRange{{0xf4, 0xf4}}, LeadMask: 0x07},
}

var anyCont = []int{clsCont80, clsCont90, clsContA0}

// sequences is the well-formed byte sequence table of RFC 3629,
// section 4. Restricted second bytes exclude overlong forms (E0, F0),
// surrogates (ED) and values above U+10FFFF (F4).
var sequences = []sequence{
	{Lead: clsASCII},
	{Lead: clsLead2, Tail: [][]int{anyCont}},
	{Lead: clsLeadE0, Tail: [][]int{{clsContA0}, anyCont}},
	{Lead: clsLead3, Tail: [][]int{anyCont, anyCont}},
	{Lead: clsLeadED, Tail: [][]int{{clsCont80, clsCont90}, anyCont}},
	{Lead: clsLeadF0, Tail: [][]int{{clsCont90, clsContA0}, anyCont, anyCont}},
	{Lead: clsLead4, Tail: [][]int{anyCont, anyCont, anyCont}},
	{Lead: clsLeadF4, Tail: [][]int{{clsCont80}, anyCont, anyCont}},
}
